package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homescripts/internal/config"
	"homescripts/internal/dns"
	"homescripts/internal/domain"
)

type panickingProvider struct{}

func (panickingProvider) ListRecords(context.Context, string) ([]domain.Record, error) {
	panic("provider exploded")
}

func (panickingProvider) UpdateRecord(context.Context, string, domain.Record) error {
	return nil
}

type matchingProvider struct{}

func (matchingProvider) ListRecords(context.Context, string) ([]domain.Record, error) {
	return []domain.Record{{ID: "1", RR: "@", Type: "A", Value: "1.2.3.4"}}, nil
}

func (matchingProvider) UpdateRecord(context.Context, string, domain.Record) error {
	return nil
}

func init() {
	dns.Register("test-panicking", func(*slog.Logger, map[string]string) (dns.Provider, error) {
		return panickingProvider{}, nil
	})
	dns.Register("test-matching", func(*slog.Logger, map[string]string) (dns.Provider, error) {
		return matchingProvider{}, nil
	})
}

// writeConfig writes a config selecting provider and returns its path and
// the log directory.
func writeConfig(t *testing.T, provider string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	logDir := filepath.Join(dir, "logs")
	content := "log_dir: " + logDir + `
ddns:
  provider: ` + provider + `
  domain: example.com
  log_file: ddns.log
  probe:
    mode: static
    ip: 1.2.3.4
`
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path, logDir
}

func readLog(t *testing.T, logDir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(logDir, "ddns.log"))
	require.NoError(t, err)
	return string(data)
}

func TestCLI_PanicIsLoggedAndExitsZero(t *testing.T) {
	path, logDir := writeConfig(t, "test-panicking")

	code := cli([]string{"-config", path}, io.Discard)

	assert.Equal(t, 0, code)
	log := readLog(t, logDir)
	assert.Contains(t, log, "ddns panicked")
	assert.Contains(t, log, "provider exploded")
	assert.Contains(t, log, "stack=")
	assert.Contains(t, log, "ddns failed")
}

func TestCLI_ErrorIsLoggedAndExitsZero(t *testing.T) {
	path, logDir := writeConfig(t, "no-such-provider")

	code := cli([]string{"-config", path}, io.Discard)

	assert.Equal(t, 0, code)
	assert.Contains(t, readLog(t, logDir), "ddns failed")
}

func TestCLI_NothingToUpdate(t *testing.T) {
	path, logDir := writeConfig(t, "test-matching")

	code := cli([]string{"-config", path}, io.Discard)

	assert.Equal(t, 0, code)
	assert.NotContains(t, readLog(t, logDir), "level=ERROR")
}

func TestCLI_MissingConfigExitsZero(t *testing.T) {
	var stderr bytes.Buffer

	code := cli([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "failed to load config")
}

func TestCLI_BadFlagExitsZero(t *testing.T) {
	var stderr bytes.Buffer

	assert.Equal(t, 0, cli([]string{"-interval", "soon"}, &stderr))
	assert.Contains(t, stderr.String(), "invalid arguments")
}

func TestRun_RecoversPanic(t *testing.T) {
	cfg := &config.Config{DDNS: config.DDNSConfig{
		Provider: "test-panicking",
		Domain:   "example.com",
		Probe:    config.ProbeConfig{Mode: "static", IP: "1.2.3.4"},
	}}

	err := run(context.Background(), cfg, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic: provider exploded")
}
