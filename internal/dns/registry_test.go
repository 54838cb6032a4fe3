package dns

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homescripts/internal/domain"
)

type stubProvider struct{ settings map[string]string }

func (stubProvider) ListRecords(context.Context, string) ([]domain.Record, error) { return nil, nil }
func (stubProvider) UpdateRecord(context.Context, string, domain.Record) error    { return nil }

func TestRegistry(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	Register("stub", func(_ *slog.Logger, settings map[string]string) (Provider, error) {
		if settings["token"] == "" {
			return nil, errors.New("stub: missing token")
		}
		return stubProvider{settings: settings}, nil
	})

	assert.Contains(t, Providers(), "stub")
	assert.Panics(t, func() {
		Register("stub", nil)
	})

	p, err := NewProvider("stub", logger, map[string]string{"token": "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", p.(stubProvider).settings["token"])

	_, err = NewProvider("stub", logger, nil)
	assert.EqualError(t, err, "stub: missing token")

	_, err = NewProvider("nope", logger, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DNS provider")
}

func TestRelativeName(t *testing.T) {
	tests := []struct {
		fqdn, zone, rr, back string
	}{
		{"www.example.com", "example.com", "www", "www.example.com"},
		{"a.b.example.com.", "example.com", "a.b", "a.b.example.com"},
		{"example.com", "example.com", "@", "example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.rr, RelativeName(tt.fqdn, tt.zone))
		assert.Equal(t, tt.back, FQDN(tt.rr, tt.zone))
	}
}
