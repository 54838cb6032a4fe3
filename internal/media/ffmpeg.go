package media

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// FFmpeg remuxes remote streams into local files with an external ffmpeg binary.
type FFmpeg struct {
	path   string
	logger *slog.Logger
}

// NewFFmpeg uses the binary at path, looked up on PATH when it has no separator.
func NewFFmpeg(path string, logger *slog.Logger) *FFmpeg {
	if path == "" {
		path = "ffmpeg"
	}
	return &FFmpeg{path: path, logger: logger.With("component", "ffmpeg")}
}

// Available reports whether the binary can be found.
func (f *FFmpeg) Available() error {
	if _, err := exec.LookPath(f.path); err != nil {
		return fmt.Errorf("ffmpeg not found: %w", err)
	}
	return nil
}

// Remux copies the streams of src into dst without transcoding.
func (f *FFmpeg) Remux(ctx context.Context, src, dst string) error {
	args := remuxArgs(src, dst)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, f.path, args...)
	cmd.Stderr = &stderr

	f.logger.Debug("running ffmpeg", "src", src, "dst", dst)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("remux %s: %w: %s", src, err, strings.TrimSpace(stderr.String()))
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		f.logger.Warn("ffmpeg reported warnings", "dst", dst, "output", msg)
	}
	return nil
}

func remuxArgs(src, dst string) []string {
	return []string{"-i", src, "-codec", "copy", dst, "-loglevel", "warning"}
}
