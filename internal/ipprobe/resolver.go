// Package ipprobe discovers the public IP address of the host.
package ipprobe

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	"homescripts/internal/config"
)

// Resolver returns the public IP address as text.
type Resolver interface {
	Resolve(ctx context.Context) (string, error)
}

// Static always resolves to addr.
type Static string

func (s Static) Resolve(context.Context) (string, error) {
	addr, err := netip.ParseAddr(string(s))
	if err != nil {
		return "", fmt.Errorf("parse static ip: %w", err)
	}
	return addr.String(), nil
}

// FromConfig builds the resolver selected by cfg.Mode.
func FromConfig(cfg config.ProbeConfig) (Resolver, error) {
	switch cfg.Mode {
	case "", "greeting":
		return &GreetingResolver{Address: cfg.Address, Timeout: cfg.Timeout}, nil
	case "web":
		return WebResolver(cfg.Timeout, cfg.URLs...)
	case "static":
		return Static(cfg.IP), nil
	default:
		return nil, fmt.Errorf("unknown probe mode %q", cfg.Mode)
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
