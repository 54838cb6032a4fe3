package ipprobe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
	"unicode/utf8"
)

// greetingSize is the most the resolver service sends before closing.
const greetingSize = 16

// GreetingResolver reads the caller's address from the greeting a resolver
// service writes as soon as a TCP connection is accepted.
type GreetingResolver struct {
	Address string
	Timeout time.Duration
}

func (g *GreetingResolver) Resolve(ctx context.Context) (string, error) {
	ctx, cancel := withTimeout(ctx, g.Timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", g.Address)
	if err != nil {
		return "", fmt.Errorf("dial %s: %w", g.Address, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
	}

	buf := make([]byte, greetingSize)
	n, err := conn.Read(buf)
	if err != nil && !(errors.Is(err, io.EOF) && n > 0) {
		return "", fmt.Errorf("read greeting: %w", err)
	}
	if !utf8.Valid(buf[:n]) {
		return "", fmt.Errorf("greeting from %s is not valid utf-8", g.Address)
	}

	ip := strings.TrimSpace(string(buf[:n]))
	if ip == "" {
		return "", fmt.Errorf("empty greeting from %s", g.Address)
	}
	return ip, nil
}
