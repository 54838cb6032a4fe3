package ipprobe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultWebTimeout = 15 * time.Second

// WebResolver constructs a resolver that asks plain-text "what is my IP"
// services over HTTP. Each service must answer 200 OK with the address on the
// first line of the body.
//
// With a single URL its answer is returned as is. With more, up to three
// lookups run concurrently and the first two successful answers must agree.
func WebResolver(timeout time.Duration, serviceURL ...string) (Resolver, error) {
	if len(serviceURL) == 0 {
		return nil, errors.New("web resolver needs at least one service url")
	}
	var urls []*url.URL
	for _, u := range serviceURL {
		pu, err := url.Parse(u)
		if err != nil {
			return nil, fmt.Errorf("parse url %q: %w", u, err)
		}
		urls = append(urls, pu)
	}
	if timeout <= 0 {
		timeout = defaultWebTimeout
	}
	return &webResolver{
		httpClient:  &http.Client{Timeout: timeout},
		serviceURLs: urls,
	}, nil
}

type webResolver struct {
	httpClient  *http.Client
	serviceURLs []*url.URL
}

func (wr *webResolver) Resolve(ctx context.Context) (string, error) {
	if len(wr.serviceURLs) == 1 {
		addr, err := wr.lookup(ctx, wr.serviceURLs[0])
		if err != nil {
			return "", err
		}
		return addr.String(), nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		addr netip.Addr
		err  error
	}

	useCount := min(3, len(wr.serviceURLs))
	results := make(chan result, useCount)

	var wg sync.WaitGroup
	for _, u := range wr.serviceURLs[:useCount] {
		wg.Add(1)
		go func() {
			defer wg.Done()
			addr, err := wr.lookup(ctx, u)
			results <- result{addr: addr, err: err}
		}()
	}
	go func() { wg.Wait(); close(results) }()

	var (
		errs []error
		ip   netip.Addr
	)
	for r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		if !ip.IsValid() {
			ip = r.addr
			continue
		}
		if ip == r.addr {
			return ip.String(), nil
		}
		return "", fmt.Errorf("ip services disagree: %s vs %s", ip, r.addr)
	}

	return "", fmt.Errorf("not enough ip services answered: %w", errors.Join(errs...))
}

func (wr *webResolver) lookup(ctx context.Context, u *url.URL) (netip.Addr, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := wr.httpClient.Do(req)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return netip.Addr{}, fmt.Errorf("unexpected status from %s: %d", u.Host, resp.StatusCode)
	}

	line, _ := bufio.NewReader(resp.Body).ReadString('\n')
	ip, err := netip.ParseAddr(strings.TrimSpace(line))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("parse ip from %s: %w", u.Host, err)
	}
	return ip, nil
}
