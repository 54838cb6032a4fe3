package cloudflare

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	cf "github.com/cloudflare/cloudflare-go"

	"homescripts/internal/dns"
	"homescripts/internal/domain"
)

func init() {
	dns.Register("cloudflare", func(logger *slog.Logger, settings map[string]string) (dns.Provider, error) {
		return New(logger, settings)
	})
}

const (
	metaZoneID  = "zone_id"
	metaProxied = "proxied"
)

// api is the subset of *cf.API the provider calls.
type api interface {
	ListZones(ctx context.Context, z ...string) ([]cf.Zone, error)
	ListDNSRecords(ctx context.Context, rc *cf.ResourceContainer, params cf.ListDNSRecordsParams) ([]cf.DNSRecord, *cf.ResultInfo, error)
	UpdateDNSRecord(ctx context.Context, rc *cf.ResourceContainer, params cf.UpdateDNSRecordParams) error
}

// Provider implements dns.Provider for Cloudflare.
type Provider struct {
	api    api
	logger *slog.Logger
}

// New creates a Cloudflare provider authenticated with settings["api_token"].
func New(logger *slog.Logger, settings map[string]string) (*Provider, error) {
	client, err := cf.NewWithAPIToken(settings["api_token"])
	if err != nil {
		return nil, fmt.Errorf("cloudflare: create api client: %w", err)
	}
	return &Provider{api: client, logger: logger}, nil
}

// ListRecords returns the records of the zone holding domainName that are
// named domainName or one of its subdomains.
func (p *Provider) ListRecords(ctx context.Context, domainName string) ([]domain.Record, error) {
	zid, err := p.zoneID(ctx, domainName)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("got zone ID", "domain", domainName, "zone_id", zid)

	found, _, err := p.api.ListDNSRecords(ctx, cf.ZoneIdentifier(zid), cf.ListDNSRecordsParams{})
	if err != nil {
		return nil, fmt.Errorf("cloudflare: list records for zone %s: %w", zid, err)
	}

	var records []domain.Record
	for _, r := range found {
		if r.Name != domainName && !strings.HasSuffix(r.Name, "."+domainName) {
			continue
		}
		meta := map[string]string{metaZoneID: zid}
		if r.Proxied != nil {
			meta[metaProxied] = strconv.FormatBool(*r.Proxied)
		}
		records = append(records, domain.Record{
			ID:    r.ID,
			RR:    dns.RelativeName(r.Name, domainName),
			Type:  r.Type,
			TTL:   int64(r.TTL),
			Value: r.Content,
			Meta:  meta,
		})
	}

	p.logger.Debug("listed records", "domain", domainName, "count", len(records))
	return records, nil
}

func (p *Provider) UpdateRecord(ctx context.Context, domainName string, record domain.Record) error {
	zid := record.Meta[metaZoneID]
	if zid == "" {
		var err error
		if zid, err = p.zoneID(ctx, domainName); err != nil {
			return err
		}
	}

	params := cf.UpdateDNSRecordParams{
		ID:      record.ID,
		Type:    record.Type,
		Name:    dns.FQDN(record.RR, domainName),
		Content: record.Value,
		TTL:     int(record.TTL),
	}
	if v, ok := record.Meta[metaProxied]; ok {
		proxied, err := strconv.ParseBool(v)
		if err == nil {
			params.Proxied = &proxied
		}
	}

	if err := p.api.UpdateDNSRecord(ctx, cf.ZoneIdentifier(zid), params); err != nil {
		return fmt.Errorf("cloudflare: update record %s (%s): %w", record.ID, params.Name, err)
	}
	return nil
}

// zoneID picks the zone with the longest name that is a suffix of domainName.
func (p *Provider) zoneID(ctx context.Context, domainName string) (string, error) {
	zones, err := p.api.ListZones(ctx)
	if err != nil {
		return "", fmt.Errorf("cloudflare: list zones: %w", err)
	}

	var zid string
	longest := 0
	for _, z := range zones {
		if (domainName == z.Name || strings.HasSuffix(domainName, "."+z.Name)) && len(z.Name) > longest {
			longest, zid = len(z.Name), z.ID
		}
	}
	if longest == 0 {
		return "", fmt.Errorf("cloudflare: no zone matches %q", domainName)
	}
	return zid, nil
}
