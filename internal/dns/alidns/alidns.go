package alidns

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/aliyun/alibaba-cloud-sdk-go/sdk/requests"
	"github.com/aliyun/alibaba-cloud-sdk-go/services/alidns"

	"homescripts/internal/dns"
	"homescripts/internal/domain"
)

func init() {
	dns.Register("alidns", func(logger *slog.Logger, settings map[string]string) (dns.Provider, error) {
		return New(logger, settings)
	})
}

const defaultPageSize = 500

// api is the subset of *alidns.Client the provider calls.
type api interface {
	DescribeDomainRecords(request *alidns.DescribeDomainRecordsRequest) (*alidns.DescribeDomainRecordsResponse, error)
	UpdateDomainRecord(request *alidns.UpdateDomainRecordRequest) (*alidns.UpdateDomainRecordResponse, error)
}

// Provider implements dns.Provider for Alibaba Cloud DNS.
type Provider struct {
	client   api
	pageSize int
	logger   *slog.Logger
}

// New creates an Alibaba Cloud DNS provider from the given settings map:
// access_key, secret, region and optionally page_size (default 500).
// Missing credentials are passed through and rejected by the API on first use.
func New(logger *slog.Logger, settings map[string]string) (*Provider, error) {

	pageSize := defaultPageSize
	if v := settings["page_size"]; v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("alidns: invalid page_size %q", v)
		}
		pageSize = parsed
	}

	client, err := alidns.NewClientWithAccessKey(settings["region"], settings["access_key"], settings["secret"])
	if err != nil {
		return nil, fmt.Errorf("alidns: create client: %w", err)
	}

	return newWithClient(client, pageSize, logger), nil
}

func newWithClient(client api, pageSize int, logger *slog.Logger) *Provider {
	return &Provider{client: client, pageSize: pageSize, logger: logger}
}

// ListRecords issues a single DescribeDomainRecords call and returns what it reports.
func (p *Provider) ListRecords(ctx context.Context, domainName string) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := alidns.CreateDescribeDomainRecordsRequest()
	req.Scheme = "https"
	req.DomainName = domainName
	req.PageSize = requests.NewInteger(p.pageSize)

	resp, err := p.client.DescribeDomainRecords(req)
	if err != nil {
		return nil, fmt.Errorf("alidns: describe records for %s: %w", domainName, err)
	}

	records := make([]domain.Record, 0, len(resp.DomainRecords.Record))
	for _, r := range resp.DomainRecords.Record {
		records = append(records, domain.Record{
			ID:    r.RecordId,
			RR:    r.RR,
			Type:  r.Type,
			TTL:   r.TTL,
			Value: r.Value,
			Meta:  map[string]string{"line": r.Line},
		})
	}

	p.logger.Debug("listed records",
		"domain", domainName,
		"count", len(records),
		"total", resp.TotalCount,
	)

	return records, nil
}

// UpdateRecord replaces the value of record.ID, passing RR, type and TTL through unchanged.
func (p *Provider) UpdateRecord(ctx context.Context, domainName string, record domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := alidns.CreateUpdateDomainRecordRequest()
	req.Scheme = "https"
	req.RecordId = record.ID
	req.RR = record.RR
	req.Type = record.Type
	req.TTL = requests.NewInteger64(record.TTL)
	req.Value = record.Value
	if line := record.Meta["line"]; line != "" {
		req.Line = line
	}

	if _, err := p.client.UpdateDomainRecord(req); err != nil {
		return fmt.Errorf("alidns: update record %s (%s.%s): %w", record.ID, record.RR, domainName, err)
	}
	return nil
}
