package dns

import (
	"context"
	"strings"

	"homescripts/internal/domain"
)

// Provider is the interface that DNS providers must implement.
type Provider interface {
	// ListRecords returns every record of domain as the provider reports it.
	ListRecords(ctx context.Context, domainName string) ([]domain.Record, error)
	// UpdateRecord writes record back, keyed by record.ID.
	UpdateRecord(ctx context.Context, domainName string, record domain.Record) error
}

// RelativeName turns an FQDN into the label relative to zone, "@" for the apex.
func RelativeName(fqdn, zone string) string {
	fqdn = strings.TrimSuffix(fqdn, ".")
	zone = strings.TrimSuffix(zone, ".")
	if fqdn == zone {
		return "@"
	}
	return strings.TrimSuffix(fqdn, "."+zone)
}

// FQDN is the inverse of RelativeName.
func FQDN(rr, zone string) string {
	if rr == "" || rr == "@" {
		return zone
	}
	return rr + "." + zone
}
