package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"homescripts/internal/domain"
)

// DDNSService points every record of a domain at the host's public IP.
type DDNSService struct {
	domain    string
	resolver  IPResolver
	provider  RecordProvider
	notifier  Notifier
	changes   ChangeStore
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewDDNSService wires the updater. changes and publisher may be nil.
func NewDDNSService(
	domainName string,
	resolver IPResolver,
	provider RecordProvider,
	notifier Notifier,
	changes ChangeStore,
	publisher Publisher,
	logger *slog.Logger,
) *DDNSService {
	return &DDNSService{
		domain:    domainName,
		resolver:  resolver,
		provider:  provider,
		notifier:  notifier,
		changes:   changes,
		publisher: publisher,
		logger:    logger.With("domain", domainName),
		now:       time.Now,
	}
}

// Sync updates every record whose value differs from the public IP. An
// update error stops the loop; records updated before it stay updated.
func (s *DDNSService) Sync(ctx context.Context) (*domain.SyncReport, error) {
	ip, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve public ip: %w", err)
	}
	s.logger.Debug("resolved public ip", "ip", ip)

	records, err := s.provider.ListRecords(ctx, s.domain)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	report := &domain.SyncReport{
		Domain:  s.domain,
		IP:      ip,
		Checked: len(records),
	}

	for _, record := range records {
		if record.Value == ip {
			continue
		}

		updated := record
		updated.Value = ip
		if err := s.provider.UpdateRecord(ctx, s.domain, updated); err != nil {
			return report, fmt.Errorf("update record %s: %w", record.ID, err)
		}

		change := domain.RecordChange{
			Domain:    s.domain,
			RecordID:  record.ID,
			RR:        record.RR,
			Type:      record.Type,
			OldValue:  record.Value,
			NewValue:  ip,
			ChangedAt: s.now(),
		}
		report.Changes = append(report.Changes, change)
		s.logger.Info(change.String())
	}

	return report, nil
}

// Run syncs the records and mails the summary when anything changed.
func (s *DDNSService) Run(ctx context.Context) error {
	report, err := s.Sync(ctx)
	if err != nil {
		if report != nil && len(report.Changes) > 0 {
			s.record(ctx, report.Changes)
		}
		return err
	}

	s.logger.Debug("sync completed",
		"ip", report.IP,
		"checked", report.Checked,
		"changed", len(report.Changes),
	)

	summary := report.Summary()
	if summary == "" {
		return nil
	}

	s.notifier.Send(ctx, summary)
	s.record(ctx, report.Changes)
	return nil
}

// record keeps optional bookkeeping of applied changes. Its failures are
// logged only: the records are already updated.
func (s *DDNSService) record(ctx context.Context, changes []domain.RecordChange) {
	if s.changes != nil {
		if err := s.changes.SaveChanges(ctx, changes); err != nil {
			s.logger.Error("failed to save record changes", "error", err)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishChanges(ctx, changes); err != nil {
			s.logger.Error("failed to publish record changes", "error", err)
		}
	}
}
