package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"homescripts/internal/domain"
	"homescripts/internal/service/mocks"
)

type DDNSServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	resolver  *mocks.MockIPResolver
	provider  *mocks.MockRecordProvider
	notifier  *mocks.MockNotifier
	changes   *mocks.MockChangeStore
	publisher *mocks.MockPublisher

	service *DDNSService
	now     time.Time
}

func (s *DDNSServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.resolver = mocks.NewMockIPResolver(s.ctrl)
	s.provider = mocks.NewMockRecordProvider(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)
	s.changes = mocks.NewMockChangeStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewDDNSService(
		"example.com",
		s.resolver,
		s.provider,
		s.notifier,
		s.changes,
		s.publisher,
		logger,
	)
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
}

func (s *DDNSServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDDNSServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DDNSServiceTestSuite))
}

func (s *DDNSServiceTestSuite) TestSync_AllMatching() {
	ctx := context.Background()

	s.resolver.EXPECT().Resolve(ctx).Return("1.2.3.4", nil)
	s.provider.EXPECT().ListRecords(ctx, "example.com").Return([]domain.Record{
		{ID: "1", RR: "@", Type: "A", TTL: 600, Value: "1.2.3.4"},
		{ID: "2", RR: "www", Type: "A", TTL: 600, Value: "1.2.3.4"},
	}, nil)

	report, err := s.service.Sync(ctx)

	s.Require().NoError(err)
	s.Equal(2, report.Checked)
	s.Empty(report.Changes)
	s.Equal("", report.Summary())
}

func (s *DDNSServiceTestSuite) TestSync_UpdatesOnlyMismatched() {
	ctx := context.Background()

	s.resolver.EXPECT().Resolve(ctx).Return("5.6.7.8", nil)
	s.provider.EXPECT().ListRecords(ctx, "example.com").Return([]domain.Record{
		{ID: "1", RR: "@", Type: "A", TTL: 600, Value: "1.2.3.4", Meta: map[string]string{"line": "default"}},
		{ID: "2", RR: "www", Type: "A", TTL: 600, Value: "5.6.7.8"},
	}, nil)
	s.provider.EXPECT().UpdateRecord(ctx, "example.com", domain.Record{
		ID: "1", RR: "@", Type: "A", TTL: 600, Value: "5.6.7.8", Meta: map[string]string{"line": "default"},
	}).Return(nil)

	report, err := s.service.Sync(ctx)

	s.Require().NoError(err)
	s.Require().Len(report.Changes, 1)
	s.Equal(domain.RecordChange{
		Domain:    "example.com",
		RecordID:  "1",
		RR:        "@",
		Type:      "A",
		OldValue:  "1.2.3.4",
		NewValue:  "5.6.7.8",
		ChangedAt: s.now,
	}, report.Changes[0])
	s.Equal("@.example.com 1.2.3.4 --> 5.6.7.8\n", report.Summary())
}

func (s *DDNSServiceTestSuite) TestSync_ResolveError() {
	ctx := context.Background()

	s.resolver.EXPECT().Resolve(ctx).Return("", errors.New("probe failed"))

	report, err := s.service.Sync(ctx)

	s.Error(err)
	s.Nil(report)
}

func (s *DDNSServiceTestSuite) TestSync_ListError() {
	ctx := context.Background()

	s.resolver.EXPECT().Resolve(ctx).Return("1.2.3.4", nil)
	s.provider.EXPECT().ListRecords(ctx, "example.com").Return(nil, errors.New("forbidden"))

	report, err := s.service.Sync(ctx)

	s.Error(err)
	s.Nil(report)
}

func (s *DDNSServiceTestSuite) TestSync_UpdateErrorStopsLoop() {
	ctx := context.Background()

	s.resolver.EXPECT().Resolve(ctx).Return("9.9.9.9", nil)
	s.provider.EXPECT().ListRecords(ctx, "example.com").Return([]domain.Record{
		{ID: "1", RR: "@", Type: "A", Value: "1.1.1.1"},
		{ID: "2", RR: "www", Type: "A", Value: "1.1.1.1"},
		{ID: "3", RR: "mail", Type: "A", Value: "1.1.1.1"},
	}, nil)
	gomock.InOrder(
		s.provider.EXPECT().UpdateRecord(ctx, "example.com", gomock.Any()).Return(nil),
		s.provider.EXPECT().UpdateRecord(ctx, "example.com", gomock.Any()).Return(errors.New("throttled")),
	)

	report, err := s.service.Sync(ctx)

	s.Require().Error(err)
	s.Contains(err.Error(), "update record 2")
	s.Require().NotNil(report)
	s.Len(report.Changes, 1)
}

func (s *DDNSServiceTestSuite) TestRun_NoChangeSendsNothing() {
	ctx := context.Background()

	s.resolver.EXPECT().Resolve(ctx).Return("1.2.3.4", nil)
	s.provider.EXPECT().ListRecords(ctx, "example.com").Return([]domain.Record{
		{ID: "1", RR: "@", Type: "A", Value: "1.2.3.4"},
	}, nil)
	s.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)
	s.changes.EXPECT().SaveChanges(gomock.Any(), gomock.Any()).Times(0)
	s.publisher.EXPECT().PublishChanges(gomock.Any(), gomock.Any()).Times(0)

	s.NoError(s.service.Run(ctx))
}

func (s *DDNSServiceTestSuite) TestRun_ChangeNotifiesOnce() {
	ctx := context.Background()

	s.resolver.EXPECT().Resolve(ctx).Return("5.6.7.8", nil)
	s.provider.EXPECT().ListRecords(ctx, "example.com").Return([]domain.Record{
		{ID: "1", RR: "@", Type: "A", Value: "1.2.3.4"},
		{ID: "2", RR: "www", Type: "A", Value: "1.2.3.4"},
	}, nil)
	s.provider.EXPECT().UpdateRecord(ctx, "example.com", gomock.Any()).Return(nil).Times(2)
	s.notifier.EXPECT().
		Send(ctx, "@.example.com 1.2.3.4 --> 5.6.7.8\nwww.example.com 1.2.3.4 --> 5.6.7.8\n").
		Return(true)
	s.changes.EXPECT().SaveChanges(ctx, gomock.Len(2)).Return(nil)
	s.publisher.EXPECT().PublishChanges(ctx, gomock.Len(2)).Return(nil)

	s.NoError(s.service.Run(ctx))
}

func (s *DDNSServiceTestSuite) TestRun_MailFailureIsNotFatal() {
	ctx := context.Background()

	s.resolver.EXPECT().Resolve(ctx).Return("5.6.7.8", nil)
	s.provider.EXPECT().ListRecords(ctx, "example.com").Return([]domain.Record{
		{ID: "1", RR: "@", Type: "A", Value: "1.2.3.4"},
	}, nil)
	s.provider.EXPECT().UpdateRecord(ctx, "example.com", gomock.Any()).Return(nil)
	s.notifier.EXPECT().Send(ctx, gomock.Any()).Return(false)
	s.changes.EXPECT().SaveChanges(ctx, gomock.Any()).Return(errors.New("db down"))
	s.publisher.EXPECT().PublishChanges(ctx, gomock.Any()).Return(nil)

	s.NoError(s.service.Run(ctx))
}

func (s *DDNSServiceTestSuite) TestRun_UpdateErrorSkipsMail() {
	ctx := context.Background()

	s.resolver.EXPECT().Resolve(ctx).Return("5.6.7.8", nil)
	s.provider.EXPECT().ListRecords(ctx, "example.com").Return([]domain.Record{
		{ID: "1", RR: "@", Type: "A", Value: "1.2.3.4"},
		{ID: "2", RR: "www", Type: "A", Value: "1.2.3.4"},
	}, nil)
	gomock.InOrder(
		s.provider.EXPECT().UpdateRecord(ctx, "example.com", gomock.Any()).Return(nil),
		s.provider.EXPECT().UpdateRecord(ctx, "example.com", gomock.Any()).Return(errors.New("denied")),
	)
	s.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)
	s.changes.EXPECT().SaveChanges(ctx, gomock.Len(1)).Return(nil)
	s.publisher.EXPECT().PublishChanges(ctx, gomock.Len(1)).Return(nil)

	s.Error(s.service.Run(ctx))
}

func (s *DDNSServiceTestSuite) TestRun_WithoutOptionalSinks() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := NewDDNSService("example.com", s.resolver, s.provider, s.notifier, nil, nil, logger)

	s.resolver.EXPECT().Resolve(ctx).Return("5.6.7.8", nil)
	s.provider.EXPECT().ListRecords(ctx, "example.com").Return([]domain.Record{
		{ID: "1", RR: "@", Type: "A", Value: "1.2.3.4"},
	}, nil)
	s.provider.EXPECT().UpdateRecord(ctx, "example.com", gomock.Any()).Return(nil)
	s.notifier.EXPECT().Send(ctx, "@.example.com 1.2.3.4 --> 5.6.7.8\n").Return(true)

	s.NoError(svc.Run(ctx))
}
