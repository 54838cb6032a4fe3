package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"homescripts/internal/domain"
)

type IPResolver interface {
	Resolve(ctx context.Context) (string, error)
}

type RecordProvider interface {
	ListRecords(ctx context.Context, domainName string) ([]domain.Record, error)
	UpdateRecord(ctx context.Context, domainName string, record domain.Record) error
}

type Notifier interface {
	Send(ctx context.Context, body string) bool
}

type ChangeStore interface {
	SaveChanges(ctx context.Context, changes []domain.RecordChange) error
}

type FeedSource interface {
	ID() string
	Name() string
	FetchFeed(ctx context.Context) ([]domain.ArticleMeta, error)
	FetchPage(ctx context.Context, meta domain.ArticleMeta) (*domain.Page, error)
	ImageURL(meta domain.ArticleMeta) string
	AudioURL(meta domain.ArticleMeta) string
	Download(ctx context.Context, url, dst string) error
}

type Remuxer interface {
	Remux(ctx context.Context, src, dst string) error
}

type ArticleStore interface {
	Save(ctx context.Context, article *domain.ArchivedArticle) error
}

type Publisher interface {
	PublishArticle(ctx context.Context, article *domain.ArchivedArticle) error
	PublishChanges(ctx context.Context, changes []domain.RecordChange) error
	Close() error
}
