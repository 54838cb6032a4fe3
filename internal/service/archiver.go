package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"homescripts/internal/archive"
	"homescripts/internal/domain"
)

// Archiver mirrors new feed articles into a local archive.
type Archiver struct {
	source    FeedSource
	store     *archive.Store
	remuxer   Remuxer
	catalog   ArticleStore
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewArchiver wires the archiver. catalog and publisher may be nil.
func NewArchiver(
	source FeedSource,
	store *archive.Store,
	remuxer Remuxer,
	catalog ArticleStore,
	publisher Publisher,
	logger *slog.Logger,
) *Archiver {
	return &Archiver{
		source:    source,
		store:     store,
		remuxer:   remuxer,
		catalog:   catalog,
		publisher: publisher,
		logger:    logger.With("source", source.ID()),
		now:       time.Now,
	}
}

// Run archives every listed article not yet on disk. The first error aborts
// the run and leaves any partially written folder in place.
func (a *Archiver) Run(ctx context.Context) (*domain.ArchiveStats, error) {
	startTime := time.Now()
	a.logger.Info("starting archive run",
		"source_name", a.source.Name(),
		"out_dir", a.store.Root(),
	)

	metas, err := a.source.FetchFeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	stats := &domain.ArchiveStats{Listed: len(metas)}

	for _, meta := range metas {
		exists, err := a.store.Exists(meta)
		if err != nil {
			return stats, err
		}
		if exists {
			a.logger.Debug("already archived", "news_id", meta.NewsID)
			stats.Skipped++
			continue
		}

		article, err := a.archive(ctx, meta)
		if err != nil {
			return stats, fmt.Errorf("archive %s: %w", meta.NewsID, err)
		}
		stats.Archived++

		if a.catalog != nil {
			if err := a.catalog.Save(ctx, article); err != nil {
				return stats, fmt.Errorf("catalog %s: %w", meta.NewsID, err)
			}
		}
		if a.publisher != nil {
			if err := a.publisher.PublishArticle(ctx, article); err != nil {
				return stats, fmt.Errorf("publish %s: %w", meta.NewsID, err)
			}
		}
	}

	stats.Duration = time.Since(startTime)

	a.logger.Info("archive run completed",
		"listed", stats.Listed,
		"archived", stats.Archived,
		"skipped", stats.Skipped,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (a *Archiver) archive(ctx context.Context, meta domain.ArticleMeta) (*domain.ArchivedArticle, error) {
	a.logger.Info("archiving article",
		"news_id", meta.NewsID,
		"title", meta.Title,
		"category", meta.Category,
	)

	dir, err := a.store.Prepare(meta)
	if err != nil {
		return nil, err
	}

	page, err := a.source.FetchPage(ctx, meta)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}

	data := archive.PageData{Page: *page}

	if src := a.source.AudioURL(meta); src != "" {
		if err := a.remuxer.Remux(ctx, src, filepath.Join(dir, meta.EasyVoiceURI)); err != nil {
			return nil, fmt.Errorf("fetch audio: %w", err)
		}
		data.AudioFile = meta.EasyVoiceURI
	}

	if src := a.source.ImageURL(meta); src != "" {
		name := archive.ImageFile(meta)
		if err := a.source.Download(ctx, src, filepath.Join(dir, name)); err != nil {
			return nil, fmt.Errorf("fetch image: %w", err)
		}
		data.ImageFile = name
	}

	path, err := a.store.WritePage(meta, data)
	if err != nil {
		return nil, err
	}

	return &domain.ArchivedArticle{
		NewsID:          meta.NewsID,
		Title:           meta.Title,
		PrearrangedTime: meta.PrearrangedTime,
		Dir:             dir,
		HTMLPath:        path,
		ImageFile:       data.ImageFile,
		AudioFile:       data.AudioFile,
		ArchivedAt:      a.now(),
	}, nil
}
