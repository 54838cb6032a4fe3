package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"homescripts/internal/domain"
)

// ArticleStore is a catalog of archived articles. The filesystem stays the
// source of truth for what has been archived.
type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// Save records an archived article. A second save of the same news id is a
// no-op.
func (s *ArticleStore) Save(ctx context.Context, article *domain.ArchivedArticle) error {
	query := `
		INSERT INTO archived_articles (
			news_id, title, prearranged_time, dir, html_path,
			image_file, audio_file, archived_at
		) VALUES (
			:news_id, :title, :prearranged_time, :dir, :html_path,
			:image_file, :audio_file, :archived_at
		)
		ON CONFLICT (news_id) DO NOTHING`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, article)
	return err
}
