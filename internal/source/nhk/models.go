package nhk

import "homescripts/internal/domain"

// FeedResponse is the news-list.json payload: a one-element array whose
// object maps a category key (the publication date) to its articles.
type FeedResponse []map[string][]domain.ArticleMeta

const (
	titleSelector = "h1.article-main__title"
	bodySelector  = "div#js-article-body"
)
