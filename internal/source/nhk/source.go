package nhk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"homescripts/internal/domain"
)

const (
	SourceID   = "nhk-easy"
	SourceName = "NHK NEWS WEB EASY"
)

// Config holds NHK source configuration. URL templates use {id} for the
// news id and {file} for a media file name.
type Config struct {
	FeedURL      string
	PageURL      string
	EasyImageURL string
	VoiceURL     string
	UserAgent    string
	Timeout      time.Duration
}

// Source implements the archiver's feed source for NHK Easy news.
type Source struct {
	httpClient *http.Client
	cfg        Config
	logger     *slog.Logger
}

// New creates a new NHK source. A zero Timeout leaves the client without one.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg:    cfg,
		logger: logger.With("source", SourceID),
	}
}

func (s *Source) ID() string {
	return SourceID
}

func (s *Source) Name() string {
	return SourceName
}

// FetchFeed downloads the article index and flattens every element of it.
// Categories are visited in key order; articles keep their feed order within
// a category.
func (s *Source) FetchFeed(ctx context.Context) ([]domain.ArticleMeta, error) {
	resp, err := s.get(ctx, s.cfg.FeedURL, "application/json")
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	// The feed is served with a UTF-8 byte order mark.
	body := transform.NewReader(resp.Body, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	var feed FeedResponse
	if err := json.NewDecoder(body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	var articles []domain.ArticleMeta
	for _, group := range feed {
		keys := make([]string, 0, len(group))
		for k := range group {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			for _, a := range group[k] {
				a.Category = k
				articles = append(articles, a)
			}
		}
	}

	s.logger.Debug("fetched feed", "articles", len(articles))
	return articles, nil
}

// FetchPage downloads the article page and extracts its title and body.
func (s *Source) FetchPage(ctx context.Context, meta domain.ArticleMeta) (*domain.Page, error) {
	pageURL := expand(s.cfg.PageURL, meta.NewsID, "")

	resp, err := s.get(ctx, pageURL, "text/html")
	if err != nil {
		return nil, fmt.Errorf("fetch page %s: %w", meta.NewsID, err)
	}
	defer resp.Body.Close()

	page, err := ExtractPage(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("extract page %s: %w", meta.NewsID, err)
	}
	return page, nil
}

// ExtractPage selects the title heading and article body from an article
// page. Links inside the body are replaced by their contents.
func ExtractPage(r io.Reader) (*domain.Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := doc.Find(titleSelector).First()
	if title.Length() == 0 {
		return nil, fmt.Errorf("title %q not found", titleSelector)
	}
	body := doc.Find(bodySelector).First()
	if body.Length() == 0 {
		return nil, fmt.Errorf("article body %q not found", bodySelector)
	}

	body.Find("a").Each(func(_ int, a *goquery.Selection) {
		a.ReplaceWithSelection(a.Contents())
	})

	titleHTML, err := goquery.OuterHtml(title)
	if err != nil {
		return nil, fmt.Errorf("render title: %w", err)
	}
	bodyHTML, err := goquery.OuterHtml(body)
	if err != nil {
		return nil, fmt.Errorf("render body: %w", err)
	}

	return &domain.Page{Title: titleHTML, Body: bodyHTML}, nil
}

// ImageURL returns the lead image to download, preferring the easy variant
// over the web one. It is empty when the article has no image.
func (s *Source) ImageURL(meta domain.ArticleMeta) string {
	switch {
	case meta.HasEasyImage:
		return expand(s.cfg.EasyImageURL, meta.NewsID, meta.EasyImageURI)
	case meta.HasWebImage:
		return meta.WebImageURI
	default:
		return ""
	}
}

// AudioURL returns the HLS playlist of the article's voice track.
func (s *Source) AudioURL(meta domain.ArticleMeta) string {
	if !meta.HasEasyVoice {
		return ""
	}
	return expand(s.cfg.VoiceURL, meta.NewsID, meta.EasyVoiceURI)
}

// Download streams url into the file dst.
func (s *Source) Download(ctx context.Context, url, dst string) error {
	resp, err := s.get(ctx, url, "")
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return f.Close()
}

func (s *Source) get(ctx context.Context, url, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if s.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", s.cfg.UserAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	return resp, nil
}

func expand(tmpl, id, file string) string {
	return strings.NewReplacer("{id}", id, "{file}", file).Replace(tmpl)
}
