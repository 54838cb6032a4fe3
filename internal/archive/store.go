// Package archive lays out archived articles on disk.
//
// Each article lives in its own folder named {time}_{id}_{title}. The HTML
// file inside it is the only signal that an article has been archived. A
// folder left without it by an interrupted run is neither detected nor
// repaired: archiving that article fails until the folder is removed.
package archive

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"homescripts/internal/domain"
)

// Store is an append-only archive rooted at a directory.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) Root() string {
	return s.root
}

// FolderName derives the folder of an article from its publish time, id and
// title. Colons in the time become dashes and spaces become underscores.
func FolderName(meta domain.ArticleMeta) string {
	t := strings.ReplaceAll(meta.PrearrangedTime, ":", "-")
	name := strings.Join([]string{t, meta.NewsID, meta.Title}, "_")
	return strings.ReplaceAll(name, " ", "_")
}

func (s *Store) Dir(meta domain.ArticleMeta) string {
	return filepath.Join(s.root, FolderName(meta))
}

func (s *Store) HTMLPath(meta domain.ArticleMeta) string {
	return filepath.Join(s.Dir(meta), strings.ReplaceAll(meta.NewsID, " ", "_")+".html")
}

// ImageFile is the name of the lead image relative to the article folder.
func ImageFile(meta domain.ArticleMeta) string {
	return meta.NewsID + ".jpg"
}

// Exists reports whether the article's HTML file is already on disk.
func (s *Store) Exists(meta domain.ArticleMeta) (bool, error) {
	_, err := os.Stat(s.HTMLPath(meta))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", s.HTMLPath(meta), err)
}

// Prepare creates the article folder. A folder that already exists is an
// error wrapping fs.ErrExist; it is never reused.
func (s *Store) Prepare(meta domain.ArticleMeta) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("create archive root: %w", err)
	}
	dir := s.Dir(meta)
	if err := os.Mkdir(dir, 0o755); err != nil {
		return "", fmt.Errorf("create article dir: %w", err)
	}
	return dir, nil
}

// PageData is what gets rendered into an archived article page.
type PageData struct {
	Page      domain.Page
	ImageFile string
	AudioFile string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang='ja'>
<head><meta charset='utf-8'></head>
<style>p { font-size: 100%; line-height: 3.2; padding-bottom: 20px; }</style>
<body>
{{.Title}}
{{- if .ImageFile}}
<img src='{{.ImageFile}}'><br>
{{- end}}
{{- if .AudioFile}}
<audio controls><source src='{{.AudioFile}}' type='audio/mpeg'></audio>
{{- end}}
{{.Body}}
</body>
</html>
`))

type pageView struct {
	Title     template.HTML
	Body      template.HTML
	ImageFile string
	AudioFile string
}

// WritePage renders the article page to its HTML path.
func (s *Store) WritePage(meta domain.ArticleMeta, data PageData) (string, error) {
	path := s.HTMLPath(meta)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create page: %w", err)
	}

	err = pageTemplate.Execute(f, pageView{
		Title:     template.HTML(data.Page.Title),
		Body:      template.HTML(data.Page.Body),
		ImageFile: data.ImageFile,
		AudioFile: data.AudioFile,
	})
	if err != nil {
		f.Close()
		return "", fmt.Errorf("render page: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close page: %w", err)
	}
	return path, nil
}
