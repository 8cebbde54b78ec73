// Package blog serves Markdown posts from a directory.
package blog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrNotFound is returned for posts that do not exist.
	ErrNotFound = errors.New("blog post not found")
	// ErrInvalidPath is returned for names resolving outside the blogs dir.
	ErrInvalidPath = errors.New("invalid blog path")
)

// Post is a listing entry.
type Post struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
}

// Rendered is a post converted to HTML.
type Rendered struct {
	Filename string
	Title    string
	HTML     string
}

// Index lists and renders the posts in Dir. The listing is cached until
// Invalidate is called.
type Index struct {
	Dir string

	md goldmark.Markdown

	mu     sync.RWMutex
	posts  []Post
	cached bool
}

// NewIndex creates an index over dir.
func NewIndex(dir string) *Index {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Index{Dir: dir, md: md}
}

// Invalidate drops the cached listing.
func (x *Index) Invalidate() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.posts = nil
	x.cached = false
}

// List returns every post sorted case-insensitively by title. A missing
// directory yields an empty list.
func (x *Index) List() ([]Post, error) {
	x.mu.RLock()
	if x.cached {
		posts := x.posts
		x.mu.RUnlock()
		return posts, nil
	}
	x.mu.RUnlock()

	posts, err := x.scan()
	if err != nil {
		return nil, err
	}

	x.mu.Lock()
	x.posts = posts
	x.cached = true
	x.mu.Unlock()
	return posts, nil
}

func (x *Index) scan() ([]Post, error) {
	entries, err := os.ReadDir(x.Dir)
	if errors.Is(err, os.ErrNotExist) {
		return []Post{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading blogs dir: %w", err)
	}

	posts := []Post{}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(x.Dir, e.Name()))
		if err != nil {
			continue
		}
		title := extractTitle(string(content))
		if title == "" {
			title = fallbackTitle(e.Name())
		}
		posts = append(posts, Post{Filename: e.Name(), Title: title})
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return strings.ToLower(posts[i].Title) < strings.ToLower(posts[j].Title)
	})
	return posts, nil
}

// Render converts one post to HTML. The title falls back to the file name.
func (x *Index) Render(name string) (*Rendered, error) {
	path, err := x.resolve(name)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := x.md.Convert(content, &buf); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}

	title := extractTitle(string(content))
	if title == "" {
		title = name
	}
	return &Rendered{Filename: name, Title: title, HTML: buf.String()}, nil
}

func (x *Index) resolve(name string) (string, error) {
	base, err := filepath.Abs(x.Dir)
	if err != nil {
		return "", fmt.Errorf("resolving blogs dir: %w", err)
	}
	path := filepath.Clean(filepath.Join(base, filepath.FromSlash(name)))
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: %w", name, ErrInvalidPath)
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return path, nil
}

// extractTitle returns the text of the first line starting with '#'.
func extractTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}

func fallbackTitle(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	return cases.Title(language.English).String(strings.ReplaceAll(stem, "_", " "))
}
