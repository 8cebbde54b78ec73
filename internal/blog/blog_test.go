package blog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func setupBlogDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "zeta.md", "# alpha post\n\nBody.")
	writeFile(t, dir, "my_first_post.md", "No heading here.")
	writeFile(t, dir, "code.md", "Intro\n\n## Go Tips\n\n```go\nfmt.Println(1)\n```\n")
	writeFile(t, dir, "notes.txt", "# ignored")
	return dir
}

func TestListTitlesAndOrder(t *testing.T) {
	idx := NewIndex(setupBlogDir(t))
	posts, err := idx.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []Post{
		{Filename: "zeta.md", Title: "alpha post"},
		{Filename: "code.md", Title: "Go Tips"},
		{Filename: "my_first_post.md", Title: "My First Post"},
	}
	if len(posts) != len(want) {
		t.Fatalf("got %d posts, want %d: %+v", len(posts), len(want), posts)
	}
	for i := range want {
		if posts[i] != want[i] {
			t.Errorf("post %d = %+v, want %+v", i, posts[i], want[i])
		}
	}
}

func TestListMissingDir(t *testing.T) {
	idx := NewIndex(filepath.Join(t.TempDir(), "nope"))
	posts, err := idx.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("expected no posts, got %d", len(posts))
	}
}

func TestListCachedUntilInvalidated(t *testing.T) {
	dir := setupBlogDir(t)
	idx := NewIndex(dir)
	first, _ := idx.List()

	writeFile(t, dir, "new.md", "# Brand New")
	cached, _ := idx.List()
	if len(cached) != len(first) {
		t.Errorf("expected cached listing, got %d posts", len(cached))
	}

	idx.Invalidate()
	fresh, _ := idx.List()
	if len(fresh) != len(first)+1 {
		t.Errorf("expected %d posts after invalidate, got %d", len(first)+1, len(fresh))
	}
}

func TestRender(t *testing.T) {
	idx := NewIndex(setupBlogDir(t))
	post, err := idx.Render("code.md")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if post.Title != "Go Tips" {
		t.Errorf("title = %q", post.Title)
	}
	if !strings.Contains(post.HTML, `<h2 id="go-tips">`) {
		t.Errorf("expected heading id in html: %s", post.HTML)
	}

	untitled, err := idx.Render("my_first_post.md")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if untitled.Title != "my_first_post.md" {
		t.Errorf("fallback title = %q", untitled.Title)
	}
}

func TestRenderErrors(t *testing.T) {
	idx := NewIndex(setupBlogDir(t))
	if _, err := idx.Render("../secret.md"); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("traversal: got %v", err)
	}
	if _, err := idx.Render("missing.md"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing: got %v", err)
	}
}

func TestRoutes(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, NewIndex(setupBlogDir(t)))

	tests := []struct {
		path string
		code int
	}{
		{"/api/blogs", http.StatusOK},
		{"/api/blogs/zeta.md", http.StatusOK},
		{"/api/blogs/missing.md", http.StatusNotFound},
		{"/api/blogs/../../etc/passwd", http.StatusBadRequest},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", tt.path, nil))
		if w.Code != tt.code {
			t.Errorf("%s: got %d, want %d", tt.path, w.Code, tt.code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/blogs", nil))
	var body struct {
		Success bool   `json:"success"`
		Posts   []Post `json:"posts"`
		Count   int    `json:"count"`
	}
	json.NewDecoder(w.Body).Decode(&body)
	if !body.Success || body.Count != 3 || len(body.Posts) != 3 {
		t.Errorf("unexpected listing: %+v", body)
	}
}

func TestWatchInvalidates(t *testing.T) {
	dir := setupBlogDir(t)
	idx := NewIndex(dir)
	if _, err := idx.List(); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- idx.Watch(ctx, nil) }()
	defer func() {
		cancel()
		<-done
	}()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		writeFile(t, dir, "later.md", "# Later")
		time.Sleep(50 * time.Millisecond)
		posts, _ := idx.List()
		if len(posts) == 4 {
			return
		}
	}
	t.Fatal("watcher never invalidated the listing")
}
