package server

import (
	"net/http"
	"strings"
)

// Cache-Control values by route class.
const (
	StaticCache  = "public, max-age=2592000, immutable"
	DynamicCache = "no-cache"
	PageCache    = "public, max-age=300"
)

// CacheControl sets Cache-Control by path: long-lived for /static,
// no-cache for the JSON and UI endpoints, and five minutes for HTML
// pages. Handlers that set the header themselves win.
func CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/static/"):
			w.Header().Set("Cache-Control", StaticCache)
		case strings.HasPrefix(r.URL.Path, "/api/"), strings.HasPrefix(r.URL.Path, "/ui/"):
			w.Header().Set("Cache-Control", DynamicCache)
		default:
			w = &pageCacheWriter{ResponseWriter: w}
		}
		next.ServeHTTP(w, r)
	})
}

// pageCacheWriter adds PageCache to HTML responses as headers are sent.
type pageCacheWriter struct {
	http.ResponseWriter
	wrote bool
}

func (p *pageCacheWriter) WriteHeader(code int) {
	if !p.wrote {
		p.wrote = true
		h := p.Header()
		if h.Get("Cache-Control") == "" && code < 400 && strings.Contains(h.Get("Content-Type"), "text/html") {
			h.Set("Cache-Control", PageCache)
		}
	}
	p.ResponseWriter.WriteHeader(code)
}

func (p *pageCacheWriter) Write(b []byte) (int, error) {
	if !p.wrote {
		if p.Header().Get("Content-Type") == "" {
			p.Header().Set("Content-Type", http.DetectContentType(b))
		}
		p.WriteHeader(http.StatusOK)
	}
	return p.ResponseWriter.Write(b)
}

func (p *pageCacheWriter) Flush() {
	if f, ok := p.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (p *pageCacheWriter) Unwrap() http.ResponseWriter { return p.ResponseWriter }
