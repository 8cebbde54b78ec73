package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/folio-dev/folio/internal/db"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return New(cfg, database, nil)
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0})

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0, AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestCacheControl(t *testing.T) {
	srv := newTestServer(t, Config{})
	r := srv.Router()
	r.Get("/static/*", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("body{}")) })
	r.Get("/api/thing", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("{}")) })
	r.Get("/page", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html></html>"))
	})
	r.Get("/sniffed", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("<!DOCTYPE html><html></html>")) })
	r.Get("/plain", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("hi"))
	})

	tests := []struct {
		path string
		want string
	}{
		{"/static/css/main.css", StaticCache},
		{"/api/thing", DynamicCache},
		{"/page", PageCache},
		{"/sniffed", PageCache},
		{"/plain", ""},
		{"/missing", ""},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", tt.path, nil))
		if got := w.Header().Get("Cache-Control"); got != tt.want {
			t.Errorf("%s: Cache-Control = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestAddr(t *testing.T) {
	srv := newTestServer(t, Config{Host: "127.0.0.1", Port: 5000})
	if srv.Addr() != "127.0.0.1:5000" {
		t.Errorf("Addr = %q", srv.Addr())
	}
}

func TestShutdownBeforeStart(t *testing.T) {
	srv := newTestServer(t, Config{Host: "127.0.0.1", Port: 0})
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := srv.Start(); err != nil {
		t.Errorf("Start after Shutdown = %v, want nil", err)
	}
}
