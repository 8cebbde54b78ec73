package blog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the blog JSON API.
func RegisterRoutes(r chi.Router, idx *Index) {
	r.Get("/api/blogs", handleList(idx))
	r.Get("/api/blogs/*", handlePost(idx))
}

func handleList(idx *Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := idx.List()
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{"success": true, "posts": posts, "count": len(posts)})
	}
}

func handlePost(idx *Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "*")
		post, err := idx.Render(name)
		switch {
		case errors.Is(err, ErrInvalidPath):
			http.Error(w, `{"error":"invalid blog path"}`, http.StatusBadRequest)
			return
		case errors.Is(err, ErrNotFound):
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		case err != nil:
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{
			"success":  true,
			"title":    post.Title,
			"html":     post.HTML,
			"filename": post.Filename,
		})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
