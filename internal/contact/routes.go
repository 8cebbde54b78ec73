package contact

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the contact API routes.
func RegisterRoutes(r chi.Router, store *Store, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	r.Post("/api/contact", handleSubmit(store, logger))
	r.Get("/admin/contacts", handleList(store))
}

func handleSubmit(store *Store, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f Form
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Message: MsgMissingFields})
			return
		}
		if !f.Complete() {
			writeJSON(w, http.StatusBadRequest, Result{Message: MsgMissingFields})
			return
		}

		sub, err := store.Save(r.Context(), f, r.RemoteAddr)
		if err != nil {
			logger.Error("saving contact submission", "error", err)
			writeJSON(w, http.StatusInternalServerError, Result{Message: MsgSaveFailed})
			return
		}

		logger.Info("contact message saved", "id", sub.Seq, "email", sub.Email, "subject", sub.Subject)
		writeJSON(w, http.StatusOK, Result{Success: true, Message: MsgSaved})
	}
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := store.List(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, Result{Message: "Error reading contacts: " + err.Error()})
			return
		}
		if subs == nil {
			subs = []Submission{}
		}
		writeJSON(w, http.StatusOK, Listing{Success: true, Submissions: subs, Count: len(subs)})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
