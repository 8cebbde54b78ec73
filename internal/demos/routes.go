package demos

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/folio-dev/folio/internal/cache"
)

const (
	moodTTL    = 10 * time.Minute
	predictTTL = 30 * time.Minute
)

// Service holds the demo caches and the predictor.
type Service struct {
	Moods       *cache.Cache[Mood]
	Predictions *cache.Cache[Prediction]

	predictor *Predictor
}

// NewService wires a service with fresh caches.
func NewService(predictor *Predictor, moods *cache.Cache[Mood], predictions *cache.Cache[Prediction]) *Service {
	return &Service{Moods: moods, Predictions: predictions, predictor: predictor}
}

// RegisterRoutes mounts the demo JSON APIs.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/api/mood-analysis", handleMood(svc))
	r.Post("/api/pass-predict", handlePredict(svc))
}

type failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func handleMood(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
			writeJSON(w, http.StatusBadRequest, failure{Message: "Please provide text for analysis"})
			return
		}

		key := cache.Key("mood_analysis", req.Text)
		if m, ok := svc.Moods.Get(key); ok {
			writeJSON(w, http.StatusOK, m)
			return
		}
		m := AnalyzeMood(req.Text)
		svc.Moods.Set(key, m, moodTTL)
		writeJSON(w, http.StatusOK, m)
	}
}

func handlePredict(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var s Student
		if err := json.NewDecoder(r.Body).Decode(&s); err != nil || !s.Complete() {
			writeJSON(w, http.StatusBadRequest, failure{Message: "Missing fields."})
			return
		}

		key := cache.Key("pass_prediction", s.Key())
		if p, ok := svc.Predictions.Get(key); ok {
			writeJSON(w, http.StatusOK, p)
			return
		}
		p := svc.predictor.Predict(s)
		svc.Predictions.Set(key, p, predictTTL)
		writeJSON(w, http.StatusOK, p)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
