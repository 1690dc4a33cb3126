package affiliate

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the affiliate API routes.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/affiliate", func(r chi.Router) {
		r.Get("/click", handleClick(store))
		r.Get("/stats", handleStats(store))
	})
}

func handleClick(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := r.URL.Query().Get("productId")
		if productID == "" {
			http.Error(w, `{"error":"productId is required"}`, http.StatusBadRequest)
			return
		}

		targetURL, platform, err := store.Resolve(r.Context(), productID, r.URL.Query().Get("platform"))
		if errors.Is(err, ErrNoTarget) {
			http.Error(w, `{"error":"no outbound link for product"}`, http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		click, err := store.RecordClick(r.Context(), r.URL.Query().Get("user_id"), productID, platform, targetURL)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, click.TargetURL, http.StatusFound)
	}
}

func handleStats(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := store.Stats(r.Context())
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if stats == nil {
			stats = []PlatformStat{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}
