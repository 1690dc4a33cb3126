package wishlist

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the wishlist API routes.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/wishlist", func(r chi.Router) {
		r.Get("/", handleList(store))
		r.Post("/", handleAdd(store))
		r.Delete("/{id}", handleRemove(store))
	})
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			http.Error(w, `{"error":"user_id is required"}`, http.StatusBadRequest)
			return
		}

		items, err := store.List(r.Context(), userID)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if items == nil {
			items = []Item{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
	}
}

type addRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
}

func handleAdd(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.UserID == "" || req.ProductID == "" {
			http.Error(w, `{"error":"user_id and product_id are required"}`, http.StatusBadRequest)
			return
		}

		item, err := store.Add(r.Context(), req.UserID, req.ProductID)
		switch {
		case errors.Is(err, ErrDuplicate):
			http.Error(w, `{"error":"already wishlisted"}`, http.StatusConflict)
			return
		case errors.Is(err, ErrUnknownProduct):
			http.Error(w, `{"error":"unknown product"}`, http.StatusNotFound)
			return
		case err != nil:
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(item)
	}
}

func handleRemove(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			http.Error(w, `{"error":"user_id is required"}`, http.StatusBadRequest)
			return
		}

		removed, err := store.Remove(r.Context(), userID, chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if !removed {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
