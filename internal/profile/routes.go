package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the profile link API routes. Reads are public;
// writes require the caller's user_id to match the page owner.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/profile-links/{username}", func(r chi.Router) {
		r.Get("/", handleList(store))
		r.Post("/", handleAdd(store))
		r.Put("/{id}", handleUpdate(store))
		r.Delete("/{id}", handleRemove(store))
	})
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := store.List(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if links == nil {
			links = []Link{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(links)
	}
}

type linkRequest struct {
	UserID   string `json:"user_id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Position int    `json:"position,omitempty"`
}

func handleAdd(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req linkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Title == "" || req.URL == "" {
			http.Error(w, `{"error":"title and url are required"}`, http.StatusBadRequest)
			return
		}
		if req.UserID != chi.URLParam(r, "username") {
			http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
			return
		}

		link, err := store.Add(r.Context(), req.UserID, req.Title, req.URL, req.Position)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(link)
	}
}

func handleUpdate(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req linkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.UserID != chi.URLParam(r, "username") {
			http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
			return
		}

		link, err := store.Update(r.Context(), req.UserID, chi.URLParam(r, "id"), req.Title, req.URL, req.Position)
		switch {
		case errors.Is(err, ErrNotFound):
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		case errors.Is(err, ErrForbidden):
			http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
			return
		case err != nil:
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(link)
	}
}

func handleRemove(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID := r.URL.Query().Get("user_id")
		if callerID == "" {
			http.Error(w, `{"error":"user_id is required"}`, http.StatusBadRequest)
			return
		}
		if callerID != chi.URLParam(r, "username") {
			http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
			return
		}

		err := store.Remove(r.Context(), callerID, chi.URLParam(r, "id"))
		switch {
		case errors.Is(err, ErrNotFound):
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		case errors.Is(err, ErrForbidden):
			http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
			return
		case err != nil:
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
