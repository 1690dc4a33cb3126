package feed

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the feed API routes.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", handleListPosts(store))
		r.Post("/", handleCreatePost(store))
		r.Get("/{id}", handleGetPost(store))
		r.Put("/{id}/publish", handlePublishPost(store))
		r.Delete("/{id}", handleDeletePost(store))
	})
}

func handleListPosts(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if l := r.URL.Query().Get("limit"); l != "" {
			if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
				limit = parsed
			}
		}
		publishedOnly := r.URL.Query().Get("drafts") != "true"

		posts, err := store.List(r.Context(), publishedOnly, limit)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if posts == nil {
			posts = []Post{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(posts)
	}
}

type postRequest struct {
	Author    string   `json:"author"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Tags      []string `json:"tags,omitempty"`
	Published bool     `json:"published,omitempty"`
}

func handleCreatePost(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req postRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Title == "" {
			http.Error(w, `{"error":"title is required"}`, http.StatusBadRequest)
			return
		}

		post, err := store.Create(r.Context(), req.Author, req.Title, req.Body, req.Tags, req.Published)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(post)
	}
}

func handleGetPost(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := store.Get(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, ErrNotFound) {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(post)
	}
}

type publishRequest struct {
	UserID    string `json:"user_id"`
	Published bool   `json:"published"`
}

func handlePublishPost(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req publishRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		post, err := store.Publish(r.Context(), req.UserID, chi.URLParam(r, "id"), req.Published)
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
		json.NewEncoder(w).Encode(post)
	}
}

func handleDeletePost(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID := r.URL.Query().Get("user_id")
		if callerID == "" {
			http.Error(w, `{"error":"user_id is required"}`, http.StatusBadRequest)
			return
		}

		err := store.Delete(r.Context(), callerID, chi.URLParam(r, "id"))
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
