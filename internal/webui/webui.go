// Package webui serves the embedded single-page chat interface.
package webui

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed index.html
var indexHTML []byte

// RegisterRoutes mounts the chat page and the markdown render endpoint.
func RegisterRoutes(r chi.Router, renderer *Renderer) {
	r.Get("/", handleIndex())
	r.Post("/api/render", handleRender(renderer))
}

func handleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	}
}

type renderRequest struct {
	Markdown string `json:"markdown"`
}

type renderResponse struct {
	HTML string `json:"html"`
}

func handleRender(renderer *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req renderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Markdown == "" {
			http.Error(w, `{"error":"markdown is required"}`, http.StatusBadRequest)
			return
		}

		html, err := renderer.RenderHTML(req.Markdown)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(renderResponse{HTML: html})
	}
}
