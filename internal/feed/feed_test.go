package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/neon-ai/neon/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestCreateAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "neha", "Monsoon Looks", "Light fabrics win.", []string{"monsoon", "styling"}, true)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Monsoon Looks" || !got.Published {
		t.Errorf("post = %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "monsoon" {
		t.Errorf("tags round-trip = %v", got.Tags)
	}
}

func TestListFiltersDrafts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Create(ctx, "neha", "Published Post", "", nil, true)
	store.Create(ctx, "neha", "Draft Post", "", nil, false)

	published, err := store.List(ctx, true, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(published) != 1 || published[0].Title != "Published Post" {
		t.Errorf("published list = %+v", published)
	}

	all, err := store.List(ctx, false, 0)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 posts, got %d", len(all))
	}
}

func TestPublishOwnerCheck(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	draft, err := store.Create(ctx, "neha", "Draft", "", nil, false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := store.Publish(ctx, "mallory", draft.ID, true); err != ErrForbidden {
		t.Errorf("Publish by non-author = %v, want ErrForbidden", err)
	}

	post, err := store.Publish(ctx, "neha", draft.ID, true)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !post.Published {
		t.Error("post should be published")
	}
}

func TestDeleteOwnerCheck(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	post, err := store.Create(ctx, "neha", "Post", "", nil, true)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.Delete(ctx, "mallory", post.ID); err != ErrForbidden {
		t.Errorf("Delete by non-author = %v, want ErrForbidden", err)
	}
	if err := store.Delete(ctx, "neha", post.ID); err != nil {
		t.Errorf("Delete by author: %v", err)
	}
	if err := store.Delete(ctx, "neha", post.ID); err != ErrNotFound {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestRoutes(t *testing.T) {
	store := newTestStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store)

	// Create.
	body := `{"author":"neha","title":"Festive Edit","body":"Kurta sets all the way.","tags":["festive"],"published":true}`
	req := httptest.NewRequest("POST", "/api/posts/", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created Post
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal created: %v", err)
	}

	// Missing title.
	req = httptest.NewRequest("POST", "/api/posts/", strings.NewReader(`{"author":"neha"}`))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing title: expected 400, got %d", w.Code)
	}

	// List.
	req = httptest.NewRequest("GET", "/api/posts/", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var posts []Post
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}

	// Delete by non-author.
	req = httptest.NewRequest("DELETE", "/api/posts/"+created.ID+"?user_id=mallory", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("delete by non-author: expected 403, got %d", w.Code)
	}

	// Delete by author.
	req = httptest.NewRequest("DELETE", "/api/posts/"+created.ID+"?user_id=neha", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("delete: expected 204, got %d", w.Code)
	}
}
