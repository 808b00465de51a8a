// ABOUTME: Tests for the project resource calls
// ABOUTME: Covers the multipart field split between hosted URLs and uploads

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestCreateProjectMultipart(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "shot.png")
	if err := os.WriteFile(imgPath, []byte("png-bytes"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/portfolio" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("failed to parse multipart form: %v", err)
		}

		if got := r.FormValue("title"); got != "Site Redesign" {
			t.Errorf("expected title Site Redesign, got %q", got)
		}
		if got := r.FormValue("tech_stack"); got != "Go,Redis" {
			t.Errorf("expected tech_stack Go,Redis, got %q", got)
		}

		urls := r.MultipartForm.Value["image_urls"]
		if len(urls) != 2 || urls[0] != "https://cdn.example.com/a.png" || urls[1] != "https://cdn.example.com/b.png" {
			t.Errorf("unexpected image_urls: %v", urls)
		}

		files := r.MultipartForm.File["images"]
		if len(files) != 1 {
			t.Fatalf("expected 1 file part, got %d", len(files))
		}
		if files[0].Filename != "shot.png" {
			t.Errorf("expected filename shot.png, got %q", files[0].Filename)
		}
		f, err := files[0].Open()
		if err != nil {
			t.Fatalf("failed to open file part: %v", err)
		}
		defer f.Close()
		content, _ := io.ReadAll(f)
		if string(content) != "png-bytes" {
			t.Errorf("file content mismatch: %q", content)
		}

		w.Write([]byte(`{"id":"p1","title":"Site Redesign"}`))
	}))
	defer server.Close()

	c := New(server.URL, StaticToken("tok"))
	created, err := c.CreateProject(context.Background(), ProjectDraft{
		Title:       "Site Redesign",
		Description: "Full rebuild",
		TechStack:   []string{"Go", "Redis"},
		Images: []ImageRef{
			ExistingImage("https://cdn.example.com/a.png"),
			ExistingImage("https://cdn.example.com/b.png"),
			PendingImage(imgPath),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "p1" {
		t.Errorf("expected id p1, got %q", created.ID)
	}
}

func TestCreateProjectMissingImageFile(t *testing.T) {
	c := New("http://127.0.0.1:1", nil)
	_, err := c.CreateProject(context.Background(), ProjectDraft{
		Title:       "x",
		Description: "y",
		Images:      []ImageRef{PendingImage("/does/not/exist.png")},
	})
	if err == nil {
		t.Fatal("expected error for missing image file, got nil")
	}
}

func TestUpdateProjectPath(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{"id":"p7"}`))
	}))
	defer server.Close()

	c := New(server.URL, StaticToken("tok"))
	if _, err := c.UpdateProject(context.Background(), "p7", ProjectDraft{Title: "t", Description: "d"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/portfolio/p7" {
		t.Errorf("expected PUT /portfolio/p7, got %s %s", gotMethod, gotPath)
	}
}

func TestListProjectsNormalizesLooseFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":7,"title":"Legacy","tech_stack":"Go, Postgres"}]`))
	}))
	defer server.Close()

	c := New(server.URL, nil)
	items, err := c.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 project, got %d", len(items))
	}
	if items[0].Key() != "7" {
		t.Errorf("expected key 7, got %q", items[0].Key())
	}
	if len(items[0].TechStack) != 2 || items[0].TechStack[1] != "Postgres" {
		t.Errorf("unexpected tech stack: %v", items[0].TechStack)
	}
}

func TestDeleteProject(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := New(server.URL, StaticToken("tok"))
	if err := c.DeleteProject(context.Background(), "p3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/portfolio/p3" {
		t.Errorf("expected DELETE /portfolio/p3, got %s %s", gotMethod, gotPath)
	}
}
