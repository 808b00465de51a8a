// ABOUTME: Tests for the review resource calls
// ABOUTME: Covers the feedback/message alias and the public submit payload

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReviewFeedbackAlias(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"feedback field", `{"id":"r1","feedback":"Great work"}`, "Great work"},
		{"message field", `{"id":"r1","message":"Solid team"}`, "Solid team"},
		{"feedback wins", `{"id":"r1","feedback":"Primary","message":"Ignored"}`, "Primary"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Review
			if err := json.Unmarshal([]byte(tt.json), &r); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Feedback != tt.want {
				t.Errorf("expected feedback %q, got %q", tt.want, r.Feedback)
			}
		})
	}
}

func TestSubmitReviewIsPublic(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/reviews" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		w.Write([]byte(`{"id":"r9","rating":5}`))
	}))
	defer server.Close()

	c := New(server.URL, StaticToken("tok"))
	created, err := c.SubmitReview(context.Background(), ReviewDraft{
		Name:     "Dana",
		Email:    "dana@example.com",
		Rating:   5,
		Feedback: "Excellent",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("public submit must not send credentials, got %q", gotAuth)
	}
	if gotBody["feedback"] != "Excellent" || gotBody["rating"] != float64(5) {
		t.Errorf("unexpected payload: %v", gotBody)
	}
	if created.ID != "r9" {
		t.Errorf("expected id r9, got %q", created.ID)
	}
}

func TestUpdateReviewSendsBearer(t *testing.T) {
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":"r2"}`))
	}))
	defer server.Close()

	c := New(server.URL, StaticToken("tok"))
	if _, err := c.UpdateReview(context.Background(), "r2", ReviewDraft{Rating: 4, Feedback: "ok"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("expected bearer credential, got %q", gotAuth)
	}
	if gotPath != "/reviews/r2" {
		t.Errorf("expected /reviews/r2, got %s", gotPath)
	}
}

func TestDeleteReview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/reviews/r5" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := New(server.URL, StaticToken("tok"))
	if err := c.DeleteReview(context.Background(), "r5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
