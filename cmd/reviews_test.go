// ABOUTME: Tests for the reviews command group
// ABOUTME: Covers rating validation and the public submit path

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestRunReviewsSubmitValidation(t *testing.T) {
	prevName, prevEmail, prevFeedback, prevRating := reviewName, reviewEmail, reviewFeedback, reviewRating
	defer func() {
		reviewName, reviewEmail, reviewFeedback, reviewRating = prevName, prevEmail, prevFeedback, prevRating
	}()

	reviewName, reviewEmail, reviewFeedback = "", "", ""
	var buf bytes.Buffer
	if code := runReviewsSubmit(context.Background(), &buf); code != 2 {
		t.Errorf("expected exit 2 for missing fields, got %d", code)
	}

	reviewName, reviewEmail, reviewFeedback = "Dana", "dana@example.com", "Great"
	reviewRating = 0
	buf.Reset()
	if code := runReviewsSubmit(context.Background(), &buf); code != 2 {
		t.Errorf("expected exit 2 for unset rating, got %d", code)
	}
	if !strings.Contains(buf.String(), "--rating must be between 1 and 5") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestRunReviewsSubmit(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	withStubAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/reviews" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		w.Write([]byte(`{"id":"r1","rating":5}`))
	})

	reviewName, reviewEmail, reviewFeedback, reviewRating = "Dana", "dana@example.com", "Great", 5
	defer func() {
		reviewName, reviewEmail, reviewFeedback, reviewRating = "", "", "", 0
	}()

	var buf bytes.Buffer
	if code := runReviewsSubmit(context.Background(), &buf); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, buf.String())
	}
	if gotAuth != "" {
		t.Errorf("public submit must not send credentials, got %q", gotAuth)
	}
	if gotBody["rating"] != float64(5) {
		t.Errorf("unexpected payload: %v", gotBody)
	}
	if !strings.Contains(buf.String(), "Review submitted!") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestRunReviewsList(t *testing.T) {
	withStubAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"r1","name":"Dana","rating":5,"message":"Great"}]`))
	})

	var buf bytes.Buffer
	if code := runReviewsList(context.Background(), &buf); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Dana") || !strings.Contains(buf.String(), "5/5") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestRunReviewsDeleteRequiresYes(t *testing.T) {
	prev := reviewYes
	reviewYes = false
	defer func() { reviewYes = prev }()

	var buf bytes.Buffer
	if code := runReviewsDelete(context.Background(), &buf, "r1"); code != 2 {
		t.Errorf("expected exit 2 without --yes, got %d", code)
	}
}
