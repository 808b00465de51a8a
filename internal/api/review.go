// ABOUTME: Client review resource: types and CRUD calls
// ABOUTME: Accepts the backend's feedback/message field aliasing on read

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Review is a client testimonial. Reads are public; edits and deletes
// require a bearer token.
type Review struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Rating    int    `json:"rating"`
	Feedback  string `json:"feedback"`
	Project   string `json:"project"`
	CreatedAt string `json:"created_at"`
}

// Key implements store.Entity.
func (r Review) Key() string { return string(r.ID) }

// UnmarshalJSON accepts the review text under either "feedback" or
// "message". The client always writes through "feedback".
func (r *Review) UnmarshalJSON(data []byte) error {
	type alias Review
	aux := struct {
		*alias
		Message string `json:"message"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.Feedback == "" {
		r.Feedback = aux.Message
	}
	return nil
}

// ReviewDraft is the editable payload for review submission and update.
type ReviewDraft struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
	Project  string `json:"project,omitempty"`
}

// ListReviews calls GET /reviews. The endpoint is publicly readable; the
// token is attached when present so admin sessions see the same view.
func (c *Client) ListReviews(ctx context.Context) ([]Review, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/reviews", nil, true)
	if err != nil {
		return nil, err
	}
	var reviews []Review
	if err := c.doJSON(ctx, req, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// SubmitReview calls POST /reviews, the public site's review form. No
// bearer credential is sent.
func (c *Client) SubmitReview(ctx context.Context, draft ReviewDraft) (*Review, error) {
	payload := map[string]any{
		"name":     draft.Name,
		"email":    draft.Email,
		"rating":   draft.Rating,
		"feedback": draft.Feedback,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal review: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/reviews", bytes.NewReader(body), false)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var created Review
	if err := c.doJSON(ctx, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateReview calls PUT /reviews/:id.
func (c *Client) UpdateReview(ctx context.Context, id string, draft ReviewDraft) (*Review, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal review: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPut, "/reviews/"+id, bytes.NewReader(body), true)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var updated Review
	if err := c.doJSON(ctx, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteReview calls DELETE /reviews/:id.
func (c *Client) DeleteReview(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/reviews/"+id, nil, true)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, req, nil)
}
