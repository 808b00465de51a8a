// ABOUTME: Contact submission resource: admin list/delete and public send
// ABOUTME: Delete requires the backend's 204 to count as success

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ContactSubmission is a message sent through the public contact form.
// From the admin console's perspective the resource is read/delete only.
type ContactSubmission struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// Key implements store.Entity.
func (s ContactSubmission) Key() string { return string(s.ID) }

// ContactMessage is the public contact form payload.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ListContacts calls GET /contact. Returns ErrUnauthorized-wrapped errors
// on 401 so callers can show a retryable message without dropping the
// session.
func (c *Client) ListContacts(ctx context.Context) ([]ContactSubmission, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/contact", nil, true)
	if err != nil {
		return nil, err
	}
	var subs []ContactSubmission
	if err := c.doJSON(ctx, req, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// DeleteContact calls DELETE /contact/:id. The backend answers 204 on
// success; anything else is a failure.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/contact/"+id, nil, true)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return c.handleErrorResponse(resp)
	}
	return nil
}

// SendContact calls POST /contact, the public site's contact form. No
// bearer credential is sent.
func (c *Client) SendContact(ctx context.Context, msg ContactMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal contact message: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/contact", bytes.NewReader(body), false)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(ctx, req, nil)
}
