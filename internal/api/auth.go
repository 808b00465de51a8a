// ABOUTME: Login call against the backend session endpoint
// ABOUTME: Grants a token only when the response carries a session object

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// loginResponse is the session envelope returned by POST /auth/login.
// The backend may answer 200 with an error payload instead of a session,
// so both branches are modeled.
type loginResponse struct {
	Session *struct {
		AccessToken string `json:"access_token"`
	} `json:"session"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Login authenticates against POST /auth/login and returns the access
// token. Authentication is granted only when the response is HTTP OK and
// the body contains a session with a non-empty access token; any other
// 200 shape is a credentials failure.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal credentials: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", bytes.NewReader(body), false)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	var payload loginResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&payload)

	if resp.StatusCode == http.StatusOK && decodeErr == nil &&
		payload.Session != nil && payload.Session.AccessToken != "" {
		return payload.Session.AccessToken, nil
	}

	message := "Invalid credentials"
	if decodeErr == nil && payload.Error != nil && payload.Error.Message != "" {
		message = payload.Error.Message
	}
	return "", &Error{StatusCode: resp.StatusCode, Message: message}
}
