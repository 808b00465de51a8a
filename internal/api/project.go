// ABOUTME: Portfolio project resource: types and CRUD calls
// ABOUTME: Create and update send multipart bodies so new images can be attached

package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
)

// Project is a portfolio entry as returned by the backend.
type Project struct {
	ID          ID         `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TechStack   StringList `json:"tech_stack"`
	RepoURL     string     `json:"repo_url"`
	LiveURL     string     `json:"live_url"`
	ImageURLs   StringList `json:"image_urls"`
	Category    string     `json:"category"`
	Date        string     `json:"date"`
	CreatedAt   string     `json:"created_at"`
}

// Key implements store.Entity.
func (p Project) Key() string { return string(p.ID) }

// ProjectDraft is the editable payload for create and update. Images is
// the full ordered list the project should end up with.
type ProjectDraft struct {
	Title       string
	Description string
	TechStack   []string
	RepoURL     string
	LiveURL     string
	Images      []ImageRef
}

// encodeForm serializes the draft into a multipart body.
func (d ProjectDraft) encodeForm() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := map[string]string{
		"title":       d.Title,
		"description": d.Description,
		"repo_url":    d.RepoURL,
		"live_url":    d.LiveURL,
		"tech_stack":  StringList(d.TechStack).Join(),
	}
	for _, name := range []string{"title", "description", "repo_url", "live_url", "tech_stack"} {
		if err := w.WriteField(name, fields[name]); err != nil {
			return nil, "", err
		}
	}
	if err := writeImages(w, d.Images); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// ListProjects calls GET /portfolio.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/portfolio", nil, true)
	if err != nil {
		return nil, err
	}
	var projects []Project
	if err := c.doJSON(ctx, req, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject calls POST /portfolio with a multipart body. The returned
// project is the server's, authoritative for the assigned id and any
// server-computed fields.
func (c *Client) CreateProject(ctx context.Context, draft ProjectDraft) (*Project, error) {
	body, contentType, err := draft.encodeForm()
	if err != nil {
		return nil, fmt.Errorf("failed to build project form: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/portfolio", body, true)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	var created Project
	if err := c.doJSON(ctx, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProject calls PUT /portfolio/:id, replacing all editable fields.
func (c *Client) UpdateProject(ctx context.Context, id string, draft ProjectDraft) (*Project, error) {
	body, contentType, err := draft.encodeForm()
	if err != nil {
		return nil, fmt.Errorf("failed to build project form: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPut, "/portfolio/"+id, body, true)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	var updated Project
	if err := c.doJSON(ctx, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProject calls DELETE /portfolio/:id.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/portfolio/"+id, nil, true)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, req, nil)
}
