// ABOUTME: Tests for the projects screen model
// ABOUTME: Covers edit-buffer isolation, image tagging, and mutation handling

package projects

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/orincore/portfolio-admin/internal/api"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestClassifyImageEntry(t *testing.T) {
	tests := []struct {
		entry string
		want  api.ImageKind
	}{
		{"https://cdn.example.com/a.png", api.ImageExisting},
		{"http://cdn.example.com/b.png", api.ImageExisting},
		{"/home/admin/shot.png", api.ImagePending},
		{"shot.png", api.ImagePending},
	}
	for _, tt := range tests {
		got := classifyImageEntry(tt.entry)
		if got.Kind != tt.want {
			t.Errorf("classifyImageEntry(%q) kind = %v, want %v", tt.entry, got.Kind, tt.want)
		}
	}
}

func TestOpenEditCopiesEntity(t *testing.T) {
	m := New(nil)
	p := api.Project{
		ID:        "p1",
		Title:     "Site",
		TechStack: api.StringList{"Go", "Redis"},
		ImageURLs: api.StringList{"https://cdn.example.com/a.png"},
	}

	m.openEdit(p)

	if m.editingID != "p1" || m.title != "Site" {
		t.Errorf("unexpected buffer: id=%q title=%q", m.editingID, m.title)
	}
	if m.tech != "Go, Redis" {
		t.Errorf("expected display-joined tech, got %q", m.tech)
	}
	if len(m.images) != 1 || m.images[0].Kind != api.ImageExisting {
		t.Errorf("expected one existing image ref, got %v", m.images)
	}

	// Editing the buffer must not touch the entity.
	m.title = "changed"
	if p.Title != "Site" {
		t.Error("edit buffer leaked into the entity")
	}
}

func TestSavedMsgCreatePrepends(t *testing.T) {
	m := New(nil)
	m.list.Replace([]api.Project{{ID: "p1", Title: "Old"}})
	m.mode = modeImages
	m.submitting = true

	created := &api.Project{ID: "p2", Title: "New"}
	_, cmd := m.Update(savedMsg{project: created, created: true})

	items := m.list.Items()
	if len(items) != 2 || items[0].ID != "p2" {
		t.Errorf("expected new project first, got %v", items)
	}
	if m.mode != modeList {
		t.Error("expected return to list after save")
	}
	if m.submitting {
		t.Error("expected submitting to be reset")
	}
	if m.flash.Text() != "Project created!" {
		t.Errorf("unexpected flash: %q", m.flash.Text())
	}
	if cmd == nil {
		t.Error("expected a clear tick command")
	}
}

func TestSavedMsgUpdatePatchesInPlace(t *testing.T) {
	m := New(nil)
	m.list.Replace([]api.Project{{ID: "p1", Title: "Old"}, {ID: "p2", Title: "Other"}})
	m.submitting = true

	updated := &api.Project{ID: "p1", Title: "Renamed"}
	m.Update(savedMsg{project: updated})

	items := m.list.Items()
	if items[0].Title != "Renamed" {
		t.Errorf("expected in-place patch, got %v", items)
	}
	if len(items) != 2 {
		t.Errorf("patch must not change length, got %d", len(items))
	}
	if m.flash.Text() != "Project updated!" {
		t.Errorf("unexpected flash: %q", m.flash.Text())
	}
}

func TestSavedMsgErrorKeepsBuffer(t *testing.T) {
	m := New(nil)
	m.mode = modeImages
	m.title = "Draft"
	m.submitting = true

	m.Update(savedMsg{created: true, err: errors.New("boom")})

	if m.mode != modeImages {
		t.Error("failed save must keep the edit flow open")
	}
	if m.title != "Draft" {
		t.Error("failed save must keep the buffer")
	}
	if m.flash.Text() != "Failed to create project." {
		t.Errorf("unexpected flash: %q", m.flash.Text())
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	m := New(nil)
	m.list.Replace([]api.Project{{ID: "p1"}})
	m.loaded = true

	m.Update(keyMsg("d"))
	if m.mode != modeConfirmDelete || m.deleteID != "p1" {
		t.Fatalf("expected confirm mode for p1, got mode=%v id=%q", m.mode, m.deleteID)
	}

	// Declining returns to the list without a request.
	m.Update(keyMsg("n"))
	if m.mode != modeList || m.deleteID != "" {
		t.Error("expected cancel to clear the pending delete")
	}
	if m.list.Len() != 1 {
		t.Error("cancel must not remove anything")
	}
}

func TestDeletedMsgRemovesAndClampsCursor(t *testing.T) {
	m := New(nil)
	m.list.Replace([]api.Project{{ID: "p1"}, {ID: "p2"}})
	m.cursor = 1
	m.mode = modeConfirmDelete
	m.deleteID = "p2"
	m.deleting = true

	m.Update(deletedMsg{id: "p2"})

	if m.list.Len() != 1 {
		t.Errorf("expected 1 project left, got %d", m.list.Len())
	}
	if m.cursor != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", m.cursor)
	}
	if m.mode != modeList {
		t.Error("expected return to list")
	}
	if m.flash.Text() != "Project deleted." {
		t.Errorf("unexpected flash: %q", m.flash.Text())
	}
}

func TestDeletedMsgErrorKeepsConfirmOpen(t *testing.T) {
	m := New(nil)
	m.list.Replace([]api.Project{{ID: "p1"}})
	m.mode = modeConfirmDelete
	m.deleteID = "p1"
	m.deleting = true

	m.Update(deletedMsg{id: "p1", err: errors.New("boom")})

	if m.mode != modeConfirmDelete {
		t.Error("failed delete must keep the confirmation open")
	}
	if m.list.Len() != 1 {
		t.Error("failed delete must not remove the entity")
	}
}

func TestSubmitRequiresTitleAndDescription(t *testing.T) {
	m := New(nil)
	m.mode = modeImages
	m.description = "only description"

	cmd := m.submit()
	if m.submitting {
		t.Error("invalid draft must not start a request")
	}
	if cmd == nil {
		t.Fatal("expected an error flash command")
	}
	if m.flash.Text() != "Title and description are required." {
		t.Errorf("unexpected flash: %q", m.flash.Text())
	}
}

func TestImageStagingKeys(t *testing.T) {
	m := New(nil)
	m.mode = modeImages
	m.images = []api.ImageRef{
		api.ExistingImage("https://cdn.example.com/a.png"),
		api.ExistingImage("https://cdn.example.com/b.png"),
	}
	m.imgCursor = 1

	m.Update(keyMsg("x"))
	if len(m.images) != 1 {
		t.Fatalf("expected 1 image after removal, got %d", len(m.images))
	}
	if m.imgCursor != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", m.imgCursor)
	}

	// "a" opens the entry input; enter commits a typed path.
	m.Update(keyMsg("a"))
	if !m.imgAdding {
		t.Fatal("expected entry input to open")
	}
	m.imgInput.SetValue("/tmp/new.png")
	m.Update(keyMsg("enter"))
	if len(m.images) != 2 {
		t.Fatalf("expected appended image, got %d", len(m.images))
	}
	if m.images[1].Kind != api.ImagePending || m.images[1].Path != "/tmp/new.png" {
		t.Errorf("unexpected appended ref: %+v", m.images[1])
	}
}
