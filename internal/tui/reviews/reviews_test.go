// ABOUTME: Tests for the reviews screen model
// ABOUTME: Covers rating enforcement, averages, and mutation handling

package reviews

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
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

func TestAverageRating(t *testing.T) {
	m := New(nil)
	if got := m.AverageRating(); got != 0 {
		t.Errorf("expected 0 for empty list, got %v", got)
	}

	m.list.Replace([]api.Review{
		{ID: "r1", Rating: 5},
		{ID: "r2", Rating: 4},
		{ID: "r3", Rating: 3},
	})
	if got := m.AverageRating(); got != 4 {
		t.Errorf("expected average 4, got %v", got)
	}
}

func TestValidateRating(t *testing.T) {
	for _, r := range []int{1, 3, 5} {
		if err := validateRating(r); err != nil {
			t.Errorf("rating %d should be valid, got %v", r, err)
		}
	}
	for _, r := range []int{0, 6, -1} {
		if err := validateRating(r); err == nil {
			t.Errorf("rating %d should be rejected", r)
		}
	}
}

func TestSubmitRejectsUnsetRating(t *testing.T) {
	m := New(nil)
	m.name = "Dana"
	m.email = "dana@example.com"
	m.feedback = "Great"
	m.rating = 0

	cmd := m.submit()
	if m.submitting {
		t.Error("unset rating must not start a request")
	}
	if cmd == nil {
		t.Fatal("expected an error flash command")
	}
	if m.flash.Text() != "Rating must be between 1 and 5." {
		t.Errorf("unexpected flash: %q", m.flash.Text())
	}
}

func TestOpenEditCopiesReview(t *testing.T) {
	m := New(nil)
	r := api.Review{ID: "r1", Name: "Dana", Rating: 4, Feedback: "Good"}

	m.openEdit(r)
	if m.editingID != "r1" || m.rating != 4 || m.feedback != "Good" {
		t.Errorf("unexpected buffer: id=%q rating=%d feedback=%q", m.editingID, m.rating, m.feedback)
	}
	if m.mode != modeEdit {
		t.Error("expected edit mode")
	}
}

func TestSavedMsgPatches(t *testing.T) {
	m := New(nil)
	m.list.Replace([]api.Review{{ID: "r1", Rating: 2}})
	m.mode = modeEdit
	m.submitting = true

	m.Update(savedMsg{review: &api.Review{ID: "r1", Rating: 5}})

	items := m.list.Items()
	if items[0].Rating != 5 {
		t.Errorf("expected patched rating, got %v", items[0])
	}
	if m.flash.Text() != "Review updated!" {
		t.Errorf("unexpected flash: %q", m.flash.Text())
	}
	if m.mode != modeList {
		t.Error("expected return to list")
	}
}

func TestSavedMsgErrorFallback(t *testing.T) {
	m := New(nil)
	m.openEdit(api.Review{ID: "r1", Name: "Dana", Rating: 4, Feedback: "Good"})
	m.submitting = true

	m.Update(savedMsg{err: errors.New("boom")})

	if m.flash.Text() != "Failed to update review." {
		t.Errorf("unexpected flash: %q", m.flash.Text())
	}
	if m.mode != modeEdit {
		t.Error("failed save must keep the form open")
	}
}

func TestFailedSaveDoesNotResubmitOnStrayKey(t *testing.T) {
	m := New(nil)
	m.openEdit(api.Review{ID: "r1", Name: "Dana", Email: "dana@example.com", Rating: 4, Feedback: "Good"})
	// The save was fired from a completed form.
	m.form.State = huh.StateCompleted
	m.submitting = true

	m.Update(savedMsg{err: errors.New("boom")})
	if m.submitting {
		t.Fatal("expected submitting reset after the failed save")
	}

	// A navigation key while the failure is on screen must not re-send
	// the request.
	m.Update(keyMsg("k"))
	if m.submitting {
		t.Error("stray key after a failed save re-fired the request")
	}
	if m.form.State == huh.StateCompleted {
		t.Error("expected the form re-armed for editing")
	}
	if m.name != "Dana" || m.rating != 4 {
		t.Errorf("expected the buffer kept, got name=%q rating=%d", m.name, m.rating)
	}
}

func TestDeleteConfirmAndRemove(t *testing.T) {
	m := New(nil)
	m.list.Replace([]api.Review{{ID: "r1"}})

	m.Update(keyMsg("d"))
	if m.mode != modeConfirmDelete || m.deleteID != "r1" {
		t.Fatalf("expected confirm mode for r1, got mode=%v id=%q", m.mode, m.deleteID)
	}

	m.deleting = true
	m.Update(deletedMsg{id: "r1"})
	if m.list.Len() != 0 {
		t.Error("expected review removed")
	}
	if m.flash.Text() != "Review deleted." {
		t.Errorf("unexpected flash: %q", m.flash.Text())
	}
}

func TestServerMessageShownOnDeleteFailure(t *testing.T) {
	m := New(nil)
	m.mode = modeConfirmDelete
	m.deleteID = "r1"
	m.deleting = true

	m.Update(deletedMsg{id: "r1", err: &api.Error{StatusCode: 403, Message: "Forbidden for this admin"}})

	if m.flash.Text() != "Forbidden for this admin" {
		t.Errorf("expected the server message verbatim, got %q", m.flash.Text())
	}
}
