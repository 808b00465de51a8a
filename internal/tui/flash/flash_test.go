// ABOUTME: Tests for transient status messages
// ABOUTME: Covers stale-timer suppression when messages overlap

package flash

import "testing"

func TestSetAndClear(t *testing.T) {
	var f Flash
	cmd := f.Set("Project created!")
	if cmd == nil {
		t.Fatal("expected a tick command")
	}
	if f.Text() != "Project created!" || !f.OK() {
		t.Errorf("unexpected state: %q ok=%v", f.Text(), f.OK())
	}

	f.Clear(ClearMsg{Seq: 1})
	if f.Text() != "" {
		t.Errorf("expected cleared text, got %q", f.Text())
	}
}

func TestStaleTimerIgnored(t *testing.T) {
	var f Flash
	f.Set("first")
	f.Set("second")

	// The first message's timer fires with seq 1; the second message is
	// still within its own window and must survive.
	f.Clear(ClearMsg{Seq: 1})
	if f.Text() != "second" {
		t.Errorf("stale clear removed the newer message, got %q", f.Text())
	}

	f.Clear(ClearMsg{Seq: 2})
	if f.Text() != "" {
		t.Errorf("expected cleared text, got %q", f.Text())
	}
}

func TestErrorReplacesSuccess(t *testing.T) {
	var f Flash
	f.Set("saved")
	f.Error("Network error")
	if f.Text() != "Network error" || f.OK() {
		t.Errorf("unexpected state: %q ok=%v", f.Text(), f.OK())
	}
}
