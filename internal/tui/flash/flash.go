// ABOUTME: Transient status messages that auto-clear after a fixed delay
// ABOUTME: Sequence-numbered so a stale timer never clears a newer message

package flash

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TTL is how long a transient message stays visible.
const TTL = 2 * time.Second

// ClearMsg asks the owning model to clear the message with the given
// sequence number. A message set later carries a higher sequence, so the
// older timer's ClearMsg is ignored.
type ClearMsg struct {
	Seq int
}

// Flash holds one transient status line for a workflow.
type Flash struct {
	text string
	ok   bool
	seq  int
}

// Set shows a success message and schedules its clear.
func (f *Flash) Set(text string) tea.Cmd {
	return f.show(text, true)
}

// Error shows a failure message, replacing any success message, and
// schedules its clear.
func (f *Flash) Error(text string) tea.Cmd {
	return f.show(text, false)
}

func (f *Flash) show(text string, ok bool) tea.Cmd {
	f.seq++
	f.text = text
	f.ok = ok
	seq := f.seq
	return tea.Tick(TTL, func(time.Time) tea.Msg {
		return ClearMsg{Seq: seq}
	})
}

// Clear handles a ClearMsg, ignoring stale timers.
func (f *Flash) Clear(msg ClearMsg) {
	if msg.Seq == f.seq {
		f.text = ""
	}
}

// Text returns the current message, empty when none is showing.
func (f *Flash) Text() string { return f.text }

// OK reports whether the current message is a success.
func (f *Flash) OK() bool { return f.ok }
