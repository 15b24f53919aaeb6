package editor

import (
	"strings"
	"testing"
)

// recordingDisplay captures everything the editor draws.
type recordingDisplay struct {
	sb strings.Builder
}

func (d *recordingDisplay) WriteString(s string) { d.sb.WriteString(s) }

func newTestEditor() (*Editor, *recordingDisplay) {
	d := &recordingDisplay{}
	return New(d, "> "), d
}

func typeString(e *Editor, s string) {
	for _, r := range s {
		e.Handle(Key{Type: KeyRune, Rune: r})
	}
}

func TestInsertAtCursor(t *testing.T) {
	e, _ := newTestEditor()
	typeString(e, "abc")
	e.Handle(Key{Type: KeyLeft})
	e.Handle(Key{Type: KeyLeft})
	e.Handle(Key{Type: KeyRune, Rune: 'X'})

	if got := e.Buffer(); got != "aXbc" {
		t.Errorf("buffer = %q, want %q", got, "aXbc")
	}
	if e.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", e.Cursor())
	}
}

func TestBackspaceMiddle(t *testing.T) {
	e, _ := newTestEditor()
	typeString(e, "abcd")
	e.Handle(Key{Type: KeyLeft})
	e.Handle(Key{Type: KeyBackspace})

	if got := e.Buffer(); got != "abd" {
		t.Errorf("buffer = %q, want %q", got, "abd")
	}
	if e.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", e.Cursor())
	}
}

func TestBackspaceAtStartIsNoop(t *testing.T) {
	e, _ := newTestEditor()
	typeString(e, "ab")
	e.Handle(Key{Type: KeyHome})
	e.Handle(Key{Type: KeyBackspace})

	if got := e.Buffer(); got != "ab" {
		t.Errorf("buffer = %q, want %q", got, "ab")
	}
	if e.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", e.Cursor())
	}
}

func TestCursorBounds(t *testing.T) {
	e, _ := newTestEditor()
	typeString(e, "ab")

	e.Handle(Key{Type: KeyRight}) // already at end
	if e.Cursor() != 2 {
		t.Errorf("right at end moved cursor to %d", e.Cursor())
	}

	e.Handle(Key{Type: KeyHome})
	e.Handle(Key{Type: KeyLeft}) // already at start
	if e.Cursor() != 0 {
		t.Errorf("left at start moved cursor to %d", e.Cursor())
	}

	e.Handle(Key{Type: KeyEnd})
	if e.Cursor() != 2 {
		t.Errorf("end moved cursor to %d, want 2", e.Cursor())
	}
}

func submitLine(e *Editor, s string) {
	typeString(e, s)
	e.Handle(Key{Type: KeyEnter})
}

func TestSubmitRecordsHistory(t *testing.T) {
	e, _ := newTestEditor()
	submitLine(e, "ls docs")

	if e.Buffer() != "" || e.Cursor() != 0 {
		t.Errorf("submit did not reset buffer: %q cursor %d", e.Buffer(), e.Cursor())
	}
	if got := e.History(); len(got) != 1 || got[0] != "ls docs" {
		t.Errorf("history = %v", got)
	}
}

func TestSubmitReturnsLine(t *testing.T) {
	e, _ := newTestEditor()
	typeString(e, "pwd")
	line, submitted := e.Handle(Key{Type: KeyEnter})
	if !submitted || line != "pwd" {
		t.Errorf("got (%q, %v), want (\"pwd\", true)", line, submitted)
	}
}

func TestSubmitBlankLineSkipsHistory(t *testing.T) {
	e, _ := newTestEditor()
	typeString(e, "   ")
	line, submitted := e.Handle(Key{Type: KeyEnter})
	if submitted || line != "" {
		t.Errorf("blank line submitted: (%q, %v)", line, submitted)
	}
	if len(e.History()) != 0 {
		t.Errorf("blank line recorded in history: %v", e.History())
	}
}

func TestHistoryWalk(t *testing.T) {
	e, _ := newTestEditor()
	submitLine(e, "first")
	submitLine(e, "second")

	e.Handle(Key{Type: KeyUp})
	if e.Buffer() != "second" {
		t.Errorf("after up: %q", e.Buffer())
	}
	e.Handle(Key{Type: KeyUp})
	if e.Buffer() != "first" {
		t.Errorf("after up up: %q", e.Buffer())
	}

	// Past the oldest entry stays put.
	e.Handle(Key{Type: KeyUp})
	e.Handle(Key{Type: KeyUp})
	if e.Buffer() != "first" {
		t.Errorf("up past oldest: %q", e.Buffer())
	}

	e.Handle(Key{Type: KeyDown})
	if e.Buffer() != "second" {
		t.Errorf("after down: %q", e.Buffer())
	}

	// Past the newest entry restores an empty line and leaves browsing.
	e.Handle(Key{Type: KeyDown})
	if e.Buffer() != "" || e.Browsing() {
		t.Errorf("down past newest: buffer %q browsing %v", e.Buffer(), e.Browsing())
	}
}

func TestDownWhenNotBrowsingIsNoop(t *testing.T) {
	e, _ := newTestEditor()
	submitLine(e, "first")
	typeString(e, "draft")
	e.Handle(Key{Type: KeyDown})
	if e.Buffer() != "draft" {
		t.Errorf("buffer = %q, want %q", e.Buffer(), "draft")
	}
}

func TestUpWithEmptyHistoryIsNoop(t *testing.T) {
	e, _ := newTestEditor()
	typeString(e, "draft")
	e.Handle(Key{Type: KeyUp})
	if e.Buffer() != "draft" {
		t.Errorf("buffer = %q, want %q", e.Buffer(), "draft")
	}
}

func TestTypingExitsBrowsing(t *testing.T) {
	e, _ := newTestEditor()
	submitLine(e, "first")
	e.Handle(Key{Type: KeyUp})
	if !e.Browsing() {
		t.Fatal("expected browsing after up")
	}
	e.Handle(Key{Type: KeyRune, Rune: 'x'})
	if e.Browsing() {
		t.Error("typing should leave browsing mode")
	}
	if e.Buffer() != "firstx" {
		t.Errorf("buffer = %q, want %q", e.Buffer(), "firstx")
	}
}

func TestRecalledLineEditedAndSubmitted(t *testing.T) {
	e, _ := newTestEditor()
	submitLine(e, "cat a.txt")
	e.Handle(Key{Type: KeyUp})
	e.Handle(Key{Type: KeyBackspace})
	typeString(e, "x")
	line, submitted := e.Handle(Key{Type: KeyEnter})
	if !submitted || line != "cat a.txx" {
		t.Errorf("got (%q, %v)", line, submitted)
	}
	if got := e.History(); len(got) != 2 || got[1] != "cat a.txx" {
		t.Errorf("history = %v", got)
	}
}

func TestCtrlCAbandonsLine(t *testing.T) {
	e, d := newTestEditor()
	submitLine(e, "kept")
	typeString(e, "doomed")
	e.Handle(Key{Type: KeyCtrlC})

	if e.Buffer() != "" || e.Cursor() != 0 {
		t.Errorf("interrupt did not reset: %q cursor %d", e.Buffer(), e.Cursor())
	}
	if got := e.History(); len(got) != 1 || got[0] != "kept" {
		t.Errorf("history = %v", got)
	}
	if !strings.Contains(d.sb.String(), "^C") {
		t.Error("interrupt not echoed")
	}
}

func TestCtrlLPreservesBufferAndHistory(t *testing.T) {
	e, d := newTestEditor()
	submitLine(e, "kept")
	typeString(e, "draft")
	e.Handle(Key{Type: KeyCtrlL})

	if e.Buffer() != "draft" {
		t.Errorf("buffer = %q, want %q", e.Buffer(), "draft")
	}
	if len(e.History()) != 1 {
		t.Errorf("history = %v", e.History())
	}
	if !strings.Contains(d.sb.String(), "\x1b[2J") {
		t.Error("clear sequence not written")
	}
}

func TestHistoryLimit(t *testing.T) {
	e, _ := newTestEditor()
	e.SetHistoryLimit(2)
	submitLine(e, "one")
	submitLine(e, "two")
	submitLine(e, "three")

	got := e.History()
	if len(got) != 2 || got[0] != "two" || got[1] != "three" {
		t.Errorf("history = %v", got)
	}
}

func TestRenderInsertMovesCursorBack(t *testing.T) {
	e, d := newTestEditor()
	typeString(e, "ab")
	e.Handle(Key{Type: KeyLeft})
	d.sb.Reset()
	e.Handle(Key{Type: KeyRune, Rune: 'X'})

	// Inserting before the tail re-draws "Xb" and steps back over "b".
	if got := d.sb.String(); got != "Xb\x1b[1D" {
		t.Errorf("render = %q", got)
	}
}
