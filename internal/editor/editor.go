package editor

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultHistoryLimit caps the history when no limit is configured.
const DefaultHistoryLimit = 500

// Editor holds the state of one line being edited. Events are handled one
// at a time, to completion; there is no concurrent access.
type Editor struct {
	display Display
	prompt  string

	buf    []rune
	cursor int // rune offset in [0, len(buf)]

	history      []string
	historyLimit int
	histIdx      int // index into history while browsing; -1 = not browsing
}

// New creates an editor drawing on the given display.
func New(display Display, prompt string) *Editor {
	return &Editor{
		display:      display,
		prompt:       prompt,
		historyLimit: DefaultHistoryLimit,
		histIdx:      -1,
	}
}

// SetHistoryLimit bounds the history length; oldest entries fall off.
func (e *Editor) SetHistoryLimit(n int) {
	if n > 0 {
		e.historyLimit = n
	}
}

// Buffer returns the current line content.
func (e *Editor) Buffer() string { return string(e.buf) }

// Cursor returns the rune offset of the cursor within the buffer.
func (e *Editor) Cursor() int { return e.cursor }

// History returns the submitted lines, oldest first.
func (e *Editor) History() []string { return e.history }

// Browsing reports whether the editor is walking through history.
func (e *Editor) Browsing() bool { return e.histIdx >= 0 }

// Prompt draws the prompt for a fresh line.
func (e *Editor) Prompt() {
	e.display.WriteString(e.prompt)
}

// Handle processes one input event. When the event completes a non-empty
// line, the raw buffer is returned with submitted true; the caller executes
// it and calls Prompt for the next line.
func (e *Editor) Handle(k Key) (line string, submitted bool) {
	switch k.Type {
	case KeyRune:
		e.insert(k.Rune)
	case KeyBackspace:
		e.backspace()
	case KeyLeft:
		if e.cursor > 0 {
			e.cursor--
			e.moveLeft(runewidth.RuneWidth(e.buf[e.cursor]))
		}
	case KeyRight:
		if e.cursor < len(e.buf) {
			e.moveRight(runewidth.RuneWidth(e.buf[e.cursor]))
			e.cursor++
		}
	case KeyHome:
		e.moveLeft(runewidth.StringWidth(string(e.buf[:e.cursor])))
		e.cursor = 0
	case KeyEnd:
		e.moveRight(runewidth.StringWidth(string(e.buf[e.cursor:])))
		e.cursor = len(e.buf)
	case KeyUp:
		e.historyBack()
	case KeyDown:
		e.historyForward()
	case KeyEnter:
		return e.submit()
	case KeyCtrlC:
		e.interrupt()
	case KeyCtrlL:
		e.clearScreen()
	}
	return "", false
}

func (e *Editor) insert(r rune) {
	// Typing leaves browsing mode; the recalled line becomes the buffer.
	e.histIdx = -1

	tail := string(e.buf[e.cursor:])
	e.buf = append(e.buf[:e.cursor], append([]rune{r}, e.buf[e.cursor:]...)...)
	e.cursor++

	// Only the inserted rune and the tail after the old cursor re-flow.
	e.display.WriteString(string(r) + tail)
	e.moveLeft(runewidth.StringWidth(tail))
}

func (e *Editor) backspace() {
	if e.cursor == 0 {
		return
	}
	e.histIdx = -1
	deleted := e.buf[e.cursor-1]
	dw := runewidth.RuneWidth(deleted)
	tail := string(e.buf[e.cursor:])
	e.buf = append(e.buf[:e.cursor-1], e.buf[e.cursor:]...)
	e.cursor--

	e.moveLeft(dw)
	e.display.WriteString(tail + strings.Repeat(" ", dw))
	e.moveLeft(runewidth.StringWidth(tail) + dw)
}

func (e *Editor) historyBack() {
	if len(e.history) == 0 {
		return
	}
	if e.histIdx < 0 {
		e.histIdx = len(e.history) - 1
	} else if e.histIdx > 0 {
		e.histIdx--
	}
	e.replaceLine(e.history[e.histIdx])
}

func (e *Editor) historyForward() {
	if e.histIdx < 0 {
		return
	}
	e.histIdx++
	if e.histIdx >= len(e.history) {
		// Walking past the most recent entry restores an empty line and
		// leaves browsing mode.
		e.histIdx = -1
		e.replaceLine("")
		return
	}
	e.replaceLine(e.history[e.histIdx])
}

// replaceLine swaps the entire visible line and puts the cursor at its end.
func (e *Editor) replaceLine(s string) {
	e.buf = []rune(s)
	e.cursor = len(e.buf)
	e.display.WriteString("\r\x1b[K" + e.prompt + s)
}

func (e *Editor) submit() (string, bool) {
	line := string(e.buf)
	e.buf = nil
	e.cursor = 0
	e.histIdx = -1
	e.display.WriteString("\r\n")

	if strings.TrimSpace(line) == "" {
		e.Prompt()
		return "", false
	}
	e.history = append(e.history, line)
	if len(e.history) > e.historyLimit {
		e.history = e.history[len(e.history)-e.historyLimit:]
	}
	return line, true
}

func (e *Editor) interrupt() {
	e.buf = nil
	e.cursor = 0
	e.histIdx = -1
	e.display.WriteString("^C\r\n")
	e.Prompt()
}

// clearScreen wipes the visible surface and redraws the prompt and the
// in-progress line; buffer and history are untouched.
func (e *Editor) clearScreen() {
	e.display.WriteString("\x1b[2J\x1b[H" + e.prompt + string(e.buf))
	e.moveLeft(runewidth.StringWidth(string(e.buf[e.cursor:])))
}

func (e *Editor) moveLeft(n int) {
	if n > 0 {
		e.display.WriteString(fmt.Sprintf("\x1b[%dD", n))
	}
}

func (e *Editor) moveRight(n int) {
	if n > 0 {
		e.display.WriteString(fmt.Sprintf("\x1b[%dC", n))
	}
}
