package session

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/sandfs/sandsh/internal/editor"
)

// KeySource yields decoded key events. io.EOF ends the loop cleanly.
type KeySource interface {
	Next() (editor.Key, error)
}

// Interactive drives a session through a line editor. It is the common
// core of the terminal front end and the websocket bridge: both feed keys
// in and render the same display stream.
type Interactive struct {
	sess *Session
	ed   *editor.Editor
	disp editor.Display
}

// NewInteractive builds the editing loop around a session. The clear verb
// is wired to the display automatically.
func NewInteractive(sess *Session, disp editor.Display, prompt string, historyLimit int) *Interactive {
	ed := editor.New(disp, prompt)
	if historyLimit > 0 {
		ed.SetHistoryLimit(historyLimit)
	}
	sess.env.ClearScreen = func() {
		disp.WriteString("\x1b[2J\x1b[H")
	}
	return &Interactive{sess: sess, ed: ed, disp: disp}
}

// Start draws the first prompt.
func (i *Interactive) Start() {
	i.ed.Prompt()
}

// HandleKey feeds one key event through the editor; a submitted line is
// executed to completion before this returns, so a new submission can
// never overlap a running pipeline.
func (i *Interactive) HandleKey(ctx context.Context, k editor.Key) {
	line, submitted := i.ed.Handle(k)
	if !submitted {
		return
	}

	out, err := i.sess.Submit(ctx, line)
	if err != nil {
		i.renderLines("error: " + err.Error())
	} else if out != "" {
		i.renderLines(out)
	}
	i.ed.Prompt()
}

// Run consumes keys until the source is exhausted.
func (i *Interactive) Run(ctx context.Context, keys KeySource) error {
	i.Start()
	for {
		k, err := keys.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				i.disp.WriteString("\r\n")
				return nil
			}
			return err
		}
		i.HandleKey(ctx, k)
	}
}

// renderLines writes handler output with raw-mode line endings.
func (i *Interactive) renderLines(text string) {
	for _, line := range strings.Split(text, "\n") {
		i.disp.WriteString(line + "\r\n")
	}
}
