package term

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is the fallback when the terminal size cannot be read.
const DefaultWidth = 80

// IsTTY reports whether stdin is an interactive terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Width returns the terminal column count, or DefaultWidth on failure.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// Raw puts stdin into raw mode and returns a restore function. The caller
// must invoke restore before the process exits.
func Raw() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	return func() { _ = term.Restore(fd, state) }, nil
}

// WriterDisplay adapts an io.Writer to the editor's display sink. In raw
// mode the terminal does no output post-processing, so callers are expected
// to write \r\n line endings themselves.
type WriterDisplay struct {
	W io.Writer
}

func (d WriterDisplay) WriteString(s string) {
	_, _ = io.WriteString(d.W, s)
}
