package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sandfs/sandsh/internal/session"
	"github.com/sandfs/sandsh/internal/term"
)

// RunLine executes a single line non-interactively: sandsh -c '<line>'.
func RunLine(ctx context.Context, sess *session.Session, line string, stdout, stderr io.Writer) int {
	out, err := sess.Submit(ctx, line)
	if err != nil {
		fmt.Fprintf(stderr, "sandsh: %v\n", err)
		return 1
	}
	if out != "" {
		fmt.Fprintln(stdout, out)
	}
	return 0
}

// RunInteractive runs the line-editing loop on the controlling terminal.
func RunInteractive(ctx context.Context, sess *session.Session, prompt string, historyLimit int) int {
	if !term.IsTTY() {
		fmt.Fprintln(os.Stderr, "sandsh: stdin is not a terminal (use -c for scripted input)")
		return 1
	}

	restore, err := term.Raw()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sandsh: %v\n", err)
		return 1
	}
	defer restore()

	disp := term.WriterDisplay{W: os.Stdout}
	it := session.NewInteractive(sess, disp, prompt, historyLimit)
	if err := it.Run(ctx, term.NewDecoder(os.Stdin)); err != nil {
		restore()
		fmt.Fprintf(os.Stderr, "sandsh: %v\n", err)
		return 1
	}
	return 0
}
