// Package builtin implements every verb in the closed vocabulary. One file
// per verb family; RegisterAll wires them into a registry. Unlike a host
// shell these run in-process against the sandboxed store; nothing ever
// touches the host filesystem.
package builtin

import (
	"fmt"
	"strings"

	"github.com/sandfs/sandsh/internal/shell"
	"github.com/sandfs/sandsh/internal/verb"
)

// usageErr is the standard error for a verb invoked without its required
// positional arguments. No store access is attempted.
func usageErr(h verb.Handler) error {
	return fmt.Errorf("usage: %s", h.Usage())
}

// splitLines splits content into lines, ignoring one trailing newline so
// "a\nb\n" is two lines, not three.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// source resolves the content a pipe-aware handler operates on: stdin when
// set (piped input always wins), otherwise the file named by args.Path.
// fromFile reports which one was used.
func source(env *verb.Env, args shell.Args, stdin *string, usage error) (content string, fromFile bool, err error) {
	if stdin != nil {
		return *stdin, false, nil
	}
	if args.Path == "" {
		return "", false, usage
	}
	content, err = env.Store.Read(env.Resolve(args.Path))
	return content, true, err
}
