package rules

import (
	"fmt"
	"strings"

	"github.com/sandfs/sandsh/internal/shell"
)

// Hardcoded returns the built-in guard rules that are always enforced
// regardless of configuration. They block permanently catastrophic
// operations on the sandboxed store.
func Hardcoded() []CheckFunc {
	return []CheckFunc{
		checkRemoveRoot,
	}
}

// checkRemoveRoot blocks removal of the store root. Paths are inspected
// before cwd resolution, so "/", "." and ".." variants are all caught
// textually.
func checkRemoveRoot(v shell.Verb, args shell.Args) error {
	if v != shell.VerbRm && v != shell.VerbRmdir {
		return nil
	}
	for _, p := range stagePaths(args) {
		t := strings.Trim(p, "/")
		if t == "" || t == "." || t == ".." {
			return fmt.Errorf("refusing to remove %q: the root directory is protected", p)
		}
	}
	return nil
}
