package builtin

import (
	"context"
	"sort"
	"strings"

	"github.com/sandfs/sandsh/internal/shell"
	"github.com/sandfs/sandsh/internal/store"
	"github.com/sandfs/sandsh/internal/verb"
)

type Ls struct{}

var _ verb.Handler = (*Ls)(nil)

func (l *Ls) Verb() shell.Verb    { return shell.VerbLs }
func (l *Ls) Description() string { return "list directory contents" }
func (l *Ls) Usage() string       { return "ls [path]" }
func (l *Ls) Tier() verb.Tier     { return verb.TierRead }
func (l *Ls) PipeAware() bool     { return false }

func (l *Ls) Run(_ context.Context, env *verb.Env, args shell.Args, _ *string) (string, error) {
	dir := env.Resolve(args.Path)
	entries, err := env.Store.List(dir)
	if err != nil {
		return "", err
	}

	var out []string
	for _, e := range childrenOf(entries, dir) {
		name := store.Base(e.Path)
		if e.IsDir {
			name += "/"
		}
		out = append(out, name)
	}
	return strings.Join(out, "\n"), nil
}

type Tree struct{}

var _ verb.Handler = (*Tree)(nil)

func (t *Tree) Verb() shell.Verb    { return shell.VerbTree }
func (t *Tree) Description() string { return "list directory contents recursively" }
func (t *Tree) Usage() string       { return "tree [path]" }
func (t *Tree) Tier() verb.Tier     { return verb.TierRead }
func (t *Tree) PipeAware() bool     { return false }

func (t *Tree) Run(_ context.Context, env *verb.Env, args shell.Args, _ *string) (string, error) {
	root := env.Resolve(args.Path)
	entries, err := env.Store.List(root)
	if err != nil {
		return "", err
	}

	display := "/" + root
	out := []string{display}
	renderTree(entries, root, 1, &out)
	return strings.Join(out, "\n"), nil
}

func renderTree(entries []store.Entry, prefix string, depth int, out *[]string) {
	for _, e := range childrenOf(entries, prefix) {
		name := store.Base(e.Path)
		if e.IsDir {
			name += "/"
		}
		*out = append(*out, strings.Repeat("  ", depth)+name)
		if e.IsDir {
			renderTree(entries, e.Path, depth+1, out)
		}
	}
}

// childrenOf filters a recursive listing down to the immediate children of
// prefix, ordered directories first, then lexicographically.
func childrenOf(entries []store.Entry, prefix string) []store.Entry {
	var out []store.Entry
	for _, e := range entries {
		if store.Parent(e.Path) == prefix {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsDir != out[j].IsDir {
			return out[i].IsDir
		}
		return out[i].Path < out[j].Path
	})
	return out
}
