package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandfs/sandsh/internal/shell"
	"github.com/sandfs/sandsh/internal/verb"
)

type Diff struct{}

var _ verb.Handler = (*Diff)(nil)

func (d *Diff) Verb() shell.Verb    { return shell.VerbDiff }
func (d *Diff) Description() string { return "compare two files line by line" }
func (d *Diff) Usage() string       { return "diff <path1> <path2>" }
func (d *Diff) Tier() verb.Tier     { return verb.TierRead }
func (d *Diff) PipeAware() bool     { return false }

func (d *Diff) Run(_ context.Context, env *verb.Env, args shell.Args, _ *string) (string, error) {
	if args.Path == "" || args.Dest == "" {
		return "", usageErr(d)
	}
	left, err := env.Store.Read(env.Resolve(args.Path))
	if err != nil {
		return "", err
	}
	right, err := env.Store.Read(env.Resolve(args.Dest))
	if err != nil {
		return "", err
	}

	if left == right {
		return "files are identical", nil
	}

	a := splitLines(left)
	b := splitLines(right)
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	var out []string
	for i := 0; i < n; i++ {
		switch {
		case i >= len(a):
			out = append(out, fmt.Sprintf("%d: + %s", i+1, b[i]))
		case i >= len(b):
			out = append(out, fmt.Sprintf("%d: - %s", i+1, a[i]))
		case a[i] != b[i]:
			out = append(out, fmt.Sprintf("%d: - %s", i+1, a[i]))
			out = append(out, fmt.Sprintf("%d: + %s", i+1, b[i]))
		}
	}
	return strings.Join(out, "\n"), nil
}
