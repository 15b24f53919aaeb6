package builtin

import (
	"context"
	"strconv"
	"strings"

	"github.com/sandfs/sandsh/internal/shell"
	"github.com/sandfs/sandsh/internal/verb"
)

// defaultLineCount applies when no count was supplied, or when the supplied
// count is non-positive or non-numeric.
const defaultLineCount = 10

type Head struct{}

var _ verb.Handler = (*Head)(nil)

func (h *Head) Verb() shell.Verb    { return shell.VerbHead }
func (h *Head) Description() string { return "output the first lines of a file or piped input" }
func (h *Head) Usage() string       { return "head [-n N] <path>" }
func (h *Head) Tier() verb.Tier     { return verb.TierRead }
func (h *Head) PipeAware() bool     { return true }

func (h *Head) Run(_ context.Context, env *verb.Env, args shell.Args, stdin *string) (string, error) {
	lines, err := selectLines(h, env, args, stdin)
	if err != nil {
		return "", err
	}
	count := clampCount(args, stdin)
	if len(lines) > count {
		lines = lines[:count]
	}
	return strings.Join(lines, "\n"), nil
}

type Tail struct{}

var _ verb.Handler = (*Tail)(nil)

func (t *Tail) Verb() shell.Verb    { return shell.VerbTail }
func (t *Tail) Description() string { return "output the last lines of a file or piped input" }
func (t *Tail) Usage() string       { return "tail [-n N] <path>" }
func (t *Tail) Tier() verb.Tier     { return verb.TierRead }
func (t *Tail) PipeAware() bool     { return true }

func (t *Tail) Run(_ context.Context, env *verb.Env, args shell.Args, stdin *string) (string, error) {
	lines, err := selectLines(t, env, args, stdin)
	if err != nil {
		return "", err
	}
	count := clampCount(args, stdin)
	if len(lines) > count {
		lines = lines[len(lines)-count:]
	}
	return strings.Join(lines, "\n"), nil
}

func selectLines(h verb.Handler, env *verb.Env, args shell.Args, stdin *string) ([]string, error) {
	if stdin != nil {
		return splitLines(*stdin), nil
	}
	if args.Path == "" {
		return nil, usageErr(h)
	}
	content, err := env.Store.Read(env.Resolve(args.Path))
	if err != nil {
		return nil, err
	}
	return splitLines(content), nil
}

// clampCount resolves the effective line count. Mid-pipeline, a bare
// numeric positional is a count, not a path: `head 5` means five lines of
// piped input. A non-numeric positional alongside piped input is silently
// ignored.
func clampCount(args shell.Args, stdin *string) int {
	count := args.Lines
	if stdin != nil && args.Path != "" {
		if n, err := strconv.Atoi(args.Path); err == nil {
			count = n
		}
	}
	if count <= 0 {
		return defaultLineCount
	}
	return count
}
