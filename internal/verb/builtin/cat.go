package builtin

import (
	"context"
	"strings"

	"github.com/sandfs/sandsh/internal/shell"
	"github.com/sandfs/sandsh/internal/verb"
)

type Cat struct{}

var _ verb.Handler = (*Cat)(nil)

func (c *Cat) Verb() shell.Verb    { return shell.VerbCat }
func (c *Cat) Description() string { return "concatenate files or pass piped input through" }
func (c *Cat) Usage() string       { return "cat <path> [path...]" }
func (c *Cat) Tier() verb.Tier     { return verb.TierRead }
func (c *Cat) PipeAware() bool     { return true }

func (c *Cat) Run(_ context.Context, env *verb.Env, args shell.Args, stdin *string) (string, error) {
	if stdin != nil {
		return *stdin, nil
	}

	paths := args.Paths
	if len(paths) == 0 {
		if args.Path == "" {
			return "", usageErr(c)
		}
		paths = []string{args.Path}
	}

	var b strings.Builder
	for _, p := range paths {
		content, err := env.Store.Read(env.Resolve(p))
		if err != nil {
			return "", err
		}
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
			b.WriteByte('\n')
		}
		b.WriteString(content)
	}
	return b.String(), nil
}

type Read struct{}

var _ verb.Handler = (*Read)(nil)

func (r *Read) Verb() shell.Verb    { return shell.VerbRead }
func (r *Read) Description() string { return "show the contents of one file" }
func (r *Read) Usage() string       { return "read <path>" }
func (r *Read) Tier() verb.Tier     { return verb.TierRead }
func (r *Read) PipeAware() bool     { return false }

func (r *Read) Run(_ context.Context, env *verb.Env, args shell.Args, _ *string) (string, error) {
	if args.Path == "" {
		return "", usageErr(r)
	}
	return env.Store.Read(env.Resolve(args.Path))
}
