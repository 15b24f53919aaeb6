package builtin

import (
	"context"

	"github.com/sandfs/sandsh/internal/shell"
	"github.com/sandfs/sandsh/internal/verb"
)

type Echo struct{}

var _ verb.Handler = (*Echo)(nil)

func (e *Echo) Verb() shell.Verb    { return shell.VerbEcho }
func (e *Echo) Description() string { return "print its arguments" }
func (e *Echo) Usage() string       { return "echo [text...]" }
func (e *Echo) Tier() verb.Tier     { return verb.TierRead }
func (e *Echo) PipeAware() bool     { return false }

func (e *Echo) Run(_ context.Context, _ *verb.Env, args shell.Args, _ *string) (string, error) {
	return args.Text, nil
}

type Write struct{}

var _ verb.Handler = (*Write)(nil)

func (w *Write) Verb() shell.Verb    { return shell.VerbWrite }
func (w *Write) Description() string { return "write content to a file, creating or overwriting it" }
func (w *Write) Usage() string       { return "write <path> [content]" }
func (w *Write) Tier() verb.Tier     { return verb.TierWrite }
func (w *Write) PipeAware() bool     { return false }

func (w *Write) Run(_ context.Context, env *verb.Env, args shell.Args, _ *string) (string, error) {
	if args.Path == "" {
		return "", usageErr(w)
	}
	// Content defaults to the empty string when omitted.
	return "", env.Store.Write(env.Resolve(args.Path), args.Text)
}
