package builtin

import (
	"context"
	"fmt"

	"github.com/sandfs/sandsh/internal/shell"
	"github.com/sandfs/sandsh/internal/store"
	"github.com/sandfs/sandsh/internal/verb"
)

type Pwd struct{}

var _ verb.Handler = (*Pwd)(nil)

func (p *Pwd) Verb() shell.Verb    { return shell.VerbPwd }
func (p *Pwd) Description() string { return "print the current directory" }
func (p *Pwd) Usage() string       { return "pwd" }
func (p *Pwd) Tier() verb.Tier     { return verb.TierRead }
func (p *Pwd) PipeAware() bool     { return false }

func (p *Pwd) Run(_ context.Context, env *verb.Env, _ shell.Args, _ *string) (string, error) {
	cwd := ""
	if env.Cwd != nil {
		cwd = *env.Cwd
	}
	return "/" + cwd, nil
}

type Cd struct{}

var _ verb.Handler = (*Cd)(nil)

func (c *Cd) Verb() shell.Verb    { return shell.VerbCd }
func (c *Cd) Description() string { return "change the current directory" }
func (c *Cd) Usage() string       { return "cd <path>" }
func (c *Cd) Tier() verb.Tier     { return verb.TierRead }
func (c *Cd) PipeAware() bool     { return false }

func (c *Cd) Run(_ context.Context, env *verb.Env, args shell.Args, _ *string) (string, error) {
	if args.Path == "" {
		return "", usageErr(c)
	}
	p := env.Resolve(args.Path)
	if p != "" {
		isDir, err := env.Store.IsDir(p)
		if err != nil {
			return "", err
		}
		if !isDir {
			return "", fmt.Errorf("%s: %w", args.Path, store.ErrNotDir)
		}
	}
	if env.Cwd != nil {
		*env.Cwd = p
	}
	return "", nil
}
