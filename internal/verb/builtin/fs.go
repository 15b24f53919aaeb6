package builtin

import (
	"context"

	"github.com/sandfs/sandsh/internal/shell"
	"github.com/sandfs/sandsh/internal/verb"
)

type Mkdir struct{}

var _ verb.Handler = (*Mkdir)(nil)

func (m *Mkdir) Verb() shell.Verb    { return shell.VerbMkdir }
func (m *Mkdir) Description() string { return "create a directory, with missing parents" }
func (m *Mkdir) Usage() string       { return "mkdir <path>" }
func (m *Mkdir) Tier() verb.Tier     { return verb.TierWrite }
func (m *Mkdir) PipeAware() bool     { return false }

func (m *Mkdir) Run(_ context.Context, env *verb.Env, args shell.Args, _ *string) (string, error) {
	if args.Path == "" {
		return "", usageErr(m)
	}
	return "", env.Store.Mkdir(env.Resolve(args.Path))
}

type Touch struct{}

var _ verb.Handler = (*Touch)(nil)

func (t *Touch) Verb() shell.Verb    { return shell.VerbTouch }
func (t *Touch) Description() string { return "create an empty file" }
func (t *Touch) Usage() string       { return "touch <path>" }
func (t *Touch) Tier() verb.Tier     { return verb.TierWrite }
func (t *Touch) PipeAware() bool     { return false }

func (t *Touch) Run(_ context.Context, env *verb.Env, args shell.Args, _ *string) (string, error) {
	if args.Path == "" {
		return "", usageErr(t)
	}
	p := env.Resolve(args.Path)
	ok, err := env.Store.Exists(p)
	if err != nil {
		return "", err
	}
	if ok {
		return "", nil
	}
	return "", env.Store.Write(p, "")
}

type Rm struct{}

var _ verb.Handler = (*Rm)(nil)

func (r *Rm) Verb() shell.Verb    { return shell.VerbRm }
func (r *Rm) Description() string { return "remove a file" }
func (r *Rm) Usage() string       { return "rm <path>" }
func (r *Rm) Tier() verb.Tier     { return verb.TierDangerous }
func (r *Rm) PipeAware() bool     { return false }

func (r *Rm) Run(_ context.Context, env *verb.Env, args shell.Args, _ *string) (string, error) {
	if args.Path == "" {
		return "", usageErr(r)
	}
	return "", env.Store.DeleteFile(env.Resolve(args.Path))
}

type Rmdir struct{}

var _ verb.Handler = (*Rmdir)(nil)

func (r *Rmdir) Verb() shell.Verb    { return shell.VerbRmdir }
func (r *Rmdir) Description() string { return "remove a directory and everything under it" }
func (r *Rmdir) Usage() string       { return "rmdir <path>" }
func (r *Rmdir) Tier() verb.Tier     { return verb.TierDangerous }
func (r *Rmdir) PipeAware() bool     { return false }

func (r *Rmdir) Run(_ context.Context, env *verb.Env, args shell.Args, _ *string) (string, error) {
	if args.Path == "" {
		return "", usageErr(r)
	}
	return "", env.Store.DeleteDir(env.Resolve(args.Path))
}

type Cp struct{}

var _ verb.Handler = (*Cp)(nil)

func (c *Cp) Verb() shell.Verb    { return shell.VerbCp }
func (c *Cp) Description() string { return "copy a file or directory tree" }
func (c *Cp) Usage() string       { return "cp <src> <dest>" }
func (c *Cp) Tier() verb.Tier     { return verb.TierWrite }
func (c *Cp) PipeAware() bool     { return false }

func (c *Cp) Run(_ context.Context, env *verb.Env, args shell.Args, _ *string) (string, error) {
	if args.Path == "" || args.Dest == "" {
		return "", usageErr(c)
	}
	return "", env.Store.Copy(env.Resolve(args.Path), env.Resolve(args.Dest))
}

type Mv struct{}

var _ verb.Handler = (*Mv)(nil)

func (m *Mv) Verb() shell.Verb    { return shell.VerbMv }
func (m *Mv) Description() string { return "move or rename a file or directory" }
func (m *Mv) Usage() string       { return "mv <src> <dest>" }
func (m *Mv) Tier() verb.Tier     { return verb.TierWrite }
func (m *Mv) PipeAware() bool     { return false }

// Run implements move as copy-then-delete. If deleting the original fails
// after the copy succeeded, the copy is removed again so the store is never
// left with a duplicate; a failure of that rollback is swallowed in favor
// of the original error.
func (m *Mv) Run(_ context.Context, env *verb.Env, args shell.Args, _ *string) (string, error) {
	if args.Path == "" || args.Dest == "" {
		return "", usageErr(m)
	}
	src := env.Resolve(args.Path)
	dst := env.Resolve(args.Dest)

	isDir, err := env.Store.IsDir(src)
	if err != nil {
		return "", err
	}
	if err := env.Store.Copy(src, dst); err != nil {
		return "", err
	}

	var delErr error
	if isDir {
		delErr = env.Store.DeleteDir(src)
	} else {
		delErr = env.Store.DeleteFile(src)
	}
	if delErr != nil {
		if isDir {
			_ = env.Store.DeleteDir(dst)
		} else {
			_ = env.Store.DeleteFile(dst)
		}
		return "", delErr
	}
	return "", nil
}
