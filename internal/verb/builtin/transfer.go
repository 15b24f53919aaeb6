package builtin

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandfs/sandsh/internal/shell"
	"github.com/sandfs/sandsh/internal/store"
	"github.com/sandfs/sandsh/internal/verb"
)

var errNoTransfer = errors.New("not available in this session")

type Import struct{}

var _ verb.Handler = (*Import)(nil)

func (i *Import) Verb() shell.Verb    { return shell.VerbImport }
func (i *Import) Description() string { return "import a file from the host" }
func (i *Import) Usage() string       { return "import" }
func (i *Import) Tier() verb.Tier     { return verb.TierWrite }
func (i *Import) PipeAware() bool     { return false }

func (i *Import) Run(ctx context.Context, env *verb.Env, _ shell.Args, _ *string) (string, error) {
	if env.Transfer == nil {
		return "", fmt.Errorf("import: %w", errNoTransfer)
	}
	name, data, err := env.Transfer.Pick(ctx)
	if err != nil {
		return "", err
	}
	if err := env.Store.Write(env.Resolve(name), string(data)); err != nil {
		return "", err
	}
	return fmt.Sprintf("imported %s (%d bytes)", name, len(data)), nil
}

type Export struct{}

var _ verb.Handler = (*Export)(nil)

func (e *Export) Verb() shell.Verb    { return shell.VerbExport }
func (e *Export) Description() string { return "export a file to the host" }
func (e *Export) Usage() string       { return "export <path>" }
func (e *Export) Tier() verb.Tier     { return verb.TierRead }
func (e *Export) PipeAware() bool     { return false }

func (e *Export) Run(ctx context.Context, env *verb.Env, args shell.Args, _ *string) (string, error) {
	if args.Path == "" {
		return "", usageErr(e)
	}
	if env.Transfer == nil {
		return "", fmt.Errorf("export: %w", errNoTransfer)
	}
	p := env.Resolve(args.Path)
	content, err := env.Store.Read(p)
	if err != nil {
		return "", err
	}
	if err := env.Transfer.Save(ctx, store.Base(p), []byte(content)); err != nil {
		return "", err
	}
	return fmt.Sprintf("exported %s (%d bytes)", store.Base(p), len(content)), nil
}
