package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandfs/sandsh/internal/shell"
	"github.com/sandfs/sandsh/internal/verb"
)

type Clear struct{}

var _ verb.Handler = (*Clear)(nil)

func (c *Clear) Verb() shell.Verb    { return shell.VerbClear }
func (c *Clear) Description() string { return "clear the screen" }
func (c *Clear) Usage() string       { return "clear" }
func (c *Clear) Tier() verb.Tier     { return verb.TierRead }
func (c *Clear) PipeAware() bool     { return false }

func (c *Clear) Run(_ context.Context, env *verb.Env, _ shell.Args, _ *string) (string, error) {
	if env.ClearScreen != nil {
		env.ClearScreen()
	}
	return "", nil
}

type Df struct{}

var _ verb.Handler = (*Df)(nil)

func (d *Df) Verb() shell.Verb    { return shell.VerbDf }
func (d *Df) Description() string { return "report storage usage and quota" }
func (d *Df) Usage() string       { return "df" }
func (d *Df) Tier() verb.Tier     { return verb.TierRead }
func (d *Df) PipeAware() bool     { return false }

func (d *Df) Run(_ context.Context, env *verb.Env, _ shell.Args, _ *string) (string, error) {
	used, quota, err := env.Store.Usage()
	if err != nil {
		return "", err
	}
	if quota <= 0 {
		return fmt.Sprintf("used %d bytes (no quota)", used), nil
	}
	return fmt.Sprintf("used %d of %d bytes (%d%%)", used, quota, used*100/quota), nil
}

type Reset struct{}

var _ verb.Handler = (*Reset)(nil)

func (r *Reset) Verb() shell.Verb    { return shell.VerbReset }
func (r *Reset) Description() string { return "delete every entry in the store" }
func (r *Reset) Usage() string       { return "reset" }
func (r *Reset) Tier() verb.Tier     { return verb.TierDangerous }
func (r *Reset) PipeAware() bool     { return false }

func (r *Reset) Run(_ context.Context, env *verb.Env, _ shell.Args, _ *string) (string, error) {
	if err := env.Store.Clear(); err != nil {
		return "", err
	}
	return "storage cleared", nil
}

// Help renders the verb catalog from the live registry, so its output never
// drifts from what is actually registered.
type Help struct {
	reg *verb.Registry
}

var _ verb.Handler = (*Help)(nil)

// NewHelp creates the help handler bound to a registry.
func NewHelp(reg *verb.Registry) *Help { return &Help{reg: reg} }

func (h *Help) Verb() shell.Verb    { return shell.VerbHelp }
func (h *Help) Description() string { return "show available commands" }
func (h *Help) Usage() string       { return "help [command]" }
func (h *Help) Tier() verb.Tier     { return verb.TierRead }
func (h *Help) PipeAware() bool     { return false }

func (h *Help) Run(_ context.Context, _ *verb.Env, args shell.Args, _ *string) (string, error) {
	if args.Path != "" {
		v, ok := shell.Lookup(args.Path)
		if !ok {
			return "", fmt.Errorf("unknown command: %s", args.Path)
		}
		target, err := h.reg.Lookup(v)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s — %s\nusage: %s", v, target.Description(), target.Usage()), nil
	}

	var out []string
	out = append(out, "available commands:")
	for _, target := range h.reg.All() {
		out = append(out, fmt.Sprintf("  %-8s %s", target.Verb(), target.Description()))
	}
	out = append(out, "", "commands can be piped: cat notes.txt | grep todo | sort")
	return strings.Join(out, "\n"), nil
}
