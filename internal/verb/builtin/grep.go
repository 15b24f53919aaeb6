package builtin

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/sandfs/sandsh/internal/shell"
	"github.com/sandfs/sandsh/internal/verb"
)

type Grep struct{}

var _ verb.Handler = (*Grep)(nil)

func (g *Grep) Verb() shell.Verb    { return shell.VerbGrep }
func (g *Grep) Description() string { return "print lines matching a pattern" }
func (g *Grep) Usage() string       { return "grep [-i] [-v] <pattern> [path]" }
func (g *Grep) Tier() verb.Tier     { return verb.TierRead }
func (g *Grep) PipeAware() bool     { return true }

func (g *Grep) Run(_ context.Context, env *verb.Env, args shell.Args, stdin *string) (string, error) {
	if args.Pattern == "" {
		return "", usageErr(g)
	}
	// The pattern is a case-insensitive regular expression by default;
	// -i is accepted for familiarity but changes nothing.
	re, err := regexp.Compile("(?i)" + args.Pattern)
	if err != nil {
		return "", fmt.Errorf("invalid pattern %q: %w", args.Pattern, err)
	}

	content, fromFile, err := source(env, args, stdin, usageErr(g))
	if err != nil {
		return "", err
	}

	var out []string
	for i, ln := range splitLines(content) {
		matched := re.MatchString(ln)
		if args.InvertMatch {
			matched = !matched
		}
		if !matched {
			continue
		}
		if fromFile {
			// Direct reads carry a line-number prefix; piped input
			// stays bare so later stages see clean lines.
			out = append(out, fmt.Sprintf("%d:%s", i+1, ln))
		} else {
			out = append(out, ln)
		}
	}
	return strings.Join(out, "\n"), nil
}
