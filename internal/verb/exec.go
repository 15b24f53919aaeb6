package verb

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandfs/sandsh/internal/shell"
)

// Execute runs a parsed pipeline stage by stage. The output of stage i
// becomes the stdin of stage i+1; stages run strictly sequentially and the
// first failure aborts everything after it. A single-stage pipeline behaves
// exactly like running the command directly: no stdin is supplied to stage
// one.
func Execute(ctx context.Context, reg *Registry, env *Env, p *shell.Pipeline) (string, error) {
	if p.Err != nil {
		return "", p.Err
	}
	if !p.IsPipeline || len(p.Stages) == 0 {
		return "", errors.New("not a pipeline")
	}

	var stdin *string
	var out string
	for _, st := range p.Stages {
		h, err := reg.Lookup(st.Verb)
		if err != nil {
			return "", err
		}
		if err := reg.CheckTier(h.Tier()); err != nil {
			return "", fmt.Errorf("%s: %w", st.Verb, err)
		}
		if err := reg.CheckRules(st.Verb, st.Args); err != nil {
			return "", fmt.Errorf("%s: %w", st.Verb, err)
		}

		in := stdin
		if !h.PipeAware() {
			in = nil
		}
		out, err = h.Run(ctx, env, st.Args, in)
		if err != nil {
			return "", fmt.Errorf("%s: %w", st.Verb, err)
		}

		next := out
		stdin = &next
	}
	return out, nil
}
