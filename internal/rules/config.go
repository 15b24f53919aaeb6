package rules

import (
	"fmt"
	"path"

	"github.com/sandfs/sandsh/internal/shell"
)

// VerbRuleConfig represents one verb's rules from YAML config.
type VerbRuleConfig struct {
	// Disabled blocks the verb entirely.
	Disabled bool `yaml:"disabled"`
	// DenyPaths are path.Match globs; a stage touching a matching path is
	// refused.
	DenyPaths []string `yaml:"deny_paths"`
}

// CompileVerbRule turns a single verb's config into CheckFuncs. The name is
// resolved through the alias table so config may use any accepted spelling.
func CompileVerbRule(name string, cfg VerbRuleConfig) ([]CheckFunc, error) {
	canonical, ok := shell.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("rules: unknown verb %q", name)
	}

	var fns []CheckFunc
	if cfg.Disabled {
		fns = append(fns, func(v shell.Verb, _ shell.Args) error {
			if v != canonical {
				return nil
			}
			return fmt.Errorf("%s is disabled (config rule)", canonical)
		})
	}
	if len(cfg.DenyPaths) > 0 {
		globs := cfg.DenyPaths
		fns = append(fns, func(v shell.Verb, args shell.Args) error {
			if v != canonical {
				return nil
			}
			for _, p := range stagePaths(args) {
				for _, g := range globs {
					if ok, _ := path.Match(g, p); ok {
						return fmt.Errorf("%s: path %q is protected (config rule)", canonical, p)
					}
				}
			}
			return nil
		})
	}
	return fns, nil
}
