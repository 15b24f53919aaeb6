// Package rules implements guard rules checked before any verb executes.
// Hardcoded rules always run and cannot be removed; config-driven rules are
// appended after them.
package rules

import "github.com/sandfs/sandsh/internal/shell"

// CheckFunc validates one parsed stage. Returns a non-nil error to block
// execution.
type CheckFunc func(v shell.Verb, args shell.Args) error

// RuleSet holds an ordered list of guard rules.
type RuleSet struct {
	hardcoded []CheckFunc
	config    []CheckFunc
}

// NewRuleSet creates a RuleSet with the given hardcoded rules.
func NewRuleSet(hardcoded ...CheckFunc) *RuleSet {
	return &RuleSet{hardcoded: hardcoded}
}

// AddConfig appends a config-driven rule.
func (rs *RuleSet) AddConfig(fn CheckFunc) {
	rs.config = append(rs.config, fn)
}

// Check runs all rules against the stage. Hardcoded rules run first.
func (rs *RuleSet) Check(v shell.Verb, args shell.Args) error {
	for _, fn := range rs.hardcoded {
		if err := fn(v, args); err != nil {
			return err
		}
	}
	for _, fn := range rs.config {
		if err := fn(v, args); err != nil {
			return err
		}
	}
	return nil
}

// stagePaths collects every path-like argument of a stage, whichever shape
// the grammar produced.
func stagePaths(args shell.Args) []string {
	var out []string
	if args.Path != "" {
		out = append(out, args.Path)
	}
	out = append(out, args.Paths...)
	if args.Dest != "" {
		out = append(out, args.Dest)
	}
	return out
}
