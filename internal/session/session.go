// Package session binds one user's shell state together: a file store, a
// working directory, the verb registry, and an optional audit trail. One
// pipeline is in flight at a time; Submit does not return until the
// pipeline has fully settled.
package session

import (
	"context"
	"time"

	"github.com/sandfs/sandsh/internal/audit"
	"github.com/sandfs/sandsh/internal/shell"
	"github.com/sandfs/sandsh/internal/store"
	"github.com/sandfs/sandsh/internal/verb"
)

// Fallback handles a line the classifier routed away from the pipeline
// path. It returns the text to show the user.
type Fallback func(line string) string

// DefaultFallback is used when no fallback is configured.
func DefaultFallback(line string) string {
	return `not a command; type "help" to see what is available`
}

// Session is one user's shell.
type Session struct {
	reg *verb.Registry
	env *verb.Env
	cwd string

	fallback Fallback
	auditLog *audit.Logger // nil disables auditing
}

// Option configures a Session.
type Option func(*Session)

// WithFallback installs a handler for non-command input.
func WithFallback(f Fallback) Option {
	return func(s *Session) { s.fallback = f }
}

// WithAudit records every executed pipeline to the given logger.
func WithAudit(l *audit.Logger) Option {
	return func(s *Session) { s.auditLog = l }
}

// WithClearScreen wires the clear verb to the display.
func WithClearScreen(fn func()) Option {
	return func(s *Session) { s.env.ClearScreen = fn }
}

// WithTransfer wires the import/export collaborator.
func WithTransfer(t verb.Transfer) Option {
	return func(s *Session) { s.env.Transfer = t }
}

// New creates a session rooted at the store's top directory.
func New(st store.FileStore, reg *verb.Registry, opts ...Option) *Session {
	s := &Session{
		reg:      reg,
		fallback: DefaultFallback,
	}
	s.env = &verb.Env{Store: st, Cwd: &s.cwd}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Env exposes the execution environment, for callers that need to wire
// collaborators after construction.
func (s *Session) Env() *verb.Env { return s.env }

// Cwd returns the current directory in user-facing form.
func (s *Session) Cwd() string { return "/" + s.cwd }

// Submit parses and executes one input line. Non-command lines go to the
// fallback and never touch the store. The returned string is the visible
// result; err is non-nil for parse, usage, guard, and store failures.
func (s *Session) Submit(ctx context.Context, line string) (string, error) {
	p := shell.Parse(line)
	if !p.IsPipeline {
		return s.fallback(line), nil
	}

	start := time.Now()
	out, err := verb.Execute(ctx, s.reg, s.env, p)
	s.record(line, p, err, time.Since(start))
	if err != nil {
		return "", err
	}
	return out, nil
}

func (s *Session) record(line string, p *shell.Pipeline, execErr error, d time.Duration) {
	if s.auditLog == nil {
		return
	}
	verbs := make([]string, 0, len(p.Stages))
	tiers := make([]string, 0, len(p.Stages))
	for _, st := range p.Stages {
		verbs = append(verbs, string(st.Verb))
		tier := ""
		if h, err := s.reg.Lookup(st.Verb); err == nil {
			tier = h.Tier().String()
		}
		tiers = append(tiers, tier)
	}
	errMsg := ""
	if execErr != nil {
		errMsg = execErr.Error()
	}
	// Audit failures must not break the session; the log is advisory.
	_ = s.auditLog.Log(line, verbs, tiers, s.cwd, errMsg, d)
}
