// Package verb holds the handler registry and the pipeline executor: one
// interface per verb implementation, a registry keyed by canonical verb,
// and tier gating over read/write/dangerous operations.
package verb

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sandfs/sandsh/internal/rules"
	"github.com/sandfs/sandsh/internal/shell"
	"github.com/sandfs/sandsh/internal/store"
)

// Tier represents the safety level of a verb.
type Tier int

const (
	TierRead      Tier = iota // read-only operations (ls, cat, grep)
	TierWrite                 // file mutations (write, mv, cp, mkdir)
	TierDangerous             // destructive operations (rm, rmdir, reset)
)

func (t Tier) String() string {
	switch t {
	case TierRead:
		return "read"
	case TierWrite:
		return "write"
	case TierDangerous:
		return "dangerous"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// ParseTier converts a string to a Tier.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "read":
		return TierRead, nil
	case "write":
		return TierWrite, nil
	case "dangerous":
		return TierDangerous, nil
	default:
		return 0, fmt.Errorf("unknown tier: %q", s)
	}
}

// Transfer is the host-side file picker collaborator used by import and
// export. A nil Transfer means the capability is unavailable in this
// session.
type Transfer interface {
	// Pick asks the host for a file to import and returns its name and
	// content.
	Pick(ctx context.Context) (name string, data []byte, err error)
	// Save hands a file to the host for download.
	Save(ctx context.Context, name string, data []byte) error
}

// Env carries the per-session state handlers operate on.
type Env struct {
	Store store.FileStore

	// Cwd points at the session's current directory (internal relative
	// form). cd mutates it; every handler resolves paths against it.
	Cwd *string

	// ClearScreen is invoked by the clear verb. Nil outside interactive
	// sessions.
	ClearScreen func()

	// Transfer is the import/export collaborator; may be nil.
	Transfer Transfer
}

// Resolve normalizes a user-supplied path against the session cwd.
func (e *Env) Resolve(arg string) string {
	cwd := ""
	if e.Cwd != nil {
		cwd = *e.Cwd
	}
	return store.Resolve(cwd, arg)
}

// Handler is the interface every verb implementation satisfies.
type Handler interface {
	// Verb returns the canonical verb this handler serves.
	Verb() shell.Verb

	// Description returns a one-line summary for help output.
	Description() string

	// Usage returns the argument synopsis, e.g. "head <path> [count]".
	Usage() string

	// Tier returns the safety classification.
	Tier() Tier

	// PipeAware reports whether the handler consumes piped stdin. The
	// executor never passes stdin to handlers that return false.
	PipeAware() bool

	// Run executes the verb. stdin is non-nil only mid-pipeline, when a
	// previous stage produced output. The returned string is the stage's
	// output and becomes the next stage's stdin.
	Run(ctx context.Context, env *Env, args shell.Args, stdin *string) (string, error)
}

// Registry maps canonical verbs to handlers and controls tier access.
type Registry struct {
	mu       sync.RWMutex
	handlers map[shell.Verb]Handler
	tiers    map[Tier]bool
	rules    *rules.RuleSet
}

// NewRegistry creates a registry with all tiers enabled except Dangerous.
// Hardcoded guard rules are always active.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[shell.Verb]Handler),
		tiers: map[Tier]bool{
			TierRead:      true,
			TierWrite:     true,
			TierDangerous: false,
		},
		rules: rules.NewRuleSet(rules.Hardcoded()...),
	}
}

// Register adds a handler to the registry.
func (r *Registry) Register(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[h.Verb()] = h
}

// Lookup returns the handler for a canonical verb.
func (r *Registry) Lookup(v shell.Verb) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[v]
	if !ok {
		return nil, fmt.Errorf("unknown command: %q", v)
	}
	return h, nil
}

// CheckTier returns an error if the given tier is not enabled.
func (r *Registry) CheckTier(t Tier) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.tiers[t] {
		return fmt.Errorf("tier %q is disabled", t)
	}
	return nil
}

// SetTier enables or disables a tier.
func (r *Registry) SetTier(t Tier, enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tiers[t] = enabled
}

// SetRules replaces the active rule set.
func (r *Registry) SetRules(rs *rules.RuleSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = rs
}

// CheckRules validates a stage against the guard rules.
func (r *Registry) CheckRules(v shell.Verb, args shell.Args) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.rules == nil {
		return nil
	}
	return r.rules.Check(v, args)
}

// All returns every registered handler sorted by verb name.
func (r *Registry) All() []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	hs := make([]Handler, 0, len(r.handlers))
	for _, h := range r.handlers {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i].Verb() < hs[j].Verb() })
	return hs
}
