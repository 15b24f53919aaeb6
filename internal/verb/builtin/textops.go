package builtin

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sandfs/sandsh/internal/shell"
	"github.com/sandfs/sandsh/internal/verb"
)

// collator backs the sort verb: locale-aware line comparison.
var collator = collate.New(language.Und)

type Sort struct{}

var _ verb.Handler = (*Sort)(nil)

func (s *Sort) Verb() shell.Verb    { return shell.VerbSort }
func (s *Sort) Description() string { return "sort lines of a file or piped input" }
func (s *Sort) Usage() string       { return "sort <path>" }
func (s *Sort) Tier() verb.Tier     { return verb.TierRead }
func (s *Sort) PipeAware() bool     { return true }

func (s *Sort) Run(_ context.Context, env *verb.Env, args shell.Args, stdin *string) (string, error) {
	content, _, err := source(env, args, stdin, usageErr(s))
	if err != nil {
		return "", err
	}
	lines := splitLines(content)
	sort.SliceStable(lines, func(i, j int) bool {
		return collator.CompareString(lines[i], lines[j]) < 0
	})
	return strings.Join(lines, "\n"), nil
}

type Uniq struct{}

var _ verb.Handler = (*Uniq)(nil)

func (u *Uniq) Verb() shell.Verb    { return shell.VerbUniq }
func (u *Uniq) Description() string { return "drop adjacent duplicate lines" }
func (u *Uniq) Usage() string       { return "uniq <path>" }
func (u *Uniq) Tier() verb.Tier     { return verb.TierRead }
func (u *Uniq) PipeAware() bool     { return true }

func (u *Uniq) Run(_ context.Context, env *verb.Env, args shell.Args, stdin *string) (string, error) {
	content, _, err := source(env, args, stdin, usageErr(u))
	if err != nil {
		return "", err
	}
	// A line is dropped only when identical to the previously emitted
	// line (adjacent-duplicate semantics, not a global dedup).
	var out []string
	for _, ln := range splitLines(content) {
		if len(out) > 0 && out[len(out)-1] == ln {
			continue
		}
		out = append(out, ln)
	}
	return strings.Join(out, "\n"), nil
}

type Wc struct{}

var _ verb.Handler = (*Wc)(nil)

func (w *Wc) Verb() shell.Verb    { return shell.VerbWc }
func (w *Wc) Description() string { return "count lines, words and characters" }
func (w *Wc) Usage() string       { return "wc [-l] [-w] [-c] <path>" }
func (w *Wc) Tier() verb.Tier     { return verb.TierRead }
func (w *Wc) PipeAware() bool     { return true }

func (w *Wc) Run(_ context.Context, env *verb.Env, args shell.Args, stdin *string) (string, error) {
	content, _, err := source(env, args, stdin, usageErr(w))
	if err != nil {
		return "", err
	}

	// Line count is the newline count, matching wc rather than a split.
	// Character count is raw bytes, like wc -c.
	lineCount := strings.Count(content, "\n")
	wordCount := len(strings.Fields(content))
	charCount := len(content)

	// Unspecified means all three, in the fixed order lines, words, chars.
	showLines, showWords, showChars := true, true, true
	if args.CountSet {
		showLines, showWords, showChars = args.CountLines, args.CountWords, args.CountChars
	}

	var fields []string
	if showLines {
		fields = append(fields, strconv.Itoa(lineCount))
	}
	if showWords {
		fields = append(fields, strconv.Itoa(wordCount))
	}
	if showChars {
		fields = append(fields, strconv.Itoa(charCount))
	}
	return strings.Join(fields, " "), nil
}
