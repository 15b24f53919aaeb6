// Package shell implements the pure command-line interpreter: tokenization
// with quote handling, verb/alias resolution, per-verb argument grammars and
// pipeline parsing. It has no dependency on the store or the display, so the
// parser is testable in isolation.
package shell

// Verb is a canonical command name from the closed vocabulary.
type Verb string

const (
	VerbHelp   Verb = "help"
	VerbLs     Verb = "ls"
	VerbRead   Verb = "read"
	VerbCat    Verb = "cat"
	VerbMkdir  Verb = "mkdir"
	VerbTouch  Verb = "touch"
	VerbRm     Verb = "rm"
	VerbRmdir  Verb = "rmdir"
	VerbMv     Verb = "mv"
	VerbCp     Verb = "cp"
	VerbPwd    Verb = "pwd"
	VerbCd     Verb = "cd"
	VerbClear  Verb = "clear"
	VerbTree   Verb = "tree"
	VerbHead   Verb = "head"
	VerbTail   Verb = "tail"
	VerbGrep   Verb = "grep"
	VerbWc     Verb = "wc"
	VerbDiff   Verb = "diff"
	VerbSort   Verb = "sort"
	VerbUniq   Verb = "uniq"
	VerbEcho   Verb = "echo"
	VerbWrite  Verb = "write"
	VerbImport Verb = "import"
	VerbExport Verb = "export"
	VerbDf     Verb = "df"
	VerbReset  Verb = "reset"
)

// Args is the structured argument record a verb grammar produces. Zero
// values mean "unspecified": handlers apply their own defaults.
type Args struct {
	// Path holds the single positional path when exactly one was given.
	// Two or more positional paths land in Paths instead, leaving Path
	// empty. Callers must handle both shapes.
	Path  string
	Paths []string

	// Dest is the second positional path for mv, cp and diff.
	Dest string

	// Pattern is the first positional for grep.
	Pattern string

	// Text is the joined free text for echo and write content.
	Text string

	// Lines is the requested count for head/tail (-n N or -N). 0 = unset.
	Lines int

	CaseInsensitive bool // grep -i
	InvertMatch     bool // grep -v

	// wc count family. CountSet records that at least one of -l/-w/-c was
	// given; with CountSet false all three are reported.
	CountLines bool
	CountWords bool
	CountChars bool
	CountSet   bool
}

// Stage is one verb invocation inside a pipeline. Stages are immutable once
// parsed.
type Stage struct {
	Verb Verb
	Args Args
}

// Pipeline is the parse result for one input line.
//
// IsPipeline false means the line is not expressible as a pipeline of known
// verbs, which is a routing signal rather than a failure. When Err is
// non-nil, Stages is empty and the pipeline must not be executed.
type Pipeline struct {
	IsPipeline bool
	Stages     []Stage
	Err        error
}
