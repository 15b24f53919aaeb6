package shell

import "strings"

// IsPipelineSyntax decides whether a raw line is expressible as a pipeline
// of known verbs, as opposed to free-form text that should be routed
// elsewhere. A line with a pipe qualifies when its first segment starts with
// a known verb or alias. A line without a pipe additionally must not carry
// natural-language markers: a question mark, or the word "please". The
// heuristic is deliberately conservative: misrouting natural language into
// the parse-error path is worse than falling back.
func IsPipelineSyntax(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	if strings.Contains(trimmed, "|") {
		first, _, _ := strings.Cut(trimmed, "|")
		return startsWithVerb(first)
	}

	if !startsWithVerb(trimmed) {
		return false
	}
	if strings.Contains(trimmed, "?") {
		return false
	}
	for _, w := range strings.Fields(trimmed) {
		if strings.EqualFold(strings.Trim(w, ".,!;:"), "please") {
			return false
		}
	}
	return true
}

func startsWithVerb(segment string) bool {
	fields := strings.Fields(segment)
	if len(fields) == 0 {
		return false
	}
	_, ok := Lookup(fields[0])
	return ok
}
