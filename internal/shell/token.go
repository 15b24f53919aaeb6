package shell

import "strings"

// Tokenize splits a raw line into whitespace-separated tokens honoring
// single and double quotes. Quote characters are structural: they open and
// close a quoted span and are dropped from the token content. The other
// quote style inside a span is literal. There is no escape character; an
// unterminated quote consumes to end of input.
//
// Policy note: a token produced entirely from quotes is kept, so `""`
// yields one empty token. This is the shell-style policy applied uniformly
// (it lets `write f.txt ""` mean "empty content").
func Tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder
	inQuote := false
	var quote rune
	sawQuote := false

	flush := func() {
		if cur.Len() > 0 || sawQuote {
			tokens = append(tokens, cur.String())
		}
		cur.Reset()
		sawQuote = false
	}

	for _, r := range line {
		switch {
		case inQuote:
			if r == quote {
				inQuote = false
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			inQuote = true
			quote = r
			sawQuote = true
		case r == ' ' || r == '\t':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// SplitPipes splits a line on the pipe delimiter, but only where the
// delimiter occurs outside a quoted span. The quote scan runs across the
// whole line, so a pipe inside quotes in any segment never splits.
// Segments are returned raw (untrimmed); they may be empty.
func SplitPipes(line string) []string {
	var segs []string
	var cur strings.Builder
	inQuote := false
	var quote rune

	for _, r := range line {
		switch {
		case inQuote:
			if r == quote {
				inQuote = false
			}
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			inQuote = true
			quote = r
			cur.WriteRune(r)
		case r == '|':
			segs = append(segs, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	segs = append(segs, cur.String())
	return segs
}
