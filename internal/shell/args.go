package shell

import "strconv"

// parseArgs applies a verb's grammar to its trailing tokens, scanning left
// to right. Tokens beginning with "-" are flags; the rest are positional.
// Unknown flags are ignored rather than rejected.
func parseArgs(v Verb, tokens []string) Args {
	var a Args

	// echo takes everything literally, dashes included.
	if v == VerbEcho {
		a.Text = joinTokens(tokens)
		return a
	}

	var positional []string
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if len(tok) > 1 && tok[0] == '-' {
			switch {
			case allDigits(tok[1:]):
				// -N shorthand; last one wins, same as a later -n.
				n, _ := strconv.Atoi(tok[1:])
				a.Lines = n
			case tok == "-n":
				if i+1 < len(tokens) {
					i++
					if n, err := strconv.Atoi(tokens[i]); err == nil {
						a.Lines = n
					}
				}
			case tok == "-i":
				a.CaseInsensitive = true
			case tok == "-v":
				a.InvertMatch = true
			case tok == "-l":
				setCount(&a, &a.CountLines)
			case tok == "-w":
				setCount(&a, &a.CountWords)
			case tok == "-c":
				setCount(&a, &a.CountChars)
			}
			continue
		}
		// head/tail take a trailing positional count (`head notes.txt 3`);
		// like the flags, a later count wins over an earlier one.
		if (v == VerbHead || v == VerbTail) && len(positional) > 0 && allDigits(tok) {
			n, _ := strconv.Atoi(tok)
			a.Lines = n
			continue
		}
		positional = append(positional, tok)
	}

	assignPositional(v, &a, positional)
	return a
}

// setCount implements the exclusive count-family rule: the first flag seen
// clears the whole family before setting its own field; later flags only
// add their own field.
func setCount(a *Args, field *bool) {
	if !a.CountSet {
		a.CountLines, a.CountWords, a.CountChars = false, false, false
		a.CountSet = true
	}
	*field = true
}

func assignPositional(v Verb, a *Args, positional []string) {
	switch v {
	case VerbCat:
		// One path is scalar; several become a list.
		if len(positional) == 1 {
			a.Path = positional[0]
		} else if len(positional) > 1 {
			a.Paths = positional
		}
	case VerbGrep:
		if len(positional) > 0 {
			a.Pattern = positional[0]
		}
		if len(positional) > 1 {
			a.Path = positional[1]
		}
	case VerbMv, VerbCp, VerbDiff:
		if len(positional) > 0 {
			a.Path = positional[0]
		}
		if len(positional) > 1 {
			a.Dest = positional[1]
		}
	case VerbWrite:
		if len(positional) > 0 {
			a.Path = positional[0]
		}
		if len(positional) > 1 {
			a.Text = joinTokens(positional[1:])
		}
	default:
		if len(positional) > 0 {
			a.Path = positional[0]
		}
	}
}

func joinTokens(tokens []string) string {
	out := ""
	for i, t := range tokens {
		if i > 0 {
			out += " "
		}
		out += t
	}
	return out
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
