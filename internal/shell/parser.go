package shell

import (
	"fmt"
	"strings"
)

// Parse turns a raw input line into a Pipeline.
//
// A line the classifier rejects comes back with IsPipeline false and no
// error: that is a routing signal for the caller, not a failure. A
// recognized pipeline that fails to parse comes back with IsPipeline true,
// zero stages and a terminal error naming the first offending segment;
// errors are never accumulated past the first.
func Parse(line string) *Pipeline {
	if !IsPipelineSyntax(line) {
		return &Pipeline{}
	}

	var segments []string
	for _, seg := range SplitPipes(strings.TrimSpace(line)) {
		if strings.TrimSpace(seg) != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return &Pipeline{}
	}

	p := &Pipeline{IsPipeline: true}
	for _, seg := range segments {
		tokens := Tokenize(seg)
		if len(tokens) == 0 {
			continue
		}
		v, ok := Lookup(tokens[0])
		if !ok {
			p.Stages = nil
			p.Err = fmt.Errorf("unknown command: %s", tokens[0])
			return p
		}
		p.Stages = append(p.Stages, Stage{Verb: v, Args: parseArgs(v, tokens[1:])})
	}
	if len(p.Stages) == 0 {
		return &Pipeline{}
	}

	// The first stage has nothing to pipe from, so verbs that read the
	// store must name their own source. Checked once, at parse time.
	first := p.Stages[0]
	if requiresSource[first.Verb] && first.Args.Path == "" && len(first.Args.Paths) == 0 {
		p.Stages = nil
		p.Err = fmt.Errorf("%s requires a file path", first.Verb)
	}
	return p
}
