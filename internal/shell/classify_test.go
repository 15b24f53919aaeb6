package shell

import "testing"

func TestIsPipelineSyntax(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"cat file.txt", true},
		{"cat file.txt | grep pattern", true},
		{"unknown file.txt | grep pattern", false},
		{"What is in file.txt?", false},
		{"cat file.txt?", false},
		{"cat file.txt please", false},
		{"cat file.txt, please!", false},
		{"CAT file.txt", true},
		{"list docs", true},
		{"", false},
		{"   ", false},
		{"| grep x", false},
		{"tell me a story", false},
		// With a pipe present, the NL markers no longer apply: the first
		// segment's verb decides.
		{"grep what? file.txt | sort", true},
	}
	for _, tt := range tests {
		if got := IsPipelineSyntax(tt.input); got != tt.want {
			t.Errorf("IsPipelineSyntax(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		word string
		verb Verb
		ok   bool
	}{
		{"ls", VerbLs, true},
		{"list", VerbLs, true},
		{"list-directory", VerbLs, true},
		{"GREP", VerbGrep, true},
		{"search", VerbGrep, true},
		{"deduplicate", VerbUniq, true},
		{"storage-info", VerbDf, true},
		{"reset-all", VerbReset, true},
		{"frobnicate", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		v, ok := Lookup(tt.word)
		if ok != tt.ok || v != tt.verb {
			t.Errorf("Lookup(%q) = %q, %v, want %q, %v", tt.word, v, ok, tt.verb, tt.ok)
		}
	}
}
