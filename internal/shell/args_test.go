package shell

import (
	"reflect"
	"testing"
)

func TestParseArgsGrep(t *testing.T) {
	a := parseArgs(VerbGrep, []string{"-i", "-v", "test", "file.txt"})
	want := Args{CaseInsensitive: true, InvertMatch: true, Pattern: "test", Path: "file.txt"}
	if !reflect.DeepEqual(a, want) {
		t.Errorf("got %+v, want %+v", a, want)
	}
}

func TestParseArgsCountFlag(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		lines  int
		path   string
	}{
		{"dash n", []string{"-n", "20", "file.txt"}, 20, "file.txt"},
		{"shorthand", []string{"-20", "file.txt"}, 20, "file.txt"},
		{"last wins n then shorthand", []string{"-n", "5", "-20", "file.txt"}, 20, "file.txt"},
		{"last wins shorthand then n", []string{"-20", "-n", "5", "file.txt"}, 5, "file.txt"},
		{"non-numeric n value left unset", []string{"-n", "x", "file.txt"}, 0, "file.txt"},
		{"no flag", []string{"file.txt"}, 0, "file.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := parseArgs(VerbHead, tt.tokens)
			if a.Lines != tt.lines || a.Path != tt.path {
				t.Errorf("got lines=%d path=%q, want lines=%d path=%q", a.Lines, a.Path, tt.lines, tt.path)
			}
		})
	}
}

func TestParseArgsHeadTailPositionalCount(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		lines  int
		path   string
	}{
		{"trailing count", []string{"big.txt", "3"}, 3, "big.txt"},
		{"count after flag wins", []string{"-n", "5", "big.txt", "3"}, 3, "big.txt"},
		{"flag after count wins", []string{"big.txt", "3", "-n", "5"}, 5, "big.txt"},
		{"non-numeric trailing token ignored", []string{"big.txt", "bogus"}, 0, "big.txt"},
		{"lone number stays a path", []string{"3"}, 0, "3"},
	}
	for _, v := range []Verb{VerbHead, VerbTail} {
		for _, tt := range tests {
			t.Run(string(v)+" "+tt.name, func(t *testing.T) {
				a := parseArgs(v, tt.tokens)
				if a.Lines != tt.lines || a.Path != tt.path {
					t.Errorf("got lines=%d path=%q, want lines=%d path=%q", a.Lines, a.Path, tt.lines, tt.path)
				}
			})
		}
	}
}

func TestParseArgsCatScalarVsList(t *testing.T) {
	one := parseArgs(VerbCat, []string{"file.txt"})
	if one.Path != "file.txt" || one.Paths != nil {
		t.Errorf("single path: got %+v", one)
	}

	two := parseArgs(VerbCat, []string{"file1.txt", "file2.txt"})
	if two.Path != "" || !reflect.DeepEqual(two.Paths, []string{"file1.txt", "file2.txt"}) {
		t.Errorf("two paths: got %+v", two)
	}
}

func TestParseArgsCountFamily(t *testing.T) {
	tests := []struct {
		name                string
		tokens              []string
		lines, words, chars bool
		set                 bool
	}{
		{"none means all", nil, false, false, false, false},
		{"lines only", []string{"-l", "f"}, true, false, false, true},
		{"first clears then adds", []string{"-w", "-c", "f"}, false, true, true, true},
		{"all three explicit", []string{"-l", "-w", "-c", "f"}, true, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := parseArgs(VerbWc, tt.tokens)
			if a.CountLines != tt.lines || a.CountWords != tt.words || a.CountChars != tt.chars || a.CountSet != tt.set {
				t.Errorf("got %+v", a)
			}
		})
	}
}

func TestParseArgsTwoPathVerbs(t *testing.T) {
	for _, v := range []Verb{VerbMv, VerbCp, VerbDiff} {
		a := parseArgs(v, []string{"a.txt", "b.txt"})
		if a.Path != "a.txt" || a.Dest != "b.txt" {
			t.Errorf("%s: got %+v", v, a)
		}
	}
}

func TestParseArgsEchoAndWrite(t *testing.T) {
	e := parseArgs(VerbEcho, []string{"-n", "hello", "world"})
	if e.Text != "-n hello world" {
		t.Errorf("echo keeps dashes literal, got %q", e.Text)
	}

	w := parseArgs(VerbWrite, []string{"f.txt", "hello", "world"})
	if w.Path != "f.txt" || w.Text != "hello world" {
		t.Errorf("write: got %+v", w)
	}

	empty := parseArgs(VerbWrite, []string{"f.txt"})
	if empty.Path != "f.txt" || empty.Text != "" {
		t.Errorf("write without content: got %+v", empty)
	}
}
