package term

import (
	"io"
	"strings"
	"testing"

	"github.com/sandfs/sandsh/internal/editor"
)

func decodeAll(t *testing.T, input string) []editor.Key {
	t.Helper()
	d := NewDecoder(strings.NewReader(input))
	var keys []editor.Key
	for {
		k, err := d.Next()
		if err == io.EOF {
			return keys
		}
		if err != nil {
			t.Fatal(err)
		}
		keys = append(keys, k)
	}
}

func TestDecodeRunes(t *testing.T) {
	keys := decodeAll(t, "abé")
	want := []editor.Key{
		{Type: editor.KeyRune, Rune: 'a'},
		{Type: editor.KeyRune, Rune: 'b'},
		{Type: editor.KeyRune, Rune: 'é'},
	}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d = %+v, want %+v", i, keys[i], want[i])
		}
	}
}

func TestDecodeControls(t *testing.T) {
	tests := []struct {
		input string
		want  editor.KeyType
	}{
		{"\r", editor.KeyEnter},
		{"\n", editor.KeyEnter},
		{"\x7f", editor.KeyBackspace},
		{"\b", editor.KeyBackspace},
		{"\x03", editor.KeyCtrlC},
		{"\x0c", editor.KeyCtrlL},
		{"\x1b[A", editor.KeyUp},
		{"\x1b[B", editor.KeyDown},
		{"\x1b[C", editor.KeyRight},
		{"\x1b[D", editor.KeyLeft},
		{"\x1b[H", editor.KeyHome},
		{"\x1b[F", editor.KeyEnd},
		{"\x1b[1~", editor.KeyHome},
		{"\x1b[7~", editor.KeyHome},
		{"\x1b[4~", editor.KeyEnd},
		{"\x1b[8~", editor.KeyEnd},
		{"\x1bOH", editor.KeyHome},
		{"\x1bOF", editor.KeyEnd},
	}
	for _, tt := range tests {
		keys := decodeAll(t, tt.input)
		if len(keys) != 1 || keys[0].Type != tt.want {
			t.Errorf("input %q decoded to %+v, want type %v", tt.input, keys, tt.want)
		}
	}
}

func TestDecodeCtrlDIsEOF(t *testing.T) {
	d := NewDecoder(strings.NewReader("\x04"))
	if _, err := d.Next(); err != io.EOF {
		t.Errorf("ctrl-d decoded to %v, want io.EOF", err)
	}
}

func TestDecodeSkipsUnknownSequences(t *testing.T) {
	// An unrecognized CSI and a stray control byte should vanish; the
	// surrounding runes survive.
	keys := decodeAll(t, "a\x1b[Z\x01b")
	if len(keys) != 2 || keys[0].Rune != 'a' || keys[1].Rune != 'b' {
		t.Errorf("got %+v", keys)
	}
}

func TestDecodeDeleteForwardIgnored(t *testing.T) {
	keys := decodeAll(t, "a\x1b[3~b")
	if len(keys) != 2 || keys[0].Rune != 'a' || keys[1].Rune != 'b' {
		t.Errorf("got %+v", keys)
	}
}
