// Package term bridges the editor to a real terminal: raw-mode control via
// golang.org/x/term and a decoder turning the raw byte stream into discrete
// key events.
package term

import (
	"bufio"
	"io"

	"github.com/sandfs/sandsh/internal/editor"
)

const (
	byteCtrlC     = 0x03
	byteCtrlD     = 0x04
	byteCtrlL     = 0x0c
	byteEnter     = 0x0d
	byteNewline   = 0x0a
	byteEscape    = 0x1b
	byteBackspace = 0x7f
)

// Decoder reads bytes and yields key events. Escape sequences are consumed
// greedily; an unrecognized sequence is dropped rather than leaked as
// literal runes.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder wraps r for key decoding.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Next returns the next key event. io.EOF and Ctrl+D both surface as io.EOF.
func (d *Decoder) Next() (editor.Key, error) {
	for {
		r, _, err := d.r.ReadRune()
		if err != nil {
			return editor.Key{}, err
		}
		switch r {
		case byteCtrlC:
			return editor.Key{Type: editor.KeyCtrlC}, nil
		case byteCtrlD:
			return editor.Key{}, io.EOF
		case byteCtrlL:
			return editor.Key{Type: editor.KeyCtrlL}, nil
		case byteEnter, byteNewline:
			return editor.Key{Type: editor.KeyEnter}, nil
		case byteBackspace, '\b':
			return editor.Key{Type: editor.KeyBackspace}, nil
		case byteEscape:
			if k, ok := d.escape(); ok {
				return k, nil
			}
			// bare escape or unknown sequence: swallow and keep reading
		default:
			if r < 0x20 {
				continue // other control bytes are ignored
			}
			return editor.Key{Type: editor.KeyRune, Rune: r}, nil
		}
	}
}

// escape decodes the tail of an ESC-initiated sequence.
func (d *Decoder) escape() (editor.Key, bool) {
	b, err := d.r.ReadByte()
	if err != nil {
		return editor.Key{}, false
	}
	switch b {
	case '[':
		return d.csi()
	case 'O':
		// SS3 form sent by some terminals for home/end.
		c, err := d.r.ReadByte()
		if err != nil {
			return editor.Key{}, false
		}
		switch c {
		case 'H':
			return editor.Key{Type: editor.KeyHome}, true
		case 'F':
			return editor.Key{Type: editor.KeyEnd}, true
		}
		return editor.Key{}, false
	}
	return editor.Key{}, false
}

func (d *Decoder) csi() (editor.Key, bool) {
	b, err := d.r.ReadByte()
	if err != nil {
		return editor.Key{}, false
	}
	switch b {
	case 'A':
		return editor.Key{Type: editor.KeyUp}, true
	case 'B':
		return editor.Key{Type: editor.KeyDown}, true
	case 'C':
		return editor.Key{Type: editor.KeyRight}, true
	case 'D':
		return editor.Key{Type: editor.KeyLeft}, true
	case 'H':
		return editor.Key{Type: editor.KeyHome}, true
	case 'F':
		return editor.Key{Type: editor.KeyEnd}, true
	case '1', '7':
		return d.tilde(editor.KeyHome)
	case '4', '8':
		return d.tilde(editor.KeyEnd)
	case '3':
		// delete-forward; consume the tilde but emit nothing
		_, _ = d.tilde(editor.KeyRune)
		return editor.Key{}, false
	}
	return editor.Key{}, false
}

// tilde consumes the trailing '~' of a numeric CSI sequence.
func (d *Decoder) tilde(t editor.KeyType) (editor.Key, bool) {
	b, err := d.r.ReadByte()
	if err != nil || b != '~' {
		return editor.Key{}, false
	}
	return editor.Key{Type: t}, true
}
