// Package editor implements the line-editing input state machine: a
// cursor-addressable buffer with history navigation, rendered through an
// abstract display sink. It knows nothing about terminals; raw byte
// decoding lives in the term package.
package editor

// KeyType classifies a decoded input event.
type KeyType int

const (
	KeyRune KeyType = iota
	KeyEnter
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyCtrlC
	KeyCtrlL
)

// Key is one discrete input event. Rune is set only for KeyRune.
type Key struct {
	Type KeyType
	Rune rune
}

// Display is the rendering sink the editor draws on. Writes are raw bytes
// and may contain ANSI escape sequences; the styling is cosmetic, not a
// compatibility surface.
type Display interface {
	WriteString(s string)
}
