package core

// Key is a terminal-independent key code
// Terminal adapters translate their native events into Key values
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyD
	KeyW
	KeyS
	KeySpace
	KeyEscape
	KeyEnter
	KeyG
	KeyM
	KeyR
	KeyQ
	KeyN

	keyCount
)

// KeyCount is the number of defined keys, usable as array size
const KeyCount = int(keyCount)

// KeyFromRune maps a printable rune to a Key, case-insensitive
func KeyFromRune(r rune) Key {
	switch r {
	case 'a', 'A':
		return KeyA
	case 'd', 'D':
		return KeyD
	case 'w', 'W':
		return KeyW
	case 's', 'S':
		return KeyS
	case 'g', 'G':
		return KeyG
	case 'm', 'M':
		return KeyM
	case 'r', 'R':
		return KeyR
	case 'q', 'Q':
		return KeyQ
	case 'n', 'N':
		return KeyN
	case ' ':
		return KeySpace
	default:
		return KeyNone
	}
}
