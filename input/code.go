package input

// Code is an opaque key code produced by the terminal adapter
// Printable keys use their rune value, special keys live above the Unicode range
type Code int32

const (
	// CodeNone is the sentinel returned by Pop on an empty queue
	CodeNone Code = -1

	// CodeEnter is the line-feed code the adapter emits for Enter
	CodeEnter Code = '\n'
)

const codeSpecialBase Code = 0x110000

// Special key codes
const (
	CodeArrowUp Code = codeSpecialBase + iota
	CodeArrowDown
	CodeArrowLeft
	CodeArrowRight
	CodeInterrupt // Ctrl+C in raw mode
)

// RuneCode returns the code for a printable key
func RuneCode(r rune) Code {
	return Code(r)
}
