package input

import "github.com/lixenwraith/term-snake/core"

// Command discriminates what a key code asks the game to do
type Command uint8

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandRestart // Enter, only honored while dead
	CommandQuit    // q, Ctrl+C
)

var commandNames = [...]string{
	CommandNone:    "None",
	CommandUp:      "Up",
	CommandDown:    "Down",
	CommandLeft:    "Left",
	CommandRight:   "Right",
	CommandRestart: "Restart",
	CommandQuit:    "Quit",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "Unknown"
}

// Direction returns the unit vector of a direction command
// ok is false for non-directional commands
func (c Command) Direction() (dir core.Point, ok bool) {
	switch c {
	case CommandUp:
		return core.Up, true
	case CommandDown:
		return core.Down, true
	case CommandLeft:
		return core.Left, true
	case CommandRight:
		return core.Right, true
	}
	return core.Point{}, false
}

// KeyTable maps key codes to commands
// Arrow codes and their letter codes are synonyms
type KeyTable map[Code]Command

// DefaultKeyTable returns the fixed bindings: arrows, the ",oae" letter cluster, Enter and q
func DefaultKeyTable() KeyTable {
	return KeyTable{
		CodeArrowUp:    CommandUp,
		CodeArrowDown:  CommandDown,
		CodeArrowLeft:  CommandLeft,
		CodeArrowRight: CommandRight,
		RuneCode(','):  CommandUp,
		RuneCode('o'):  CommandDown,
		RuneCode('a'):  CommandLeft,
		RuneCode('e'):  CommandRight,
		CodeEnter:      CommandRestart,
		RuneCode('q'):  CommandQuit,
		CodeInterrupt:  CommandQuit,
	}
}

// Resolve returns the command bound to code, CommandNone when unbound
func (kt KeyTable) Resolve(code Code) Command {
	return kt[code]
}
