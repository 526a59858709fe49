package input

// Command is a discrete player instruction consumed by the game loop
type Command uint8

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandFire
	CommandQuit
)

// String returns the command name
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandMoveLeft:
		return "move-left"
	case CommandMoveRight:
		return "move-right"
	case CommandFire:
		return "fire"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Source supplies commands without blocking
// Poll returns CommandNone once no more input is pending
type Source interface {
	Poll() Command
}

// Script is a Source replaying a fixed command sequence, one per Poll
// CommandNone entries split the sequence into per-tick batches
type Script struct {
	commands []Command
}

// NewScript creates a replaying source
func NewScript(commands ...Command) *Script {
	return &Script{commands: commands}
}

// Poll implements Source
func (s *Script) Poll() Command {
	if len(s.commands) == 0 {
		return CommandNone
	}
	c := s.commands[0]
	s.commands = s.commands[1:]
	return c
}

// Pending returns how many commands are left
func (s *Script) Pending() int {
	return len(s.commands)
}
