package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to commands
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Command

	// Printable runes
	Runes map[rune]Command
}

// DefaultKeyTable returns arrow, vi-style and space bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Command{
			tcell.KeyLeft:   CommandMoveLeft,
			tcell.KeyRight:  CommandMoveRight,
			tcell.KeyUp:     CommandFire,
			tcell.KeyEnter:  CommandFire,
			tcell.KeyEscape: CommandQuit,
			tcell.KeyCtrlC:  CommandQuit,
			tcell.KeyCtrlQ:  CommandQuit,
		},
		Runes: map[rune]Command{
			'h': CommandMoveLeft,
			'a': CommandMoveLeft,
			'l': CommandMoveRight,
			'd': CommandMoveRight,
			'k': CommandFire,
			' ': CommandFire,
			'q': CommandQuit,
		},
	}
}

// Lookup translates a key event; ok is false for unbound keys
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Command, bool) {
	if ev.Key() == tcell.KeyRune {
		c, ok := kt.Runes[ev.Rune()]
		return c, ok
	}
	c, ok := kt.SpecialKeys[ev.Key()]
	return c, ok
}
