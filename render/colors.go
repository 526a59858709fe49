package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/parameter"
)

// Palette maps glyphs to cell styles
type Palette struct {
	Background tcell.Style
	Glyphs     map[rune]tcell.Style
}

// DefaultPalette colors each entity glyph on a black field
func DefaultPalette() *Palette {
	bg := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	return &Palette{
		Background: bg,
		Glyphs: map[rune]tcell.Style{
			parameter.GlyphPlayer:     bg.Foreground(tcell.ColorLime).Bold(true),
			parameter.GlyphShot:       bg.Foreground(tcell.ColorYellow),
			parameter.GlyphExplosion:  bg.Foreground(tcell.ColorRed).Bold(true),
			parameter.GlyphInvader:    bg.Foreground(tcell.ColorFuchsia),
			parameter.GlyphInvaderAlt: bg.Foreground(tcell.ColorAqua),
		},
	}
}

// Style returns the style for glyph, falling back to the background
func (p *Palette) Style(glyph rune) tcell.Style {
	if s, ok := p.Glyphs[glyph]; ok {
		return s
	}
	return p.Background
}
