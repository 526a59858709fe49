package render

import "github.com/lixenwraith/invaders/core"

// CellChange is a single cell that differs between two frames
type CellChange struct {
	X, Y  int
	Glyph rune
}

// Diff returns the cells of cur that differ from prev in row-major order
// Frames of different size produce every cell of cur
func Diff(prev, cur core.Frame) []CellChange {
	full := !prev.SameSize(cur)

	var changes []CellChange
	for y := 0; y < cur.Rows(); y++ {
		for x := 0; x < cur.Cols(); x++ {
			g := cur.At(x, y)
			if full || g != prev.At(x, y) {
				changes = append(changes, CellChange{X: x, Y: y, Glyph: g})
			}
		}
	}
	return changes
}

// All returns every cell of f
func All(f core.Frame) []CellChange {
	changes := make([]CellChange, 0, f.Cols()*f.Rows())
	for y := 0; y < f.Rows(); y++ {
		for x := 0; x < f.Cols(); x++ {
			changes = append(changes, CellChange{X: x, Y: y, Glyph: f.At(x, y)})
		}
	}
	return changes
}
