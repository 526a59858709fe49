package core

// Blank is the marker stored in an empty cell
const Blank rune = ' '

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// Frame is a fixed-size grid of glyph cells, one per tick
// A Frame is built fresh every tick and handed to the renderer as a whole;
// the producer must not touch it after sending
type Frame struct {
	cols  int
	rows  int
	cells []rune // row-major, cells[y*cols+x]
}

// NewFrame creates an all-blank frame with the given dimensions
func NewFrame(cols, rows int) Frame {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	cells := make([]rune, cols*rows)
	for i := range cells {
		cells[i] = Blank
	}
	return Frame{
		cols:  cols,
		rows:  rows,
		cells: cells,
	}
}

// Cols returns the frame width
func (f Frame) Cols() int {
	return f.cols
}

// Rows returns the frame height
func (f Frame) Rows() int {
	return f.rows
}

// InBounds reports whether (x, y) addresses a cell of the frame
func (f Frame) InBounds(x, y int) bool {
	return x >= 0 && x < f.cols && y >= 0 && y < f.rows
}

// At returns the glyph at the given position, Blank when out of bounds
func (f Frame) At(x, y int) rune {
	if !f.InBounds(x, y) {
		return Blank
	}
	return f.cells[y*f.cols+x]
}

// Set stamps a glyph at the given position
// Last writer wins; returns false when the position is out of bounds
func (f *Frame) Set(x, y int, glyph rune) bool {
	if !f.InBounds(x, y) {
		return false
	}
	f.cells[y*f.cols+x] = glyph
	return true
}

// SameSize reports whether both frames have identical dimensions
func (f Frame) SameSize(other Frame) bool {
	return f.cols == other.cols && f.rows == other.rows
}

// Occupied returns the positions of all non-blank cells in row-major order
func (f Frame) Occupied() []Point {
	var points []Point
	for i, r := range f.cells {
		if r != Blank {
			points = append(points, Point{X: i % f.cols, Y: i / f.cols})
		}
	}
	return points
}

// Drawable is anything that can stamp itself onto a frame
// Drawing must not change the drawer's state
type Drawable interface {
	Draw(f *Frame)
}

// DrawAll stamps each drawable in order
func DrawAll(f *Frame, drawables ...Drawable) {
	for _, d := range drawables {
		d.Draw(f)
	}
}
