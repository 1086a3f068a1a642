package game

// Color identifies the contents of a cell and, by extension, a player.
type Color int

const (
	White Color = 0
	Black Color = 1
	Empty Color = -1
)

// NoMove is the last-move sentinel for a board with no history.
const NoMove = -1

// Opponent returns the color of the other player.
func Opponent(c Color) Color {
	if c == Black {
		return White
	}
	return Black
}

// Stone returns the display rune for a color.
func Stone(c Color) rune {
	switch c {
	case Black:
		return '@'
	case White:
		return 'O'
	case Empty:
		return '+'
	default:
		return '?'
	}
}

// Location is the (row, column) form of a move index.
type Location struct {
	Row int
	Col int
}

// State is a flat row-major grid of cell colors. The board keeps one as
// its occupancy grid; derived feature planes reuse the same shape.
type State struct {
	Height int
	Width  int
	Cells  []Color
}

// NewState returns a height*width grid with every cell set to fill.
func NewState(height, width int, fill Color) State {
	s := State{
		Height: height,
		Width:  width,
		Cells:  make([]Color, height*width),
	}
	s.Flush(fill)
	return s
}

// Copy returns a state backed by its own cell slice.
func (s State) Copy() State {
	cells := make([]Color, len(s.Cells))
	copy(cells, s.Cells)
	return State{Height: s.Height, Width: s.Width, Cells: cells}
}

// Size returns the number of cells.
func (s State) Size() int {
	return s.Height * s.Width
}

// Get reads the cell at a move index.
func (s State) Get(move int) Color {
	return s.Cells[move]
}

// GetAt reads the cell at (row, col).
func (s State) GetAt(row, col int) Color {
	return s.Cells[row*s.Width+col]
}

// Set writes the cell at a move index.
func (s *State) Set(move int, c Color) {
	s.Cells[move] = c
}

// Flush fills every cell with the same value.
func (s *State) Flush(c Color) {
	for i := range s.Cells {
		s.Cells[i] = c
	}
}

// SingleColorState returns a new state of equal shape holding 1 where
// the cell matches color and 0 elsewhere. The receiver is not modified.
func (s State) SingleColorState(color Color) State {
	plane := NewState(s.Height, s.Width, 0)
	for i, c := range s.Cells {
		if c == color {
			plane.Cells[i] = 1
		}
	}
	return plane
}

// MoveToLocation converts a row-major move index to its location.
func (s State) MoveToLocation(move int) Location {
	return Location{Row: move / s.Width, Col: move % s.Width}
}

// LocationToMove converts a location to its row-major move index.
func (s State) LocationToMove(l Location) int {
	return l.Row*s.Width + l.Col
}
