package game

import "fmt"

// directions spans the four winnable axes: horizontal, vertical and the
// two diagonals. Each axis is walked both ways from the placed stone.
var directions = [4]Location{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
}

// Board wraps a State with turn tracking, legality checks and win
// detection. It is mutated in place by Play/Undo and deep-copied by
// Copy, which the search tree calls once per playout.
type Board struct {
	height      int
	width       int
	numberToWin int
	current     Color
	lastMove    int
	available   map[int]struct{}
	moved       []int
	state       State
}

// NewBoard returns an empty board with black to move. A board smaller
// than the winning run length on either axis is a configuration error.
func NewBoard(height, width, numberToWin int) (*Board, error) {
	if height < numberToWin || width < numberToWin {
		return nil, fmt.Errorf("board %dx%d cannot fit %d stones in a row", height, width, numberToWin)
	}
	b := &Board{height: height, width: width, numberToWin: numberToWin}
	b.Reset(Black)
	return b, nil
}

// Reset clears the board and hands the first move to start.
func (b *Board) Reset(start Color) {
	b.current = start
	b.lastMove = NoMove
	b.moved = b.moved[:0]
	b.available = make(map[int]struct{}, b.height*b.width)
	for move := 0; move < b.height*b.width; move++ {
		b.available[move] = struct{}{}
	}
	b.state = NewState(b.height, b.width, Empty)
}

// Copy returns a deep copy sharing nothing with the receiver.
func (b *Board) Copy() *Board {
	moved := make([]int, len(b.moved))
	copy(moved, b.moved)
	available := make(map[int]struct{}, len(b.available))
	for move := range b.available {
		available[move] = struct{}{}
	}
	return &Board{
		height:      b.height,
		width:       b.width,
		numberToWin: b.numberToWin,
		current:     b.current,
		lastMove:    b.lastMove,
		available:   available,
		moved:       moved,
		state:       b.state.Copy(),
	}
}

func (b *Board) Height() int      { return b.height }
func (b *Board) Width() int       { return b.width }
func (b *Board) NumberToWin() int { return b.numberToWin }
func (b *Board) Player() Color    { return b.current }
func (b *Board) LastMove() int    { return b.lastMove }
func (b *Board) IsEmpty() bool    { return len(b.moved) == 0 }
func (b *Board) MoveCount() int   { return len(b.moved) }
func (b *Board) State() State     { return b.state }

// Moves returns a copy of the move history, oldest first.
func (b *Board) Moves() []int {
	moves := make([]int, len(b.moved))
	copy(moves, b.moved)
	return moves
}

// Available lists the empty positions in ascending index order. The
// fixed order keeps policy enumeration, and with it a seeded search run,
// reproducible.
func (b *Board) Available() []int {
	moves := make([]int, 0, len(b.available))
	for move, c := range b.state.Cells {
		if c == Empty {
			moves = append(moves, move)
		}
	}
	return moves
}

// AvailableCount returns the number of empty positions.
func (b *Board) AvailableCount() int {
	return len(b.available)
}

// MoveToLocation converts a move index to its (row, col) location.
func (b *Board) MoveToLocation(move int) Location {
	return b.state.MoveToLocation(move)
}

// LocationToMove converts a (row, col) location to its move index.
func (b *Board) LocationToMove(l Location) int {
	return b.state.LocationToMove(l)
}

// IsValidMove reports whether move is in range and unoccupied.
func (b *Board) IsValidMove(move int) bool {
	if move < 0 || move >= b.width*b.height {
		return false
	}
	return b.state.Get(move) == Empty
}

// Play places the current player's stone at move and flips the turn.
// It reports false, changing nothing, when the move is illegal.
func (b *Board) Play(move int) bool {
	if !b.IsValidMove(move) {
		return false
	}
	b.state.Set(move, b.current)
	delete(b.available, move)
	b.moved = append(b.moved, move)
	b.current = Opponent(b.current)
	b.lastMove = move
	return true
}

// Undo reverts the most recent move. It reports false when there is no
// history to revert.
func (b *Board) Undo() bool {
	if len(b.moved) == 0 {
		return false
	}
	b.state.Set(b.lastMove, Empty)
	b.available[b.lastMove] = struct{}{}
	b.moved = b.moved[:len(b.moved)-1]
	b.current = Opponent(b.current)
	if len(b.moved) > 0 {
		b.lastMove = b.moved[len(b.moved)-1]
	} else {
		b.lastMove = NoMove
	}
	return true
}

// CurrentState assembles the four feature planes consumed by policy and
// value functions, from the perspective of the player to move:
//
//	plane 0: current player's stones
//	plane 1: opponent's stones
//	plane 2: one-hot marker of the last move
//	plane 3: uniform player-to-move indicator (0 white, 1 black)
func (b *Board) CurrentState() []State {
	planes := make([]State, 4)
	planes[0] = b.state.SingleColorState(b.current)
	planes[1] = b.state.SingleColorState(Opponent(b.current))
	planes[2] = NewState(b.height, b.width, 0)
	if b.lastMove != NoMove {
		planes[2].Set(b.lastMove, 1)
	}
	planes[3] = NewState(b.height, b.width, b.current)
	return planes
}

// checkSingleMove reports whether the stone of the given color at move
// completes a winning run. It only walks the four axes through that one
// cell, so the cost is local to the move rather than the whole board.
func (b *Board) checkSingleMove(move int, color Color) bool {
	loc := b.state.MoveToLocation(move)
	for _, d := range directions {
		count := 1
		for _, sign := range [2]int{1, -1} {
			row, col := loc.Row+sign*d.Row, loc.Col+sign*d.Col
			for row >= 0 && row < b.height && col >= 0 && col < b.width &&
				b.state.GetAt(row, col) == color {
				count++
				row += sign * d.Row
				col += sign * d.Col
			}
		}
		if count >= b.numberToWin {
			return true
		}
	}
	return false
}

// FastWinner checks only the last two moves for a completed run. This is
// sound only while the board is driven exclusively through Play/Undo:
// under that discipline any winning run must pass through one of the two
// most recent stones. Winner is the history-independent source of truth.
func (b *Board) FastWinner() Color {
	if len(b.moved) < 2*b.numberToWin-1 {
		return Empty
	}
	for i := len(b.moved) - 1; i >= len(b.moved)-2; i-- {
		move := b.moved[i]
		if color := b.state.Get(move); b.checkSingleMove(move, color) {
			return color
		}
	}
	return Empty
}

// Winner scans the full move history, most recent first, for a completed
// run and returns the winning color, or Empty.
func (b *Board) Winner() Color {
	if len(b.moved) < 2*b.numberToWin-1 {
		return Empty
	}
	for i := len(b.moved) - 1; i >= 0; i-- {
		move := b.moved[i]
		if color := b.state.Get(move); b.checkSingleMove(move, color) {
			return color
		}
	}
	return Empty
}

// GameEnd reports whether the game is over and the winning color, with
// Empty standing for a draw or a still-running game. It relies on
// FastWinner since play only ever advances through Play/Undo.
func (b *Board) GameEnd() (bool, Color) {
	winner := b.FastWinner()
	if winner != Empty || len(b.available) == 0 {
		return true, winner
	}
	return false, Empty
}
