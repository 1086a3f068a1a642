package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveLocationBijection(t *testing.T) {
	s := NewState(9, 7, Empty)

	for move := 0; move < s.Size(); move++ {
		loc := s.MoveToLocation(move)
		require.GreaterOrEqual(t, loc.Row, 0)
		require.Less(t, loc.Row, s.Height)
		require.GreaterOrEqual(t, loc.Col, 0)
		require.Less(t, loc.Col, s.Width)
		require.Equal(t, move, s.LocationToMove(loc),
			"Converting move to location and back should round-trip")
	}

	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			loc := Location{Row: row, Col: col}
			require.Equal(t, loc, s.MoveToLocation(s.LocationToMove(loc)),
				"Converting location to move and back should round-trip")
		}
	}
}

func TestSingleColorState(t *testing.T) {
	s := NewState(3, 3, Empty)
	s.Set(0, Black)
	s.Set(4, White)
	s.Set(8, Black)

	plane := s.SingleColorState(Black)

	require.Equal(t, []Color{1, 0, 0, 0, 0, 0, 0, 0, 1}, plane.Cells,
		"Plane should mark exactly the matching cells")
	require.Equal(t, Black, s.Get(0), "Source state should be untouched")
	require.Equal(t, White, s.Get(4), "Source state should be untouched")

	plane.Set(1, 1)
	require.Equal(t, Empty, s.Get(1), "Plane should not alias the source grid")
}

func TestFlush(t *testing.T) {
	s := NewState(2, 2, Empty)
	s.Flush(Black)
	require.Equal(t, []Color{Black, Black, Black, Black}, s.Cells)
}

func TestStateCopy(t *testing.T) {
	s := NewState(2, 3, Empty)
	s.Set(2, White)

	c := s.Copy()
	c.Set(2, Black)

	require.Equal(t, White, s.Get(2), "Copy should not share cells with the source")
	require.Equal(t, Black, c.Get(2))
}

func TestOpponent(t *testing.T) {
	require.Equal(t, White, Opponent(Black))
	require.Equal(t, Black, Opponent(White))
}

func TestStone(t *testing.T) {
	require.Equal(t, '@', Stone(Black))
	require.Equal(t, 'O', Stone(White))
	require.Equal(t, '+', Stone(Empty))
}
