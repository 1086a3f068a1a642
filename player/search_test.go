package player

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gomoku/game"
	"gomoku/searcher"
)

func newSearchPlayer(color game.Color) *SearchPlayer {
	tree := searcher.NewSearchTree(
		searcher.WithComputeBudget(50),
		searcher.WithExpandBound(1),
		searcher.WithSeed(11),
	)
	return NewSearchPlayer(color, "test mcts", tree)
}

func TestSearchPlayerGetAction(t *testing.T) {
	t.Run("returns a legal move without touching the board", func(t *testing.T) {
		b, err := game.NewBoard(9, 9, 5)
		require.NoError(t, err)
		require.True(t, b.Play(40))

		p := newSearchPlayer(game.White)
		move, err := p.GetAction(b)

		require.NoError(t, err)
		require.True(t, b.IsValidMove(move), "Agent must only propose legal moves")
		require.Equal(t, 1, b.MoveCount(), "Searching must not mutate the live board")
		require.Equal(t, game.White, b.Player())
	})

	t.Run("opens at the center on an empty board", func(t *testing.T) {
		b, err := game.NewBoard(9, 9, 5)
		require.NoError(t, err)

		p := newSearchPlayer(game.Black)
		move, err := p.GetAction(b)

		require.NoError(t, err)
		require.Equal(t, 40, move)
	})

	t.Run("rejects being asked to move out of turn", func(t *testing.T) {
		b, err := game.NewBoard(9, 9, 5)
		require.NoError(t, err)

		p := newSearchPlayer(game.White)
		_, err = p.GetAction(b)

		require.Error(t, err, "A color mismatch is an orchestrator bug, not a game state")
	})

	t.Run("plays a whole game against itself staying legal", func(t *testing.T) {
		b, err := game.NewBoard(5, 5, 4)
		require.NoError(t, err)

		players := map[game.Color]*SearchPlayer{
			game.Black: newSearchPlayer(game.Black),
			game.White: newSearchPlayer(game.White),
		}
		for {
			p := players[b.Player()]
			move, err := p.GetAction(b)
			require.NoError(t, err)
			require.True(t, b.Play(move), "move %d should be legal", move)
			if end, _ := b.GameEnd(); end {
				break
			}
		}
	})
}
