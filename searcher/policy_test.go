package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"gomoku/game"
)

func testBoard(t *testing.T) *game.Board {
	t.Helper()
	b, err := game.NewBoard(5, 5, 5)
	require.NoError(t, err)
	require.True(t, b.Play(12))
	require.True(t, b.Play(0))
	return b
}

func TestRolloutPolicy(t *testing.T) {
	b := testBoard(t)
	policy := NewRolloutPolicy(rand.New(rand.NewSource(1))).Evaluate(b)

	require.Len(t, policy, 23, "Policy should cover every available move")

	seen := map[int]bool{}
	for _, p := range policy {
		require.True(t, b.IsValidMove(p.Move), "Policy should only name available moves")
		require.False(t, seen[p.Move], "Each move should appear exactly once")
		seen[p.Move] = true
		require.GreaterOrEqual(t, p.Prob, 0.0)
		require.Less(t, p.Prob, 1.0, "Weights should be uniform draws on [0,1)")
	}

	t.Run("same seed gives the same draws", func(t *testing.T) {
		again := NewRolloutPolicy(rand.New(rand.NewSource(1))).Evaluate(testBoard(t))
		require.Equal(t, policy, again, "A fixed seed should reproduce the weights")
	})
}

func TestExpandPolicy(t *testing.T) {
	b := testBoard(t)
	policy := ExpandPolicy{}.Evaluate(b)

	require.Len(t, policy, 23, "Policy should cover every available move")

	sum := 0.0
	seen := map[int]bool{}
	for _, p := range policy {
		require.True(t, b.IsValidMove(p.Move))
		require.False(t, seen[p.Move], "Each move should appear exactly once")
		seen[p.Move] = true
		require.InDelta(t, 1.0/23, p.Prob, 1e-9, "Priors should be uniform")
		sum += p.Prob
	}
	require.InDelta(t, 1.0, sum, 1e-9, "Priors should form a proper distribution")
}

func TestMostLikelyMove(t *testing.T) {
	policy := []MoveProb{
		{Move: 3, Prob: 0.2},
		{Move: 8, Prob: 0.9},
		{Move: 1, Prob: 0.5},
	}
	require.Equal(t, 8, mostLikelyMove(policy))

	t.Run("ties resolve to the earliest entry", func(t *testing.T) {
		tied := []MoveProb{{Move: 2, Prob: 0.4}, {Move: 6, Prob: 0.4}}
		require.Equal(t, 2, mostLikelyMove(tied))
	})
}
