package searcher

import (
	"golang.org/x/exp/rand"

	"gomoku/game"
)

// MoveProb pairs a candidate move with the weight a policy assigns it.
type MoveProb struct {
	Move int
	Prob float64
}

// Policy maps a board to a weighted set over the currently available
// moves. Implementations must list every available move exactly once
// and must not consult tree statistics, so a learned policy can replace
// either default without touching the search engine.
type Policy interface {
	Evaluate(b *game.Board) []MoveProb
}

// RolloutPolicy draws an independent uniform [0,1) weight for each
// available move. The weights are not normalized: rollouts only ever
// argmax over them, so relative order is all that matters.
type RolloutPolicy struct {
	rng *rand.Rand
}

// NewRolloutPolicy returns a rollout policy drawing from rng.
func NewRolloutPolicy(rng *rand.Rand) *RolloutPolicy {
	return &RolloutPolicy{rng: rng}
}

func (p *RolloutPolicy) Evaluate(b *game.Board) []MoveProb {
	available := b.Available()
	policy := make([]MoveProb, len(available))
	for i, move := range available {
		policy[i] = MoveProb{Move: move, Prob: p.rng.Float64()}
	}
	return policy
}

// ExpandPolicy assigns every available move the uniform prior 1/n, a
// proper distribution used to seed child priors at expansion time.
type ExpandPolicy struct{}

func (ExpandPolicy) Evaluate(b *game.Board) []MoveProb {
	available := b.Available()
	prob := 1.0 / float64(len(available))
	policy := make([]MoveProb, len(available))
	for i, move := range available {
		policy[i] = MoveProb{Move: move, Prob: prob}
	}
	return policy
}

// mostLikelyMove returns the move with the highest weight, breaking ties
// toward the earliest entry.
func mostLikelyMove(policy []MoveProb) int {
	best := policy[0]
	for _, p := range policy[1:] {
		if p.Prob > best.Prob {
			best = p
		}
	}
	return best.Move
}
