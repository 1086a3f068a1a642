package searcher

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"gomoku/game"
)

// Defaults follow the reference pure-MCTS configuration: a heavy
// exploration weight and an expand bound of one percent of the budget.
const (
	DefaultWeightC       = 10.0
	DefaultComputeBudget = 10000
	DefaultRolloutLimit  = 1000
)

type Option func(t *SearchTree)

func WithComputeBudget(budget int) Option {
	return func(t *SearchTree) {
		if budget > 0 {
			t.computeBudget = budget
		}
	}
}

func WithExplorationWeight(weightC float64) Option {
	return func(t *SearchTree) {
		if weightC > 0 {
			t.weightC = weightC
		}
	}
}

func WithExpandBound(bound int) Option {
	return func(t *SearchTree) {
		if bound > 0 {
			t.expandBound = bound
		}
	}
}

func WithRolloutLimit(limit int) Option {
	return func(t *SearchTree) {
		if limit > 0 {
			t.rolloutLimit = limit
		}
	}
}

// WithSeed pins the search RNG, making every playout sequence (and with
// it the chosen move) reproducible for a fixed budget.
func WithSeed(seed uint64) Option {
	return func(t *SearchTree) {
		t.seed = seed
	}
}

func WithRolloutPolicy(p Policy) Option {
	return func(t *SearchTree) {
		if p != nil {
			t.rollout = p
		}
	}
}

func WithExpandPolicy(p Policy) Option {
	return func(t *SearchTree) {
		if p != nil {
			t.expand = p
		}
	}
}

func WithMetrics() Option {
	return func(t *SearchTree) {
		t.metrics = NewMetricsCollector()
	}
}

// SearchTree is a persistent pure Monte-Carlo search tree. It owns
// exactly one root node, which is replaced (never mutated in place) as
// real moves are committed through UpdateWithMove. A single goroutine
// drives it: one playout completes fully before the next begins.
type SearchTree struct {
	root          *node
	weightC       float64
	computeBudget int
	expandBound   int
	rolloutLimit  int
	seed          uint64
	rollout       Policy
	expand        Policy
	metrics       MetricsCollector
}

// NewSearchTree builds a tree with a fresh single-node root. Unset
// options fall back to the reference defaults.
func NewSearchTree(options ...Option) *SearchTree {
	t := &SearchTree{
		root:          newNode(nil, 1.0),
		weightC:       DefaultWeightC,
		computeBudget: DefaultComputeBudget,
		rolloutLimit:  DefaultRolloutLimit,
		expand:        ExpandPolicy{},
		metrics:       NewDummyCollector(),
		seed:          uint64(time.Now().UnixNano()),
	}
	for _, option := range options {
		option(t)
	}
	if t.expandBound <= 0 {
		t.expandBound = t.computeBudget / 100
	}
	if t.rollout == nil {
		t.rollout = NewRolloutPolicy(rand.New(rand.NewSource(t.seed)))
	}
	return t
}

// ComputeBudget returns the number of playouts per move.
func (t *SearchTree) ComputeBudget() int {
	return t.computeBudget
}

// GetMove runs the compute budget's worth of playouts, each against a
// disposable copy of b, and returns the move whose root child gathered
// the most visits. Visit count, not Q, decides: it is the noise-robust
// proxy for confidence under UCT. The live board is never mutated. An
// empty board short-circuits to the center cell without searching.
func (t *SearchTree) GetMove(b *game.Board) int {
	if b.IsEmpty() {
		return b.Height() * b.Width() / 2
	}

	t.metrics.Start()
	for i := 0; i < t.computeBudget; i++ {
		scratch := b.Copy()
		t.playout(scratch)
		t.metrics.AddPlayout()
	}
	if t.root.isLeaf() {
		// Budget below the expand bound: seed the children so a move
		// can still be chosen.
		t.root.expand(t.expand.Evaluate(b))
	}

	metric := t.metrics.Complete()
	log.Debug().
		Dur("took", metric.Duration).
		Int("playouts", metric.Playouts).
		Int("full_playouts", metric.FullPlayouts).
		Bool("tree_reused", metric.TreeReused).
		Msg("search complete")

	bestMove := game.NoMove
	bestVisits := -1
	for _, move := range t.root.order {
		if child := t.root.children[move]; child.visits > bestVisits {
			bestVisits = child.visits
			bestMove = move
		}
	}
	return bestMove
}

// playout walks one select-expand-rollout-backpropagate iteration,
// mutating the scratch board as it descends.
func (t *SearchTree) playout(b *game.Board) {
	cur := t.root
	for !cur.isLeaf() {
		move, child := cur.selectChild(t.weightC)
		b.Play(move)
		cur = child
	}

	end, _ := b.GameEnd()
	if !end && cur.visits >= t.expandBound {
		cur.expand(t.expand.Evaluate(b))
	}

	value := t.evaluateRollout(b)
	// The rollout scores the leaf for the player to move there; the leaf
	// node holds values for the player who moved into it.
	cur.backPropagation(-value)
}

// evaluateRollout plays the rollout policy's argmax move until the game
// ends or the ply cap is hit. The score is from the perspective of the
// player to move when the rollout started: +1 win, -1 loss, 0 for a
// draw or a capped rollout.
func (t *SearchTree) evaluateRollout(b *game.Board) float64 {
	player := b.Player()
	for i := 0; i < t.rolloutLimit; i++ {
		end, winner := b.GameEnd()
		if !end {
			b.Play(mostLikelyMove(t.rollout.Evaluate(b)))
			continue
		}
		t.metrics.AddFullPlayout()
		if winner == game.Empty {
			return 0
		}
		if winner == player {
			return 1
		}
		return -1
	}
	log.Warn().Msgf("rollout exceeded the %d-ply limit, scoring as a draw", t.rolloutLimit)
	return 0
}

// UpdateWithMove advances the persistent tree after a real move was
// committed on the live board: the matching child becomes the new root
// with its statistics intact, or the whole tree is rebuilt when the move
// was never explored. Reuse is an optimization only; a fresh root is
// always valid.
func (t *SearchTree) UpdateWithMove(move int) {
	if move == game.NoMove {
		return
	}
	if next := t.root.detach(move); next != nil {
		t.root = next
		t.metrics.ReusedTree()
		return
	}
	t.root = newNode(nil, 1.0)
}

// Reset discards the whole tree and every accumulated statistic.
func (t *SearchTree) Reset() {
	t.root = newNode(nil, 1.0)
}
