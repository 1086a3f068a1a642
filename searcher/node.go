package searcher

import "math"

// node is a single position in the search tree. Q is the running mean
// playout outcome from the perspective of the player to move at the
// parent; U is the exploration term recomputed at every evaluation; the
// prior is assigned at creation and never changes. Children are keyed by
// move, with insertion order kept so tie-breaks are stable within a run
// (Go randomizes map iteration order).
type node struct {
	parent   *node
	children map[int]*node
	order    []int
	visits   int
	q        float64
	u        float64
	prior    float64
}

func newNode(parent *node, prior float64) *node {
	return &node{
		parent:   parent,
		children: make(map[int]*node),
		prior:    prior,
	}
}

func (n *node) isLeaf() bool { return len(n.children) == 0 }
func (n *node) isRoot() bool { return n.parent == nil }

// evaluate scores the node for selection at its parent:
// Q + weightC * prior * sqrt(parentVisits) / (1 + visits).
func (n *node) evaluate(weightC float64) float64 {
	n.u = n.prior * math.Sqrt(float64(n.parent.visits)) / float64(1+n.visits)
	return n.q + weightC*n.u
}

// selectChild returns the move and child maximizing the UCT score.
// Callers must not invoke it on a leaf.
func (n *node) selectChild(weightC float64) (int, *node) {
	bestMove := n.order[0]
	bestChild := n.children[bestMove]
	bestScore := bestChild.evaluate(weightC)
	for _, move := range n.order[1:] {
		child := n.children[move]
		if score := child.evaluate(weightC); score > bestScore {
			bestScore = score
			bestMove = move
			bestChild = child
		}
	}
	return bestMove, bestChild
}

// expand adds one child per policy entry, keeping the policy's weight as
// the child's prior. A move that already has a child is left untouched.
func (n *node) expand(policy []MoveProb) {
	for _, p := range policy {
		if _, ok := n.children[p.Move]; ok {
			continue
		}
		n.children[p.Move] = newNode(n, p.Prob)
		n.order = append(n.order, p.Move)
	}
}

// update folds one playout outcome into the running mean.
func (n *node) update(value float64) {
	n.visits++
	n.q += (value - n.q) / float64(n.visits)
}

// backPropagation walks from the node to the root, updating each node on
// the path. The value's sign flips once per edge: every ply alternates
// the perspective player.
func (n *node) backPropagation(value float64) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.update(value)
		value = -value
	}
}

// detach removes the child for move from the tree and promotes it to a
// root, keeping its accumulated statistics; all sibling subtrees become
// unreachable. It returns nil when the move was never expanded.
func (n *node) detach(move int) *node {
	child, ok := n.children[move]
	if !ok {
		return nil
	}
	child.parent = nil
	n.children = nil
	n.order = nil
	return child
}
