package player

import (
	"fmt"

	"gomoku/game"
	"gomoku/searcher"
)

// SearchPlayer drives a persistent Monte-Carlo search tree. Before
// searching it advances the tree with the opponent's last move, and
// after choosing it advances again with its own move, keeping tree reuse
// in sync with the live game. Skipping either advance degrades reuse
// silently rather than failing, so both happen here, not in callers.
type SearchPlayer struct {
	color game.Color
	name  string
	tree  *searcher.SearchTree
}

func NewSearchPlayer(color game.Color, name string, tree *searcher.SearchTree) *SearchPlayer {
	return &SearchPlayer{color: color, name: name, tree: tree}
}

func (p *SearchPlayer) Color() game.Color { return p.color }
func (p *SearchPlayer) Name() string      { return p.name }

// Reset drops the accumulated tree, e.g. between games.
func (p *SearchPlayer) Reset() { p.tree.Reset() }

func (p *SearchPlayer) GetAction(b *game.Board) (int, error) {
	if b.Player() != p.color {
		return game.NoMove, fmt.Errorf("%s asked to move on %c's turn", p.name, game.Stone(b.Player()))
	}

	p.tree.UpdateWithMove(b.LastMove())
	move := p.tree.GetMove(b)
	p.tree.UpdateWithMove(move)
	return move, nil
}
