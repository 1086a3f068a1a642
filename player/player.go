// Package player defines the agents a game can be played by: anything
// that, given a board, produces a move.
package player

import "gomoku/game"

// Player is one side of a game. GetAction is only called when it is the
// player's turn; being asked to move out of turn is an orchestrator bug
// and surfaces as an error.
type Player interface {
	GetAction(b *game.Board) (int, error)
	Color() game.Color
	Name() string
}
