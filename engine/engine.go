// Package engine runs a local game between two players on one board.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"gomoku/game"
	"gomoku/player"
)

type Engine struct {
	board   *game.Board
	players map[game.Color]player.Player
	silent  bool
}

// New wires a board and its two players. The players must hold opposite
// colors.
func New(board *game.Board, black, white player.Player, silent bool) (*Engine, error) {
	if black.Color() != game.Black {
		return nil, fmt.Errorf("player %s should hold black", black.Name())
	}
	if white.Color() != game.White {
		return nil, fmt.Errorf("player %s should hold white", white.Name())
	}
	return &Engine{
		board: board,
		players: map[game.Color]player.Player{
			game.Black: black,
			game.White: white,
		},
		silent: silent,
	}, nil
}

// Run plays the game to completion and returns the winning color, with
// game.Empty standing for a draw. A player proposing an illegal move is
// a protocol violation: conforming agents validate before returning, so
// the loop aborts rather than re-prompting.
func (e *Engine) Run() (game.Color, error) {
	if !e.silent {
		fmt.Print(Render(e.board))
	}

	for {
		current := e.players[e.board.Player()]
		move, err := current.GetAction(e.board)
		if err != nil {
			return game.Empty, fmt.Errorf("%s failed to move: %w", current.Name(), err)
		}
		if !e.board.Play(move) {
			return game.Empty, fmt.Errorf("%s proposed illegal move %d", current.Name(), move)
		}

		loc := e.board.MoveToLocation(move)
		log.Info().Msgf("%s played %d %d", current.Name(), loc.Row, loc.Col)
		if !e.silent {
			fmt.Print(Render(e.board))
		}

		if end, winner := e.board.GameEnd(); end {
			if winner == game.Empty {
				log.Info().Msg("game over: draw")
			} else {
				log.Info().Msgf("game over: %s (%c) wins", e.players[winner].Name(), game.Stone(winner))
			}
			return winner, nil
		}
	}
}
