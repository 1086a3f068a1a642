package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gomoku/engine"
	"gomoku/game"
	"gomoku/player"
	"gomoku/searcher"
)

func main() {
	var cfg Config
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("failed to parse flags")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	board, err := game.NewBoard(cfg.Height, cfg.Width, cfg.NumberToWin)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid board configuration")
	}

	black, err := buildPlayer(cfg.Player1, game.Black, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid first player")
	}
	white, err := buildPlayer(cfg.Player2, game.White, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid second player")
	}

	e, err := engine.New(board, black, white, cfg.Silent)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up the game")
	}
	if _, err := e.Run(); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func buildPlayer(kind string, color game.Color, cfg Config) (player.Player, error) {
	switch kind {
	case "h":
		return player.NewHumanPlayer(color, fmt.Sprintf("Human (%c)", game.Stone(color)))
	case "c":
		options := []searcher.Option{
			searcher.WithComputeBudget(cfg.ComputeBudget),
			searcher.WithExplorationWeight(cfg.WeightC),
			searcher.WithRolloutLimit(cfg.RolloutLimit),
		}
		if cfg.Seed != 0 {
			options = append(options, searcher.WithSeed(cfg.Seed))
		}
		if cfg.Debug {
			options = append(options, searcher.WithMetrics())
		}
		tree := searcher.NewSearchTree(options...)
		return player.NewSearchPlayer(color, fmt.Sprintf("Pure MCTS (%c)", game.Stone(color)), tree), nil
	default:
		return nil, fmt.Errorf("unknown player type %q, want 'h' or 'c'", kind)
	}
}
