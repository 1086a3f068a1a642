package main

import "github.com/namsral/flag"

type Config struct {
	Player1       string
	Player2       string
	Height        int
	Width         int
	NumberToWin   int
	ComputeBudget int
	WeightC       float64
	RolloutLimit  int
	Seed          uint64
	Silent        bool
	Debug         bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("gomoku", flag.ContinueOnError)
	fs.StringVar(&c.Player1, "player1", "h", "first (black) player: 'h' for human, 'c' for computer")
	fs.StringVar(&c.Player2, "player2", "c", "second (white) player: 'h' for human, 'c' for computer")
	fs.IntVar(&c.Height, "height", 9, "board height")
	fs.IntVar(&c.Width, "width", 9, "board width")
	fs.IntVar(&c.NumberToWin, "win", 5, "stones in a row needed to win")
	fs.IntVar(&c.ComputeBudget, "budget", 10000, "playouts per computer move")
	fs.Float64Var(&c.WeightC, "weightc", 10, "UCT exploration weight")
	fs.IntVar(&c.RolloutLimit, "rollout-limit", 1000, "max plies per rollout")
	fs.Uint64Var(&c.Seed, "seed", 0, "search RNG seed, 0 seeds from the clock")
	fs.BoolVar(&c.Silent, "silent", false, "do not draw the board after each move")
	fs.BoolVar(&c.Debug, "debug", false, "log search diagnostics")
	return fs.Parse(args)
}
