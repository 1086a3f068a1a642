package player

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"gomoku/game"
)

// HumanPlayer reads moves from an interactive prompt as "row col" pairs,
// re-prompting until the input names a legal move.
type HumanPlayer struct {
	color game.Color
	name  string
	rl    *readline.Instance
}

func NewHumanPlayer(color game.Color, name string) (*HumanPlayer, error) {
	rl, err := readline.New(fmt.Sprintf("%s move (row col): ", name))
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return &HumanPlayer{color: color, name: name, rl: rl}, nil
}

func (p *HumanPlayer) Color() game.Color { return p.color }
func (p *HumanPlayer) Name() string      { return p.name }

func (p *HumanPlayer) Close() error { return p.rl.Close() }

func (p *HumanPlayer) GetAction(b *game.Board) (int, error) {
	if b.Player() != p.color {
		return game.NoMove, fmt.Errorf("%s asked to move on %c's turn", p.name, game.Stone(b.Player()))
	}

	for {
		line, err := p.rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return game.NoMove, fmt.Errorf("input closed: %w", err)
		} else if err != nil {
			return game.NoMove, err
		}

		move, ok := parseMove(b, line)
		if !ok || !b.IsValidMove(move) {
			fmt.Println("invalid move, try again")
			continue
		}
		return move, nil
	}
}

// parseMove turns a "row col" line into a move index. Inputs outside the
// board are rejected before conversion so the index never aliases
// another cell.
func parseMove(b *game.Board, line string) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return game.NoMove, false
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.NoMove, false
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.NoMove, false
	}
	if row < 0 || row >= b.Height() || col < 0 || col >= b.Width() {
		return game.NoMove, false
	}
	return b.LocationToMove(game.Location{Row: row, Col: col}), true
}
