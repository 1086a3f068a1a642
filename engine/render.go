package engine

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"gomoku/game"
)

var profile = termenv.ColorProfile()

// Render draws the board with row and column indices, coloring the
// stones and bracketing the most recent move.
func Render(b *game.Board) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("turn: %s\n    ", styleCell(string(game.Stone(b.Player())), b.Player(), false)))
	for col := 0; col < b.Width(); col++ {
		sb.WriteString(fmt.Sprintf("%3d ", col))
	}
	sb.WriteString("\n")

	for row := 0; row < b.Height(); row++ {
		sb.WriteString(fmt.Sprintf("%3d ", row))
		for col := 0; col < b.Width(); col++ {
			move := b.LocationToMove(game.Location{Row: row, Col: col})
			sb.WriteString(renderCell(b.State().Get(move), move == b.LastMove()))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderCell pads before styling: escape sequences would throw off
// printf column widths.
func renderCell(c game.Color, last bool) string {
	cell := fmt.Sprintf(" %c  ", game.Stone(c))
	if last {
		cell = fmt.Sprintf("[%c] ", game.Stone(c))
	}
	return styleCell(cell, c, last)
}

func styleCell(text string, c game.Color, last bool) string {
	style := termenv.String(text)
	switch c {
	case game.Black:
		style = style.Foreground(profile.Color("1"))
	case game.White:
		style = style.Foreground(profile.Color("4"))
	default:
		style = style.Faint()
	}
	if last {
		style = style.Bold()
	}
	return style.String()
}
