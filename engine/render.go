package engine

import (
	"fmt"
	"strings"

	"nogo/game"

	"github.com/muesli/termenv"
)

var profile = termenv.ColorProfile()

// Render draws the position with rank 9 on the first line and the file legend
// on the last, colored when the terminal supports it.
func Render(b *game.Board) string {
	black := termenv.String("X").Foreground(profile.Color("1")).String()
	white := termenv.String("O").Foreground(profile.Color("4")).String()
	empty := termenv.String(".").Faint().String()

	var sb strings.Builder
	for y := game.Size - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%d ", y+1)
		for x := 0; x < game.Size; x++ {
			switch b.Cell(y*game.Size + x) {
			case game.Black:
				sb.WriteString(black)
			case game.White:
				sb.WriteString(white)
			default:
				sb.WriteString(empty)
			}
			if x < game.Size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for x := 0; x < game.Size; x++ {
		sb.WriteByte(byte('A' + x))
		if x < game.Size-1 {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}
