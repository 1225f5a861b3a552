package searcher

import (
	"time"

	"nogo/game"
)

// stepBase minus the number of empty cells is the step index fed to the table.
// On an empty board the step is negative (-9) and clamps to the first entry.
const stepBase = game.Cells - game.Size

// TimeTable maps step/2 to the per-move wall-clock budget. The default shapes
// a bell curve: short thinking in the opening and endgame, the bulk of the
// budget in the mid-game where branching decisions matter most.
type TimeTable [36]time.Duration

var DefaultTimeTable = TimeTable{
	300 * time.Millisecond, 300 * time.Millisecond, 300 * time.Millisecond, 300 * time.Millisecond,
	600 * time.Millisecond, 600 * time.Millisecond, 600 * time.Millisecond, 600 * time.Millisecond,
	900 * time.Millisecond, 900 * time.Millisecond, 900 * time.Millisecond, 900 * time.Millisecond,
	1200 * time.Millisecond, 1200 * time.Millisecond, 1200 * time.Millisecond, 1200 * time.Millisecond,
	1500 * time.Millisecond, 1500 * time.Millisecond, 1500 * time.Millisecond, 1500 * time.Millisecond,
	1200 * time.Millisecond, 1200 * time.Millisecond, 1200 * time.Millisecond, 1200 * time.Millisecond,
	900 * time.Millisecond, 900 * time.Millisecond, 900 * time.Millisecond, 900 * time.Millisecond,
	600 * time.Millisecond, 600 * time.Millisecond, 600 * time.Millisecond, 600 * time.Millisecond,
	300 * time.Millisecond, 300 * time.Millisecond, 300 * time.Millisecond, 300 * time.Millisecond,
}

// Budget returns the wall-clock budget for a move on the given position. The
// index is clamped so non-standard starting positions stay inside the table.
func (t TimeTable) Budget(b *game.Board) time.Duration {
	step := stepBase - b.Empties()
	idx := step / 2
	if idx < 0 {
		idx = 0
	}
	if idx >= len(t) {
		idx = len(t) - 1
	}
	return t[idx]
}
