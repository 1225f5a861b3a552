package engine

import (
	"fmt"
	"time"

	"nogo/agent"
	"nogo/experiments/metrics"
	"nogo/game"

	"github.com/rs/zerolog/log"
)

// Local runs one NoGo episode between two players on a single board. Black
// moves first; a player that returns no action loses.
type Local struct {
	Board   *game.Board
	players map[game.Color]*agent.Player
}

func NewLocal(black, white *agent.Player) *Local {
	if black.Role() != game.Black || white.Role() != game.White {
		panic(fmt.Sprintf("player roles are %s and %s, want black and white",
			black.Role(), white.Role()))
	}
	return &Local{
		Board: &game.Board{},
		players: map[game.Color]*agent.Player{
			game.Black: black,
			game.White: white,
		},
	}
}

// Run executes the episode until one side has no move. It returns the winner
// and the per-move search metrics.
func (e *Local) Run() (game.Color, []metrics.MoveMetric) {
	log.Info().
		Str("black", e.players[game.Black].Name()).
		Str("white", e.players[game.White].Name()).
		Msg("episode started")

	var moveMetrics []metrics.MoveMetric
	current := game.Black
	for step := 0; ; step++ {
		player := e.players[current]
		move, ok := player.TakeAction(e.Board)
		if !ok {
			winner := current.Opponent()
			log.Info().
				Str("winner", winner.String()).
				Int("moves", step).
				Msg("episode over")
			log.Debug().Msg("\n" + Render(e.Board))
			return winner, moveMetrics
		}
		if !e.Board.Apply(move) {
			panic(fmt.Sprintf("player %s returned illegal move %v", player.Name(), move))
		}

		sm := player.SearchMetrics()
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:     step,
			Player:   current.String(),
			Cell:     move.Cell,
			Duration: sm.Duration,
			Playouts: sm.Playouts,
			Nodes:    sm.Nodes,
		})

		log.Debug().
			Int("step", step).
			Str("move", move.String()).
			Int("playouts", sm.Playouts).
			Dur("took", sm.Duration).
			Msg("move played")

		current = current.Opponent()
	}
}

// RunGame is a convenience wrapper that builds the game-level metric as well.
func RunGame(black, white *agent.Player) (game.Color, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	e := NewLocal(black, white)
	winner, moveMetrics := e.Run()
	end := time.Now()

	return winner, metrics.GameMetric{
		Winner:    winner.String(),
		Moves:     len(moveMetrics),
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}, moveMetrics
}
