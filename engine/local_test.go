package engine

import (
	"strings"
	"testing"

	"nogo/agent"
	"nogo/game"

	"github.com/stretchr/testify/require"
)

func TestLocalRun(t *testing.T) {
	t.Run("playing a full random episode", func(t *testing.T) {
		black, err := agent.NewPlayer("name=b role=black seed=1")
		require.NoError(t, err)
		white, err := agent.NewPlayer("name=w role=white seed=2")
		require.NoError(t, err)

		winner, gameMetric, moveMetrics := RunGame(black, white)

		require.Contains(t, []game.Color{game.Black, game.White}, winner,
			"NoGo has no draws")
		require.Equal(t, winner.String(), gameMetric.Winner)
		require.NotEmpty(t, moveMetrics, "Someone must have moved")
		require.Equal(t, len(moveMetrics), gameMetric.Moves)
		require.Equal(t, 0, moveMetrics[0].Step)
		require.Equal(t, "black", moveMetrics[0].Player, "Black moves first")
	})

	t.Run("playing mcts against the random baseline", func(t *testing.T) {
		black, err := agent.NewPlayer("name=mcts role=black search=mcts seed=3 simulation=40")
		require.NoError(t, err)
		white, err := agent.NewPlayer("name=rand role=white seed=4")
		require.NoError(t, err)

		winner, _, moveMetrics := RunGame(black, white)

		require.Contains(t, []game.Color{game.Black, game.White}, winner)
		for _, mm := range moveMetrics {
			if mm.Player == "black" {
				require.Equal(t, 40, mm.Playouts, "Search metrics should reach the records")
			}
		}
	})

	t.Run("rejecting mismatched roles", func(t *testing.T) {
		black, err := agent.NewPlayer("role=black seed=1")
		require.NoError(t, err)

		require.Panics(t, func() { NewLocal(black, black) },
			"Both seats need the matching role")
	})
}

func TestRender(t *testing.T) {
	b := &game.Board{}
	b.Apply(game.Move{Cell: 0, Color: game.Black})

	out := Render(b)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, game.Size+1, "Nine ranks plus the file legend")
	require.Contains(t, lines[len(lines)-1], "A", "The legend names the files")
	require.True(t, strings.HasPrefix(lines[0], "9 "), "Rank nine renders first")
}
