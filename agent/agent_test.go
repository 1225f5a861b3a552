package agent

import (
	"testing"

	"nogo/game"

	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	t.Run("configuring a default player", func(t *testing.T) {
		p, err := NewPlayer("role=black")

		require.NoError(t, err)
		require.Equal(t, "unknown", p.Name())
		require.Equal(t, game.Black, p.Role())
		require.Equal(t, "random", p.Property("search"))
	})

	t.Run("rejecting a name with forbidden characters", func(t *testing.T) {
		for _, args := range []string{
			"name=foo(bar role=black",
			"name=foo]bar role=black",
			"name=foo:bar role=black",
			"name=a;b role=black",
		} {
			_, err := NewPlayer(args)
			require.ErrorIs(t, err, ErrInvalidName, "args %q should be rejected", args)
		}
	})

	t.Run("rejecting a missing or unknown role", func(t *testing.T) {
		_, err := NewPlayer("name=mcts")
		require.ErrorIs(t, err, ErrInvalidRole)

		_, err = NewPlayer("role=green")
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("rejecting malformed numeric properties", func(t *testing.T) {
		_, err := NewPlayer("role=black seed=abc")
		require.Error(t, err)

		_, err = NewPlayer("role=black search=mcts timeout=-5")
		require.Error(t, err)

		_, err = NewPlayer("role=black search=mcts simulation=zero")
		require.Error(t, err)

		_, err = NewPlayer("role=white search=p-mcts thread=two")
		require.Error(t, err)
	})

	t.Run("keeping unknown properties readable", func(t *testing.T) {
		p, err := NewPlayer("role=white flavor=spicy")

		require.NoError(t, err)
		require.Equal(t, "spicy", p.Property("flavor"))
	})
}

func TestTakeAction(t *testing.T) {
	t.Run("playing a random legal move", func(t *testing.T) {
		p, err := NewPlayer("role=black seed=1")
		require.NoError(t, err)

		b := &game.Board{}
		move, ok := p.TakeAction(b)

		require.True(t, ok)
		require.Equal(t, game.Black, move.Color)
		require.True(t, b.Clone().Apply(move))
	})

	t.Run("repeating a seeded random decision", func(t *testing.T) {
		first, err := NewPlayer("role=white seed=9")
		require.NoError(t, err)
		second, err := NewPlayer("role=white seed=9")
		require.NoError(t, err)

		b := &game.Board{}
		m1, _ := first.TakeAction(b)
		m2, _ := second.TakeAction(b)

		require.Equal(t, m1, m2, "Same seed should repeat the shuffle")
	})

	t.Run("searching with mcts", func(t *testing.T) {
		p, err := NewPlayer("name=searcher role=black search=mcts seed=3 simulation=60")
		require.NoError(t, err)

		b := &game.Board{}
		move, ok := p.TakeAction(b)

		require.True(t, ok)
		require.True(t, b.Clone().Apply(move))
		require.Equal(t, 60, p.SearchMetrics().Playouts)
	})

	t.Run("repeating a seeded mcts decision across players", func(t *testing.T) {
		args := "role=black search=mcts seed=12 simulation=120"
		first, err := NewPlayer(args)
		require.NoError(t, err)
		second, err := NewPlayer(args)
		require.NoError(t, err)

		m1, _ := first.TakeAction(&game.Board{})
		m2, _ := second.TakeAction(&game.Board{})

		require.Equal(t, m1, m2)
	})

	t.Run("searching with root-parallel mcts", func(t *testing.T) {
		p, err := NewPlayer("role=white search=p-mcts thread=2 seed=5 simulation=50")
		require.NoError(t, err)

		b := &game.Board{}
		move, ok := p.TakeAction(b)

		require.True(t, ok)
		require.True(t, b.Clone().Apply(move))
		require.Equal(t, 100, p.SearchMetrics().Playouts,
			"Both workers should run their budget")
	})

	t.Run("searching with rave enabled", func(t *testing.T) {
		p, err := NewPlayer("role=black search=mcts rave=on seed=2 simulation=80")
		require.NoError(t, err)

		move, ok := p.TakeAction(&game.Board{})

		require.True(t, ok)
		require.Equal(t, game.Black, move.Color)
	})

	t.Run("resigning without a legal move", func(t *testing.T) {
		// Fill the board completely: no placement can be legal.
		b := &game.Board{}
		for i := 0; i < game.Cells; i++ {
			if (i+i/game.Size)%2 == 0 {
				b[i] = game.Black
			} else {
				b[i] = game.White
			}
		}

		for _, args := range []string{
			"role=black seed=1",
			"role=black search=mcts seed=1 simulation=10",
			"role=black search=p-mcts thread=2 seed=1 simulation=10",
		} {
			p, err := NewPlayer(args)
			require.NoError(t, err)

			move, ok := p.TakeAction(b)

			require.False(t, ok, "args %q should resign", args)
			require.Equal(t, game.NoMove, move)
		}
	})
}
