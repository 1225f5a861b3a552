package searcher

import (
	"testing"

	"nogo/game"

	"github.com/stretchr/testify/require"
)

func TestRandomLegalMove(t *testing.T) {
	t.Run("finding a move on an empty board", func(t *testing.T) {
		p := newPlayout(newTestRand(1))
		b := &game.Board{}

		move, ok := p.randomLegalMove(b, game.White)

		require.True(t, ok)
		require.Equal(t, game.White, move.Color)
		require.True(t, b.Clone().Apply(move), "Returned move should be legal")
		require.Equal(t, game.Cells, b.Empties(), "Query should not mutate the position")
	})

	t.Run("finding the only legal move", func(t *testing.T) {
		p := newPlayout(newTestRand(1))
		b := oneMoveBoard()

		move, ok := p.randomLegalMove(b, game.Black)

		require.True(t, ok)
		require.Equal(t, game.Move{Cell: 0, Color: game.Black}, move,
			"Cell 1 would capture, so cell 0 is the only answer")
	})

	t.Run("reporting no legal move", func(t *testing.T) {
		p := newPlayout(newTestRand(1))

		move, ok := p.randomLegalMove(fullBoard(), game.Black)

		require.False(t, ok)
		require.Equal(t, game.NoMove, move)
	})
}

func TestRollout(t *testing.T) {
	t.Run("deciding a forced endgame", func(t *testing.T) {
		// Black plays its only legal cell, then white is stuck: black wins no
		// matter how the rollout's RNG is seeded.
		for seed := uint64(1); seed <= 5; seed++ {
			p := newPlayout(newTestRand(seed))
			root := newRoot(oneMoveBoard(), game.Black)

			winner := p.rollout(root)

			require.Equal(t, game.Black, winner)
		}
	})

	t.Run("losing the side with no move at all", func(t *testing.T) {
		// The root's mover is white, black is to move and has nothing: black
		// loses immediately.
		p := newPlayout(newTestRand(1))
		n := &node{position: fullBoard(), player: game.White}

		winner := p.rollout(n)

		require.Equal(t, game.White, winner)
	})

	t.Run("playing to terminal from an open position", func(t *testing.T) {
		p := newPlayout(newTestRand(3))
		root := newRoot(&game.Board{}, game.Black)

		winner := p.rollout(root)

		require.Contains(t, []game.Color{game.Black, game.White}, winner,
			"A rollout always produces a winner")
	})
}
