package searcher

import (
	"nogo/game"

	"golang.org/x/exp/rand"
)

// playout produces uniformly random legal moves. It keeps one candidate
// vector of all placements per color, built once and reshuffled per query.
type playout struct {
	rng   *rand.Rand
	black []game.Move
	white []game.Move
}

func newPlayout(rng *rand.Rand) *playout {
	p := &playout{
		rng:   rng,
		black: make([]game.Move, game.Cells),
		white: make([]game.Move, game.Cells),
	}
	for i := 0; i < game.Cells; i++ {
		p.black[i] = game.Move{Cell: i, Color: game.Black}
		p.white[i] = game.Move{Cell: i, Color: game.White}
	}
	return p
}

// randomLegalMove shuffles the color's candidate vector and returns the first
// placement legal on the position, or NoMove and false when none is.
func (p *playout) randomLegalMove(b *game.Board, color game.Color) (game.Move, bool) {
	space := p.black
	if color == game.White {
		space = p.white
	}
	p.rng.Shuffle(len(space), func(i, j int) {
		space[i], space[j] = space[j], space[i]
	})

	for _, move := range space {
		after := b.Clone()
		if after.Apply(move) {
			return move, true
		}
	}
	return game.NoMove, false
}

// rollout plays random moves from the node's position until one side has no
// legal placement. That side loses, so the returned winner is its opponent.
// The side to move first is the opponent of the node's own mover.
func (p *playout) rollout(n *node) game.Color {
	board := n.position.Clone()
	current := n.player
	for {
		current = current.Opponent()
		move, ok := p.randomLegalMove(board, current)
		if !ok {
			return current.Opponent()
		}
		board.Apply(move)
	}
}
