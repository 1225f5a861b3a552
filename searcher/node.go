package searcher

import (
	"fmt"
	"math"

	"nogo/game"
)

// node is a search tree node. player is the color that played move to reach
// this node; the root carries the opponent of the searching color, so the
// root's children are the searching color's candidate moves. The side to move
// at a node is always player.Opponent().
type node struct {
	position *game.Board
	player   game.Color
	move     game.Move
	parent   *node
	children []*node
	terminal bool
	visits   int
	wins     int
	score    float64
}

func newRoot(b *game.Board, color game.Color) *node {
	return &node{
		position: b.Clone(),
		player:   color.Opponent(),
		move:     game.NoMove,
		score:    math.Inf(1),
	}
}

// expand appends one child per legal placement of the side to move, iterating
// cells in ascending order so every tree over the same position produces
// children in the same order. A node that yields no child is terminal: the
// side to move has no answer and loses. Calling expand on an expanded or
// terminal node is a no-op. Returns the number of children created.
func (n *node) expand() int {
	if len(n.children) > 0 || n.terminal {
		return 0
	}

	mover := n.player.Opponent()
	for cell := 0; cell < game.Cells; cell++ {
		move := game.Move{Cell: cell, Color: mover}
		after := n.position.Clone()
		if !after.Apply(move) {
			continue
		}
		n.children = append(n.children, &node{
			position: after,
			player:   mover,
			move:     move,
			parent:   n,
			score:    math.Inf(1),
		})
	}

	if len(n.children) == 0 {
		n.terminal = true
	}
	return len(n.children)
}

// selectLeaf descends from n to an unexpanded node, at each step taking the
// child with the highest cached score. Ties keep the first-found child.
func (n *node) selectLeaf() *node {
	cur := n
	for len(cur.children) > 0 {
		best := cur.children[0]
		for _, child := range cur.children[1:] {
			if child.score > best.score {
				best = child
			}
		}
		cur = best
	}
	return cur
}

// bestChild returns the most-visited child, first-found on ties, or nil when
// there are none.
func (n *node) bestChild() *node {
	var best *node
	maxVisits := -1
	for _, child := range n.children {
		if child.visits > maxVisits {
			maxVisits = child.visits
			best = child
		}
	}
	return best
}

// record adds one rollout outcome to the node's statistics.
func (n *node) record(winner game.Color) {
	n.visits++
	if winner == n.player {
		n.wins++
	}
	if n.wins > n.visits {
		panic(fmt.Sprintf("node %v has %d wins out of %d visits", n.move, n.wins, n.visits))
	}
}
