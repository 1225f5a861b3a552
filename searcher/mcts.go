package searcher

import (
	"time"

	"nogo/game"

	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MCTS is the single-threaded driver. It builds a fresh tree per ChooseMove
// call and releases it before returning; only the RNG persists across calls,
// so successive searches do not repeat rollout sequences.
type MCTS struct {
	rng         *rand.Rand
	playout     *playout
	exploration float64
	simulations int
	duration    time.Duration
	durationSet bool
	table       TimeTable
	rave        bool
	raveBudget  int
	metrics     Metrics
}

// WithSeed fixes the RNG seed, making the search deterministic together with
// a simulation budget.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// WithSimulations fixes the iteration budget; the time budget is ignored.
func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		if simulations > 0 {
			m.simulations = simulations
		}
	}
}

// WithDuration caps every move at a fixed wall-clock budget, overriding the
// time table. A zero duration still runs one iteration per move.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration >= 0 {
			m.duration = duration
			m.durationSet = true
		}
	}
}

func WithTimeTable(table TimeTable) Option {
	return func(m *MCTS) {
		m.table = table
	}
}

// WithRave blends amortized move statistics into selection during early
// simulations.
func WithRave() Option {
	return func(m *MCTS) {
		m.rave = true
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		rng:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		table:      DefaultTimeTable,
		raveBudget: DefaultRaveBudget,
	}
	for _, option := range options {
		option(m)
	}
	if m.exploration == 0 {
		if m.rave {
			m.exploration = DefaultRaveExploration
		} else {
			m.exploration = DefaultExploration
		}
	}
	m.playout = newPlayout(m.rng)
	return m
}

// ChooseMove searches the position and returns the engine's move, or NoMove
// and false when the engine has no legal placement.
func (m *MCTS) ChooseMove(b *game.Board, color game.Color) (game.Move, bool) {
	root := m.searchPosition(b, color)
	best := root.bestChild()
	if best == nil {
		return game.NoMove, false
	}
	return best.move, true
}

// Metrics reports on the most recent search.
func (m *MCTS) Metrics() Metrics {
	return m.metrics
}

// searchPosition runs the full select/expand/rollout/backup loop and returns
// the root with its children's final statistics. The root's player is the
// opponent of the searching color, so the children are the engine's candidate
// moves, produced in deterministic cell order.
func (m *MCTS) searchPosition(b *game.Board, color game.Color) *node {
	start := time.Now()
	root := newRoot(b, color)
	nodes := 1 + root.expand()
	if root.terminal {
		m.metrics = Metrics{Nodes: nodes, Workers: 1, Duration: time.Since(start)}
		return root
	}

	var rave *raveTable
	if m.rave {
		budget := m.simulations
		if budget <= 0 {
			budget = m.raveBudget
		}
		rave = newRaveTable(budget)
	}

	budget := m.table.Budget(b)
	if m.durationSet {
		budget = m.duration
	}

	// The budget is checked after each iteration, so even a zero budget runs
	// one full rollout before the move is picked.
	iteration := 0
	for {
		leaf := root.selectLeaf()
		nodes += leaf.expand()
		winner := m.playout.rollout(leaf)
		iteration++
		m.backup(leaf, winner, iteration, rave)

		if m.simulations > 0 {
			if iteration >= m.simulations {
				break
			}
		} else if time.Since(start) >= budget {
			break
		}
	}

	m.metrics = Metrics{
		Playouts: iteration,
		Nodes:    nodes,
		Workers:  1,
		Duration: time.Since(start),
	}
	return root
}

// backup propagates one rollout outcome from the leaf toward the root. Plain
// UCB stops below the root, which has no selection decision to influence;
// with RAVE the root is included so its visit count feeds the children's
// exploration term. Scores are refreshed in a second pass, after the whole
// path's visit counts are current.
func (m *MCTS) backup(leaf *node, winner game.Color, iteration int, rave *raveTable) {
	for n := leaf; n != nil; n = n.parent {
		if n.parent == nil && rave == nil {
			break
		}
		n.record(winner)
		if rave != nil && n.parent != nil {
			rave.credit(n.move, winner == n.player)
		}
	}

	for n := leaf; n != nil && n.parent != nil; n = n.parent {
		if rave != nil {
			n.score = rave.score(n, m.exploration, iteration)
		} else {
			n.score = ucb1(n.wins, n.visits, iteration, m.exploration)
		}
	}
}
