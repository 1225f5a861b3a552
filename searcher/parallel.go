package searcher

import (
	"fmt"
	"sync"
	"time"

	"nogo/game"

	"github.com/rs/zerolog/log"
)

// Parallel is the root-parallel driver. Each worker runs an independent MCTS
// on its own tree, its own RNG stream, and (if enabled) its own RAVE table;
// nothing is shared during search. After the join barrier the workers' root
// children are merged by summing visits per child index.
type Parallel struct {
	threads int
	seed    uint64
	calls   uint64
	options []Option
	metrics Metrics
}

// NewParallel builds a driver with the given worker count. Worker i derives
// its RNG stream from seed+i, so a fixed seed and simulation budget make the
// whole search deterministic. The options are applied to every worker.
func NewParallel(threads int, seed uint64, options ...Option) *Parallel {
	if threads <= 0 {
		threads = DefaultThreads
	}
	return &Parallel{
		threads: threads,
		seed:    seed,
		options: options,
	}
}

// ChooseMove fans the search out over the workers and returns the move with
// the greatest summed visit count, or NoMove and false when the engine has no
// legal placement.
func (p *Parallel) ChooseMove(b *game.Board, color game.Color) (game.Move, bool) {
	start := time.Now()
	roots := make([]*node, p.threads)
	workers := make([]*MCTS, p.threads)

	// Advance the seed base every call so successive move decisions within an
	// episode draw fresh rollout sequences.
	base := p.seed + p.calls*uint64(p.threads)
	p.calls++

	var wg sync.WaitGroup
	for i := 0; i < p.threads; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			options := append(append([]Option{}, p.options...), WithSeed(base+uint64(i)))
			workers[i] = NewMCTS(options...)
			roots[i] = workers[i].searchPosition(b, color)
		}(i)
	}
	wg.Wait()

	p.metrics = Metrics{Duration: time.Since(start)}
	for _, w := range workers {
		p.metrics = p.metrics.merge(w.Metrics())
	}

	if len(roots[0].children) == 0 {
		return game.NoMove, false
	}

	visits := mergeVisits(roots)
	best, maxVisits := 0, -1
	for i, v := range visits {
		if v > maxVisits {
			maxVisits = v
			best = i
		}
	}

	log.Debug().
		Int("workers", p.threads).
		Int("playouts", p.metrics.Playouts).
		Str("move", roots[0].children[best].move.String()).
		Msg("merged root-parallel search")

	return roots[0].children[best].move, true
}

// Metrics reports on the most recent search, aggregated over all workers.
func (p *Parallel) Metrics() Metrics {
	return p.metrics
}

// mergeVisits sums visit counts per root child across the workers' trees.
// Child enumeration is a pure function of the position, so every worker must
// produce the same children in the same order; a mismatch is a program bug.
func mergeVisits(roots []*node) []int {
	reference := roots[0].children
	visits := make([]int, len(reference))

	for w, root := range roots {
		if len(root.children) != len(reference) {
			panic(fmt.Sprintf("worker %d expanded %d root children, worker 0 expanded %d",
				w, len(root.children), len(reference)))
		}
		for i, child := range root.children {
			if child.move != reference[i].move {
				panic(fmt.Sprintf("worker %d root child %d is %v, worker 0 has %v",
					w, i, child.move, reference[i].move))
			}
			visits[i] += child.visits
		}
	}
	return visits
}
