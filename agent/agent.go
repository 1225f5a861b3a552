package agent

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"nogo/game"
	"nogo/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	ErrInvalidName = errors.New("invalid name")
	ErrInvalidRole = errors.New("invalid role")
)

// forbidden are the characters a player name may not contain.
const forbidden = "[]():; \t\n"

// Player selects moves for one color. It is configured from a flat string of
// whitespace-separated key=value properties:
//
//	name        display name, must not contain []():; or whitespace
//	role        black or white (required)
//	seed        RNG seed
//	search      random (default), mcts, or p-mcts
//	timeout     per-move wall-clock cap in milliseconds, overrides the table
//	simulation  fixed iteration budget, disables the time budget
//	thread      worker count for p-mcts
//	rave        enable RAVE-blended selection for the mcts variants
//
// Unknown keys are kept and readable through Property.
type Player struct {
	props    map[string]string
	name     string
	color    game.Color
	search   string
	rng      *rand.Rand
	space    []game.Move
	mcts     *searcher.MCTS
	parallel *searcher.Parallel
}

func NewPlayer(args string) (*Player, error) {
	p := &Player{
		props: map[string]string{"name": "unknown", "role": "unknown", "search": "random"},
	}
	for _, pair := range strings.Fields(args) {
		key, value, _ := strings.Cut(pair, "=")
		p.props[key] = value
	}

	p.name = p.props["name"]
	if strings.ContainsAny(p.name, forbidden) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, p.name)
	}

	color, err := game.ParseColor(p.props["role"])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, p.props["role"])
	}
	p.color = color

	seed := uint64(time.Now().UnixNano())
	if s, ok := p.props["seed"]; ok {
		parsed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", s, err)
		}
		seed = parsed
	}
	p.rng = rand.New(rand.NewSource(seed))

	p.search = p.props["search"]

	options, err := p.searchOptions()
	if err != nil {
		return nil, err
	}

	switch p.search {
	case "mcts":
		p.mcts = searcher.NewMCTS(append(options, searcher.WithSeed(seed))...)
	case "p-mcts":
		threads := searcher.DefaultThreads
		if s, ok := p.props["thread"]; ok {
			threads, err = strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("invalid thread count %q: %w", s, err)
			}
		}
		p.parallel = searcher.NewParallel(threads, seed, options...)
	default:
		// Baseline policy: a uniformly random legal placement.
		p.space = make([]game.Move, game.Cells)
		for i := range p.space {
			p.space[i] = game.Move{Cell: i, Color: p.color}
		}
	}

	log.Debug().
		Str("name", p.name).
		Str("role", p.color.String()).
		Str("search", p.search).
		Msg("configured player")
	return p, nil
}

func (p *Player) searchOptions() ([]searcher.Option, error) {
	var options []searcher.Option
	if s, ok := p.props["timeout"]; ok {
		ms, err := strconv.Atoi(s)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("invalid timeout %q", s)
		}
		options = append(options, searcher.WithDuration(time.Duration(ms)*time.Millisecond))
	}
	if s, ok := p.props["simulation"]; ok {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid simulation budget %q", s)
		}
		options = append(options, searcher.WithSimulations(n))
	}
	switch p.props["rave"] {
	case "true", "on", "1":
		options = append(options, searcher.WithRave())
	}
	return options, nil
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Role() game.Color {
	return p.color
}

// Property returns the raw configured value for key, or "".
func (p *Player) Property(key string) string {
	return p.props[key]
}

// TakeAction returns the player's move on the position, or NoMove and false
// when no legal placement exists (a resignation).
func (p *Player) TakeAction(b *game.Board) (game.Move, bool) {
	switch p.search {
	case "mcts":
		return p.mcts.ChooseMove(b, p.color)
	case "p-mcts":
		return p.parallel.ChooseMove(b, p.color)
	}

	p.rng.Shuffle(len(p.space), func(i, j int) {
		p.space[i], p.space[j] = p.space[j], p.space[i]
	})
	for _, move := range p.space {
		after := b.Clone()
		if after.Apply(move) {
			return move, true
		}
	}
	return game.NoMove, false
}

// SearchMetrics reports on the player's most recent search. The random
// baseline has none.
func (p *Player) SearchMetrics() searcher.Metrics {
	switch p.search {
	case "mcts":
		return p.mcts.Metrics()
	case "p-mcts":
		return p.parallel.Metrics()
	}
	return searcher.Metrics{}
}
