package metrics

import (
	"fmt"
	"time"
)

// AgentConfig identifies one agent configuration under test.
type AgentConfig struct {
	ID          int
	Search      string
	Threads     int
	Simulations int
	Timeout     time.Duration
	Rave        bool
}

// Args renders the config as the agent's key=value property string.
func (c AgentConfig) Args(role string) string {
	args := fmt.Sprintf("name=agent%d role=%s search=%s", c.ID, role, c.Search)
	if c.Threads > 0 {
		args += fmt.Sprintf(" thread=%d", c.Threads)
	}
	if c.Simulations > 0 {
		args += fmt.Sprintf(" simulation=%d", c.Simulations)
	}
	if c.Timeout > 0 {
		args += fmt.Sprintf(" timeout=%d", c.Timeout.Milliseconds())
	}
	if c.Rave {
		args += " rave=on"
	}
	return args
}

// MoveMetric describes one move decision inside a game.
type MoveMetric struct {
	Step     int
	Player   string
	Cell     int
	Duration time.Duration
	Playouts int
	Nodes    int
}

// GameMetric describes one completed game.
type GameMetric struct {
	Winner    string
	Moves     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// GameRecord ties a game's metric to the agents that produced it.
type GameRecord struct {
	ID    int
	Black int // AgentConfig.ID
	White int // AgentConfig.ID
	GameMetric
}

// MoveRecord ties a move's metric to its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
