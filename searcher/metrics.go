package searcher

import "time"

// Metrics describes one completed move search.
type Metrics struct {
	Playouts int           // rollouts run
	Nodes    int           // tree nodes allocated, root included
	Workers  int           // 1 for the sequential driver
	Duration time.Duration // wall-clock spent searching
}

func (m Metrics) merge(other Metrics) Metrics {
	m.Playouts += other.Playouts
	m.Nodes += other.Nodes
	m.Workers += other.Workers
	return m
}
