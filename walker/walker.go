// SPDX-License-Identifier: MIT
// File: walker.go
// Role: Walker construction, Reset, Step, AdvanceOnTimer and the weighted draw.

package walker

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/lvwalk/core"
)

// New binds a Walker to g and places it on the WithStart node or on a
// uniformly random node.
//
// Errors: ErrGraphNil, ErrEmptyGraph.
func New(g *core.Graph, opts ...Option) (*Walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := &Walker{
		g:      g,
		delay:  DefaultDelay,
		now:    time.Now,
		visits: make(map[core.NodeID]int),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(defaultSeed))
	}

	if w.hasStart && g.HasNode(w.start) {
		w.place(w.start)
		w.lastStep = w.now()
		return w, nil
	}
	if err := w.Reset(); err != nil {
		return nil, err
	}

	return w, nil
}

// Reset moves the walker to a uniformly random node of the full node set
// and restarts the step timer. Visit counters are cleared.
//
// Errors: ErrEmptyGraph.
func (w *Walker) Reset() error {
	nodes := w.g.Nodes()
	if len(nodes) == 0 {
		return ErrEmptyGraph
	}
	w.steps = 0
	w.visits = make(map[core.NodeID]int)
	w.place(nodes[w.rng.Intn(len(nodes))])
	w.lastStep = w.now()

	return nil
}

// Step advances one edge from the current node.
//
// Returns:
//   - (true, nil) after moving (a self-loop counts as a move).
//   - (false, nil) when the current node has no outgoing edges.
//   - (false, ErrDegenerateWalk) when every outgoing weight is zero.
//   - (false, ErrInvalidState) when the current node was removed.
//
// Complexity: O(d + log d) for out-degree d.
func (w *Walker) Step() (bool, error) {
	if !w.g.HasNode(w.current) {
		return false, fmt.Errorf("Step(%d): %w", w.current, ErrInvalidState)
	}
	out := w.g.OutEdges(w.current)
	if len(out) == 0 {
		return false, nil
	}

	idx, ok := w.draw(out)
	if !ok {
		return false, fmt.Errorf("Step(%d): %w", w.current, ErrDegenerateWalk)
	}
	w.place(out[idx].To)
	w.steps++

	return true, nil
}

// AdvanceOnTimer steps once if at least the configured delay has elapsed
// since the last timed step (or Reset), then records now as the last step
// time. Otherwise it does nothing and returns (false, nil).
//
// The timer restarts even when the step is a no-op (stuck or degenerate),
// so a frozen walker is retried once per delay rather than every frame.
func (w *Walker) AdvanceOnTimer(now time.Time) (bool, error) {
	if now.Sub(w.lastStep) < w.delay {
		return false, nil
	}
	w.lastStep = now

	return w.Step()
}

// draw picks an index of out with probability proportional to its weight
// using cumulative sums and binary search. Returns false if Σw == 0.
// Weights are divided by the largest one first so the running sum stays
// finite even when individual weights sit near math.MaxFloat64.
func (w *Walker) draw(out []core.Edge) (int, bool) {
	var peak float64
	for _, e := range out {
		peak = max(peak, e.Weight)
	}
	if peak <= 0 {
		return 0, false
	}

	w.cum = w.cum[:0]
	var total float64
	for _, e := range out {
		total += e.Weight / peak
		w.cum = append(w.cum, total)
	}

	// u ∈ [0,total); the first cumulative sum strictly greater than u wins,
	// which skips zero-weight edges (their sum equals the previous one).
	u := w.rng.Float64() * total
	idx := sort.Search(len(w.cum), func(i int) bool { return w.cum[i] > u })
	if idx == len(w.cum) {
		// Float rounding at the top edge: fall back to the last edge with mass.
		idx = len(out) - 1
		for out[idx].Weight == 0 {
			idx--
		}
	}

	return idx, true
}

func (w *Walker) place(id core.NodeID) {
	w.current = id
	w.visits[id]++
}

// Current returns the node the walker stands on.
func (w *Walker) Current() core.NodeID { return w.current }

// Steps returns the number of successful moves since the last Reset.
func (w *Walker) Steps() int { return w.steps }

// Delay returns the timer-driven inter-step delay.
func (w *Walker) Delay() time.Duration { return w.delay }

// LastStep returns the time of the last timed step or Reset.
func (w *Walker) LastStep() time.Time { return w.lastStep }

// Visits returns a copy of the per-node visit counters since the last Reset,
// including the starting node.
func (w *Walker) Visits() map[core.NodeID]int {
	out := make(map[core.NodeID]int, len(w.visits))
	for id, n := range w.visits {
		out[id] = n
	}

	return out
}
