// SPDX-License-Identifier: MIT
// File: walk.go
// Role: walker hooks (start, manual step, frame tick).

package editor

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvwalk/walker"
)

// StartWalk resets the attached walker onto a random node.
//
// Errors: ErrNoWalker, walker.ErrEmptyGraph.
func (c *Controller) StartWalk() error {
	if c.walk == nil {
		return fmt.Errorf("StartWalk: %w", ErrNoWalker)
	}
	if err := c.walk.Reset(); err != nil {
		c.log.Warn().Err(err).Msg("walk not started")
		return fmt.Errorf("StartWalk: %w", err)
	}
	c.log.Info().Int("node", int(c.walk.Current())).Msg("walk started")

	return nil
}

// NextStep advances the walker once, on demand.
func (c *Controller) NextStep() (bool, error) {
	if c.walk == nil {
		return false, fmt.Errorf("NextStep: %w", ErrNoWalker)
	}

	return c.logStep(c.walk.Step())
}

// Tick is called once per frame; the walker steps when its delay elapsed.
// Frames between timed steps are silent.
func (c *Controller) Tick(now time.Time) (bool, error) {
	if c.walk == nil {
		return false, nil
	}
	before := c.walk.LastStep()
	moved, err := c.walk.AdvanceOnTimer(now)
	if c.walk.LastStep().Equal(before) {
		return moved, err
	}

	return c.logStep(moved, err)
}

// logStep records stuck and degenerate states; both leave the walker in place.
func (c *Controller) logStep(moved bool, err error) (bool, error) {
	cur := int(c.walk.Current())
	switch {
	case errors.Is(err, walker.ErrDegenerateWalk):
		c.log.Warn().Int("node", cur).Msg("walker: all outgoing weights are zero")
	case err != nil:
		c.log.Error().Err(err).Int("node", cur).Msg("walker step failed")
	case !moved:
		c.log.Debug().Int("node", cur).Msg("walker stuck")
	default:
		c.log.Debug().Int("node", cur).Int("steps", c.walk.Steps()).Msg("walker moved")
	}

	return moved, err
}
