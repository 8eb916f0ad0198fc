// SPDX-License-Identifier: MIT
// File: weight_edit.go
// Role: the weight-label edit buffer.

package editor

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// Editing returns the edge under edit and the buffer text.
func (c *Controller) Editing() (core.Edge, string, bool) {
	return c.editEdge, string(c.buffer), c.editing
}

// Type appends r to the edit buffer when it is a digit, or a dot while the
// buffer holds none. It reports whether r was accepted.
func (c *Controller) Type(r rune) bool {
	if !c.editing {
		return false
	}
	switch {
	case r >= '0' && r <= '9':
	case r == '.' && bytes.IndexByte(c.buffer, '.') < 0:
	default:
		return false
	}
	c.buffer = append(c.buffer, byte(r))

	return true
}

// Backspace drops the last buffer character, if any.
func (c *Controller) Backspace() {
	if c.editing && len(c.buffer) > 0 {
		c.buffer = c.buffer[:len(c.buffer)-1]
	}
}

// Cancel closes the editor without changing the weight.
func (c *Controller) Cancel() {
	c.editing = false
	c.buffer = c.buffer[:0]
}

// Commit parses the buffer and, when it is a positive real, stores it as
// the edge weight. Editing ends either way; on invalid input the old weight
// stays and the error is logged.
//
// Errors: ErrNotEditing, core.ErrInvalidWeightInput, core.ErrEdgeNotFound.
func (c *Controller) Commit() (float64, error) {
	if !c.editing {
		return 0, fmt.Errorf("Commit: %w", ErrNotEditing)
	}
	text, e := string(c.buffer), c.editEdge
	c.Cancel()

	w, err := core.ParseWeight(text)
	if err != nil {
		c.log.Warn().Err(err).Str("text", text).Int("from", int(e.From)).Int("to", int(e.To)).
			Msg("weight unchanged")
		return 0, fmt.Errorf("Commit: %w", err)
	}
	if err = c.g.SetWeight(e.From, e.To, w); err != nil {
		c.log.Warn().Err(err).Int("from", int(e.From)).Int("to", int(e.To)).Msg("edge vanished")
		return 0, fmt.Errorf("Commit: %w", err)
	}
	c.log.Info().Float64("weight", w).Int("from", int(e.From)).Int("to", int(e.To)).Msg("weight set")

	return w, nil
}
