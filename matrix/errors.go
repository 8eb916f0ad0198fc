// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ". Functions wrap these with the
// failing coordinates via fmt.Errorf("...: %w"); match them with errors.Is.

package matrix

import "errors"

var (
	// ErrNilMatrix indicates that a nil mat.Matrix was passed in.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBadShape is returned when row literals are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNegativeEntry signals a transition weight below zero.
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNotStochastic signals a row whose sum is not 1 within the configured eps.
	ErrNotStochastic = errors.New("matrix: row does not sum to 1 within eps")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an exporter.
	ErrGraphNil = errors.New("matrix: graph is nil")
)
