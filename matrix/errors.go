// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported kernels return these sentinels (possibly wrapped with an operation
// tag via %w) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered conditions; panics are reserved for nonsensical Option values.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and easy grepping.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> dimension mismatch -> singularity.

var (
	// ErrInvalidDimensions indicates negative or inconsistent (ragged) dimensions.
	// Constructors validate before allocating.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index (or a source buffer
	// length) falls outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotThreeByThree signals that a closed-form 3x3 routine received another shape.
	// It wraps ErrDimensionMismatch so both sentinels match.
	ErrNotThreeByThree = fmtWrap("matrix: matrix is not 3x3", ErrDimensionMismatch)

	// ErrSingular is returned by Inverse3x3 when |det| is below the configured epsilon.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidTolerance indicates a NaN or ±Inf comparison tolerance.
	ErrInvalidTolerance = errors.New("matrix: tolerance must be finite")

	// ErrBadJSON indicates a JSON document that does not describe a valid matrix.
	ErrBadJSON = errors.New("matrix: malformed JSON matrix")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange

// wrapErr keeps msg as the visible text while matching parent via errors.Is.
type wrapErr struct {
	msg    string
	parent error
}

func (e *wrapErr) Error() string { return e.msg }
func (e *wrapErr) Unwrap() error { return e.parent }

func fmtWrap(msg string, parent error) error { return &wrapErr{msg: msg, parent: parent} }
