// SPDX-License-Identifier: MIT
// Package matrix: JSON codec.
//
// Wire form: {"rows":R,"cols":C,"data":[row-major values]}.
// Only the row-major buffer travels; decoding rebuilds both layouts through the
// dual-write primitive, so a decoded matrix satisfies the layout invariant.

package matrix

import (
	"fmt"

	"github.com/goccy/go-json"
)

// jsonMatrix is the wire representation of a Matrix.
type jsonMatrix[T Number] struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
	Data []T `json:"data"`
}

// MarshalJSON encodes m in row-major order. A nil m encodes as null.
func (m *Matrix[T]) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil // same as encoding/json for a nil pointer
	}
	data := m.rowMajor
	if data == nil {
		data = []T{}
	}

	return json.Marshal(jsonMatrix[T]{Rows: m.r, Cols: m.c, Data: data})
}

// UnmarshalJSON replaces m with the decoded matrix.
// On error m is left unchanged.
//
// Errors:
//   - ErrBadJSON for syntax errors, negative or overflowing extents, or len(data) != rows*cols.
func (m *Matrix[T]) UnmarshalJSON(b []byte) error {
	var w jsonMatrix[T]
	if err := json.Unmarshal(b, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	// Shape first: rows*cols below must not overflow
	if err := ValidateShape[T](w.Rows, w.Cols); err != nil {
		return fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	if len(w.Data) != w.Rows*w.Cols {
		return fmt.Errorf("%w: %dx%d needs %d values, got %d", ErrBadJSON, w.Rows, w.Cols, w.Rows*w.Cols, len(w.Data))
	}

	decoded, err := NewFromRowMajor(w.Rows, w.Cols, w.Data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	*m = *decoded

	return nil
}
