// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "fmt"

// ShapeError reports a shape, rank, or axis mismatch: adoption length
// mismatch, reshape element-count mismatch, transpose axes out of range,
// broadcast incompatibility, matmul inner-dimension mismatch, or a
// reduction axis out of range.
type ShapeError struct {
	Op  string
	Msg string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func shapeErrorf(op, format string, args ...any) *ShapeError {
	return &ShapeError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// BoundsError reports a slice specifier whose indices lie outside the
// source axis. It is only raised on the paths where the core itself
// validates specifiers; general bounds checking is delegated to the
// caller per §4.3.
type BoundsError struct {
	Op  string
	Msg string
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func boundsErrorf(op, format string, args ...any) *BoundsError {
	return &BoundsError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
