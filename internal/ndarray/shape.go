// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

// Shape is an ordered sequence of non-negative axis sizes.
type Shape []int

// NumElements returns product(shape). The empty shape is never produced
// by this core (rank-1 is the minimum), but NumElements treats it as the
// scalar convention of 1 for internal bookkeeping.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Equal reports whether two shapes have identical rank and sizes.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// RowMajorStrides computes the row-major strides for a shape: the last
// axis has stride 1, and each earlier axis has stride equal to the
// product of all later axes' sizes.
func (s Shape) RowMajorStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// broadcastShapes implements the right-aligned broadcasting rule shared
// by every kernel and by the view algebra's broadcast transform: sizes
// must match, or one of them must be 1. Missing leading axes are treated
// as size 1.
func broadcastShapes(op string, a, b Shape) (Shape, error) {
	rank := len(a)
	if len(b) > rank {
		rank = len(b)
	}
	out := make(Shape, rank)
	for i := 0; i < rank; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim, bDim := 1, 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			out[rank-1-i] = aDim
		case aDim == 1:
			out[rank-1-i] = bDim
		case bDim == 1:
			out[rank-1-i] = aDim
		default:
			return nil, shapeErrorf(op, "shapes not compatible for broadcasting: %v vs %v (axis %d: %d vs %d)",
				a, b, rank-1-i, aDim, bDim)
		}
	}
	return out, nil
}

// broadcastStrides computes, for a source shape being broadcast to
// outShape, the stride to use along each axis of outShape: 0 for axes
// that are padded on the left or that repeat a size-1 source axis, the
// source's own stride otherwise.
func broadcastStrides(srcShape Shape, srcStrides []int, outShape Shape) []int {
	outRank := len(outShape)
	strides := make([]int, outRank)
	offset := outRank - len(srcShape)
	for i := 0; i < outRank; i++ {
		srcIdx := i - offset
		switch {
		case srcIdx < 0:
			strides[i] = 0
		case srcShape[srcIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = srcStrides[srcIdx]
		}
	}
	return strides
}
