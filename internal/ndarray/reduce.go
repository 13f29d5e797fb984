// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "math"

// normalizeAxes resolves negative axis indices against rank, validates
// range, and deduplicates via a boolean mask — a duplicate axis in the
// input produces the same mask as its unique set, per §9 design notes.
func normalizeAxes(op string, rank int, axes []int) ([]bool, error) {
	if len(axes) > rank {
		return nil, shapeErrorf(op, "got %d axes for a rank-%d view", len(axes), rank)
	}
	mask := make([]bool, rank)
	for _, ax := range axes {
		if ax < 0 {
			ax += rank
		}
		if ax < 0 || ax >= rank {
			return nil, shapeErrorf(op, "axis %d out of range for rank %d", ax, rank)
		}
		mask[ax] = true
	}
	return mask, nil
}

// reduceShape computes the output shape given a reduced-axis mask and
// keepdims, along with the reduced axes' combined element count (the
// divisor Mean needs).
func reduceShape(shape Shape, mask []bool, keepdims bool) (Shape, int) {
	out := make(Shape, 0, len(shape))
	divisor := 1
	for i, d := range shape {
		if mask[i] {
			divisor *= d
			if keepdims {
				out = append(out, 1)
			}
			continue
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		out = Shape{1}
	}
	return out, divisor
}

// reduce walks v with the odometer, combining each source element into
// the output element its non-reduced coordinates map to. outStrides
// gives, per source axis, the output's stride contribution (0 for a
// reduced axis so the output index never advances along it), following
// the "target-stride-map" construction.
func reduce(op string, v *View, axes []int, keepdims bool, identity Elem, combine func(acc, x Elem) Elem) (*View, error) {
	mask, err := normalizeAxes(op, v.Rank(), axes)
	if err != nil {
		return nil, err
	}

	outShape, _ := reduceShape(v.shape, mask, keepdims)
	out := Full(outShape, identity)

	compactStrides := outShape.RowMajorStrides()
	outStrides := make([]int, v.Rank())
	if keepdims {
		// keepdims inserts a size-1 axis at every reduced position, so
		// compactStrides already aligns 1:1 with v's axes (reduced axes
		// are then overwritten with stride 0 below).
		copy(outStrides, compactStrides)
		for i := range mask {
			if mask[i] {
				outStrides[i] = 0
			}
		}
	} else {
		pos := 0
		for i := 0; i < v.Rank(); i++ {
			if mask[i] {
				continue
			}
			outStrides[i] = compactStrides[pos]
			pos++
		}
	}

	odo := newOdometer(v.shape, []int{v.offset, 0}, [][]int{v.strides, outStrides})
	for {
		lins, _, ok := odo.next()
		if !ok {
			break
		}
		out.buf.data[lins[1]] = combine(out.buf.data[lins[1]], v.read(lins[0]))
	}
	return out, nil
}

// Sum reduces v over axes, summing. Identity is 0.
func Sum(v *View, axes []int, keepdims bool) (*View, error) {
	return reduce("Sum", v, axes, keepdims, 0, func(acc, x Elem) Elem { return acc + x })
}

// Max reduces v over axes, taking the maximum. Identity is the lowest
// representable Elem value.
func Max(v *View, axes []int, keepdims bool) (*View, error) {
	return reduce("Max", v, axes, keepdims, Elem(-math.MaxFloat32), func(acc, x Elem) Elem {
		if x > acc {
			return x
		}
		return acc
	})
}

// Min reduces v over axes, taking the minimum. Identity is the highest
// representable Elem value.
func Min(v *View, axes []int, keepdims bool) (*View, error) {
	return reduce("Min", v, axes, keepdims, Elem(math.MaxFloat32), func(acc, x Elem) Elem {
		if x < acc {
			return x
		}
		return acc
	})
}

// Mean reduces v over axes by summing then dividing by the combined
// size of the reduced axes, composing Sum with a scalar division
// exactly as the teacher composes MeanDim from SumDim.
func Mean(v *View, axes []int, keepdims bool) (*View, error) {
	mask, err := normalizeAxes("Mean", v.Rank(), axes)
	if err != nil {
		return nil, err
	}
	_, divisor := reduceShape(v.shape, mask, keepdims)

	summed, err := Sum(v, axes, keepdims)
	if err != nil {
		return nil, err
	}
	return DivScalar(summed, Elem(divisor)), nil
}

// argExtreme reduces v along a single axis, recording the index (as an
// Elem-valued float, since this instantiation carries no integer dtype)
// at which better(candidate, best) first holds, scanning in the
// odometer's emission order so ties resolve to the first occurrence.
func argExtreme(op string, v *View, axis int, keepdims bool, better func(candidate, best Elem) bool) (*View, error) {
	rank := v.Rank()
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return nil, shapeErrorf(op, "axis %d out of range for rank %d", axis, rank)
	}

	mask := make([]bool, rank)
	mask[axis] = true
	outShape, _ := reduceShape(v.shape, mask, keepdims)

	out := Zeros(outShape)
	best := make([]Elem, out.NumElements())
	haveBest := make([]bool, out.NumElements())

	outStrides := make([]int, rank)
	compactStrides := outShape.RowMajorStrides()
	if keepdims {
		copy(outStrides, compactStrides)
		outStrides[axis] = 0
	} else {
		pos := 0
		for i := 0; i < rank; i++ {
			if mask[i] {
				continue
			}
			outStrides[i] = compactStrides[pos]
			pos++
		}
	}

	odo := newOdometer(v.shape, []int{v.offset, 0}, [][]int{v.strides, outStrides})
	for {
		lins, coords, ok := odo.next()
		if !ok {
			break
		}
		outIdx := lins[1]
		val := v.read(lins[0])
		if !haveBest[outIdx] || better(val, best[outIdx]) {
			best[outIdx] = val
			haveBest[outIdx] = true
			out.buf.data[outIdx] = Elem(coords[axis])
		}
	}
	return out, nil
}

// Argmax reduces v along a single axis, yielding the index of its
// maximum element. Ties resolve to the first occurring index.
func Argmax(v *View, axis int, keepdims bool) (*View, error) {
	return argExtreme("Argmax", v, axis, keepdims, func(candidate, best Elem) bool { return candidate > best })
}

// Argmin reduces v along a single axis, yielding the index of its
// minimum element. Ties resolve to the first occurring index.
func Argmin(v *View, axis int, keepdims bool) (*View, error) {
	return argExtreme("Argmin", v, axis, keepdims, func(candidate, best Elem) bool { return candidate < best })
}
