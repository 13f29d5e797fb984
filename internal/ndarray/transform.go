// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

// AxisSpec is a tagged slice specifier for one leading axis: either an
// integer index (the axis collapses, reducing rank by one) or a
// (start, stop, step) range (the axis is retained with a new length).
// Per §9 design notes, the index case is a distinct variant, never a
// degenerate range.
type AxisSpec struct {
	isIndex     bool
	index       int
	start, stop int
	step        int
}

// Index builds an axis specifier that collapses the axis at position i.
func Index(i int) AxisSpec {
	return AxisSpec{isIndex: true, index: i}
}

// Range builds a (start, stop, step) axis specifier that retains the
// axis with a new length of ceil(|stop-start| / |step|). step must be
// positive; negative steps are unsupported (§9 Open Questions).
func Range(start, stop, step int) AxisSpec {
	return AxisSpec{start: start, stop: stop, step: step}
}

// aliasView shares v's buffer with a new shape/strides/offset. Every
// view-algebra transform except MakeCompact, Cat, and Reshape of a
// non-contiguous view returns through this path, so those transforms
// move no data.
func (v *View) aliasView(shape Shape, strides []int, offset int) *View {
	v.buf.addRef()
	return &View{buf: v.buf, shape: shape, strides: strides, offset: offset}
}

// Slice derives a sub-view per the range/index specifiers in specs, one
// per leading axis; axes beyond len(specs) pass through unchanged. The
// core does not validate that start/stop/index lie within the source
// axis — per §4.3 that is delegated to the caller that constructs the
// specifiers.
func (v *View) Slice(specs []AxisSpec) (*View, error) {
	rank := v.Rank()
	if len(specs) > rank {
		return nil, shapeErrorf("Slice", "got %d specifiers for a rank-%d view", len(specs), rank)
	}

	newShape := make(Shape, 0, rank)
	newStrides := make([]int, 0, rank)
	offset := v.offset

	for axis := 0; axis < rank; axis++ {
		if axis >= len(specs) {
			newShape = append(newShape, v.shape[axis])
			newStrides = append(newStrides, v.strides[axis])
			continue
		}

		spec := specs[axis]
		if spec.isIndex {
			offset += spec.index * v.strides[axis]
			continue
		}

		step := spec.step
		if step == 0 {
			step = 1
		}
		if step < 0 {
			return nil, shapeErrorf("Slice", "negative step %d is unsupported", step)
		}

		offset += spec.start * v.strides[axis]
		length := (abs(spec.stop-spec.start) + step - 1) / step
		if length < 0 {
			length = 0
		}
		newShape = append(newShape, length)
		newStrides = append(newStrides, v.strides[axis]*step)
	}

	return v.aliasView(newShape, newStrides, offset), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Reshape resolves a single -1 wildcard dimension (if present) against
// v's element count and returns a view of the resolved shape. If v is
// contiguous the result shares v's buffer; otherwise v is materialized
// via MakeCompact first.
func (v *View) Reshape(newShape Shape) (*View, error) {
	resolved, err := resolveReshapeShape(v.NumElements(), newShape)
	if err != nil {
		return nil, err
	}

	if v.IsContiguous() {
		return v.aliasView(resolved, resolved.RowMajorStrides(), v.offset), nil
	}

	compact := v.MakeCompact()
	compact.shape = resolved
	compact.strides = resolved.RowMajorStrides()
	return compact, nil
}

func resolveReshapeShape(total int, newShape Shape) (Shape, error) {
	resolved := newShape.Clone()
	inferIdx := -1
	product := 1
	for i, d := range newShape {
		switch {
		case d == -1:
			if inferIdx >= 0 {
				return nil, shapeErrorf("Reshape", "only one -1 dimension is allowed, got %v", newShape)
			}
			inferIdx = i
		case d <= 0:
			return nil, shapeErrorf("Reshape", "dimensions must be positive, got %d in %v", d, newShape)
		default:
			product *= d
		}
	}

	if inferIdx >= 0 {
		if product == 0 || total%product != 0 {
			return nil, shapeErrorf("Reshape", "cannot infer dimension for shape %v from %d elements", newShape, total)
		}
		resolved[inferIdx] = total / product
	}

	if resolved.NumElements() != total {
		return nil, shapeErrorf("Reshape", "cannot reshape %d elements into shape %v", total, resolved)
	}
	return resolved, nil
}

// Transpose permutes v's shape and strides by axes, a permutation of
// [0, rank). Offset and buffer are unchanged.
func (v *View) Transpose(axes []int) (*View, error) {
	rank := v.Rank()
	if len(axes) != rank {
		return nil, shapeErrorf("Transpose", "axes length %d must match rank %d", len(axes), rank)
	}

	seen := make([]bool, rank)
	for _, ax := range axes {
		if ax < 0 || ax >= rank {
			return nil, shapeErrorf("Transpose", "axis %d out of range for rank %d", ax, rank)
		}
		if seen[ax] {
			return nil, shapeErrorf("Transpose", "duplicate axis %d in permutation %v", ax, axes)
		}
		seen[ax] = true
	}

	newShape := make(Shape, rank)
	newStrides := make([]int, rank)
	for i, ax := range axes {
		newShape[i] = v.shape[ax]
		newStrides[i] = v.strides[ax]
	}

	return v.aliasView(newShape, newStrides, v.offset), nil
}

// Broadcast expands v to newShape per the right-aligned broadcasting
// rule: every aligned axis must either match or have source size 1. No
// data is copied; the result aliases v.
func (v *View) Broadcast(newShape Shape) (*View, error) {
	if len(newShape) < v.Rank() {
		return nil, shapeErrorf("Broadcast", "target rank %d is smaller than source rank %d", len(newShape), v.Rank())
	}

	offset := len(newShape) - v.Rank()
	for i := 0; i < v.Rank(); i++ {
		srcDim := v.shape[i]
		dstDim := newShape[offset+i]
		if srcDim != dstDim && srcDim != 1 {
			return nil, shapeErrorf("Broadcast", "cannot broadcast axis %d from %d to %d", i, srcDim, dstDim)
		}
	}

	strides := broadcastStrides(v.shape, v.strides, newShape)
	return v.aliasView(newShape.Clone(), strides, v.offset), nil
}

// BroadcastShape computes the broadcast result of two shapes. It is the
// exported form of broadcastShapes, which the element-wise binary
// kernels and MatMul use to size their output before broadcasting both
// operands.
func BroadcastShape(a, b Shape) (Shape, error) {
	return broadcastShapes("BroadcastShape", a, b)
}

// MakeCompact allocates a fresh buffer of size product(shape),
// materializes v's logical contents in row-major order via the
// odometer, and returns a View with offset 0 and row-major strides.
func (v *View) MakeCompact() *View {
	out := Zeros(v.shape.Clone())
	odo := newOdometer(v.shape, []int{v.offset}, [][]int{v.strides})
	i := 0
	for {
		lins, _, ok := odo.next()
		if !ok {
			break
		}
		out.buf.data[i] = v.read(lins[0])
		i++
	}
	return out
}

// Unsqueeze inserts a size-1 axis at position axis (supports negative
// indexing against rank+1 positions). The new axis's stride mirrors the
// axis it displaces so a compact view stays compact.
func (v *View) Unsqueeze(axis int) (*View, error) {
	rank := v.Rank()
	if axis < 0 {
		axis += rank + 1
	}
	if axis < 0 || axis > rank {
		return nil, shapeErrorf("Unsqueeze", "axis %d out of range for rank %d", axis, rank)
	}

	newShape := make(Shape, rank+1)
	newStrides := make([]int, rank+1)
	copy(newShape[:axis], v.shape[:axis])
	copy(newStrides[:axis], v.strides[:axis])

	stride := 1
	if axis < rank {
		stride = v.strides[axis]
	}
	newShape[axis] = 1
	newStrides[axis] = stride

	copy(newShape[axis+1:], v.shape[axis:])
	copy(newStrides[axis+1:], v.strides[axis:])

	return v.aliasView(newShape, newStrides, v.offset), nil
}

// Squeeze removes the size-1 axis at position axis (supports negative
// indexing). It fails with ShapeError if the named axis does not have
// size 1.
func (v *View) Squeeze(axis int) (*View, error) {
	rank := v.Rank()
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return nil, shapeErrorf("Squeeze", "axis %d out of range for rank %d", axis, rank)
	}
	if v.shape[axis] != 1 {
		return nil, shapeErrorf("Squeeze", "axis %d has size %d, not 1", axis, v.shape[axis])
	}

	newShape := make(Shape, 0, rank-1)
	newStrides := make([]int, 0, rank-1)
	for i := 0; i < rank; i++ {
		if i == axis {
			continue
		}
		newShape = append(newShape, v.shape[i])
		newStrides = append(newStrides, v.strides[i])
	}

	return v.aliasView(newShape, newStrides, v.offset), nil
}

// Cat concatenates views along axis. All views must agree on rank and
// on every dimension other than axis. Unlike the rest of the view
// algebra, Cat always allocates: there is no stride arrangement that
// makes disjoint buffers appear contiguous.
func Cat(views []*View, axis int) (*View, error) {
	if len(views) == 0 {
		return nil, shapeErrorf("Cat", "at least one view is required")
	}

	rank := views[0].Rank()
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return nil, shapeErrorf("Cat", "axis %d out of range for rank %d", axis, rank)
	}

	outShape := views[0].shape.Clone()
	total := 0
	for _, vw := range views {
		if vw.Rank() != rank {
			return nil, shapeErrorf("Cat", "rank mismatch: %d vs %d", vw.Rank(), rank)
		}
		for d := 0; d < rank; d++ {
			if d == axis {
				continue
			}
			if vw.shape[d] != outShape[d] {
				return nil, shapeErrorf("Cat", "shape mismatch at axis %d: %d vs %d", d, vw.shape[d], outShape[d])
			}
		}
		total += vw.shape[axis]
	}
	outShape[axis] = total

	out := Zeros(outShape)
	outStrides := outShape.RowMajorStrides()

	pos := 0
	for _, vw := range views {
		startOut := pos * outStrides[axis]
		odo := newOdometer(vw.shape, []int{vw.offset, startOut}, [][]int{vw.strides, outStrides})
		for {
			lins, _, ok := odo.next()
			if !ok {
				break
			}
			out.write(lins[1], vw.read(lins[0]))
		}
		pos += vw.shape[axis]
	}

	return out, nil
}
