// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

// View is a descriptor over a shared buffer: a shape, a stride per
// axis (measured in elements, not bytes), and an offset into the
// buffer at which the logical (0,...,0) element resides. Many Views
// may reference the same buffer; none owns it exclusively.
type View struct {
	buf     *buffer
	shape   Shape
	strides []int
	offset  int
}

// Shape returns the view's shape.
func (v *View) Shape() Shape { return v.shape }

// Strides returns the view's element strides.
func (v *View) Strides() []int { return v.strides }

// Offset returns the view's element offset into the shared buffer.
func (v *View) Offset() int { return v.offset }

// Rank returns len(shape).
func (v *View) Rank() int { return len(v.shape) }

// NumElements returns product(shape).
func (v *View) NumElements() int { return v.shape.NumElements() }

// IsContiguous reports whether the view's strides are row-major for its
// shape, ignoring axes of size 1 (their stride is immaterial). Offset
// and buffer-size-vs-shape are deliberately not part of this predicate
// (see Open Questions, §9).
func (v *View) IsContiguous() bool {
	expected := 1
	for i := len(v.shape) - 1; i >= 0; i-- {
		if v.shape[i] == 1 {
			continue
		}
		if v.strides[i] != expected {
			return false
		}
		expected *= v.shape[i]
	}
	return true
}

// newView is the trusted internal descriptor constructor: it takes an
// existing buffer, a shape, and optional strides/offset. If strides is
// nil, row-major strides for shape are computed. It performs no
// validation beyond what its callers in the view algebra already
// guarantee.
func newView(buf *buffer, shape Shape, strides []int, offset int) *View {
	if strides == nil {
		strides = shape.RowMajorStrides()
	}
	return &View{buf: buf, shape: shape, strides: strides, offset: offset}
}

// Zeros allocates a fresh buffer of size product(shape), zero
// initialized, and returns a row-major View with offset 0 over it.
func Zeros(shape Shape) *View {
	buf := newBuffer(shape.NumElements())
	return newView(buf, shape.Clone(), nil, 0)
}

// FromSlice adopts a flat sequence of data as a row-major View of the
// given shape. It fails with ShapeError when len(data) != product(shape).
func FromSlice(data []Elem, shape Shape) (*View, error) {
	if len(data) != shape.NumElements() {
		return nil, shapeErrorf("FromSlice", "data has %d elements, shape %v requires %d", len(data), shape, shape.NumElements())
	}
	buf := adoptBuffer(data)
	return newView(buf, shape.Clone(), nil, 0), nil
}

// From1D adopts a flat sequence as a 1-D View: shape [len(data)],
// strides [1], offset 0.
func From1D(data []Elem) *View {
	buf := adoptBuffer(data)
	return newView(buf, Shape{len(data)}, []int{1}, 0)
}

// clone returns a new View that shares this view's buffer, incrementing
// its reference count. Shape and strides are copied so the clone's
// slices are independent of the source's.
func (v *View) clone() *View {
	v.buf.addRef()
	return &View{
		buf:     v.buf,
		shape:   v.shape.Clone(),
		strides: append([]int(nil), v.strides...),
		offset:  v.offset,
	}
}

// Release drops this view's reference to its buffer. It does not
// invalidate other Views that still reference the same buffer.
func (v *View) Release() {
	v.buf.release()
}

// read returns the element at a given linear buffer index.
func (v *View) read(linear int) Elem {
	return v.buf.data[linear]
}

// write stores value at a given linear buffer index.
func (v *View) write(linear int, value Elem) {
	v.buf.data[linear] = value
}
