// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "testing"

func TestFromSliceShapeAndStrides(t *testing.T) {
	v, err := FromSlice([]Elem{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Shape().Equal(Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", v.Shape())
	}
	expected := []int{3, 1}
	for i, s := range expected {
		if v.Strides()[i] != s {
			t.Errorf("stride[%d] = %d, want %d", i, v.Strides()[i], s)
		}
	}
	if !v.IsContiguous() {
		t.Errorf("expected fresh row-major view to be contiguous")
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	_, err := FromSlice([]Elem{1, 2, 3}, Shape{2, 3})
	if err == nil {
		t.Fatalf("expected a ShapeError for mismatched data length")
	}
}

func TestZerosIsZeroFilled(t *testing.T) {
	v := Zeros(Shape{2, 2})
	for i := 0; i < v.NumElements(); i++ {
		if v.read(i) != 0 {
			t.Errorf("Zeros()[%d] = %v, want 0", i, v.read(i))
		}
	}
}

func TestIsContiguousIgnoresSizeOneAxes(t *testing.T) {
	v := newView(newBuffer(6), Shape{2, 1, 3}, []int{3, 99, 1}, 0)
	if !v.IsContiguous() {
		t.Errorf("expected a size-1 axis with an arbitrary stride to still be contiguous")
	}
}

func TestFrom1D(t *testing.T) {
	v := From1D([]Elem{1, 2, 3})
	if !v.Shape().Equal(Shape{3}) {
		t.Errorf("shape = %v, want [3]", v.Shape())
	}
	if v.Strides()[0] != 1 {
		t.Errorf("stride = %d, want 1", v.Strides()[0])
	}
}
