// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"testing"
	"unsafe"
)

func TestDescriptorFields(t *testing.T) {
	v, _ := FromSlice([]Elem{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	d := v.Descriptor()

	if d.ElemSize != int(unsafe.Sizeof(Elem(0))) {
		t.Errorf("ElemSize = %d, want %d", d.ElemSize, unsafe.Sizeof(Elem(0)))
	}
	if d.Rank != 2 {
		t.Errorf("Rank = %d, want 2", d.Rank)
	}
	if !Shape(d.Shape).Equal(Shape{2, 3}) {
		t.Errorf("Shape = %v, want [2 3]", d.Shape)
	}
	wantByteStrides := []int{3 * d.ElemSize, 1 * d.ElemSize}
	for i, w := range wantByteStrides {
		if d.ByteStrides[i] != w {
			t.Errorf("ByteStrides[%d] = %d, want %d", i, d.ByteStrides[i], w)
		}
	}
	if d.Ptr == nil {
		t.Errorf("expected a non-nil pointer")
	}
}

func TestDescriptorRespectsOffset(t *testing.T) {
	v, _ := FromSlice([]Elem{1, 2, 3, 4}, Shape{4})
	sliced, _ := v.Slice([]AxisSpec{Range(2, 4, 1)})
	d := sliced.Descriptor()

	got := *(*Elem)(d.Ptr)
	if got != 3 {
		t.Errorf("descriptor pointer dereferences to %v, want 3 (the sliced view's logical first element)", got)
	}
}
