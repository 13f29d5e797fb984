// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "testing"

func TestNeg(t *testing.T) {
	v, _ := FromSlice([]Elem{1, -2, 3}, Shape{3})
	out := Neg(v)
	want := []Elem{-1, 2, -3}
	for i, w := range want {
		if out.read(i) != w {
			t.Errorf("Neg[%d] = %v, want %v", i, out.read(i), w)
		}
	}
}

func TestRelu(t *testing.T) {
	v, _ := FromSlice([]Elem{-1, 0, 2}, Shape{3})
	out := Relu(v)
	want := []Elem{0, 0, 2}
	for i, w := range want {
		if out.read(i) != w {
			t.Errorf("Relu[%d] = %v, want %v", i, out.read(i), w)
		}
	}
}

func TestReciprocal(t *testing.T) {
	v, _ := FromSlice([]Elem{2, 4}, Shape{2})
	out := Reciprocal(v)
	want := []Elem{0.5, 0.25}
	for i, w := range want {
		if out.read(i) != w {
			t.Errorf("Reciprocal[%d] = %v, want %v", i, out.read(i), w)
		}
	}
}

func TestUnaryCommutesWithMakeCompact(t *testing.T) {
	v, _ := FromSlice([]Elem{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	tr, _ := v.Transpose([]int{1, 0})

	strided := Abs(tr)
	compact := Abs(tr.MakeCompact())
	for i := 0; i < strided.NumElements(); i++ {
		if strided.read(i) != compact.read(i) {
			t.Errorf("element %d = %v, want %v", i, strided.read(i), compact.read(i))
		}
	}
}
