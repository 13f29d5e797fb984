// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "testing"

func TestAddBroadcasts(t *testing.T) {
	a, _ := FromSlice([]Elem{1, 2, 3}, Shape{3})
	b, _ := FromSlice([]Elem{10, 20, 30, 40, 50, 60}, Shape{2, 3})

	out, err := Add(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Shape().Equal(Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", out.Shape())
	}
	want := []Elem{11, 22, 33, 41, 52, 63}
	for i, w := range want {
		if out.read(i) != w {
			t.Errorf("out[%d] = %v, want %v", i, out.read(i), w)
		}
	}
}

func TestAddIncompatibleShapes(t *testing.T) {
	a, _ := FromSlice([]Elem{1, 2}, Shape{2})
	b, _ := FromSlice([]Elem{1, 2, 3}, Shape{3})
	if _, err := Add(a, b); err == nil {
		t.Fatalf("expected an error for incompatible shapes")
	}
}

func TestEwiseCommutesWithMakeCompact(t *testing.T) {
	v, _ := FromSlice([]Elem{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	tr, _ := v.Transpose([]int{1, 0})
	other, _ := FromSlice([]Elem{1, 1, 1, 1, 1, 1}, Shape{3, 2})

	strided, err := Mul(tr, other)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	compact, err := Mul(tr.MakeCompact(), other)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < strided.NumElements(); i++ {
		if strided.read(i) != compact.read(i) {
			t.Errorf("element %d = %v, want %v (bitwise match over a strided vs. compact input)", i, strided.read(i), compact.read(i))
		}
	}
}

func TestComparisonOps(t *testing.T) {
	a, _ := FromSlice([]Elem{1, 2, 3}, Shape{3})
	b, _ := FromSlice([]Elem{3, 2, 1}, Shape{3})

	gt, _ := Greater(a, b)
	want := []Elem{0, 0, 1}
	for i, w := range want {
		if gt.read(i) != w {
			t.Errorf("Greater[%d] = %v, want %v", i, gt.read(i), w)
		}
	}

	eq, _ := Equal(a, b)
	wantEq := []Elem{0, 1, 0}
	for i, w := range wantEq {
		if eq.read(i) != w {
			t.Errorf("Equal[%d] = %v, want %v", i, eq.read(i), w)
		}
	}
}
