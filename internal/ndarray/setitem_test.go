// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "testing"

func TestSetItemScalar(t *testing.T) {
	v := Zeros(Shape{2, 3})
	err := v.SetItemScalar([]AxisSpec{Range(0, 2, 1), Range(1, 3, 1)}, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Elem{0, 7, 7, 0, 7, 7}
	got := flatten(v)
	for i, w := range want {
		if got[i] != w {
			t.Errorf("element %d = %v, want %v", i, got[i], w)
		}
	}
}

func TestSetItemEwiseBroadcasts(t *testing.T) {
	v := Zeros(Shape{2, 3})
	source, _ := FromSlice([]Elem{1, 2, 3}, Shape{3})
	if err := v.SetItemEwise(nil, source); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Elem{1, 2, 3, 1, 2, 3}
	got := flatten(v)
	for i, w := range want {
		if got[i] != w {
			t.Errorf("element %d = %v, want %v", i, got[i], w)
		}
	}
}

func TestSetItemEwiseIntoSubView(t *testing.T) {
	v := Zeros(Shape{2, 3})
	source, _ := FromSlice([]Elem{9, 9}, Shape{2})
	if err := v.SetItemEwise([]AxisSpec{Range(0, 2, 1), Index(1)}, source); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Elem{0, 9, 0, 0, 9, 0}
	got := flatten(v)
	for i, w := range want {
		if got[i] != w {
			t.Errorf("element %d = %v, want %v", i, got[i], w)
		}
	}
}
