// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "testing"

func TestOnes(t *testing.T) {
	v := Ones(Shape{2, 2})
	for i := 0; i < v.NumElements(); i++ {
		if v.read(i) != 1 {
			t.Errorf("Ones()[%d] = %v, want 1", i, v.read(i))
		}
	}
}

func TestFull(t *testing.T) {
	v := Full(Shape{3}, 5)
	for i := 0; i < v.NumElements(); i++ {
		if v.read(i) != 5 {
			t.Errorf("Full()[%d] = %v, want 5", i, v.read(i))
		}
	}
}

func TestArange(t *testing.T) {
	v := Arange(2, 6)
	want := []Elem{2, 3, 4, 5}
	if v.NumElements() != len(want) {
		t.Fatalf("NumElements() = %d, want %d", v.NumElements(), len(want))
	}
	for i, w := range want {
		if v.read(i) != w {
			t.Errorf("Arange()[%d] = %v, want %v", i, v.read(i), w)
		}
	}
}

func TestEye(t *testing.T) {
	v := Eye(3)
	want := []Elem{1, 0, 0, 0, 1, 0, 0, 0, 1}
	for i, w := range want {
		if v.read(i) != w {
			t.Errorf("Eye(3)[%d] = %v, want %v", i, v.read(i), w)
		}
	}
}
