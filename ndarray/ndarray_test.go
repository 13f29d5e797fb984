// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"testing"

	"github.com/born-ml/ndarray/ndarray"
	"github.com/stretchr/testify/require"
)

func TestZerosAndAdd(t *testing.T) {
	a := ndarray.Zeros(ndarray.Shape{2, 2})
	b := ndarray.Ones(ndarray.Shape{2, 2})

	out, err := ndarray.Add(a, b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !out.Shape().Equal(ndarray.Shape{2, 2}) {
		t.Errorf("Shape() = %v, want [2 2]", out.Shape())
	}
}

func TestFromSliceAndReshape(t *testing.T) {
	v, err := ndarray.FromSlice([]ndarray.Elem{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	r, err := ndarray.Reshape(v, ndarray.Shape{3, 2})
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	if !r.Shape().Equal(ndarray.Shape{3, 2}) {
		t.Errorf("Shape() = %v, want [3 2]", r.Shape())
	}
}

func TestMatMulFacade(t *testing.T) {
	a, _ := ndarray.FromSlice([]ndarray.Elem{1, 2, 3, 4}, ndarray.Shape{2, 2})
	b := ndarray.Eye(2)

	out, err := ndarray.MatMul(a, b)
	if err != nil {
		t.Fatalf("MatMul failed: %v", err)
	}
	want := []ndarray.Elem{1, 2, 3, 4}
	d := out.Descriptor()
	got := (*[4]ndarray.Elem)(d.Ptr)
	for i, w := range want {
		if got[i] != w {
			t.Errorf("out[%d] = %v, want %v (identity matmul should be a no-op)", i, got[i], w)
		}
	}
}

func TestShapeErrorKind(t *testing.T) {
	a, _ := ndarray.FromSlice([]ndarray.Elem{1, 2}, ndarray.Shape{2})
	b, _ := ndarray.FromSlice([]ndarray.Elem{1, 2, 3}, ndarray.Shape{3})
	_, err := ndarray.Add(a, b)
	require.Error(t, err)
	var shapeErr *ndarray.ShapeError
	require.ErrorAs(t, err, &shapeErr)
}
