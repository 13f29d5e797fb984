// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides the public API for a CPU-resident,
// strided n-dimensional array core.
//
// # Overview
//
// A View is a (buffer, shape, strides, offset) descriptor over shared
// storage. This package provides:
//   - View construction from flat data or shape (Zeros, Ones, Full,
//     Arange, Eye, FromSlice, From1D)
//   - Zero-copy view transforms (Reshape, Slice, Transpose, Broadcast)
//   - Element-wise, scalar, and unary kernels with broadcasting
//   - Axis reductions (Sum, Max, Min, Mean, Argmax, Argmin)
//   - Batched matrix multiplication (MatMul)
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/ndarray"
//
//	x := ndarray.Zeros(ndarray.Shape{2, 3})
//	y := ndarray.Ones(ndarray.Shape{2, 3})
//	z, err := ndarray.Add(x, y)
//
// # Broadcasting
//
// Operations follow NumPy-style right-aligned broadcasting rules:
//
//	a := ndarray.Zeros(ndarray.Shape{3, 1})
//	b := ndarray.Ones(ndarray.Shape{3, 4})
//	c, _ := ndarray.Add(a, b) // shape [3, 4]
//
// # Memory Management
//
// Views share their backing buffer via reference counting; storage is
// reclaimed by the garbage collector once the last referencing View is
// released.
package ndarray
