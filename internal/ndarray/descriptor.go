// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "unsafe"

// BufferDescriptor is the zero-copy interop contract for an external
// array consumer: a raw pointer into the shared buffer at the view's
// logical (0,...,0) element, the element size, and shape/stride
// metadata expressed in bytes. Grounded in the teacher's
// RawTensor.AsFloat32 (internal/tensor/raw.go), which reinterprets raw
// buffer bytes as a typed slice for zero-copy access; this type
// packages the same unsafe.Pointer idea as a portable descriptor
// instead of a typed slice, since the consumer here is not assumed to
// be Go code.
type BufferDescriptor struct {
	Ptr         unsafe.Pointer
	ElemSize    int
	Shape       []int
	ByteStrides []int
	Rank        int
}

// Descriptor produces a BufferDescriptor for v. It performs no
// allocation beyond the returned struct and the small shape/stride
// slices it copies out.
func (v *View) Descriptor() BufferDescriptor {
	const elemSize = int(unsafe.Sizeof(Elem(0)))

	byteStrides := make([]int, len(v.strides))
	for i, s := range v.strides {
		byteStrides[i] = s * elemSize
	}

	//nolint:gosec // unsafe.Pointer for zero-copy interop with an external array consumer
	ptr := unsafe.Pointer(&v.buf.data[v.offset])

	return BufferDescriptor{
		Ptr:         ptr,
		ElemSize:    elemSize,
		Shape:       v.shape.Clone(),
		ByteStrides: byteStrides,
		Rank:        v.Rank(),
	}
}
