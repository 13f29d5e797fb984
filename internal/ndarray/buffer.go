// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "sync/atomic"

// Elem is the single element type this core is instantiated for. The
// design is monomorphic per instantiation (§9 design notes); swapping
// the core to float64 is a matter of changing this one alias.
type Elem = float32

// buffer is the heap-allocated, contiguous, fixed-length backing store
// shared by any number of Views. It owns its memory; Views only ever
// hold a reference to it. Grounded in the teacher's tensorBuffer
// (internal/tensor/raw.go), trimmed to a single dtype and without the
// mutex the teacher uses for multi-dtype byte reinterpretation.
type buffer struct {
	data     []Elem
	refCount atomic.Int32
}

// newBuffer allocates n zero-initialized elements.
func newBuffer(n int) *buffer {
	b := &buffer{data: make([]Elem, n)}
	b.refCount.Store(1)
	return b
}

// adoptBuffer wraps an externally provided flat sequence without
// copying it.
func adoptBuffer(data []Elem) *buffer {
	b := &buffer{data: data}
	b.refCount.Store(1)
	return b
}

// size returns the element count.
func (b *buffer) size() int {
	return len(b.data)
}

// addRef increments the reference count; called whenever a View
// aliases an existing buffer (View.clone, and every view-algebra transform
// that shares storage rather than copying).
func (b *buffer) addRef() {
	b.refCount.Add(1)
}

// release decrements the reference count. This core has no explicit
// free: once the count would reach zero the buffer's slice becomes
// unreachable and ordinary garbage collection reclaims it. The count
// exists so a future in-place optimization could assert single
// ownership, mirroring the teacher's IsUnique/ForceNonUnique, even
// though no kernel in this core currently performs in-place writes.
func (b *buffer) release() {
	b.refCount.Add(-1)
}

// isUnique reports whether this buffer has exactly one referencing View.
func (b *buffer) isUnique() bool {
	return b.refCount.Load() == 1
}
