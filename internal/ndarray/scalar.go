// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "math"

// scalarBinary allocates a compact output matching v's shape, walks v
// with a single-view odometer, and writes fn(elem) into the output
// linearly. Every scalar kernel is a thin wrapper around this.
func scalarBinary(v *View, fn func(x Elem) Elem) *View {
	out := Zeros(v.shape.Clone())
	odo := newOdometer(v.shape, []int{v.offset}, [][]int{v.strides})
	i := 0
	for {
		lins, _, ok := odo.next()
		if !ok {
			break
		}
		out.buf.data[i] = fn(v.read(lins[0]))
		i++
	}
	return out
}

// AddScalar computes v+s element-wise.
func AddScalar(v *View, s Elem) *View { return scalarBinary(v, func(x Elem) Elem { return x + s }) }

// SubScalar computes v-s element-wise.
func SubScalar(v *View, s Elem) *View { return scalarBinary(v, func(x Elem) Elem { return x - s }) }

// MulScalar computes v*s element-wise.
func MulScalar(v *View, s Elem) *View { return scalarBinary(v, func(x Elem) Elem { return x * s }) }

// DivScalar computes v/s element-wise.
func DivScalar(v *View, s Elem) *View { return scalarBinary(v, func(x Elem) Elem { return x / s }) }

// PowScalar computes v**s element-wise.
func PowScalar(v *View, s Elem) *View {
	return scalarBinary(v, func(x Elem) Elem { return Elem(math.Pow(float64(x), float64(s))) })
}

// ScalarSub computes s-v element-wise (the reversed variant).
func ScalarSub(s Elem, v *View) *View { return scalarBinary(v, func(x Elem) Elem { return s - x }) }

// ScalarDiv computes s/v element-wise (the reversed variant).
func ScalarDiv(s Elem, v *View) *View { return scalarBinary(v, func(x Elem) Elem { return s / x }) }
