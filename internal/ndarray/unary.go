// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "math"

// unary allocates a compact output matching v's shape, walks v with a
// single-view odometer, and writes fn(elem) into the output linearly.
// Same shape as scalarBinary; kept distinct because the fn signature
// here takes no second operand, matching the teacher's separate
// per-dtype unary ops in internal/backend/cpu/math.go.
func unary(v *View, fn func(x Elem) Elem) *View {
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

// Neg computes -v element-wise.
func Neg(v *View) *View { return unary(v, func(x Elem) Elem { return -x }) }

// Exp computes e**v element-wise.
func Exp(v *View) *View { return unary(v, func(x Elem) Elem { return Elem(math.Exp(float64(x))) }) }

// Log computes the natural logarithm of v element-wise.
func Log(v *View) *View { return unary(v, func(x Elem) Elem { return Elem(math.Log(float64(x))) }) }

// Sqrt computes the square root of v element-wise.
func Sqrt(v *View) *View { return unary(v, func(x Elem) Elem { return Elem(math.Sqrt(float64(x))) }) }

// Sin computes the sine of v element-wise.
func Sin(v *View) *View { return unary(v, func(x Elem) Elem { return Elem(math.Sin(float64(x))) }) }

// Cos computes the cosine of v element-wise.
func Cos(v *View) *View { return unary(v, func(x Elem) Elem { return Elem(math.Cos(float64(x))) }) }

// Tanh computes the hyperbolic tangent of v element-wise.
func Tanh(v *View) *View { return unary(v, func(x Elem) Elem { return Elem(math.Tanh(float64(x))) }) }

// Abs computes |v| element-wise.
func Abs(v *View) *View { return unary(v, func(x Elem) Elem { return Elem(math.Abs(float64(x))) }) }

// Reciprocal computes 1/v element-wise.
func Reciprocal(v *View) *View { return unary(v, func(x Elem) Elem { return 1 / x }) }

// Sigmoid computes 1/(1+e**-v) element-wise.
func Sigmoid(v *View) *View {
	return unary(v, func(x Elem) Elem { return Elem(1 / (1 + math.Exp(float64(-x)))) })
}

// Relu computes max(v, 0) element-wise.
func Relu(v *View) *View {
	return unary(v, func(x Elem) Elem {
		if x > 0 {
			return x
		}
		return 0
	})
}
