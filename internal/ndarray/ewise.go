// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "math"

// ewiseBinary computes the broadcast shape of a and b, broadcasts both
// to it, allocates a fresh compact output, and walks all three in
// lockstep via the odometer, writing fn(a_elem, b_elem) linearly into
// the output. Every binary kernel (arithmetic and comparison) is a
// one-line wrapper around this, per the §9 design note to factor a
// reusable traversal routine parameterized by a per-step callable.
func ewiseBinary(op string, a, b *View, fn func(x, y Elem) Elem) (*View, error) {
	outShape, err := broadcastShapes(op, a.shape, b.shape)
	if err != nil {
		return nil, err
	}

	ba, err := a.Broadcast(outShape)
	if err != nil {
		return nil, err
	}
	bb, err := b.Broadcast(outShape)
	if err != nil {
		return nil, err
	}

	out := Zeros(outShape)
	odo := newOdometer(outShape, []int{ba.offset, bb.offset}, [][]int{ba.strides, bb.strides})
	i := 0
	for {
		lins, _, ok := odo.next()
		if !ok {
			break
		}
		out.buf.data[i] = fn(ba.read(lins[0]), bb.read(lins[1]))
		i++
	}
	return out, nil
}

// Add computes a+b with broadcasting.
func Add(a, b *View) (*View, error) { return ewiseBinary("Add", a, b, func(x, y Elem) Elem { return x + y }) }

// Sub computes a-b with broadcasting.
func Sub(a, b *View) (*View, error) { return ewiseBinary("Sub", a, b, func(x, y Elem) Elem { return x - y }) }

// Mul computes a*b with broadcasting.
func Mul(a, b *View) (*View, error) { return ewiseBinary("Mul", a, b, func(x, y Elem) Elem { return x * y }) }

// Div computes a/b with broadcasting.
func Div(a, b *View) (*View, error) { return ewiseBinary("Div", a, b, func(x, y Elem) Elem { return x / y }) }

// Pow computes a**b with broadcasting.
func Pow(a, b *View) (*View, error) {
	return ewiseBinary("Pow", a, b, func(x, y Elem) Elem { return Elem(math.Pow(float64(x), float64(y))) })
}

// boolElem represents a comparison result as 1.0/0.0 rather than a
// dedicated Bool dtype, since this core is monomorphic in its element
// type (§1 non-goals) and introduces no second dtype for masks.
func boolElem(b bool) Elem {
	if b {
		return 1
	}
	return 0
}

// Greater computes a>b element-wise, broadcasting.
func Greater(a, b *View) (*View, error) {
	return ewiseBinary("Greater", a, b, func(x, y Elem) Elem { return boolElem(x > y) })
}

// Less computes a<b element-wise, broadcasting.
func Less(a, b *View) (*View, error) {
	return ewiseBinary("Less", a, b, func(x, y Elem) Elem { return boolElem(x < y) })
}

// GreaterEqual computes a>=b element-wise, broadcasting.
func GreaterEqual(a, b *View) (*View, error) {
	return ewiseBinary("GreaterEqual", a, b, func(x, y Elem) Elem { return boolElem(x >= y) })
}

// LessEqual computes a<=b element-wise, broadcasting.
func LessEqual(a, b *View) (*View, error) {
	return ewiseBinary("LessEqual", a, b, func(x, y Elem) Elem { return boolElem(x <= y) })
}

// Equal computes a==b element-wise, broadcasting.
func Equal(a, b *View) (*View, error) {
	return ewiseBinary("Equal", a, b, func(x, y Elem) Elem { return boolElem(x == y) })
}

// NotEqual computes a!=b element-wise, broadcasting.
func NotEqual(a, b *View) (*View, error) {
	return ewiseBinary("NotEqual", a, b, func(x, y Elem) Elem { return boolElem(x != y) })
}
