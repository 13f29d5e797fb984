// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Elem is the core's single numeric element type.
type Elem = ndarray.Elem

// Shape is an ordered sequence of non-negative axis sizes.
type Shape = ndarray.Shape

// View is a strided descriptor over a shared buffer.
type View = ndarray.View

// AxisSpec is a tagged slice specifier: an integer index or a
// (start, stop, step) range.
type AxisSpec = ndarray.AxisSpec

// BufferDescriptor is the zero-copy interop contract exposing a View's
// raw pointer, element size, shape, and byte strides.
type BufferDescriptor = ndarray.BufferDescriptor

// ShapeError reports a shape, rank, or axis mismatch.
type ShapeError = ndarray.ShapeError

// BoundsError reports a slice specifier whose indices lie outside the
// source axis.
type BoundsError = ndarray.BoundsError

// Index builds an axis specifier that collapses the axis at position i.
func Index(i int) AxisSpec { return ndarray.Index(i) }

// Range builds a (start, stop, step) axis specifier.
func Range(start, stop, step int) AxisSpec { return ndarray.Range(start, stop, step) }

// Zeros allocates a zero-initialized View of the given shape.
func Zeros(shape Shape) *View { return ndarray.Zeros(shape) }

// Ones allocates a View of the given shape filled with 1.
func Ones(shape Shape) *View { return ndarray.Ones(shape) }

// Full allocates a View of the given shape filled with value.
func Full(shape Shape, value Elem) *View { return ndarray.Full(shape, value) }

// Arange builds a 1-D View over start, start+1, ..., stop-1.
func Arange(start, stop Elem) *View { return ndarray.Arange(start, stop) }

// Eye builds an n x n View with 1 along the diagonal.
func Eye(n int) *View { return ndarray.Eye(n) }

// FromSlice adopts flat data as a row-major View of the given shape.
func FromSlice(data []Elem, shape Shape) (*View, error) { return ndarray.FromSlice(data, shape) }

// From1D adopts flat data as a rank-1 View.
func From1D(data []Elem) *View { return ndarray.From1D(data) }

// Reshape resolves a single -1 wildcard dimension against v's element
// count and returns a view of the resolved shape, sharing v's buffer
// when v is contiguous.
func Reshape(v *View, newShape Shape) (*View, error) { return v.Reshape(newShape) }

// Slice derives a sub-view per the range/index specifiers in specs.
func Slice(v *View, specs []AxisSpec) (*View, error) { return v.Slice(specs) }

// Transpose permutes v's shape and strides by axes.
func Transpose(v *View, axes []int) (*View, error) { return v.Transpose(axes) }

// Broadcast expands v to newShape per right-aligned broadcasting.
func Broadcast(v *View, newShape Shape) (*View, error) { return v.Broadcast(newShape) }

// BroadcastShape computes the broadcast result of two shapes.
func BroadcastShape(a, b Shape) (Shape, error) { return ndarray.BroadcastShape(a, b) }

// MakeCompact materializes v's logical contents into a fresh,
// row-major, offset-0 buffer.
func MakeCompact(v *View) *View { return v.MakeCompact() }

// Unsqueeze inserts a size-1 axis at position axis.
func Unsqueeze(v *View, axis int) (*View, error) { return v.Unsqueeze(axis) }

// Squeeze removes the size-1 axis at position axis.
func Squeeze(v *View, axis int) (*View, error) { return v.Squeeze(axis) }

// Cat concatenates views along axis.
func Cat(views []*View, axis int) (*View, error) { return ndarray.Cat(views, axis) }

// SetItemScalar writes value into every element of the sub-view
// described by specs.
func SetItemScalar(v *View, specs []AxisSpec, value Elem) error {
	return v.SetItemScalar(specs, value)
}

// SetItemEwise writes the elements of source into the sub-view
// described by specs, broadcasting source if needed.
func SetItemEwise(v *View, specs []AxisSpec, source *View) error {
	return v.SetItemEwise(specs, source)
}

// Add computes a+b with broadcasting.
func Add(a, b *View) (*View, error) { return ndarray.Add(a, b) }

// Sub computes a-b with broadcasting.
func Sub(a, b *View) (*View, error) { return ndarray.Sub(a, b) }

// Mul computes a*b with broadcasting.
func Mul(a, b *View) (*View, error) { return ndarray.Mul(a, b) }

// Div computes a/b with broadcasting.
func Div(a, b *View) (*View, error) { return ndarray.Div(a, b) }

// Pow computes a**b with broadcasting.
func Pow(a, b *View) (*View, error) { return ndarray.Pow(a, b) }

// Greater computes a>b element-wise, broadcasting.
func Greater(a, b *View) (*View, error) { return ndarray.Greater(a, b) }

// Less computes a<b element-wise, broadcasting.
func Less(a, b *View) (*View, error) { return ndarray.Less(a, b) }

// GreaterEqual computes a>=b element-wise, broadcasting.
func GreaterEqual(a, b *View) (*View, error) { return ndarray.GreaterEqual(a, b) }

// LessEqual computes a<=b element-wise, broadcasting.
func LessEqual(a, b *View) (*View, error) { return ndarray.LessEqual(a, b) }

// Equal computes a==b element-wise, broadcasting.
func Equal(a, b *View) (*View, error) { return ndarray.Equal(a, b) }

// NotEqual computes a!=b element-wise, broadcasting.
func NotEqual(a, b *View) (*View, error) { return ndarray.NotEqual(a, b) }

// AddScalar computes v+s element-wise.
func AddScalar(v *View, s Elem) *View { return ndarray.AddScalar(v, s) }

// SubScalar computes v-s element-wise.
func SubScalar(v *View, s Elem) *View { return ndarray.SubScalar(v, s) }

// MulScalar computes v*s element-wise.
func MulScalar(v *View, s Elem) *View { return ndarray.MulScalar(v, s) }

// DivScalar computes v/s element-wise.
func DivScalar(v *View, s Elem) *View { return ndarray.DivScalar(v, s) }

// PowScalar computes v**s element-wise.
func PowScalar(v *View, s Elem) *View { return ndarray.PowScalar(v, s) }

// ScalarSub computes s-v element-wise.
func ScalarSub(s Elem, v *View) *View { return ndarray.ScalarSub(s, v) }

// ScalarDiv computes s/v element-wise.
func ScalarDiv(s Elem, v *View) *View { return ndarray.ScalarDiv(s, v) }

// Neg computes -v element-wise.
func Neg(v *View) *View { return ndarray.Neg(v) }

// Exp computes e**v element-wise.
func Exp(v *View) *View { return ndarray.Exp(v) }

// Log computes the natural logarithm of v element-wise.
func Log(v *View) *View { return ndarray.Log(v) }

// Sqrt computes the square root of v element-wise.
func Sqrt(v *View) *View { return ndarray.Sqrt(v) }

// Sin computes the sine of v element-wise.
func Sin(v *View) *View { return ndarray.Sin(v) }

// Cos computes the cosine of v element-wise.
func Cos(v *View) *View { return ndarray.Cos(v) }

// Tanh computes the hyperbolic tangent of v element-wise.
func Tanh(v *View) *View { return ndarray.Tanh(v) }

// Abs computes |v| element-wise.
func Abs(v *View) *View { return ndarray.Abs(v) }

// Reciprocal computes 1/v element-wise.
func Reciprocal(v *View) *View { return ndarray.Reciprocal(v) }

// Sigmoid computes 1/(1+e**-v) element-wise.
func Sigmoid(v *View) *View { return ndarray.Sigmoid(v) }

// Relu computes max(v, 0) element-wise.
func Relu(v *View) *View { return ndarray.Relu(v) }

// Sum reduces v over axes by summing.
func Sum(v *View, axes []int, keepdims bool) (*View, error) { return ndarray.Sum(v, axes, keepdims) }

// Max reduces v over axes by taking the maximum.
func Max(v *View, axes []int, keepdims bool) (*View, error) { return ndarray.Max(v, axes, keepdims) }

// Min reduces v over axes by taking the minimum.
func Min(v *View, axes []int, keepdims bool) (*View, error) { return ndarray.Min(v, axes, keepdims) }

// Mean reduces v over axes by averaging.
func Mean(v *View, axes []int, keepdims bool) (*View, error) { return ndarray.Mean(v, axes, keepdims) }

// Argmax reduces v along a single axis, yielding the index of its
// maximum element.
func Argmax(v *View, axis int, keepdims bool) (*View, error) { return ndarray.Argmax(v, axis, keepdims) }

// Argmin reduces v along a single axis, yielding the index of its
// minimum element.
func Argmin(v *View, axis int, keepdims bool) (*View, error) { return ndarray.Argmin(v, axis, keepdims) }

// MatMul computes batched matrix multiplication.
func MatMul(a, b *View) (*View, error) { return ndarray.MatMul(a, b) }
