// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

// odometer walks a shape in row-major logical order while honoring
// arbitrary per-axis strides (including zero strides from broadcasting),
// keeping one synchronized running linear index per view it is asked to
// track. Every kernel in this core is a thin wrapper around it (§9
// design notes: "factor a reusable odometer routine parameterized by a
// per-step callable").
//
// This factors out the pattern the teacher repeats inline in every
// backend op (internal/backend/cpu/{shape,indexing,reduce}.go convert a
// flat output index to coordinates via division/modulo on every step);
// the odometer instead carries, so advancing costs O(1) amortized
// rather than O(rank) divisions per element.
type odometer struct {
	shape   []int
	strides [][]int
	idx     []int
	lin     []int
	total   int
	emitted int
}

// newOdometer prepares traversal of shape, tracking one running linear
// index per (starts[i], strides[i]) pair. len(strides[i]) must equal
// len(shape) for every i.
func newOdometer(shape Shape, starts []int, strides [][]int) *odometer {
	total := shape.NumElements()
	lin := append([]int(nil), starts...)
	return &odometer{
		shape:   shape,
		strides: strides,
		idx:     make([]int, len(shape)),
		lin:     lin,
		total:   total,
	}
}

// next returns the current set of linear indices (one per tracked
// view, in the order passed to newOdometer) plus the current
// coordinate vector, and advances the odometer by one logical step,
// carrying from the last axis toward the first. It reports false once
// all product(shape) positions have been emitted.
func (o *odometer) next() (lins []int, coords []int, ok bool) {
	if o.emitted >= o.total {
		return nil, nil, false
	}
	lins = append([]int(nil), o.lin...)
	coords = append([]int(nil), o.idx...)
	o.emitted++

	for d := len(o.shape) - 1; d >= 0; d-- {
		o.idx[d]++
		for s := range o.lin {
			o.lin[s] += o.strides[s][d]
		}
		if o.idx[d] == o.shape[d] {
			o.idx[d] = 0
			for s := range o.lin {
				o.lin[s] -= o.strides[s][d] * o.shape[d]
			}
			continue
		}
		break
	}
	return lins, coords, true
}
