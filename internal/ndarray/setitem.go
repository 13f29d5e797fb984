// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

// SetItemScalar writes value into every element of the sub-view
// described by specs. It is the only operation besides SetItemEwise
// that mutates a buffer through an existing View; the target sub-view
// is fully derived before any element is written. Slice does not check
// that specifier indices lie within the source axes, so that derivation
// validates only the specifier count and step sign.
func (v *View) SetItemScalar(specs []AxisSpec, value Elem) error {
	target, err := v.Slice(specs)
	if err != nil {
		return err
	}

	odo := newOdometer(target.shape, []int{target.offset}, [][]int{target.strides})
	for {
		lins, _, ok := odo.next()
		if !ok {
			break
		}
		target.write(lins[0], value)
	}
	return nil
}

// SetItemEwise writes the elements of source into the sub-view
// described by specs, broadcasting source to the target's shape if it
// does not already match. The core does not detect aliasing between
// source and the target's buffer (§5) — overlapping writes are the
// caller's responsibility.
func (v *View) SetItemEwise(specs []AxisSpec, source *View) error {
	target, err := v.Slice(specs)
	if err != nil {
		return err
	}

	src := source
	if !src.shape.Equal(target.shape) {
		src, err = source.Broadcast(target.shape)
		if err != nil {
			return err
		}
	}

	odo := newOdometer(target.shape, []int{target.offset, src.offset}, [][]int{target.strides, src.strides})
	for {
		lins, _, ok := odo.next()
		if !ok {
			break
		}
		target.write(lins[0], src.read(lins[1]))
	}
	return nil
}
