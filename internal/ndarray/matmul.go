// Copyright 2025 NDArray Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

// MatMul computes batched matrix multiplication. A has shape
// [...,M,K], B has shape [...,K,P]; the leading "..." batch dims are
// broadcast against each other. Grounded in the teacher's
// CPUBackend.MatMul/BatchMatMul (internal/backend/cpu/{matmul,batchmatmul}.go),
// generalized to arbitrary batch rank via broadcasting and to strided
// (non-materialized) inputs via the odometer, with the 2-D kernel's
// loop order changed to i/k/j for contiguous access to B and C rows.
func MatMul(a, b *View) (*View, error) {
	if a.Rank() < 2 || b.Rank() < 2 {
		return nil, shapeErrorf("MatMul", "inputs must have rank >= 2, got %d and %d", a.Rank(), b.Rank())
	}

	m := a.shape[a.Rank()-2]
	k := a.shape[a.Rank()-1]
	k2 := b.shape[b.Rank()-2]
	p := b.shape[b.Rank()-1]
	if k != k2 {
		return nil, shapeErrorf("MatMul", "inner dimension mismatch: %d vs %d", k, k2)
	}

	aBatch := a.shape[:a.Rank()-2]
	bBatch := b.shape[:b.Rank()-2]
	batch, err := broadcastShapes("MatMul", aBatch, bBatch)
	if err != nil {
		return nil, err
	}

	// Contiguity of the trailing two axes is unaffected by batch
	// broadcasting (broadcast only touches axes left of them), so
	// compacting before broadcasting is equivalent to compacting after
	// but never materializes a broadcast batch axis's repeated data.
	aSlab := materializeSlabIfNeeded(a)
	bSlab := materializeSlabIfNeeded(b)

	ba, err := aSlab.Broadcast(append(batch.Clone(), m, k))
	if err != nil {
		return nil, err
	}
	bb, err := bSlab.Broadcast(append(batch.Clone(), k, p))
	if err != nil {
		return nil, err
	}

	outShape := append(batch.Clone(), m, p)
	out := Zeros(outShape)

	batchRank := len(batch)
	aBatchStrides := ba.strides[:batchRank]
	bBatchStrides := bb.strides[:batchRank]
	outBatchStrides := out.strides[:batchRank]

	if batchRank == 0 {
		matmul2D(out.buf.data, 0, ba, ba.offset, bb, bb.offset, m, k, p)
		return out, nil
	}

	odo := newOdometer(batch, []int{ba.offset, bb.offset, 0}, [][]int{aBatchStrides, bBatchStrides, outBatchStrides})
	for {
		lins, _, ok := odo.next()
		if !ok {
			break
		}
		matmul2D(out.buf.data, lins[2], ba, lins[0], bb, lins[1], m, k, p)
	}
	return out, nil
}

// materializeSlabIfNeeded returns v unchanged if its last two axes are
// contiguous (last stride 1, second-last stride equal to the last
// axis's length); otherwise it compacts v entirely via MakeCompact.
// Only the last two axes' contiguity matters for the 2-D kernel; batch
// axes may carry stride 0 from broadcasting, handled by the batch
// odometer above.
func materializeSlabIfNeeded(v *View) *View {
	rank := v.Rank()
	lastStride := v.strides[rank-1]
	secondLastStride := v.strides[rank-2]
	lastLen := v.shape[rank-1]
	if lastStride == 1 && secondLastStride == lastLen {
		return v
	}
	return v.MakeCompact()
}

// matmul2D multiplies the M x K slab of a (starting at aOffset) by the
// K x P slab of b (starting at bOffset), writing into the M x P region
// of out starting at outOffset. Loop order is i, k, j: for each (i,k)
// A[i,k] is loaded once and accumulated into the entire output row,
// giving contiguous sequential access to the B row and the C row under
// row-major layout.
func matmul2D(out []Elem, outOffset int, a *View, aOffset int, b *View, bOffset int, m, k, p int) {
	aRowStride := a.strides[a.Rank()-2]
	aColStride := a.strides[a.Rank()-1]
	bRowStride := b.strides[b.Rank()-2]
	bColStride := b.strides[b.Rank()-1]

	for i := 0; i < m; i++ {
		outRow := outOffset + i*p
		for j := 0; j < p; j++ {
			out[outRow+j] = 0
		}
		aRow := aOffset + i*aRowStride
		for kk := 0; kk < k; kk++ {
			aVal := a.buf.data[aRow+kk*aColStride]
			bRow := bOffset + kk*bRowStride
			for j := 0; j < p; j++ {
				out[outRow+j] += aVal * b.buf.data[bRow+j*bColStride]
			}
		}
	}
}
