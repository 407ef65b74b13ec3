package common

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// BroadcastLength returns the common length of slices under scalar
// broadcasting: every length must equal n or 1. A mix of 0 and 1 broadcasts
// to 0. ok is false when two lengths other than 1 disagree.
func BroadcastLength(lengths ...int) (n int, ok bool) {
	n = 1
	for _, l := range lengths {
		if l == 1 {
			continue
		}
		if n == 1 {
			n = l
			continue
		}
		if l != n {
			return 0, false
		}
	}
	return n, true
}

// Broadcast returns x when it already has length n and otherwise a new slice
// of length n filled with x[0]. x must have length n or 1.
func Broadcast(x []float64, n int) []float64 {
	if len(x) == n {
		return x
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = x[0]
	}
	return out
}

// Gather writes src[idx[i]] into dst[i]. dst and idx must have equal length.
func Gather(dst, src []float64, idx []int) {
	if len(dst) != len(idx) {
		panic("common: gather length mismatch")
	}
	for i, j := range idx {
		dst[i] = src[j]
	}
}

// CountNegative returns how many elements of x are strictly negative.
// NaN is not negative.
func CountNegative(x []float64) int {
	count := 0
	for _, v := range x {
		if v < 0 {
			count++
		}
	}
	return count
}

// Flatten returns the elements of m in row-major order.
func Flatten(m mat.Matrix) []float64 {
	if m == nil {
		return nil
	}
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	if raw, ok := m.(mat.RawMatrixer); ok {
		rm := raw.RawMatrix()
		for i := 0; i < rm.Rows; i++ {
			out = append(out, rm.Data[i*rm.Stride:i*rm.Stride+rm.Cols]...)
		}
		return out
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}

// StableOrder sorts keys ascending in place and returns the permutation that
// was applied, so that sortedKeys[i] == originalKeys[order[i]]. Equal keys
// keep their original relative order.
func StableOrder(keys []float64) []int {
	order := make([]int, len(keys))
	floats.ArgsortStable(keys, order)
	return order
}
