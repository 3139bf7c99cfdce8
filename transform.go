// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq

import "fmt"

// Sequence transforms. Every function rebuilds through the family's
// Transformable make and validates shape constraints (ranges, lengths,
// emptiness) before any element function runs.

// Prepend returns s with x added in front.
func Prepend(x, s any) (res any, err error) {
	defer rescue(&err)
	xs, t, err := elementsOf(s)
	if err != nil {
		return nil, err
	}
	return rebuild(t, append([]any{x}, xs...))
}

// Append returns s with x added at the end.
func Append(s, x any) (res any, err error) {
	defer rescue(&err)
	xs, t, err := elementsOf(s)
	if err != nil {
		return nil, err
	}
	return rebuild(t, append(xs, x))
}

// Concat concatenates two values under their family's Combinable model.
func Concat(a, b any) (res any, err error) {
	return Combine(a, b)
}

// Flatten concatenates a sequence of sequences into one sequence,
// preserving relative order. The result is the Combinable zero of the
// outer family combined with every inner value in turn.
func Flatten(s any) (res any, err error) {
	defer rescue(&err)
	xs, t, err := elementsOf(s)
	if err != nil {
		return nil, err
	}
	acc, err := Zero(t)
	if err != nil {
		return nil, err
	}
	for _, x := range xs {
		acc, err = Combine(acc, x)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Filter keeps the elements satisfying pred, preserving order. The
// predicate yields a witness, so the result length is fixed before the
// new sequence is constructed.
func Filter(s any, pred func(any) Cond) (res any, err error) {
	defer rescue(&err)
	xs, t, err := elementsOf(s)
	if err != nil {
		return nil, err
	}
	keep := make([]bool, len(xs))
	for i, x := range xs {
		keep[i] = pred(x).Value()
	}
	var out []any
	for i, x := range xs {
		if keep[i] {
			out = append(out, x)
		}
	}
	return rebuild(t, out)
}

// Group splits s into a sequence of runs of adjacent elements equal under
// dispatched equality.
func Group(s any) (res any, err error) {
	defer rescue(&err)
	return GroupBy(func(a, b any) Cond { return CondC(dispatchEqual(a, b)) }, s)
}

// GroupBy splits s into runs of adjacent elements equivalent under eq.
func GroupBy(eq func(a, b any) Cond, s any) (res any, err error) {
	defer rescue(&err)
	xs, t, err := elementsOf(s)
	if err != nil {
		return nil, err
	}
	var groups []any
	for i := 0; i < len(xs); {
		j := i + 1
		for j < len(xs) && eq(xs[j-1], xs[j]).Value() {
			j++
		}
		run, err := rebuild(t, xs[i:j])
		if err != nil {
			return nil, err
		}
		groups = append(groups, run)
		i = j
	}
	return rebuild(t, groups)
}

// Init returns s without its last element. Empty sequences are rejected
// with ErrEmpty.
func Init(s any) (res any, err error) {
	defer rescue(&err)
	xs, t, err := elementsOf(s)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: init", ErrEmpty)
	}
	return rebuild(t, xs[:len(xs)-1])
}

// Partition splits s into the elements satisfying pred and the rest,
// preserving relative order on both sides.
func Partition(s any, pred func(any) Cond) (res Pair, err error) {
	defer rescue(&err)
	xs, t, err := elementsOf(s)
	if err != nil {
		return Pair{}, err
	}
	var yes, no []any
	for _, x := range xs {
		if pred(x).Value() {
			yes = append(yes, x)
		} else {
			no = append(no, x)
		}
	}
	left, err := rebuild(t, yes)
	if err != nil {
		return Pair{}, err
	}
	right, err := rebuild(t, no)
	if err != nil {
		return Pair{}, err
	}
	return MakePair(left, right), nil
}

// RemoveAt returns s without the element at witnessed index i.
func RemoveAt(i Size, s any) (res any, err error) {
	defer rescue(&err)
	xs, t, err := elementsOf(s)
	if err != nil {
		return nil, err
	}
	n := i.Value()
	if n < 0 || n >= len(xs) {
		return nil, fmt.Errorf("%w: remove_at index %d, length %d", ErrOutOfRange, n, len(xs))
	}
	out := make([]any, 0, len(xs)-1)
	out = append(out, xs[:n]...)
	out = append(out, xs[n+1:]...)
	return rebuild(t, out)
}

// Reverse returns s with element order inverted.
func Reverse(s any) (res any, err error) {
	defer rescue(&err)
	xs, t, err := elementsOf(s)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return rebuild(t, out)
}

// Slice returns the elements of the half-open range [from, to). Bounds
// outside 0 <= from <= to <= length are rejected with ErrOutOfRange.
func Slice(from, to Size, s any) (res any, err error) {
	defer rescue(&err)
	xs, t, err := elementsOf(s)
	if err != nil {
		return nil, err
	}
	lo, hi := from.Value(), to.Value()
	if lo < 0 || hi < lo || hi > len(xs) {
		return nil, fmt.Errorf("%w: slice [%d, %d), length %d", ErrOutOfRange, lo, hi, len(xs))
	}
	return rebuild(t, xs[lo:hi])
}

// Sort sorts s under dispatched ordering. The sort is stable: elements
// equal under the ordering keep their original relative order.
func Sort(s any) (res any, err error) {
	defer rescue(&err)
	return SortBy(s, func(a, b any) Cond { return CondC(dispatchLess(a, b)) })
}

// SortBy sorts s under an explicit ordering predicate, stably.
func SortBy(s any, less func(a, b any) Cond) (res any, err error) {
	defer rescue(&err)
	xs, t, err := elementsOf(s)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(xs))
	copy(out, xs)
	// Stable insertion sort; sequences are fixed-arity and small.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]).Value(); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return rebuild(t, out)
}

// Take returns the first n elements. A count exceeding the length is
// rejected with ErrOutOfRange, never clamped.
func Take(n Size, s any) (res any, err error) {
	defer rescue(&err)
	xs, t, err := elementsOf(s)
	if err != nil {
		return nil, err
	}
	k := n.Value()
	if k < 0 || k > len(xs) {
		return nil, fmt.Errorf("%w: take %d, length %d", ErrOutOfRange, k, len(xs))
	}
	return rebuild(t, xs[:k])
}

// TakeWhile returns the longest prefix whose elements satisfy pred. The
// result length is dynamic, bounded by the input length.
func TakeWhile(pred func(any) Cond, s any) (res any, err error) {
	defer rescue(&err)
	xs, t, err := elementsOf(s)
	if err != nil {
		return nil, err
	}
	end := len(xs)
	for i, x := range xs {
		if !pred(x).Value() {
			end = i
			break
		}
	}
	return rebuild(t, xs[:end])
}

// TakeUntil returns the longest prefix whose elements do not satisfy pred.
func TakeUntil(pred func(any) Cond, s any) (res any, err error) {
	return TakeWhile(notCond(pred), s)
}

// Zip tuples the inputs elementwise: the i-th element of the result is the
// family tuple of every input's i-th element. All inputs must share one
// static length; a mismatch is rejected with ErrLengthMismatch. The result
// belongs to the first input's family.
func Zip(ss ...any) (res any, err error) {
	return ZipWith(nil, ss...)
}

// ZipWith applies the n-ary function f elementwise across the inputs.
// A nil f tuples the elements instead.
func ZipWith(f func(xs ...any) any, ss ...any) (res any, err error) {
	defer rescue(&err)
	if len(ss) == 0 {
		return nil, fmt.Errorf("%w: zip of no sequences", ErrLengthMismatch)
	}
	rows, t, err := zipRows(ss)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(rows))
	for i, row := range rows {
		if f != nil {
			out[i] = f(row...)
			continue
		}
		tuple, err := rebuild(t, row)
		if err != nil {
			return nil, err
		}
		out[i] = tuple
	}
	return rebuild(t, out)
}

// zipRows validates the common length and transposes the inputs.
func zipRows(ss []any) ([][]any, Tag, error) {
	first, t, err := elementsOf(ss[0])
	if err != nil {
		return nil, "", err
	}
	cols := make([][]any, len(ss))
	cols[0] = first
	for i, s := range ss[1:] {
		xs, _, err := elementsOf(s)
		if err != nil {
			return nil, "", err
		}
		if len(xs) != len(first) {
			return nil, "", fmt.Errorf("%w: zip lengths %d and %d", ErrLengthMismatch, len(first), len(xs))
		}
		cols[i+1] = xs
	}
	rows := make([][]any, len(first))
	for i := range rows {
		row := make([]any, len(ss))
		for j := range ss {
			row[j] = cols[j][i]
		}
		rows[i] = row
	}
	return rows, t, nil
}
