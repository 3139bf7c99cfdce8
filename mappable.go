// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq

import "fmt"

// Mappable algorithms: structure-preserving transformations. Order and
// length are preserved; element types in the result may differ per position.

// Transform applies f to each element of s, producing a new sequence.
func Transform(s any, f func(any) any) (res any, err error) {
	defer rescue(&err)
	t, err := TagOfValue(s)
	if err != nil {
		return nil, err
	}
	impl, err := Resolve(OpTransform, t)
	if err != nil {
		return nil, err
	}
	return impl(s, f), nil
}

// Adjust applies f to the element at witnessed index i, leaving the rest
// untouched. An index outside [0, length) is rejected with ErrOutOfRange.
func Adjust(i Size, f func(any) any, s any) (res any, err error) {
	defer rescue(&err)
	xs, t, err := elementsOf(s)
	if err != nil {
		return nil, err
	}
	n := i.Value()
	if n < 0 || n >= len(xs) {
		return nil, fmt.Errorf("%w: adjust index %d, length %d", ErrOutOfRange, n, len(xs))
	}
	out := make([]any, len(xs))
	copy(out, xs)
	out[n] = f(out[n])
	return rebuild(t, out)
}

// Replace substitutes repl for every element equal to old under dispatched
// equality.
func Replace(s, old, repl any) (res any, err error) {
	defer rescue(&err)
	xs, t, err := elementsOf(s)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(xs))
	for i, x := range xs {
		if dispatchEqual(x, old) {
			out[i] = repl
		} else {
			out[i] = x
		}
	}
	return rebuild(t, out)
}

// Fill replaces every element with v.
func Fill(s, v any) (res any, err error) {
	return Transform(s, Constantly[any](v))
}
