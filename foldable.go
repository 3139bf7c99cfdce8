// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq

import "fmt"

// Foldable algorithms. Like every function in the algorithm library, these
// are expressed through capability operations only: they resolve the
// operand's tag, resolve the needed operations, and never reach into a
// concrete representation. Any tag modeling the right capabilities
// participates, the canonical Seq included.

// elementsOf extracts the elements of s through its Foldable unpack.
func elementsOf(s any) ([]any, Tag, error) {
	t, err := TagOfValue(s)
	if err != nil {
		return nil, "", err
	}
	unpack, err := Resolve(OpUnpack, t)
	if err != nil {
		return nil, "", err
	}
	xs, _ := unpack(s, func(es []any) any { return es }).([]any)
	return xs, t, nil
}

// rebuild constructs a family value from elements through Transformable make.
func rebuild(t Tag, xs []any) (any, error) {
	mk, err := Resolve(OpMake, t)
	if err != nil {
		return nil, err
	}
	return mk(xs), nil
}

// FoldLeft folds s from the left: f(...f(f(init, x1), x2)..., xN).
// Returns init for an empty sequence.
func FoldLeft(s, init any, f func(acc, x any) any) (res any, err error) {
	defer rescue(&err)
	t, err := TagOfValue(s)
	if err != nil {
		return nil, err
	}
	impl, err := Resolve(OpFoldLeft, t)
	if err != nil {
		return nil, err
	}
	return impl(s, init, f), nil
}

// FoldRight folds s from the right: f(x1, f(x2, ..., f(xN, init))).
// Returns init for an empty sequence.
func FoldRight(s, init any, f func(x, acc any) any) (res any, err error) {
	defer rescue(&err)
	t, err := TagOfValue(s)
	if err != nil {
		return nil, err
	}
	impl, err := Resolve(OpFoldRight, t)
	if err != nil {
		return nil, err
	}
	return impl(s, init, f), nil
}

// ForEach applies f to every element, left to right. This is the only
// sanctioned side-effecting traversal; the library guarantees the order,
// not freedom from caller-introduced races.
func ForEach(s any, f func(x any)) (err error) {
	defer rescue(&err)
	_, err = FoldLeft(s, nil, func(_, x any) any {
		f(x)
		return nil
	})
	return err
}

// Length returns the number of elements of s.
func Length(s any) (n int, err error) {
	defer rescue(&err)
	t, err := TagOfValue(s)
	if err != nil {
		return 0, err
	}
	impl, err := Resolve(OpLength, t)
	if err != nil {
		return 0, err
	}
	return impl(s).(int), nil
}

// Count returns the number of elements satisfying pred.
func Count(s any, pred func(any) Cond) (n int, err error) {
	defer rescue(&err)
	xs, _, err := elementsOf(s)
	if err != nil {
		return 0, err
	}
	for _, x := range xs {
		if pred(x).Value() {
			n++
		}
	}
	return n, nil
}

// Unpack applies the variadic function f to all elements of s at once.
func Unpack(s any, f func(xs ...any) any) (res any, err error) {
	defer rescue(&err)
	t, err := TagOfValue(s)
	if err != nil {
		return nil, err
	}
	impl, err := Resolve(OpUnpack, t)
	if err != nil {
		return nil, err
	}
	return impl(s, func(xs []any) any { return f(xs...) }), nil
}

// Minimum returns the least element under dispatched ordering.
// The first of equal least elements wins. Empty sequences are rejected
// with ErrEmpty: minimum is a partial operation.
func Minimum(s any) (res any, err error) {
	defer rescue(&err)
	return extremumBy(s, dispatchLess, "minimum")
}

// MinimumBy returns the least element under an explicit ordering predicate.
func MinimumBy(less func(a, b any) Cond, s any) (res any, err error) {
	defer rescue(&err)
	return extremumBy(s, func(a, b any) bool { return less(a, b).Value() }, "minimum")
}

// Maximum returns the greatest element under dispatched ordering.
// The first of equal greatest elements wins.
func Maximum(s any) (res any, err error) {
	defer rescue(&err)
	return extremumBy(s, func(a, b any) bool { return dispatchLess(b, a) }, "maximum")
}

// MaximumBy returns the greatest element under an explicit ordering predicate.
func MaximumBy(less func(a, b any) Cond, s any) (res any, err error) {
	defer rescue(&err)
	return extremumBy(s, func(a, b any) bool { return less(b, a).Value() }, "maximum")
}

// extremumBy selects the element that no later element improves on under
// the given strict "better" relation.
func extremumBy(s any, better func(candidate, best any) bool, name string) (any, error) {
	xs, _, err := elementsOf(s)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, name)
	}
	best := xs[0]
	for _, x := range xs[1:] {
		if better(x, best) {
			best = x
		}
	}
	return best, nil
}
