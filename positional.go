// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq

import "fmt"

// Positional algorithms, expressed over the iterate MCD (head, tail,
// is_empty). Emptiness and range are always checked before the operation
// runs; partial operations surface ErrEmpty or ErrOutOfRange instead of
// executing.

// iterator bundles the resolved Positional primitives of one tag.
type iterator struct {
	head, tail, isEmpty Impl
}

func positionalOf(s any) (iterator, error) {
	t, err := TagOfValue(s)
	if err != nil {
		return iterator{}, err
	}
	head, err := Resolve(OpHead, t)
	if err != nil {
		return iterator{}, err
	}
	tail, err := Resolve(OpTail, t)
	if err != nil {
		return iterator{}, err
	}
	isEmpty, err := Resolve(OpIsEmpty, t)
	if err != nil {
		return iterator{}, err
	}
	return iterator{head: head, tail: tail, isEmpty: isEmpty}, nil
}

func (it iterator) empty(s any) bool { return it.isEmpty(s).(bool) }

// IsEmpty reports whether s has no elements.
func IsEmpty(s any) (empty bool, err error) {
	defer rescue(&err)
	it, err := positionalOf(s)
	if err != nil {
		return false, err
	}
	return it.empty(s), nil
}

// Head returns the first element. Empty sequences are rejected with ErrEmpty.
func Head(s any) (res any, err error) {
	defer rescue(&err)
	it, err := positionalOf(s)
	if err != nil {
		return nil, err
	}
	if it.empty(s) {
		return nil, fmt.Errorf("%w: head", ErrEmpty)
	}
	return it.head(s), nil
}

// Tail returns s without its first element. Empty sequences are rejected
// with ErrEmpty.
func Tail(s any) (res any, err error) {
	defer rescue(&err)
	it, err := positionalOf(s)
	if err != nil {
		return nil, err
	}
	if it.empty(s) {
		return nil, fmt.Errorf("%w: tail", ErrEmpty)
	}
	return it.tail(s), nil
}

// Last returns the final element. Empty sequences are rejected with ErrEmpty.
func Last(s any) (res any, err error) {
	defer rescue(&err)
	it, err := positionalOf(s)
	if err != nil {
		return nil, err
	}
	if it.empty(s) {
		return nil, fmt.Errorf("%w: last", ErrEmpty)
	}
	cur := s
	for {
		next := it.tail(cur)
		if it.empty(next) {
			return it.head(cur), nil
		}
		cur = next
	}
}

// At returns the element at witnessed index i. An index outside
// [0, length) is rejected with ErrOutOfRange.
func At(i Size, s any) (res any, err error) {
	defer rescue(&err)
	it, err := positionalOf(s)
	if err != nil {
		return nil, err
	}
	n := i.Value()
	if n < 0 {
		return nil, fmt.Errorf("%w: at index %d", ErrOutOfRange, n)
	}
	cur := s
	for k := 0; k < n; k++ {
		if it.empty(cur) {
			return nil, fmt.Errorf("%w: at index %d", ErrOutOfRange, n)
		}
		cur = it.tail(cur)
	}
	if it.empty(cur) {
		return nil, fmt.Errorf("%w: at index %d", ErrOutOfRange, n)
	}
	return it.head(cur), nil
}

// Drop returns s without its first n elements. A count exceeding the
// length is rejected with ErrOutOfRange, never clamped.
func Drop(n Size, s any) (res any, err error) {
	defer rescue(&err)
	it, err := positionalOf(s)
	if err != nil {
		return nil, err
	}
	k := n.Value()
	if k < 0 {
		return nil, fmt.Errorf("%w: drop %d", ErrOutOfRange, k)
	}
	cur := s
	for i := 0; i < k; i++ {
		if it.empty(cur) {
			return nil, fmt.Errorf("%w: drop %d exceeds length", ErrOutOfRange, k)
		}
		cur = it.tail(cur)
	}
	return cur, nil
}

// DropWhile removes the longest prefix whose elements satisfy pred.
func DropWhile(pred func(any) Cond, s any) (res any, err error) {
	defer rescue(&err)
	it, err := positionalOf(s)
	if err != nil {
		return nil, err
	}
	cur := s
	for !it.empty(cur) && pred(it.head(cur)).Value() {
		cur = it.tail(cur)
	}
	return cur, nil
}

// DropUntil removes the longest prefix whose elements do not satisfy pred.
func DropUntil(pred func(any) Cond, s any) (res any, err error) {
	return DropWhile(notCond(pred), s)
}
