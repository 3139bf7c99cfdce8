// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq

import "fmt"

// Const is a value witness: a wrapper whose payload is fixed at
// construction and extractable by a pure accessor. Operations whose result
// shape depends on an input value (indices, counts, filter and sort
// predicate results) take witnesses instead of raw values, so every shape
// decision is resolved before the operation executes.
type Const[T any] struct {
	v T
}

// C wraps a value as a witness.
func C[T any](v T) Const[T] { return Const[T]{v: v} }

// Value extracts the witnessed payload. Pure; always yields the value the
// witness was constructed with.
func (c Const[T]) Value() T { return c.v }

// Size witnesses a count or index.
type Size = Const[int]

// Cond witnesses a boolean, the result type of shape-affecting predicates.
type Cond = Const[bool]

// SizeC wraps an int as a Size witness.
func SizeC(n int) Size { return C(n) }

// CondC wraps a bool as a Cond witness.
func CondC(b bool) Cond { return C(b) }

// Family tags of the witness types.
const (
	TagSize Tag = "hseq.size"
	TagCond Tag = "hseq.cond"
)

// Witnesses are dispatchable values like any other builtin: Size orders by
// payload, Cond compares by payload.
func init() {
	MustRegisterType[Size](TagSize)
	MustRegisterType[Cond](TagCond)

	MustRegisterModel(Ordering, TagSize, map[Op]Impl{
		OpLess: func(args ...any) any {
			return args[0].(Size).Value() < args[1].(Size).Value()
		},
	})
	MustRegisterModel(Equality, TagCond, map[Op]Impl{
		OpEqual: func(args ...any) any {
			return args[0].(Cond).Value() == args[1].(Cond).Value()
		},
	})
}

// truth reads a boolean-like element: a bool or a Cond witness.
func truth(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case Cond:
		return b.Value(), nil
	default:
		return false, fmt.Errorf("%w: got %T", ErrNotBoolean, v)
	}
}

// notCond negates a witness-valued predicate.
func notCond(pred func(any) Cond) func(any) Cond {
	return func(x any) Cond { return CondC(!pred(x).Value()) }
}
