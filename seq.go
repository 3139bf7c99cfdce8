// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq

import (
	"fmt"
	"strings"
)

// Seq is the canonical heterogeneous sequence: an immutable, ordered,
// fixed-length list of elements of possibly distinct types. Length is
// fixed at construction; every transformation produces a new value.
type Seq struct {
	elems []any
}

// TagSeq is the family tag of Seq.
const TagSeq Tag = "hseq.seq"

// New constructs a sequence from an explicit element list.
func New(elems ...any) Seq {
	if len(elems) == 0 {
		return Seq{}
	}
	own := make([]any, len(elems))
	copy(own, elems)
	return Seq{elems: own}
}

// Make builds a value of the family identified by t from an explicit
// element list. This is the generic construction surface: any tag with a
// Transformable model participates.
func Make(t Tag, elems ...any) (any, error) {
	mk, err := Resolve(OpMake, t)
	if err != nil {
		return nil, err
	}
	own := make([]any, len(elems))
	copy(own, elems)
	return mk(own), nil
}

// Len returns the number of elements.
func (s Seq) Len() int { return len(s.elems) }

// Elements returns a copy of the element list.
func (s Seq) Elements() []any {
	if len(s.elems) == 0 {
		return nil
	}
	out := make([]any, len(s.elems))
	copy(out, s.elems)
	return out
}

// String renders the sequence for diagnostics.
func (s Seq) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range s.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteByte(']')
	return b.String()
}

// Capability models of the canonical sequence. Mappable is intentionally
// not registered: transform derives through Transformable, exercising the
// structural-superclass path.
func init() {
	MustRegisterType[Seq](TagSeq)

	MustRegisterModel(Foldable, TagSeq, map[Op]Impl{
		OpUnpack: func(args ...any) any {
			s := args[0].(Seq)
			f := args[1].(func([]any) any)
			return f(s.Elements())
		},
	})

	MustRegisterModel(Positional, TagSeq, map[Op]Impl{
		OpHead: func(args ...any) any {
			s := args[0].(Seq)
			if len(s.elems) == 0 {
				panic(resolveFault{fmt.Errorf("%w: head", ErrEmpty)})
			}
			return s.elems[0]
		},
		OpTail: func(args ...any) any {
			s := args[0].(Seq)
			if len(s.elems) == 0 {
				panic(resolveFault{fmt.Errorf("%w: tail", ErrEmpty)})
			}
			return New(s.elems[1:]...)
		},
		OpIsEmpty: func(args ...any) any {
			return len(args[0].(Seq).elems) == 0
		},
	})

	MustRegisterModel(Searchable, TagSeq, map[Op]Impl{
		OpFindIf: func(args ...any) any {
			s := args[0].(Seq)
			pred := args[1].(func(any) bool)
			for _, x := range s.elems {
				if pred(x) {
					return Some(x)
				}
			}
			return None()
		},
	})

	MustRegisterModel(Transformable, TagSeq, map[Op]Impl{
		OpMake: func(args ...any) any {
			return New(args[0].([]any)...)
		},
	})

	MustRegisterModel(Combinable, TagSeq, map[Op]Impl{
		OpCombine: func(args ...any) any {
			a, b := args[0].(Seq), args[1].(Seq)
			return New(append(a.Elements(), b.elems...)...)
		},
		OpZero: func(...any) any {
			return Seq{}
		},
	})

	// Structural equality: equal length and elementwise dispatched equality.
	MustRegisterModel(Equality, TagSeq, map[Op]Impl{
		OpEqual: func(args ...any) any {
			a, b := args[0].(Seq), args[1].(Seq)
			if len(a.elems) != len(b.elems) {
				return false
			}
			for i := range a.elems {
				if !dispatchEqual(a.elems[i], b.elems[i]) {
					return false
				}
			}
			return true
		},
	})

	// Lexicographic ordering, left to right; the shorter sequence orders
	// first when all shared positions are equal. Defined only when all
	// corresponding element pairs are mutually comparable.
	MustRegisterModel(Ordering, TagSeq, map[Op]Impl{
		OpLess: func(args ...any) any {
			a, b := args[0].(Seq), args[1].(Seq)
			n := min(len(a.elems), len(b.elems))
			for i := 0; i < n; i++ {
				if dispatchLess(a.elems[i], b.elems[i]) {
					return true
				}
				if dispatchLess(b.elems[i], a.elems[i]) {
					return false
				}
			}
			return len(a.elems) < len(b.elems)
		},
	})
}
