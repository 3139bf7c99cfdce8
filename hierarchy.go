// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq

// The capability hierarchy. Each capability names its operations, the
// minimal complete definitions accepted to model it, and the derivation
// rules producing every non-primitive operation from an MCD.
//
// Implementation argument conventions (all implementations are pure):
//
//	equal, not_equal, less, less_equal,
//	greater, greater_equal      (x, y) -> bool
//	compare                     (x, y) -> int (negative, zero, positive)
//	combine                     (x, y) -> value
//	zero                        () -> value
//	unpack                      (s, f func([]any) any) -> any
//	fold_left                   (s, init, f func(acc, x any) any) -> any
//	fold_right                  (s, init, f func(x, acc any) any) -> any
//	length                      (s) -> int
//	transform                   (s, f func(any) any) -> value
//	head                        (s) -> element
//	tail                        (s) -> value
//	is_empty                    (s) -> bool
//	find_if                     (s, pred func(any) bool) -> Option
//	any_if                      (s, pred func(any) bool) -> bool
//	make                        (elems []any) -> value

// Operations, grouped by owning capability.
const (
	OpEqual    Op = "equal"
	OpNotEqual Op = "not_equal"

	OpLess         Op = "less"
	OpLessEqual    Op = "less_equal"
	OpGreater      Op = "greater"
	OpGreaterEqual Op = "greater_equal"
	OpCompare      Op = "compare"

	OpCombine Op = "combine"
	OpZero    Op = "zero"

	OpUnpack    Op = "unpack"
	OpFoldLeft  Op = "fold_left"
	OpFoldRight Op = "fold_right"
	OpLength    Op = "length"

	OpTransform Op = "transform"

	OpHead    Op = "head"
	OpTail    Op = "tail"
	OpIsEmpty Op = "is_empty"

	OpFindIf Op = "find_if"
	OpAnyIf  Op = "any_if"

	OpMake Op = "make"
)

// Equality: equal and not_equal, modelable through either one.
var Equality = newCapability("Equality", capabilityConfig{
	Ops: map[Op]OpKind{
		OpEqual:    KeyedBinary,
		OpNotEqual: KeyedBinary,
	},
	Variants: []Variant{
		{Name: "equal", Ops: []Op{OpEqual}},
		{Name: "not_equal", Ops: []Op{OpNotEqual}},
	},
	Derive: map[Op]DeriveRule{
		OpEqual: func(r RuleResolver) (Impl, error) {
			ne, err := r.Resolve(OpNotEqual)
			if err != nil {
				return nil, err
			}
			return func(args ...any) any { return !ne(args[0], args[1]).(bool) }, nil
		},
		OpNotEqual: func(r RuleResolver) (Impl, error) {
			eq, err := r.Resolve(OpEqual)
			if err != nil {
				return nil, err
			}
			return func(args ...any) any { return !eq(args[0], args[1]).(bool) }, nil
		},
	},
})

// Ordering: a total preorder, modelable through less or through a
// three-way compare. Extends Equality: a tag modeling Ordering gains
// equal as "neither less-than the other".
var Ordering = newCapability("Ordering", capabilityConfig{
	Ops: map[Op]OpKind{
		OpLess:         KeyedBinary,
		OpLessEqual:    KeyedBinary,
		OpGreater:      KeyedBinary,
		OpGreaterEqual: KeyedBinary,
		OpCompare:      KeyedBinary,
	},
	Extends: []*Capability{Equality},
	Variants: []Variant{
		{Name: "less", Ops: []Op{OpLess}},
		{Name: "compare", Ops: []Op{OpCompare}},
	},
	Derive: map[Op]DeriveRule{
		OpLess: func(r RuleResolver) (Impl, error) {
			cmp, err := r.Resolve(OpCompare)
			if err != nil {
				return nil, err
			}
			return func(args ...any) any { return cmp(args[0], args[1]).(int) < 0 }, nil
		},
		OpCompare: func(r RuleResolver) (Impl, error) {
			less, err := r.Resolve(OpLess)
			if err != nil {
				return nil, err
			}
			return func(args ...any) any {
				switch {
				case less(args[0], args[1]).(bool):
					return -1
				case less(args[1], args[0]).(bool):
					return 1
				default:
					return 0
				}
			}, nil
		},
		OpLessEqual: func(r RuleResolver) (Impl, error) {
			less, err := r.Resolve(OpLess)
			if err != nil {
				return nil, err
			}
			return func(args ...any) any { return !less(args[1], args[0]).(bool) }, nil
		},
		OpGreater: func(r RuleResolver) (Impl, error) {
			less, err := r.Resolve(OpLess)
			if err != nil {
				return nil, err
			}
			return func(args ...any) any { return less(args[1], args[0]).(bool) }, nil
		},
		OpGreaterEqual: func(r RuleResolver) (Impl, error) {
			less, err := r.Resolve(OpLess)
			if err != nil {
				return nil, err
			}
			return func(args ...any) any { return !less(args[0], args[1]).(bool) }, nil
		},
	},
	Provides: map[Op]DeriveRule{
		OpEqual: func(r RuleResolver) (Impl, error) {
			less, err := r.Resolve(OpLess)
			if err != nil {
				return nil, err
			}
			return func(args ...any) any {
				return !less(args[0], args[1]).(bool) && !less(args[1], args[0]).(bool)
			}, nil
		},
	},
})

// Combinable: a monoid, combine with its identity element.
var Combinable = newCapability("Combinable", capabilityConfig{
	Ops: map[Op]OpKind{
		OpCombine: KeyedBinary,
		OpZero:    KeyedUnary,
	},
	Variants: []Variant{
		{Name: "monoid", Ops: []Op{OpCombine, OpZero}},
	},
})

// Foldable: structure-consuming traversal, modelable through unpack or
// through the fold pair.
var Foldable = newCapability("Foldable", capabilityConfig{
	Ops: map[Op]OpKind{
		OpUnpack:    KeyedUnary,
		OpFoldLeft:  KeyedUnary,
		OpFoldRight: KeyedUnary,
		OpLength:    KeyedUnary,
	},
	Variants: []Variant{
		{Name: "unpack", Ops: []Op{OpUnpack}},
		{Name: "folds", Ops: []Op{OpFoldLeft, OpFoldRight}},
	},
	Derive: map[Op]DeriveRule{
		OpUnpack: func(r RuleResolver) (Impl, error) {
			foldl, err := r.Resolve(OpFoldLeft)
			if err != nil {
				return nil, err
			}
			return func(args ...any) any {
				f := args[1].(func([]any) any)
				collected := foldl(args[0], []any(nil), func(acc, x any) any {
					return append(acc.([]any), x)
				}).([]any)
				return f(collected)
			}, nil
		},
		OpFoldLeft: func(r RuleResolver) (Impl, error) {
			unpack, err := r.Resolve(OpUnpack)
			if err != nil {
				return nil, err
			}
			return func(args ...any) any {
				f := args[2].(func(acc, x any) any)
				return unpack(args[0], func(xs []any) any {
					acc := args[1]
					for _, x := range xs {
						acc = f(acc, x)
					}
					return acc
				})
			}, nil
		},
		OpFoldRight: func(r RuleResolver) (Impl, error) {
			unpack, err := r.Resolve(OpUnpack)
			if err != nil {
				return nil, err
			}
			return func(args ...any) any {
				f := args[2].(func(x, acc any) any)
				return unpack(args[0], func(xs []any) any {
					acc := args[1]
					for i := len(xs) - 1; i >= 0; i-- {
						acc = f(xs[i], acc)
					}
					return acc
				})
			}, nil
		},
		OpLength: func(r RuleResolver) (Impl, error) {
			unpack, err := r.Resolve(OpUnpack)
			if err != nil {
				return nil, err
			}
			return func(args ...any) any {
				return unpack(args[0], func(xs []any) any { return len(xs) })
			}, nil
		},
	},
})

// Mappable: structure-preserving elementwise transformation.
var Mappable = newCapability("Mappable", capabilityConfig{
	Ops: map[Op]OpKind{
		OpTransform: KeyedUnary,
	},
	Variants: []Variant{
		{Name: "transform", Ops: []Op{OpTransform}},
	},
})

// Positional: ordered access through head, tail, and is_empty.
var Positional = newCapability("Positional", capabilityConfig{
	Ops: map[Op]OpKind{
		OpHead:    KeyedUnary,
		OpTail:    KeyedUnary,
		OpIsEmpty: KeyedUnary,
	},
	Variants: []Variant{
		{Name: "iterate", Ops: []Op{OpHead, OpTail, OpIsEmpty}},
	},
})

// Searchable: predicate search with a found-or-absent result.
// any_if is derived from find_if unless registered directly.
var Searchable = newCapability("Searchable", capabilityConfig{
	Ops: map[Op]OpKind{
		OpFindIf: KeyedUnary,
		OpAnyIf:  KeyedUnary,
	},
	Variants: []Variant{
		{Name: "find", Ops: []Op{OpFindIf}},
	},
	Derive: map[Op]DeriveRule{
		OpAnyIf: func(r RuleResolver) (Impl, error) {
			find, err := r.Resolve(OpFindIf)
			if err != nil {
				return nil, err
			}
			return func(args ...any) any {
				return find(args[0], args[1]).(Option).IsSome()
			}, nil
		},
	},
})

// Transformable: families whose values can be rebuilt from an element
// list. Requires a Foldable model for the same tag; extends Mappable and
// provides its transform as rebuild-after-apply.
var Transformable = newCapability("Transformable", capabilityConfig{
	Ops: map[Op]OpKind{
		OpMake: KeyedUnary,
	},
	Extends:  []*Capability{Mappable},
	Requires: []*Capability{Foldable},
	Variants: []Variant{
		{Name: "make", Ops: []Op{OpMake}},
	},
	Provides: map[Op]DeriveRule{
		OpTransform: func(r RuleResolver) (Impl, error) {
			mk, err := r.Resolve(OpMake)
			if err != nil {
				return nil, err
			}
			unpack, err := r.Resolve(OpUnpack)
			if err != nil {
				return nil, err
			}
			return func(args ...any) any {
				f := args[1].(func(any) any)
				return unpack(args[0], func(xs []any) any {
					out := make([]any, len(xs))
					for i, x := range xs {
						out[i] = f(x)
					}
					return mk(out)
				})
			}, nil
		},
	},
})

func init() {
	verifyDerivationPaths()
}
