// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq

import "strings"

// Builtin scalar families. Each registers the diagonal of its binary
// operations; equality is derived through Ordering except for bool, which
// has no ordering and models Equality directly.

// Family tags of the builtin scalar types.
const (
	TagInt     Tag = "hseq.int"
	TagInt64   Tag = "hseq.int64"
	TagFloat64 Tag = "hseq.float64"
	TagString  Tag = "hseq.string"
	TagBool    Tag = "hseq.bool"
)

// lessOf builds a less implementation over a native comparison.
func lessOf[T any](less func(a, b T) bool) Impl {
	return func(args ...any) any {
		return less(args[0].(T), args[1].(T))
	}
}

// combineOf builds a combine implementation over a native binary function.
func combineOf[T any](combine func(a, b T) T) Impl {
	return func(args ...any) any {
		return combine(args[0].(T), args[1].(T))
	}
}

// zeroOf builds a zero implementation returning the identity element.
func zeroOf[T any](zero T) Impl {
	return func(...any) any { return zero }
}

func init() {
	MustRegisterType[int](TagInt)
	MustRegisterType[int64](TagInt64)
	MustRegisterType[float64](TagFloat64)
	MustRegisterType[string](TagString)
	MustRegisterType[bool](TagBool)

	MustRegisterModel(Ordering, TagInt, map[Op]Impl{
		OpLess: lessOf(func(a, b int) bool { return a < b }),
	})
	MustRegisterModel(Ordering, TagInt64, map[Op]Impl{
		OpLess: lessOf(func(a, b int64) bool { return a < b }),
	})
	MustRegisterModel(Ordering, TagFloat64, map[Op]Impl{
		OpLess: lessOf(func(a, b float64) bool { return a < b }),
	})

	// string models Ordering through the compare MCD variant.
	MustRegisterModel(Ordering, TagString, map[Op]Impl{
		OpCompare: func(args ...any) any {
			return strings.Compare(args[0].(string), args[1].(string))
		},
	})

	MustRegisterModel(Equality, TagBool, map[Op]Impl{
		OpEqual: func(args ...any) any {
			return args[0].(bool) == args[1].(bool)
		},
	})

	// Additive monoids for the numeric families, concatenation for string.
	MustRegisterModel(Combinable, TagInt, map[Op]Impl{
		OpCombine: combineOf(func(a, b int) int { return a + b }),
		OpZero:    zeroOf(0),
	})
	MustRegisterModel(Combinable, TagInt64, map[Op]Impl{
		OpCombine: combineOf(func(a, b int64) int64 { return a + b }),
		OpZero:    zeroOf(int64(0)),
	})
	MustRegisterModel(Combinable, TagFloat64, map[Op]Impl{
		OpCombine: combineOf(func(a, b float64) float64 { return a + b }),
		OpZero:    zeroOf(0.0),
	})
	MustRegisterModel(Combinable, TagString, map[Op]Impl{
		OpCombine: combineOf(func(a, b string) string { return a + b }),
		OpZero:    zeroOf(""),
	})
}
