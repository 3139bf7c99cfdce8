// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq

// Option is the found-or-absent result wrapper of the search operations.
// Absence is a value, never a fault: Find and Lookup return None instead
// of failing when nothing matches.
type Option struct {
	ok  bool
	val any
}

// Some creates a present Option holding v.
func Some(v any) Option {
	return Option{ok: true, val: v}
}

// None creates an absent Option.
func None() Option {
	return Option{}
}

// IsSome returns true if this Option holds a value.
func (o Option) IsSome() bool {
	return o.ok
}

// IsNone returns true if this Option is absent.
func (o Option) IsNone() bool {
	return !o.ok
}

// Get returns the held value and true, or nil and false.
func (o Option) Get() (any, bool) {
	if o.ok {
		return o.val, true
	}
	return nil, false
}

// GetOrElse returns the held value, or def when absent.
func (o Option) GetOrElse(def any) any {
	if o.ok {
		return o.val
	}
	return def
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[T any](o Option, onSome func(any) T, onNone func() T) T {
	if o.ok {
		return onSome(o.val)
	}
	return onNone()
}

// MapOption applies a function to the held value, preserving absence.
func MapOption(o Option, f func(any) any) Option {
	if o.ok {
		return Some(f(o.val))
	}
	return o
}

// Pair is a two-element product value. Zip produces family tuples, but
// Partition and key-value Lookup tables use Pair directly.
type Pair struct {
	First  any
	Second any
}

// MakePair creates a Pair.
func MakePair(first, second any) Pair {
	return Pair{First: first, Second: second}
}

// TagPair is the family tag of Pair.
const TagPair Tag = "hseq.pair"

func init() {
	MustRegisterType[Pair](TagPair)
	MustRegisterModel(Equality, TagPair, map[Op]Impl{
		OpEqual: func(args ...any) any {
			a, b := args[0].(Pair), args[1].(Pair)
			return dispatchEqual(a.First, b.First) && dispatchEqual(a.Second, b.Second)
		},
	})
}
