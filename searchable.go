// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq

// Searchable algorithms. Absence is a value: Find and Lookup return an
// absent Option rather than failing when nothing matches.

// Find returns the first element satisfying pred, or an absent Option.
func Find(s any, pred func(any) Cond) (res Option, err error) {
	defer rescue(&err)
	t, err := TagOfValue(s)
	if err != nil {
		return None(), err
	}
	impl, err := Resolve(OpFindIf, t)
	if err != nil {
		return None(), err
	}
	return impl(s, func(x any) bool { return pred(x).Value() }).(Option), nil
}

// AnyIf reports whether some element satisfies pred.
func AnyIf(s any, pred func(any) Cond) (found bool, err error) {
	defer rescue(&err)
	t, err := TagOfValue(s)
	if err != nil {
		return false, err
	}
	impl, err := Resolve(OpAnyIf, t)
	if err != nil {
		return false, err
	}
	return impl(s, func(x any) bool { return pred(x).Value() }).(bool), nil
}

// AllIf reports whether every element satisfies pred.
func AllIf(s any, pred func(any) Cond) (all bool, err error) {
	found, err := AnyIf(s, notCond(pred))
	return !found && err == nil, err
}

// NoneIf reports whether no element satisfies pred.
func NoneIf(s any, pred func(any) Cond) (none bool, err error) {
	found, err := AnyIf(s, pred)
	return !found && err == nil, err
}

// AnyOf reports whether some boolean-like element (bool or Cond) is true.
func AnyOf(s any) (found bool, err error) {
	defer rescue(&err)
	return AnyIf(s, truthy)
}

// AllOf reports whether every boolean-like element is true.
func AllOf(s any) (all bool, err error) {
	defer rescue(&err)
	return AllIf(s, truthy)
}

// NoneOf reports whether no boolean-like element is true.
func NoneOf(s any) (none bool, err error) {
	defer rescue(&err)
	return NoneIf(s, truthy)
}

// truthy adapts boolean-like elements to a witness predicate; a
// non-boolean element propagates its error to the public boundary.
func truthy(x any) Cond {
	b, err := truth(x)
	if err != nil {
		panic(resolveFault{err})
	}
	return CondC(b)
}

// Elem reports whether some element equals x under dispatched equality.
func Elem(s, x any) (found bool, err error) {
	defer rescue(&err)
	return AnyIf(s, func(e any) Cond { return CondC(dispatchEqual(e, x)) })
}

// Lookup searches by key under dispatched equality. Pair elements match on
// First and yield Second; any other element matches directly and yields
// itself.
func Lookup(s, key any) (res Option, err error) {
	defer rescue(&err)
	found, err := Find(s, func(e any) Cond {
		if p, ok := e.(Pair); ok {
			return CondC(dispatchEqual(p.First, key))
		}
		return CondC(dispatchEqual(e, key))
	})
	if err != nil {
		return None(), err
	}
	return MapOption(found, func(e any) any {
		if p, ok := e.(Pair); ok {
			return p.Second
		}
		return e
	}), nil
}
