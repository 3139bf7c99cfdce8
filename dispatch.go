// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq

import "fmt"

// Implementation entries bind (Op, Tag) or (Op, Tag, Tag) to a concrete
// implementation. Entries are registered once, at type-definition time,
// and read-only thereafter; concurrent resolution needs no locking.

type entryKey struct {
	op   Op
	a, b Tag
}

var entries = map[entryKey]Impl{}

func keyFor(op Op, kind OpKind, a, b Tag) entryKey {
	if kind == KeyedBinary {
		return entryKey{op: op, a: a, b: b}
	}
	return entryKey{op: op, a: a}
}

// RegisterModel registers a tag's model of a capability: all implementation
// entries at once, keyed on the diagonal for binary operations.
//
// Rejected at registration time: an operation foreign to the capability,
// primitives spanning two MCD variants (or completing none), an unsatisfied
// structural prerequisite, and overwriting an existing entry.
func RegisterModel(c *Capability, t Tag, impls map[Op]Impl) error {
	if t == "" {
		return fmt.Errorf("%w: empty tag", ErrUnknownTag)
	}
	for op, impl := range impls {
		if _, ok := c.ops[op]; !ok {
			return fmt.Errorf("%w: op %q is not part of %s", ErrNotRegistered, op, c.name)
		}
		if impl == nil {
			return fmt.Errorf("%w: nil implementation for %s.%s", ErrIncompleteModel, c.name, op)
		}
		if entries[keyFor(op, c.ops[op], t, t)] != nil {
			return fmt.Errorf("%w: %s.%s for tag %q", ErrDuplicate, c.name, op, t)
		}
	}
	for _, req := range c.requires {
		if !req.satisfiedBy(t) {
			return fmt.Errorf("%w: %s for tag %q requires %s", ErrPrerequisite, c.name, t, req.name)
		}
	}
	mcd := c.mcdOps()
	prims := map[Op]bool{}
	for op := range impls {
		if mcd[op] {
			prims[op] = true
		}
	}
	for op := range mcd {
		if entries[keyFor(op, c.ops[op], t, t)] != nil {
			prims[op] = true
		}
	}
	if _, err := c.matchVariant(prims); err != nil {
		return fmt.Errorf("%w (tag %q)", err, t)
	}
	for op, impl := range impls {
		entries[keyFor(op, c.ops[op], t, t)] = impl
	}
	return nil
}

// MustRegisterModel is RegisterModel that panics on error, for init blocks.
func MustRegisterModel(c *Capability, t Tag, impls map[Op]Impl) {
	if err := RegisterModel(c, t, impls); err != nil {
		panic(err)
	}
}

// RegisterBinary registers a single cross-tag entry for a binary operation.
// Cross-tag support is always explicit: the dispatch core never coerces a
// (TagA, TagB) pair onto a diagonal entry.
func RegisterBinary(c *Capability, op Op, a, b Tag, impl Impl) error {
	kind, ok := c.ops[op]
	if !ok {
		return fmt.Errorf("%w: op %q is not part of %s", ErrNotRegistered, op, c.name)
	}
	if kind != KeyedBinary {
		return fmt.Errorf("%w: op %q is not binary", ErrNotRegistered, op)
	}
	if a == b {
		return fmt.Errorf("%w: diagonal entries register through RegisterModel", ErrDuplicate)
	}
	if impl == nil {
		return fmt.Errorf("%w: nil implementation for %s.%s", ErrIncompleteModel, c.name, op)
	}
	k := entryKey{op: op, a: a, b: b}
	if entries[k] != nil {
		return fmt.Errorf("%w: %s.%s for tags (%q, %q)", ErrDuplicate, c.name, op, a, b)
	}
	entries[k] = impl
	return nil
}

// MustRegisterBinary is RegisterBinary that panics on error, for init blocks.
func MustRegisterBinary(c *Capability, op Op, a, b Tag, impl Impl) {
	if err := RegisterBinary(c, op, a, b, impl); err != nil {
		panic(err)
	}
}

// satisfiedBy reports whether some MCD variant of c is directly registered
// in full for tag t.
func (c *Capability) satisfiedBy(t Tag) bool {
	for _, v := range c.variants {
		complete := true
		for _, op := range v.Ops {
			if entries[keyFor(op, c.ops[op], t, t)] == nil {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}

// Resolve resolves a unary-keyed operation for a tag: exact entry first,
// then the owning capability's derivation over the tag's registered MCD,
// then derivations provided by extending capabilities, nearest first.
func Resolve(op Op, t Tag) (Impl, error) {
	return resolveOp(op, t, t, nil)
}

// ResolveBinary resolves a binary operation for an ordered tag pair.
// Derivation applies to the diagonal only; a cross-tag pair resolves
// solely against explicit entries.
func ResolveBinary(op Op, a, b Tag) (Impl, error) {
	return resolveOp(op, a, b, nil)
}

func resolveOp(op Op, a, b Tag, visiting map[Op]bool) (Impl, error) {
	owner := ownerOf[op]
	if owner == nil {
		return nil, fmt.Errorf("%w: unknown op %q", ErrNotRegistered, op)
	}
	kind := owner.ops[op]
	if impl, ok := entries[keyFor(op, kind, a, b)]; ok {
		return impl, nil
	}
	if kind == KeyedBinary && a != b {
		return nil, fmt.Errorf("%w: %s.%s for tags (%q, %q); cross-tag entries must be explicit",
			ErrNotRegistered, owner.name, op, a, b)
	}
	if visiting[op] {
		return nil, fmt.Errorf("%w: %s.%s for tag %q (derivation cycle)", ErrNotRegistered, owner.name, op, a)
	}
	next := make(map[Op]bool, len(visiting)+1)
	for k, v := range visiting {
		next[k] = v
	}
	next[op] = true
	r := RuleResolver{tag: a, visiting: next}
	if rule := owner.derive[op]; rule != nil {
		if impl, err := rule(r); err == nil {
			return impl, nil
		}
	}
	for _, layer := range providerLayers(owner, op) {
		for _, p := range layer {
			if impl, err := p.provides[op](r); err == nil {
				return impl, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s.%s for tag %q", ErrNotRegistered, owner.name, op, a)
}

// --- Dispatched operation surface ---

// Equal reports dispatched equality of a and b.
func Equal(a, b any) (eq bool, err error) {
	defer rescue(&err)
	impl, err := resolveForPair(OpEqual, a, b)
	if err != nil {
		return false, err
	}
	return impl(a, b).(bool), nil
}

// NotEqual reports dispatched inequality of a and b.
func NotEqual(a, b any) (ne bool, err error) {
	defer rescue(&err)
	impl, err := resolveForPair(OpNotEqual, a, b)
	if err != nil {
		return false, err
	}
	return impl(a, b).(bool), nil
}

// Less reports whether a orders strictly before b.
func Less(a, b any) (lt bool, err error) {
	defer rescue(&err)
	impl, err := resolveForPair(OpLess, a, b)
	if err != nil {
		return false, err
	}
	return impl(a, b).(bool), nil
}

// LessEqual reports whether a orders before or equal to b.
func LessEqual(a, b any) (le bool, err error) {
	defer rescue(&err)
	impl, err := resolveForPair(OpLessEqual, a, b)
	if err != nil {
		return false, err
	}
	return impl(a, b).(bool), nil
}

// Greater reports whether a orders strictly after b.
func Greater(a, b any) (gt bool, err error) {
	defer rescue(&err)
	impl, err := resolveForPair(OpGreater, a, b)
	if err != nil {
		return false, err
	}
	return impl(a, b).(bool), nil
}

// GreaterEqual reports whether a orders after or equal to b.
func GreaterEqual(a, b any) (ge bool, err error) {
	defer rescue(&err)
	impl, err := resolveForPair(OpGreaterEqual, a, b)
	if err != nil {
		return false, err
	}
	return impl(a, b).(bool), nil
}

// Compare returns the dispatched three-way comparison of a and b:
// negative, zero, or positive.
func Compare(a, b any) (c int, err error) {
	defer rescue(&err)
	impl, err := resolveForPair(OpCompare, a, b)
	if err != nil {
		return 0, err
	}
	return impl(a, b).(int), nil
}

// Combine combines two values under their family's Combinable model.
func Combine(a, b any) (res any, err error) {
	defer rescue(&err)
	impl, err := resolveForPair(OpCombine, a, b)
	if err != nil {
		return nil, err
	}
	return impl(a, b), nil
}

// Zero returns the Combinable identity element of the family t.
func Zero(t Tag) (any, error) {
	impl, err := Resolve(OpZero, t)
	if err != nil {
		return nil, err
	}
	return impl(), nil
}

func resolveForPair(op Op, a, b any) (Impl, error) {
	ta, err := TagOfValue(a)
	if err != nil {
		return nil, err
	}
	tb, err := TagOfValue(b)
	if err != nil {
		return nil, err
	}
	return ResolveBinary(op, ta, tb)
}

// mustBinary resolves a binary op for two values inside a registered
// implementation; failures propagate as resolveFault to the public boundary.
func mustBinary(op Op, x, y any) Impl {
	impl, err := ResolveBinary(op, mustTagOfValue(x), mustTagOfValue(y))
	if err != nil {
		panic(resolveFault{err})
	}
	return impl
}

// dispatchEqual is per-element dispatched equality for composed models.
func dispatchEqual(x, y any) bool {
	return mustBinary(OpEqual, x, y)(x, y).(bool)
}

// dispatchLess is per-element dispatched ordering for composed models.
func dispatchLess(x, y any) bool {
	return mustBinary(OpLess, x, y)(x, y).(bool)
}
