// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq

import "fmt"

// Op names a dispatchable operation. Every operation is owned by exactly
// one capability.
type Op string

// OpKind determines how an operation's implementation entries are keyed.
type OpKind uint8

const (
	// KeyedUnary entries are keyed by a single operand tag. This covers
	// structural operations (unpack, head, make) and nullary ones (zero).
	KeyedUnary OpKind = iota
	// KeyedBinary entries are keyed by the ordered pair of operand tags.
	// Most models register only the diagonal; cross-tag entries must be
	// registered explicitly.
	KeyedBinary
)

// Impl is the uniform shape of a registered operation implementation.
// Implementations are pure value functions; argument and result conventions
// per operation are documented with the operation constants in hierarchy.go.
type Impl func(args ...any) any

// Variant is a minimal complete definition: a named subset of a capability's
// operations sufficient to derive every other operation of the capability.
type Variant struct {
	Name string
	Ops  []Op
}

// RuleResolver resolves operations for the tag a derivation rule is being
// built for. Resolution through a RuleResolver is cycle-safe: an operation
// already being derived on the current path reports ErrNotRegistered
// instead of recursing.
type RuleResolver struct {
	tag      Tag
	visiting map[Op]bool
}

// Tag returns the tag the rule is deriving for.
func (r RuleResolver) Tag() Tag { return r.tag }

// Resolve resolves op for the rule's tag (diagonal for binary operations).
func (r RuleResolver) Resolve(op Op) (Impl, error) {
	return resolveOp(op, r.tag, r.tag, r.visiting)
}

// DeriveRule builds a derived implementation of one operation from the
// primitives resolvable for the rule's tag. A rule that cannot find its
// primitives returns an error and the dispatch core moves on to the next
// derivation path.
type DeriveRule func(r RuleResolver) (Impl, error)

// Capability is a named bundle of operations with superclass relationships,
// MCD variants, and derivation rules. Capabilities are declared once, at
// package initialization, and are immutable afterwards.
type Capability struct {
	name      string
	ops       map[Op]OpKind
	extends   []*Capability
	requires  []*Capability
	variants  []Variant
	derive    map[Op]DeriveRule
	provides  map[Op]DeriveRule
	extenders []*Capability
}

// capabilityConfig declares a capability. Derive rules cover the
// capability's own operations; Provides rules cover operations of
// capabilities it extends (the structural-superclass derivation, e.g.
// Ordering providing Equality's equal).
type capabilityConfig struct {
	Ops      map[Op]OpKind
	Extends  []*Capability
	Requires []*Capability
	Variants []Variant
	Derive   map[Op]DeriveRule
	Provides map[Op]DeriveRule
}

// ownerOf maps every operation to the capability that declares it.
var ownerOf = map[Op]*Capability{}

// allCapabilities holds every declared capability, in declaration order.
var allCapabilities []*Capability

// newCapability declares a capability. Declaration mistakes are capability
// author contract violations and panic: they run at package init, before
// any dispatch.
func newCapability(name string, cfg capabilityConfig) *Capability {
	c := &Capability{
		name:     name,
		ops:      cfg.Ops,
		extends:  cfg.Extends,
		requires: cfg.Requires,
		variants: cfg.Variants,
		derive:   cfg.Derive,
		provides: cfg.Provides,
	}
	if len(c.ops) == 0 {
		panic("hseq: capability " + name + " declares no operations")
	}
	if len(c.variants) == 0 {
		panic("hseq: capability " + name + " declares no MCD variant")
	}
	for _, v := range c.variants {
		if len(v.Ops) == 0 {
			panic("hseq: capability " + name + " variant " + v.Name + " is empty")
		}
		for _, op := range v.Ops {
			if _, ok := c.ops[op]; !ok {
				panic(fmt.Sprintf("hseq: capability %s variant %s lists foreign op %q", name, v.Name, op))
			}
		}
	}
	for op := range c.derive {
		if _, ok := c.ops[op]; !ok {
			panic(fmt.Sprintf("hseq: capability %s derives foreign op %q", name, op))
		}
	}
	for op := range c.ops {
		if prev, ok := ownerOf[op]; ok {
			panic(fmt.Sprintf("hseq: op %q already owned by %s", op, prev.name))
		}
		ownerOf[op] = c
	}
	for op := range c.provides {
		owner := ownerOf[op]
		if owner == nil || !c.extendsTransitively(owner) {
			panic(fmt.Sprintf("hseq: capability %s provides %q without extending its owner", name, op))
		}
	}
	for _, e := range c.extends {
		e.extenders = append(e.extenders, c)
	}
	allCapabilities = append(allCapabilities, c)
	return c
}

// Name returns the capability's declared name.
func (c *Capability) Name() string { return c.name }

func (c *Capability) extendsTransitively(target *Capability) bool {
	for _, e := range c.extends {
		if e == target || e.extendsTransitively(target) {
			return true
		}
	}
	return false
}

// providerLayers returns, breadth-first by hierarchy distance, the
// capabilities extending owner that provide a derivation for op.
func providerLayers(owner *Capability, op Op) [][]*Capability {
	var layers [][]*Capability
	seen := map[*Capability]bool{owner: true}
	frontier := []*Capability{owner}
	for len(frontier) > 0 {
		var next []*Capability
		var layer []*Capability
		for _, c := range frontier {
			for _, x := range c.extenders {
				if seen[x] {
					continue
				}
				seen[x] = true
				next = append(next, x)
				if x.provides[op] != nil {
					layer = append(layer, x)
				}
			}
		}
		if len(layer) > 0 {
			layers = append(layers, layer)
		}
		frontier = next
	}
	return layers
}

// verifyDerivationPaths rejects ambiguous derivation paths: for every
// operation, at most one capability per hierarchy distance may provide a
// derivation. Runs once, after the hierarchy is declared.
func verifyDerivationPaths() {
	for op, owner := range ownerOf {
		for _, layer := range providerLayers(owner, op) {
			if len(layer) > 1 {
				panic(fmt.Sprintf("hseq: ambiguous derivation path for %q: %s and %s at equal distance",
					op, layer[0].name, layer[1].name))
			}
		}
	}
}

// mcdOps returns the union of all MCD variant operation sets.
func (c *Capability) mcdOps() map[Op]bool {
	set := map[Op]bool{}
	for _, v := range c.variants {
		for _, op := range v.Ops {
			set[op] = true
		}
	}
	return set
}

// matchVariant matches a set of registered primitives against the
// capability's MCD variants. Exactly one variant must be covered in full,
// with no primitive left over from another variant.
func (c *Capability) matchVariant(prims map[Op]bool) (Variant, error) {
	var matched []Variant
	for _, v := range c.variants {
		complete := true
		for _, op := range v.Ops {
			if !prims[op] {
				complete = false
				break
			}
		}
		if complete {
			matched = append(matched, v)
		}
	}
	switch {
	case len(matched) == 0:
		return Variant{}, fmt.Errorf("%w: %s primitives complete no MCD variant", ErrIncompleteModel, c.name)
	case len(matched) > 1:
		return Variant{}, fmt.Errorf("%w: %s primitives span variants %q and %q",
			ErrVariantConflict, c.name, matched[0].Name, matched[1].Name)
	}
	v := matched[0]
	inVariant := map[Op]bool{}
	for _, op := range v.Ops {
		inVariant[op] = true
	}
	for op := range prims {
		if !inVariant[op] {
			return Variant{}, fmt.Errorf("%w: %s primitive %q lies outside active variant %q",
				ErrVariantConflict, c.name, op, v.Name)
		}
	}
	return v, nil
}
