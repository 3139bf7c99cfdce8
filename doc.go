// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hseq provides heterogeneous fixed-length sequences and a
// capability dispatch core for generic algorithms over them.
//
// A heterogeneous sequence is an ordered collection whose elements may
// have different types but whose length is a fixed property of the value.
// The algorithm library (fold, map, filter, zip, sort, search, slice) is
// expressed purely in terms of capabilities — named operation bundles
// resolved per family tag — so it applies uniformly to any participating
// type, not only the canonical [Seq].
//
// # Design Philosophy
//
// hseq provides:
//   - Minimal but complete capability definitions: a type models a
//     capability by registering one MCD (minimal complete definition)
//     variant; every other operation is derived
//   - Tag dispatch with explicit resolution order: direct entries beat
//     derived ones, nearer derivations beat farther ones, ties are
//     rejected when the hierarchy is declared
//   - Pure value semantics: no operation mutates its operands, and every
//     failure is surfaced before the operation executes
//
// # Tags and Dispatch
//
// Every participating concrete type maps to exactly one family [Tag]
// ([RegisterType], [TagOf], [TagOfValue]). Implementation entries bind
// (Op, Tag) — or (Op, Tag, Tag) for binary operations — to concrete
// implementations ([RegisterModel], [RegisterBinary]). [Resolve] and
// [ResolveBinary] walk: exact entry, then the owning capability's
// derivation over the tag's registered MCD, then derivations provided by
// extending capabilities, nearest first. Cross-tag binary dispatch never
// falls back to derivation: a (TagA, TagB) entry must be explicit.
//
// # Capability Hierarchy
//
//   - [Equality]: equal, not_equal — MCD: either one
//   - [Ordering]: less, less_equal, greater, greater_equal, compare —
//     MCD: less or compare; extends Equality, providing equal as
//     "neither less-than the other"
//   - [Combinable]: combine, zero — MCD: both (a monoid)
//   - [Foldable]: unpack, fold_left, fold_right, length — MCD: unpack or
//     the fold pair
//   - [Mappable]: transform — provided for free through [Transformable]
//   - [Positional]: head, tail, is_empty
//   - [Searchable]: find_if with derived any_if
//   - [Transformable]: make — requires Foldable, extends Mappable
//
// Registering primitives from two different MCD variants for one
// (Tag, Capability) is a configuration error, rejected at registration
// time with [ErrVariantConflict].
//
// # Value Witnesses
//
// Operations whose result shape depends on an input value take [Const]
// witnesses ([Size] for indices and counts, [Cond] for predicate results)
// rather than raw values. A witness payload is fixed at construction, so
// shape checks — ranges, zip lengths, emptiness — complete before any
// element function runs. Out-of-range values are surfaced with
// [ErrOutOfRange], never clamped. Witnesses are registered builtins in
// their own right: Size orders by payload, Cond compares by payload, so
// sequences of witnesses dispatch like any other.
//
// # Algorithm Library
//
// Foldable: [FoldLeft], [FoldRight], [ForEach], [Length], [Count],
// [Unpack], [Minimum], [MinimumBy], [Maximum], [MaximumBy].
//
// Mappable: [Transform], [Adjust], [Replace], [Fill].
//
// Positional: [Head], [Tail], [IsEmpty], [At], [Last], [Drop],
// [DropWhile], [DropUntil].
//
// Searchable: [AnyIf], [AllIf], [NoneIf], [AnyOf], [AllOf], [NoneOf],
// [Elem], [Find], [Lookup]. Search results come back as [Option],
// absence included.
//
// Sequence transforms: [Flatten], [Prepend], [Append], [Concat],
// [Filter], [Group], [GroupBy], [Init], [Partition], [RemoveAt],
// [Reverse], [Slice], [Sort], [SortBy], [Take], [TakeWhile], [TakeUntil],
// [Zip], [ZipWith]. [Sort] and [SortBy] are stable.
//
// Partial operations (Head, Tail, Last, Init, Minimum, Maximum) reject an
// empty sequence with [ErrEmpty]. Zip rejects unequal input lengths with
// [ErrLengthMismatch] — never truncates or pads.
//
// # Construction
//
// [New] builds the canonical [Seq]; [Make] builds a value of any family
// with a Transformable model from an explicit element list.
//
// # Concurrency
//
// Registries are written during package init and type-definition time and
// are read-only afterwards; concurrent resolution needs no locking.
// Registration must complete before concurrent use. Every capability
// operation and algorithm is a pure function over immutable values; the
// only sanctioned side-effecting operation is [ForEach], which guarantees
// left-to-right order and nothing else.
//
// # Example
//
//	xs := hseq.New(3, 1, 2)
//	sorted, _ := hseq.Sort(xs)          // [1, 2, 3]
//	sum, _ := hseq.FoldLeft(sorted, 0, func(acc, x any) any {
//		return acc.(int) + x.(int)
//	})
//	// sum == 6
package hseq
