// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq

import "errors"

// Sentinel errors returned by registration and resolution.
//
// Registration-time errors (ErrDuplicate, ErrVariantConflict,
// ErrIncompleteModel, ErrPrerequisite) reject a model before any use.
// Resolution-time errors (ErrUnknownTag, ErrNotRegistered, ErrOutOfRange,
// ErrLengthMismatch, ErrEmpty, ErrNotBoolean) reject an operation before
// it executes; no operation fails midway through a traversal.
var (
	// ErrUnknownTag reports a value whose concrete type has no registered tag.
	// Such a type is not eligible for dispatch.
	ErrUnknownTag = errors.New("hseq: unknown tag")

	// ErrNotRegistered reports an operation with no direct or derivable
	// implementation entry for the given tag or tag pair.
	ErrNotRegistered = errors.New("hseq: operation not registered")

	// ErrDuplicate reports a second registration for an existing binding:
	// re-tagging a type, or overwriting an implementation entry.
	ErrDuplicate = errors.New("hseq: duplicate registration")

	// ErrVariantConflict reports primitives spanning two different minimal
	// complete definition variants of the same capability.
	ErrVariantConflict = errors.New("hseq: conflicting MCD variants")

	// ErrIncompleteModel reports a model whose primitives complete no
	// MCD variant of the capability.
	ErrIncompleteModel = errors.New("hseq: incomplete model")

	// ErrPrerequisite reports a model registered for a tag that does not
	// satisfy the capability's structural prerequisites.
	ErrPrerequisite = errors.New("hseq: unsatisfied prerequisite")

	// ErrOutOfRange reports an index or count exceeding the sequence length.
	// Excess is surfaced, never clamped.
	ErrOutOfRange = errors.New("hseq: out of range")

	// ErrLengthMismatch reports zipped sequences of unequal length.
	ErrLengthMismatch = errors.New("hseq: length mismatch")

	// ErrEmpty reports a partial operation applied to an empty sequence.
	ErrEmpty = errors.New("hseq: empty sequence")

	// ErrNotBoolean reports an element that is neither bool nor Cond where
	// AnyOf, AllOf, or NoneOf require a boolean-like value.
	ErrNotBoolean = errors.New("hseq: not a boolean-like element")
)

// resolveFault carries a resolution error across per-element dispatch
// inside a registered implementation. Implementations are plain value
// functions and cannot return errors; the public algorithm boundary
// converts the fault back via rescue.
type resolveFault struct{ err error }

// rescue converts a resolveFault panic into the deferred error slot.
// Any other panic is re-raised.
func rescue(errp *error) {
	if r := recover(); r != nil {
		if f, ok := r.(resolveFault); ok {
			*errp = f.err
			return
		}
		panic(r)
	}
}
