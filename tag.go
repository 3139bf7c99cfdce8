// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq

import (
	"fmt"
	"reflect"
)

// Tag identifies a family of concrete types that are interchangeable for
// dispatch purposes. Every participating concrete type maps to exactly one
// tag, and the mapping is fixed for the lifetime of the program.
type Tag string

// tagTable maps concrete type identity to its family tag.
// Written during package init and type-definition time, read-only afterwards;
// concurrent reads after setup need no locking.
var tagTable = map[reflect.Type]Tag{}

// RegisterType binds the concrete type T to the given tag.
// Re-binding a type, even to the same tag, is rejected with ErrDuplicate:
// the type-to-tag mapping is write-once.
func RegisterType[T any](t Tag) error {
	if t == "" {
		return fmt.Errorf("%w: empty tag", ErrUnknownTag)
	}
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if prev, ok := tagTable[rt]; ok {
		return fmt.Errorf("%w: type %v already tagged %q", ErrDuplicate, rt, prev)
	}
	tagTable[rt] = t
	return nil
}

// MustRegisterType is RegisterType that panics on error.
// Intended for package init blocks, where a failed registration is a
// programming error.
func MustRegisterType[T any](t Tag) {
	if err := RegisterType[T](t); err != nil {
		panic(err)
	}
}

// TagOf returns the tag registered for the concrete type T.
func TagOf[T any]() (Tag, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	t, ok := tagTable[rt]
	if !ok {
		return "", fmt.Errorf("%w: type %v", ErrUnknownTag, rt)
	}
	return t, nil
}

// TagOfValue returns the tag registered for the dynamic type of v.
// An untagged type is not eligible for dispatch.
func TagOfValue(v any) (Tag, error) {
	if v == nil {
		return "", fmt.Errorf("%w: untyped nil", ErrUnknownTag)
	}
	rt := reflect.TypeOf(v)
	t, ok := tagTable[rt]
	if !ok {
		return "", fmt.Errorf("%w: type %v", ErrUnknownTag, rt)
	}
	return t, nil
}

// mustTagOfValue is TagOfValue for use inside registered implementations,
// where errors propagate as resolveFault panics to the public boundary.
func mustTagOfValue(v any) Tag {
	t, err := TagOfValue(v)
	if err != nil {
		panic(resolveFault{err})
	}
	return t
}
