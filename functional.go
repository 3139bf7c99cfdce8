// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq

// Function combinators used by the algorithm library and handy for callers.

// Identity returns its argument unchanged.
// Named generic function produces a static funcval per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func Identity[A any](a A) A { return a }

// Compose returns f after g.
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Flip swaps the arguments of a binary function.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

// Constantly returns a function that ignores its argument and yields v.
func Constantly[T any](v T) func(any) T {
	return func(any) T { return v }
}
