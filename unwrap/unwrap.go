// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package unwrap converts optional values into plain values.
//
// Go has no dedicated optional type. This package treats a nil pointer and a
// false comma-ok result as an absent value. [Ptr] and [OK] return a
// [*NilError] naming the expected type when the value is absent, while
// [PtrOr] and [OKOr] return an error built by the caller. The error-producing
// function is only called when the value is absent.
//
// [Value], [NoError] and [Must] panic instead of returning an error. They are
// meant for cases where absence or failure is a programming error, such as
// package initialization.
package unwrap

// Value unwraps and returns val if err is nil.
// It panics if err is not nil.
func Value[T any](val T, err error) T {
	NoError(err)
	return val
}

// NoError panics if err is not nil.
func NoError(err error) {
	if err != nil {
		panic(err)
	}
}

// Must returns the value p points to.
// It panics with a [*NilError] if p is nil.
func Must[T any](p *T) T {
	return Value(Ptr(p))
}
