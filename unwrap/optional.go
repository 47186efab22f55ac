// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package unwrap

import "reflect"

// Ptr returns the value p points to.
// If p is nil, it returns the zero value of T and a [*NilError] for T.
func Ptr[T any](p *T) (T, error) {
	return PtrOr(p, nilError[T])
}

// PtrOr returns the value p points to.
// If p is nil, it calls errf once and returns the zero value of T together
// with the error errf produced, unchanged. errf is not called when p is not
// nil.
func PtrOr[T any, E error](p *T, errf func() E) (T, error) {
	if p == nil {
		var zero T
		return zero, errf()
	}
	return *p, nil
}

// OK returns v if ok is true. It accepts the two results of a comma-ok
// expression, such as a map lookup or a type assertion.
// If ok is false, it returns the zero value of T and a [*NilError] for T.
func OK[T any](v T, ok bool) (T, error) {
	return OKOr(v, ok, nilError[T])
}

// OKOr returns v if ok is true.
// If ok is false, it calls errf once and returns the zero value of T together
// with the error errf produced, unchanged.
func OKOr[T any, E error](v T, ok bool, errf func() E) (T, error) {
	if !ok {
		var zero T
		return zero, errf()
	}
	return v, nil
}

func nilError[T any]() *NilError {
	return &NilError{Type: reflect.TypeFor[T]()}
}
