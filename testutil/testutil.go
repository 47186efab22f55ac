// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package testutil provides helpers for common testing scenarios.
package testutil

import (
	"errors"
	"reflect"
	"testing"
)

// AssertEqual fails the test if got is not deeply equal to want.
// It prints both values for easy comparison upon failure.
func AssertEqual(t *testing.T, got, want any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("values are not equal:\ngot:  %#v\nwant: %#v", got, want)
	}
}

// AssertErrorIs fails the test if err does not match target according to
// [errors.Is].
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("errors.Is(%v, %v) = false, want true", err, target)
	}
}

// AssertPanics fails the test if f returns without panicking.
// It returns the value recovered from the panic.
func AssertPanics(t *testing.T, f func()) (recovered any) {
	t.Helper()
	panicked := true
	func() {
		defer func() { recovered = recover() }()
		f()
		panicked = false
	}()
	if !panicked {
		t.Fatalf("function did not panic")
	}
	return recovered
}
