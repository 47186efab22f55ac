// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package testutil

import (
	"errors"
	"fmt"
	"testing"
)

func TestAssertErrorIs(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, base, base)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
}

func TestAssertPanics(t *testing.T) {
	t.Run("returns recovered value", func(t *testing.T) {
		got := AssertPanics(t, func() { panic("boom") })
		AssertEqual(t, got, "boom")
	})

	t.Run("recovers error values", func(t *testing.T) {
		want := errors.New("boom")
		got := AssertPanics(t, func() { panic(want) })
		AssertEqual(t, got, want)
	})
}
