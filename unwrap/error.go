// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package unwrap

import (
	"errors"
	"reflect"
)

// ErrNil matches every [*NilError] when used with [errors.Is].
var ErrNil = errors.New("found nil while unwrapping")

// NilError reports that a value of Type was expected but absent.
type NilError struct {
	Type reflect.Type
}

// Error implements the error interface.
// It returns a message in the form "Found nil while unwrapping Optional<T>".
func (e *NilError) Error() string {
	name := "<nil>"
	if e.Type != nil {
		name = e.Type.String()
	}
	return "Found nil while unwrapping Optional<" + name + ">"
}

// Is reports whether target is [ErrNil].
func (e *NilError) Is(target error) bool { return target == ErrNil }
