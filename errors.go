// seehuhn.de/go/squircle - continuous-corner borders and shadows
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package squircle

import (
	"fmt"
	"math"
)

// ErrorKind classifies the errors returned by this package.
type ErrorKind int

const (
	// KindUnknown is the zero value.  It is never returned.
	KindUnknown ErrorKind = iota

	// KindInvalidParameter indicates a NaN, infinite, negative or
	// out-of-range numeric input.
	KindInvalidParameter

	// KindInvalidGeometry indicates a combination of size, radii and
	// insets which does not describe a shape.
	KindInvalidGeometry

	// KindResourceExhausted indicates that the requested output is too
	// large.
	KindResourceExhausted
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidParameter:
		return "invalid-parameter"
	case KindInvalidGeometry:
		return "invalid-geometry"
	case KindResourceExhausted:
		return "resource-exhausted"
	default:
		return "unknown"
	}
}

// Error is the error type returned by all operations of this package.
type Error struct {
	// Op is the operation that failed, e.g. "squircle.RenderBorder".
	Op string

	// Kind categorizes the error.
	Kind ErrorKind

	// Err describes the problem.
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error for the kind of e.
// This allows errors.Is(err, squircle.ErrInvalidGeometry) and similar.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinel errors, for use with errors.Is.
var (
	ErrInvalidParameter  = &Error{Kind: KindInvalidParameter}
	ErrInvalidGeometry   = &Error{Kind: KindInvalidGeometry}
	ErrResourceExhausted = &Error{Kind: KindResourceExhausted}
)

func newError(op string, kind ErrorKind, format string, args ...any) error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// checkNonNegative fails for NaN, infinite and negative values.
func checkNonNegative(op, field string, x float64) error {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return newError(op, KindInvalidParameter, "%s: not a finite number: %g", field, x)
	case x < 0:
		return newError(op, KindInvalidParameter, "%s: negative value %g", field, x)
	}
	return nil
}

// checkFinite fails for NaN and infinite values.
func checkFinite(op, field string, x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return newError(op, KindInvalidParameter, "%s: not a finite number: %g", field, x)
	}
	return nil
}
