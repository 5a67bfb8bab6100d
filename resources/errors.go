// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package resources

import (
	"errors"
	"fmt"
)

// package errors
var (
	ErrNotFound          = errors.New("resource not found")
	ErrIO                = errors.New("resource read failed")
	ErrFileContainsNil   = errors.New("text resource contains a nil byte")
	ErrDecode            = errors.New("image decode failed")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrExePath           = errors.New("failed to get executable path")
)

// Error records a failed resource operation. It matches its Kind
// with errors.Is.
type Error struct {
	Op   string
	Name string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil || e.Err == e.Kind {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Name, e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}
