// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"errors"
	"fmt"
)

// package errors
var (
	ErrUnknownStage           = errors.New("cannot determine shader type")
	ErrUnsupportedPixelFormat = errors.New("unsupported pixel format")
	ErrNoTextureUnits         = errors.New("no free texture units")
	ErrInvalidLayout          = errors.New("invalid vertex layout")
	ErrSourceContainsNil      = errors.New("shader source contains a nil byte")
)

// CompileError carries the driver's compile log verbatim.
type CompileError struct {
	Name string
	Type ShaderType
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader %s: %s", e.Type, e.Name, e.Log)
}

// LinkError carries the driver's link log verbatim.
type LinkError struct {
	Name string
	Log  string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program %s: %s", e.Name, e.Log)
}

// ResourceError wraps a failure to load the resource a GPU object
// is built from.
type ResourceError struct {
	Name string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("failed to load resource %s: %v", e.Name, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

func mustBeLive(valid bool, what string) {
	if !valid {
		panic("render: use of released " + what)
	}
}
