// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package render wraps OpenGL objects in owning types. Every wrapper
// is created and released through a driver.Functions on the thread
// that owns the context. There are no finalizers: an object that is
// never released leaks, one that is used after Release panics.
package render

// Releasable defines any GPU object that can be freed.
type Releasable interface {

	// Release deletes the native object. Calling it twice is a no-op.
	Release()
}

var (
	_ Releasable = (*Shader)(nil)
	_ Releasable = (*Program)(nil)
	_ Releasable = (*Buffer)(nil)
	_ Releasable = (*VertexArray)(nil)
	_ Releasable = (*Texture)(nil)
)
