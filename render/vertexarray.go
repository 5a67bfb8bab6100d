// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"github.com/devblok/korugl/driver"
	"github.com/pkg/errors"
)

// VertexArray records how buffer bytes map to shader inputs.
type VertexArray struct {
	f  driver.Functions
	id driver.VertexArray
}

// NewVertexArray creates a vertex array object.
func NewVertexArray(f driver.Functions) *VertexArray {
	return &VertexArray{f: f, id: f.CreateVertexArray()}
}

// ID returns the native vertex array name.
func (a *VertexArray) ID() driver.VertexArray {
	return a.id
}

// Bind binds the vertex array.
func (a *VertexArray) Bind() {
	mustBeLive(a.id.Valid(), "VertexArray")
	a.f.BindVertexArray(a.id)
}

// Unbind clears the vertex array binding.
func (a *VertexArray) Unbind() {
	a.f.BindVertexArray(driver.VertexArray{})
}

// Configure binds a and buf, points the attributes of layout at buf
// and unbinds both again.
func (a *VertexArray) Configure(buf *Buffer, layout VertexLayout) error {
	if buf.Target() != driver.ARRAY_BUFFER {
		return errors.Wrap(ErrInvalidLayout, "attributes must be sourced from an array buffer")
	}
	a.Bind()
	buf.Bind()
	layout.AttribPointers(a.f)
	buf.Unbind()
	a.Unbind()
	return nil
}

// Release deletes the native vertex array. Calling it again does nothing.
func (a *VertexArray) Release() {
	if !a.id.Valid() {
		return
	}
	a.f.DeleteVertexArray(a.id)
	a.id = driver.VertexArray{}
}
