// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"bytes"
	"encoding/binary"

	"github.com/devblok/korugl/driver"
	"github.com/pkg/errors"
)

// Usage is a hint about how often a buffer's contents change.
type Usage driver.Enum

// Buffer usage hints.
const (
	StaticDraw  Usage = driver.STATIC_DRAW
	DynamicDraw Usage = driver.DYNAMIC_DRAW
	StreamDraw  Usage = driver.STREAM_DRAW
)

// Buffer is a GPU buffer bound to one target: vertex data for array
// buffers, indices for element array buffers.
type Buffer struct {
	f      driver.Functions
	id     driver.Buffer
	target driver.Enum
	len    int
}

// NewArrayBuffer creates an empty vertex attribute buffer.
func NewArrayBuffer(f driver.Functions) *Buffer {
	return &Buffer{f: f, id: f.CreateBuffer(), target: driver.ARRAY_BUFFER}
}

// NewElementArrayBuffer creates an empty index buffer.
func NewElementArrayBuffer(f driver.Functions) *Buffer {
	return &Buffer{f: f, id: f.CreateBuffer(), target: driver.ELEMENT_ARRAY_BUFFER}
}

// ID returns the native buffer name.
func (b *Buffer) ID() driver.Buffer {
	return b.id
}

// Target returns the binding target of the buffer.
func (b *Buffer) Target() driver.Enum {
	return b.target
}

// Len returns the size in bytes of the last upload.
func (b *Buffer) Len() int {
	return b.len
}

// Bind binds the buffer to its target.
func (b *Buffer) Bind() {
	mustBeLive(b.id.Valid(), "Buffer")
	b.f.BindBuffer(b.target, b.id)
}

// Unbind clears the buffer's target.
func (b *Buffer) Unbind() {
	b.f.BindBuffer(b.target, driver.Buffer{})
}

// Upload replaces the buffer contents with data. The buffer must be
// bound; Upload does not bind it.
func (b *Buffer) Upload(data []byte, usage Usage) {
	b.f.BufferData(b.target, data, driver.Enum(usage))
	b.len = len(data)
}

// StaticDrawData encodes data and uploads it with the StaticDraw hint.
// The buffer must be bound.
func (b *Buffer) StaticDrawData(data interface{}) error {
	raw, err := Encode(data)
	if err != nil {
		return err
	}
	b.Upload(raw, StaticDraw)
	return nil
}

// Release deletes the native buffer. Calling it again does nothing.
func (b *Buffer) Release() {
	if !b.id.Valid() {
		return
	}
	b.f.DeleteBuffer(b.id)
	b.id = driver.Buffer{}
	b.len = 0
}

// Encode packs a slice of fixed size values, vertex structs or
// indices, into bytes without any padding between fields.
func Encode(data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, data); err != nil {
		return nil, errors.Wrap(err, "encode buffer data")
	}
	return buf.Bytes(), nil
}
