// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package glcore implements driver.Functions on top of the go-gl
// OpenGL 4.1 core profile bindings.
package glcore

import (
	"unsafe"

	"github.com/devblok/korugl/driver"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ProcAddressFunc resolves an OpenGL entry point by symbol name.
type ProcAddressFunc func(name string) unsafe.Pointer

// Functions is the go-gl backed procedure table.
type Functions struct{}

var _ driver.Functions = (*Functions)(nil)

// New loads every entry point through getProcAddress. The context
// that getProcAddress belongs to must be current on the calling thread.
func New(getProcAddress ProcAddressFunc) (*Functions, error) {
	if err := gl.InitWithProcAddrFunc(getProcAddress); err != nil {
		return nil, errors.Wrap(err, "gl.InitWithProcAddrFunc()")
	}
	f := &Functions{}
	log.WithField("version", f.GetString(driver.VERSION)).Info("OpenGL procedures loaded")
	return f, nil
}

// CreateShader creates an empty shader object of the given type.
func (f *Functions) CreateShader(typ driver.Enum) driver.Shader {
	return driver.Shader{V: gl.CreateShader(uint32(typ))}
}

// ShaderSource replaces the source of s with src.
func (f *Functions) ShaderSource(s driver.Shader, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(s.V, 1, csrc, nil)
}

// CompileShader compiles the source attached to s.
func (f *Functions) CompileShader(s driver.Shader) {
	gl.CompileShader(s.V)
}

// GetShaderi queries an integer parameter of s.
func (f *Functions) GetShaderi(s driver.Shader, pname driver.Enum) int {
	var v int32
	gl.GetShaderiv(s.V, uint32(pname), &v)
	return int(v)
}

// GetShaderInfoLog copies the compile log of s into buf and returns
// the number of bytes written.
func (f *Functions) GetShaderInfoLog(s driver.Shader, buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	gl.GetShaderInfoLog(s.V, int32(len(buf)), &n, &buf[0])
	return int(n)
}

// DeleteShader flags s for deletion.
func (f *Functions) DeleteShader(s driver.Shader) {
	gl.DeleteShader(s.V)
}

// CreateProgram creates an empty program object.
func (f *Functions) CreateProgram() driver.Program {
	return driver.Program{V: gl.CreateProgram()}
}

// AttachShader attaches s to p.
func (f *Functions) AttachShader(p driver.Program, s driver.Shader) {
	gl.AttachShader(p.V, s.V)
}

// DetachShader detaches s from p.
func (f *Functions) DetachShader(p driver.Program, s driver.Shader) {
	gl.DetachShader(p.V, s.V)
}

// LinkProgram links the shaders attached to p.
func (f *Functions) LinkProgram(p driver.Program) {
	gl.LinkProgram(p.V)
}

// GetProgrami queries an integer parameter of p.
func (f *Functions) GetProgrami(p driver.Program, pname driver.Enum) int {
	var v int32
	gl.GetProgramiv(p.V, uint32(pname), &v)
	return int(v)
}

// GetProgramInfoLog copies the link log of p into buf and returns
// the number of bytes written.
func (f *Functions) GetProgramInfoLog(p driver.Program, buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	gl.GetProgramInfoLog(p.V, int32(len(buf)), &n, &buf[0])
	return int(n)
}

// UseProgram makes p current. The zero program clears it.
func (f *Functions) UseProgram(p driver.Program) {
	gl.UseProgram(p.V)
}

// DeleteProgram flags p for deletion.
func (f *Functions) DeleteProgram(p driver.Program) {
	gl.DeleteProgram(p.V)
}

// GetUniformLocation looks up a uniform of p by name.
func (f *Functions) GetUniformLocation(p driver.Program, name string) driver.Uniform {
	return driver.Uniform{V: gl.GetUniformLocation(p.V, gl.Str(name+"\x00"))}
}

// Uniform1i sets an int uniform of the current program.
func (f *Functions) Uniform1i(u driver.Uniform, v int) {
	gl.Uniform1i(u.V, int32(v))
}

// UniformMatrix4fv uploads a 4x4 matrix uniform to the current program.
func (f *Functions) UniformMatrix4fv(u driver.Uniform, transpose bool, m []float32) {
	gl.UniformMatrix4fv(u.V, int32(len(m)/16), transpose, &m[0])
}

// CreateBuffer generates a buffer name.
func (f *Functions) CreateBuffer() driver.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return driver.Buffer{V: b}
}

// BindBuffer binds b to target.
func (f *Functions) BindBuffer(target driver.Enum, b driver.Buffer) {
	gl.BindBuffer(uint32(target), b.V)
}

// BufferData uploads data to the buffer bound to target.
func (f *Functions) BufferData(target driver.Enum, data []byte, usage driver.Enum) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(uint32(target), len(data), ptr, uint32(usage))
}

// DeleteBuffer deletes b.
func (f *Functions) DeleteBuffer(b driver.Buffer) {
	gl.DeleteBuffers(1, &b.V)
}

// CreateVertexArray generates a vertex array name.
func (f *Functions) CreateVertexArray() driver.VertexArray {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return driver.VertexArray{V: a}
}

// BindVertexArray binds a. The zero array unbinds.
func (f *Functions) BindVertexArray(a driver.VertexArray) {
	gl.BindVertexArray(a.V)
}

// DeleteVertexArray deletes a.
func (f *Functions) DeleteVertexArray(a driver.VertexArray) {
	gl.DeleteVertexArrays(1, &a.V)
}

// EnableVertexAttribArray enables attribute a in the bound vertex array.
func (f *Functions) EnableVertexAttribArray(a driver.Attrib) {
	gl.EnableVertexAttribArray(uint32(a))
}

// VertexAttribPointer describes attribute a within the bound array buffer.
func (f *Functions) VertexAttribPointer(a driver.Attrib, size int, typ driver.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(uint32(a), int32(size), uint32(typ), normalized, int32(stride), gl.PtrOffset(offset))
}

// CreateTexture generates a texture name.
func (f *Functions) CreateTexture() driver.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return driver.Texture{V: t}
}

// ActiveTexture selects the texture unit later binds apply to.
func (f *Functions) ActiveTexture(unit driver.Enum) {
	gl.ActiveTexture(uint32(unit))
}

// BindTexture binds t to target on the active unit.
func (f *Functions) BindTexture(target driver.Enum, t driver.Texture) {
	gl.BindTexture(uint32(target), t.V)
}

// TexParameteri sets an int parameter of the bound texture.
func (f *Functions) TexParameteri(target, pname driver.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

// TexImage2D uploads level of the bound texture. A nil pixels slice
// only allocates storage.
func (f *Functions) TexImage2D(target driver.Enum, level int, internalFormat driver.Enum, width, height int, format, typ driver.Enum, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(typ), ptr)
}

// GenerateMipmap builds the mipmap chain of the bound texture.
func (f *Functions) GenerateMipmap(target driver.Enum) {
	gl.GenerateMipmap(uint32(target))
}

// PixelStorei sets a pixel storage mode.
func (f *Functions) PixelStorei(pname driver.Enum, param int) {
	gl.PixelStorei(uint32(pname), int32(param))
}

// DeleteTexture deletes t.
func (f *Functions) DeleteTexture(t driver.Texture) {
	gl.DeleteTextures(1, &t.V)
}

// Viewport sets the viewport rectangle.
func (f *Functions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// ClearColor sets the color Clear fills with.
func (f *Functions) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear clears the buffers selected by mask.
func (f *Functions) Clear(mask driver.Enum) {
	gl.Clear(uint32(mask))
}

// DrawArrays draws count vertices starting at first.
func (f *Functions) DrawArrays(mode driver.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

// DrawElements draws count indices read from offset in the bound element
// array buffer.
func (f *Functions) DrawElements(mode driver.Enum, count int, typ driver.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(typ), gl.PtrOffset(offset))
}

// GetError returns and clears the oldest GL error flag.
func (f *Functions) GetError() driver.Enum {
	return driver.Enum(gl.GetError())
}

// GetString returns a GL string such as VERSION.
func (f *Functions) GetString(pname driver.Enum) string {
	s := gl.GetString(uint32(pname))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}
