// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package driver describes the subset of the OpenGL procedure table
// the renderer calls into. Implementations resolve the entry points
// once, at context creation, and must only be used from the thread
// that owns the context.
package driver

// Functions is the OpenGL procedure table.
type Functions interface {
	// Shaders
	CreateShader(typ Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	// GetShaderInfoLog copies at most len(buf) bytes of the info log
	// into buf and returns the number of bytes written, excluding
	// the terminating zero.
	GetShaderInfoLog(s Shader, buf []byte) int
	DeleteShader(s Shader)

	// Programs
	CreateProgram() Program
	AttachShader(p Program, s Shader)
	DetachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program, buf []byte) int
	UseProgram(p Program)
	DeleteProgram(p Program)
	GetUniformLocation(p Program, name string) Uniform
	Uniform1i(u Uniform, v int)
	UniformMatrix4fv(u Uniform, transpose bool, m []float32)

	// Buffers
	CreateBuffer() Buffer
	BindBuffer(target Enum, b Buffer)
	BufferData(target Enum, data []byte, usage Enum)
	DeleteBuffer(b Buffer)

	// Vertex arrays
	CreateVertexArray() VertexArray
	BindVertexArray(a VertexArray)
	DeleteVertexArray(a VertexArray)
	EnableVertexAttribArray(a Attrib)
	VertexAttribPointer(a Attrib, size int, typ Enum, normalized bool, stride, offset int)

	// Textures
	CreateTexture() Texture
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)
	TexParameteri(target, pname Enum, param int)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, typ Enum, pixels []byte)
	GenerateMipmap(target Enum)
	PixelStorei(pname Enum, param int)
	DeleteTexture(t Texture)

	// Framebuffer and drawing
	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, typ Enum, offset int)
	GetError() Enum
	GetString(pname Enum) string
}
