// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package drivertest provides an in-memory driver.Functions for tests.
// It tracks every live object, the current bindings and any call that
// a real context would reject or treat as undefined.
package drivertest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/devblok/korugl/driver"
)

// Kind identifies a class of native object.
type Kind int

// Object kinds tracked by Functions.
const (
	KindShader Kind = iota
	KindProgram
	KindBuffer
	KindVertexArray
	KindTexture
)

// String returns the lower case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindShader:
		return "shader"
	case KindProgram:
		return "program"
	case KindBuffer:
		return "buffer"
	case KindVertexArray:
		return "vertex array"
	case KindTexture:
		return "texture"
	default:
		return "unknown"
	}
}

// ShaderState is the driver side of a shader object.
type ShaderState struct {
	Type     driver.Enum
	Source   string
	Compiled bool
	Log      string
}

// ProgramState is the driver side of a program object.
type ProgramState struct {
	Attached []driver.Shader
	Linked   bool
	Log      string
	Uniforms map[string]int32
	Ints     map[int32]int
	Matrices map[int32][]float32
}

// BufferState is the driver side of a buffer object.
type BufferState struct {
	Data  []byte
	Usage driver.Enum
}

// AttribState records one VertexAttribPointer call.
type AttribState struct {
	Enabled    bool
	Size       int
	Type       driver.Enum
	Normalized bool
	Stride     int
	Offset     int
	Buffer     driver.Buffer
}

// VertexArrayState is the driver side of a vertex array object.
type VertexArrayState struct {
	Attribs map[driver.Attrib]*AttribState
}

// TextureState is the driver side of a texture object.
type TextureState struct {
	Width, Height  int
	InternalFormat driver.Enum
	Format         driver.Enum
	Type           driver.Enum
	Pixels         []byte
	Params         map[driver.Enum]int
	Mipmapped      bool
	// Unit is the texture unit that was active when the texture
	// was last bound.
	Unit int
}

// Draw records a draw call.
type Draw struct {
	Mode        driver.Enum
	First       int
	Count       int
	Indexed     bool
	Program     driver.Program
	VertexArray driver.VertexArray
	Textures    map[int]driver.Texture
}

// Functions is a fake OpenGL procedure table.
type Functions struct {
	// CompileLog decides the outcome of CompileShader. An empty
	// result means success. Defaults to DefaultCompileLog.
	CompileLog func(typ driver.Enum, src string) string
	// LinkLog decides the outcome of LinkProgram. Defaults to
	// DefaultLinkLog.
	LinkLog func(stages []*ShaderState) string

	// Violations lists calls a real driver would reject or that
	// have undefined behaviour.
	Violations []string
	// Draws lists the draw calls issued so far.
	Draws []Draw

	next     uint32
	shaders  map[uint32]*ShaderState
	programs map[uint32]*ProgramState
	buffers  map[uint32]*BufferState
	arrays   map[uint32]*VertexArrayState
	textures map[uint32]*TextureState

	program       driver.Program
	vertexArray   driver.VertexArray
	boundBuffers  map[driver.Enum]driver.Buffer
	activeTexture int
	unitTextures  map[int]driver.Texture
	pixelStore    map[driver.Enum]int

	viewport   [4]int
	clearColor [4]float32
	clears     int
}

var _ driver.Functions = (*Functions)(nil)

// New returns an empty fake driver.
func New() *Functions {
	return &Functions{
		shaders:      make(map[uint32]*ShaderState),
		programs:     make(map[uint32]*ProgramState),
		buffers:      make(map[uint32]*BufferState),
		arrays:       make(map[uint32]*VertexArrayState),
		textures:     make(map[uint32]*TextureState),
		boundBuffers: make(map[driver.Enum]driver.Buffer),
		unitTextures: make(map[int]driver.Texture),
		pixelStore:   map[driver.Enum]int{driver.UNPACK_ALIGNMENT: 4},
	}
}

// DefaultCompileLog fails any source without a main function.
func DefaultCompileLog(typ driver.Enum, src string) string {
	if !strings.Contains(src, "void main") {
		return "0:1(1): error: syntax error, unexpected end of file"
	}
	return ""
}

// DefaultLinkLog requires exactly one compiled vertex and fragment stage.
func DefaultLinkLog(stages []*ShaderState) string {
	var vert, frag int
	for _, s := range stages {
		if !s.Compiled {
			return "error: linking with uncompiled shader"
		}
		switch s.Type {
		case driver.VERTEX_SHADER:
			vert++
		case driver.FRAGMENT_SHADER:
			frag++
		}
	}
	switch {
	case vert != 1:
		return "error: program lacks a vertex shader"
	case frag != 1:
		return "error: program lacks a fragment shader"
	}
	return ""
}

func (f *Functions) violate(format string, args ...interface{}) {
	f.Violations = append(f.Violations, fmt.Sprintf(format, args...))
}

func (f *Functions) name() uint32 {
	f.next++
	return f.next
}

// Live returns the number of live objects of kind k.
func (f *Functions) Live(k Kind) int {
	switch k {
	case KindShader:
		return len(f.shaders)
	case KindProgram:
		return len(f.programs)
	case KindBuffer:
		return len(f.buffers)
	case KindVertexArray:
		return len(f.arrays)
	case KindTexture:
		return len(f.textures)
	}
	return 0
}

// LiveTotal returns the number of live objects of every kind.
func (f *Functions) LiveTotal() int {
	return len(f.shaders) + len(f.programs) + len(f.buffers) + len(f.arrays) + len(f.textures)
}

// Shader returns the state of s, or nil if s is not live.
func (f *Functions) Shader(s driver.Shader) *ShaderState { return f.shaders[s.V] }

// Program returns the state of p, or nil if p is not live.
func (f *Functions) Program(p driver.Program) *ProgramState { return f.programs[p.V] }

// Buffer returns the state of b, or nil if b is not live.
func (f *Functions) Buffer(b driver.Buffer) *BufferState { return f.buffers[b.V] }

// VertexArray returns the state of a, or nil if a is not live.
func (f *Functions) VertexArray(a driver.VertexArray) *VertexArrayState { return f.arrays[a.V] }

// Texture returns the state of t, or nil if t is not live.
func (f *Functions) Texture(t driver.Texture) *TextureState { return f.textures[t.V] }

// CurrentProgram returns the program in use.
func (f *Functions) CurrentProgram() driver.Program { return f.program }

// BoundVertexArray returns the bound vertex array.
func (f *Functions) BoundVertexArray() driver.VertexArray { return f.vertexArray }

// BoundBuffer returns the buffer bound to target.
func (f *Functions) BoundBuffer(target driver.Enum) driver.Buffer { return f.boundBuffers[target] }

// ActiveUnit returns the active texture unit index.
func (f *Functions) ActiveUnit() int { return f.activeTexture }

// UnitTexture returns the 2D texture bound to unit.
func (f *Functions) UnitTexture(unit int) driver.Texture { return f.unitTextures[unit] }

// ViewportRect returns the last viewport set.
func (f *Functions) ViewportRect() [4]int { return f.viewport }

// ClearState returns the clear color and the number of clears issued.
func (f *Functions) ClearState() ([4]float32, int) { return f.clearColor, f.clears }

// CreateShader records a new shader. Types other than vertex and
// fragment are a violation.
func (f *Functions) CreateShader(typ driver.Enum) driver.Shader {
	if typ != driver.VERTEX_SHADER && typ != driver.FRAGMENT_SHADER {
		f.violate("CreateShader: invalid type %#x", typ)
		return driver.Shader{}
	}
	n := f.name()
	f.shaders[n] = &ShaderState{Type: typ}
	return driver.Shader{V: n}
}

func (f *Functions) shader(call string, s driver.Shader) *ShaderState {
	st, ok := f.shaders[s.V]
	if !ok {
		f.violate("%s: unknown shader %d", call, s.V)
	}
	return st
}

// ShaderSource stores src on the shader.
func (f *Functions) ShaderSource(s driver.Shader, src string) {
	if st := f.shader("ShaderSource", s); st != nil {
		st.Source = src
	}
}

// CompileShader runs CompileLog, or DefaultCompileLog when unset, and
// marks the shader compiled when the log is empty.
func (f *Functions) CompileShader(s driver.Shader) {
	st := f.shader("CompileShader", s)
	if st == nil {
		return
	}
	compile := f.CompileLog
	if compile == nil {
		compile = DefaultCompileLog
	}
	st.Log = compile(st.Type, st.Source)
	st.Compiled = st.Log == ""
}

// GetShaderi answers COMPILE_STATUS and INFO_LOG_LENGTH.
func (f *Functions) GetShaderi(s driver.Shader, pname driver.Enum) int {
	st := f.shader("GetShaderi", s)
	if st == nil {
		return 0
	}
	switch pname {
	case driver.COMPILE_STATUS:
		if st.Compiled {
			return driver.TRUE
		}
		return driver.FALSE
	case driver.INFO_LOG_LENGTH:
		return logLength(st.Log)
	}
	f.violate("GetShaderi: invalid pname %#x", pname)
	return 0
}

// GetShaderInfoLog copies the compile log like the real call does,
// NUL terminated and truncated to buf.
func (f *Functions) GetShaderInfoLog(s driver.Shader, buf []byte) int {
	st := f.shader("GetShaderInfoLog", s)
	if st == nil {
		return 0
	}
	return copyLog(buf, st.Log)
}

// DeleteShader forgets s. Deleting the zero shader is a no-op.
func (f *Functions) DeleteShader(s driver.Shader) {
	if s.V == 0 {
		return
	}
	if f.shader("DeleteShader", s) == nil {
		return
	}
	for _, p := range f.programs {
		for _, a := range p.Attached {
			if a == s {
				// Deletion is deferred by real drivers until
				// detached; flag it so leaks show up in tests.
				f.violate("DeleteShader: shader %d still attached", s.V)
			}
		}
	}
	delete(f.shaders, s.V)
}

// CreateProgram records a new program.
func (f *Functions) CreateProgram() driver.Program {
	n := f.name()
	f.programs[n] = &ProgramState{
		Uniforms: make(map[string]int32),
		Ints:     make(map[int32]int),
		Matrices: make(map[int32][]float32),
	}
	return driver.Program{V: n}
}

func (f *Functions) prog(call string, p driver.Program) *ProgramState {
	st, ok := f.programs[p.V]
	if !ok {
		f.violate("%s: unknown program %d", call, p.V)
	}
	return st
}

// AttachShader attaches a live shader to a live program.
func (f *Functions) AttachShader(p driver.Program, s driver.Shader) {
	st := f.prog("AttachShader", p)
	if st == nil || f.shader("AttachShader", s) == nil {
		return
	}
	for _, a := range st.Attached {
		if a == s {
			f.violate("AttachShader: shader %d already attached", s.V)
			return
		}
	}
	st.Attached = append(st.Attached, s)
}

// DetachShader detaches s. Detaching a shader that is not attached
// is a violation.
func (f *Functions) DetachShader(p driver.Program, s driver.Shader) {
	st := f.prog("DetachShader", p)
	if st == nil {
		return
	}
	for i, a := range st.Attached {
		if a == s {
			st.Attached = append(st.Attached[:i], st.Attached[i+1:]...)
			return
		}
	}
	f.violate("DetachShader: shader %d not attached", s.V)
}

var uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)

// LinkProgram runs LinkLog, or DefaultLinkLog when unset, over the
// attached stages. On success every uniform declared in them gets a
// location in name order.
func (f *Functions) LinkProgram(p driver.Program) {
	st := f.prog("LinkProgram", p)
	if st == nil {
		return
	}
	var stages []*ShaderState
	for _, s := range st.Attached {
		if ss := f.shaders[s.V]; ss != nil {
			stages = append(stages, ss)
		}
	}
	link := f.LinkLog
	if link == nil {
		link = DefaultLinkLog
	}
	st.Log = link(stages)
	st.Linked = st.Log == ""
	st.Uniforms = make(map[string]int32)
	if !st.Linked {
		return
	}
	var names []string
	for _, ss := range stages {
		for _, m := range uniformDecl.FindAllStringSubmatch(ss.Source, -1) {
			if _, ok := st.Uniforms[m[1]]; !ok {
				st.Uniforms[m[1]] = 0
				names = append(names, m[1])
			}
		}
	}
	sort.Strings(names)
	for i, name := range names {
		st.Uniforms[name] = int32(i)
	}
}

// GetProgrami answers LINK_STATUS and INFO_LOG_LENGTH.
func (f *Functions) GetProgrami(p driver.Program, pname driver.Enum) int {
	st := f.prog("GetProgrami", p)
	if st == nil {
		return 0
	}
	switch pname {
	case driver.LINK_STATUS:
		if st.Linked {
			return driver.TRUE
		}
		return driver.FALSE
	case driver.INFO_LOG_LENGTH:
		return logLength(st.Log)
	}
	f.violate("GetProgrami: invalid pname %#x", pname)
	return 0
}

// GetProgramInfoLog copies the link log, NUL terminated and
// truncated to buf.
func (f *Functions) GetProgramInfoLog(p driver.Program, buf []byte) int {
	st := f.prog("GetProgramInfoLog", p)
	if st == nil {
		return 0
	}
	return copyLog(buf, st.Log)
}

// UseProgram makes p current. Using an unlinked program is a violation.
func (f *Functions) UseProgram(p driver.Program) {
	if p.V != 0 {
		st := f.prog("UseProgram", p)
		if st == nil {
			return
		}
		if !st.Linked {
			f.violate("UseProgram: program %d not linked", p.V)
			return
		}
	}
	f.program = p
}

// DeleteProgram forgets p, clearing it if current.
func (f *Functions) DeleteProgram(p driver.Program) {
	if p.V == 0 {
		return
	}
	if f.prog("DeleteProgram", p) == nil {
		return
	}
	if f.program == p {
		f.program = driver.Program{}
	}
	delete(f.programs, p.V)
}

// GetUniformLocation returns the location assigned at link time, or
// NoUniform for names the program does not declare.
func (f *Functions) GetUniformLocation(p driver.Program, name string) driver.Uniform {
	st := f.prog("GetUniformLocation", p)
	if st == nil {
		return driver.NoUniform
	}
	if !st.Linked {
		f.violate("GetUniformLocation: program %d not linked", p.V)
		return driver.NoUniform
	}
	loc, ok := st.Uniforms[name]
	if !ok {
		return driver.NoUniform
	}
	return driver.Uniform{V: loc}
}

func (f *Functions) current(call string, u driver.Uniform) *ProgramState {
	if !u.Valid() {
		// Writes to location -1 are silently ignored.
		return nil
	}
	if !f.program.Valid() {
		f.violate("%s: no program in use", call)
		return nil
	}
	return f.programs[f.program.V]
}

// Uniform1i stores v on the current program.
func (f *Functions) Uniform1i(u driver.Uniform, v int) {
	if st := f.current("Uniform1i", u); st != nil {
		st.Ints[u.V] = v
	}
}

// UniformMatrix4fv stores a copy of m on the current program.
func (f *Functions) UniformMatrix4fv(u driver.Uniform, transpose bool, m []float32) {
	if len(m)%16 != 0 || len(m) == 0 {
		f.violate("UniformMatrix4fv: %d values", len(m))
		return
	}
	if st := f.current("UniformMatrix4fv", u); st != nil {
		st.Matrices[u.V] = append([]float32(nil), m...)
	}
}

// CreateBuffer records a new buffer.
func (f *Functions) CreateBuffer() driver.Buffer {
	n := f.name()
	f.buffers[n] = &BufferState{}
	return driver.Buffer{V: n}
}

// BindBuffer binds b to an array or element array target.
func (f *Functions) BindBuffer(target driver.Enum, b driver.Buffer) {
	if target != driver.ARRAY_BUFFER && target != driver.ELEMENT_ARRAY_BUFFER {
		f.violate("BindBuffer: invalid target %#x", target)
		return
	}
	if b.V != 0 {
		if _, ok := f.buffers[b.V]; !ok {
			f.violate("BindBuffer: unknown buffer %d", b.V)
			return
		}
	}
	f.boundBuffers[target] = b
}

// BufferData copies data into the buffer bound to target.
func (f *Functions) BufferData(target driver.Enum, data []byte, usage driver.Enum) {
	b := f.boundBuffers[target]
	if !b.Valid() {
		f.violate("BufferData: no buffer bound to %#x", target)
		return
	}
	st := f.buffers[b.V]
	st.Data = append([]byte(nil), data...)
	st.Usage = usage
}

// DeleteBuffer forgets b and unbinds it wherever it is bound.
func (f *Functions) DeleteBuffer(b driver.Buffer) {
	if b.V == 0 {
		return
	}
	if _, ok := f.buffers[b.V]; !ok {
		f.violate("DeleteBuffer: unknown buffer %d", b.V)
		return
	}
	for target, bound := range f.boundBuffers {
		if bound == b {
			f.boundBuffers[target] = driver.Buffer{}
		}
	}
	delete(f.buffers, b.V)
}

// CreateVertexArray records a new vertex array.
func (f *Functions) CreateVertexArray() driver.VertexArray {
	n := f.name()
	f.arrays[n] = &VertexArrayState{Attribs: make(map[driver.Attrib]*AttribState)}
	return driver.VertexArray{V: n}
}

// BindVertexArray binds a. The zero array unbinds.
func (f *Functions) BindVertexArray(a driver.VertexArray) {
	if a.V != 0 {
		if _, ok := f.arrays[a.V]; !ok {
			f.violate("BindVertexArray: unknown vertex array %d", a.V)
			return
		}
	}
	f.vertexArray = a
}

// DeleteVertexArray forgets a, unbinding it if bound.
func (f *Functions) DeleteVertexArray(a driver.VertexArray) {
	if a.V == 0 {
		return
	}
	if _, ok := f.arrays[a.V]; !ok {
		f.violate("DeleteVertexArray: unknown vertex array %d", a.V)
		return
	}
	if f.vertexArray == a {
		f.vertexArray = driver.VertexArray{}
	}
	delete(f.arrays, a.V)
}

func (f *Functions) attrib(call string, a driver.Attrib) *AttribState {
	if !f.vertexArray.Valid() {
		f.violate("%s: no vertex array bound", call)
		return nil
	}
	va := f.arrays[f.vertexArray.V]
	st, ok := va.Attribs[a]
	if !ok {
		st = &AttribState{}
		va.Attribs[a] = st
	}
	return st
}

// EnableVertexAttribArray enables a on the bound vertex array.
func (f *Functions) EnableVertexAttribArray(a driver.Attrib) {
	if st := f.attrib("EnableVertexAttribArray", a); st != nil {
		st.Enabled = true
	}
}

// VertexAttribPointer records the attribute format along with the
// array buffer bound at the time of the call.
func (f *Functions) VertexAttribPointer(a driver.Attrib, size int, typ driver.Enum, normalized bool, stride, offset int) {
	buf := f.boundBuffers[driver.ARRAY_BUFFER]
	if !buf.Valid() {
		f.violate("VertexAttribPointer: no array buffer bound")
		return
	}
	if typ == driver.UNSIGNED_INT_2_10_10_10_REV && size != 4 {
		f.violate("VertexAttribPointer: packed type with size %d", size)
		return
	}
	st := f.attrib("VertexAttribPointer", a)
	if st == nil {
		return
	}
	st.Size = size
	st.Type = typ
	st.Normalized = normalized
	st.Stride = stride
	st.Offset = offset
	st.Buffer = buf
}

// CreateTexture records a new texture.
func (f *Functions) CreateTexture() driver.Texture {
	n := f.name()
	f.textures[n] = &TextureState{Params: make(map[driver.Enum]int)}
	return driver.Texture{V: n}
}

// ActiveTexture selects one of 32 texture units.
func (f *Functions) ActiveTexture(unit driver.Enum) {
	if unit < driver.TEXTURE0 || unit >= driver.TEXTURE0+32 {
		f.violate("ActiveTexture: invalid unit %#x", unit)
		return
	}
	f.activeTexture = int(unit - driver.TEXTURE0)
}

// BindTexture binds t to TEXTURE_2D on the active unit.
func (f *Functions) BindTexture(target driver.Enum, t driver.Texture) {
	if target != driver.TEXTURE_2D {
		f.violate("BindTexture: invalid target %#x", target)
		return
	}
	if t.V != 0 {
		st, ok := f.textures[t.V]
		if !ok {
			f.violate("BindTexture: unknown texture %d", t.V)
			return
		}
		st.Unit = f.activeTexture
	}
	f.unitTextures[f.activeTexture] = t
}

func (f *Functions) boundTexture(call string) *TextureState {
	t := f.unitTextures[f.activeTexture]
	if !t.Valid() {
		f.violate("%s: no texture bound to unit %d", call, f.activeTexture)
		return nil
	}
	return f.textures[t.V]
}

// TexParameteri stores param on the bound texture.
func (f *Functions) TexParameteri(target, pname driver.Enum, param int) {
	if st := f.boundTexture("TexParameteri"); st != nil {
		st.Params[pname] = param
	}
}

// TexImage2D copies pixels into the bound texture. Too few bytes for
// the size under the current UNPACK_ALIGNMENT is a violation.
func (f *Functions) TexImage2D(target driver.Enum, level int, internalFormat driver.Enum, width, height int, format, typ driver.Enum, pixels []byte) {
	st := f.boundTexture("TexImage2D")
	if st == nil {
		return
	}
	channels := 4
	if format == driver.RGB {
		channels = 3
	}
	align := f.pixelStore[driver.UNPACK_ALIGNMENT]
	row := width * channels
	if rem := row % align; rem != 0 {
		row += align - rem
	}
	if pixels != nil && len(pixels) < row*(height-1)+width*channels {
		f.violate("TexImage2D: %d bytes for %dx%d with alignment %d", len(pixels), width, height, align)
		return
	}
	st.Width, st.Height = width, height
	st.InternalFormat, st.Format, st.Type = internalFormat, format, typ
	st.Pixels = append([]byte(nil), pixels...)
	st.Mipmapped = false
}

// GenerateMipmap marks the bound texture mipmapped. The texture needs
// an image first.
func (f *Functions) GenerateMipmap(target driver.Enum) {
	if st := f.boundTexture("GenerateMipmap"); st != nil {
		if st.Width == 0 {
			f.violate("GenerateMipmap: texture has no image")
			return
		}
		st.Mipmapped = true
	}
}

// PixelStorei stores an alignment of 1, 2, 4 or 8.
func (f *Functions) PixelStorei(pname driver.Enum, param int) {
	switch param {
	case 1, 2, 4, 8:
		f.pixelStore[pname] = param
	default:
		f.violate("PixelStorei: invalid alignment %d", param)
	}
}

// DeleteTexture forgets t and clears it from every unit.
func (f *Functions) DeleteTexture(t driver.Texture) {
	if t.V == 0 {
		return
	}
	if _, ok := f.textures[t.V]; !ok {
		f.violate("DeleteTexture: unknown texture %d", t.V)
		return
	}
	for unit, bound := range f.unitTextures {
		if bound == t {
			f.unitTextures[unit] = driver.Texture{}
		}
	}
	delete(f.textures, t.V)
}

// Viewport stores the viewport rectangle.
func (f *Functions) Viewport(x, y, width, height int) {
	if width < 0 || height < 0 {
		f.violate("Viewport: negative size %dx%d", width, height)
		return
	}
	f.viewport = [4]int{x, y, width, height}
}

// ClearColor stores the clear color.
func (f *Functions) ClearColor(r, g, b, a float32) {
	f.clearColor = [4]float32{r, g, b, a}
}

// Clear counts calls.
func (f *Functions) Clear(mask driver.Enum) {
	f.clears++
}

func (f *Functions) draw(call string, mode driver.Enum, first, count int, indexed bool) {
	if !f.program.Valid() {
		f.violate("%s: no program in use", call)
		return
	}
	if !f.vertexArray.Valid() {
		f.violate("%s: no vertex array bound", call)
		return
	}
	textures := make(map[int]driver.Texture)
	for unit, t := range f.unitTextures {
		if t.Valid() {
			textures[unit] = t
		}
	}
	f.Draws = append(f.Draws, Draw{
		Mode:        mode,
		First:       first,
		Count:       count,
		Indexed:     indexed,
		Program:     f.program,
		VertexArray: f.vertexArray,
		Textures:    textures,
	})
}

// DrawArrays records a Draw. A program and vertex array must be bound.
func (f *Functions) DrawArrays(mode driver.Enum, first, count int) {
	f.draw("DrawArrays", mode, first, count, false)
}

// DrawElements records an indexed Draw. An element array buffer must
// also be bound.
func (f *Functions) DrawElements(mode driver.Enum, count int, typ driver.Enum, offset int) {
	if !f.boundBuffers[driver.ELEMENT_ARRAY_BUFFER].Valid() {
		f.violate("DrawElements: no element array buffer bound")
		return
	}
	f.draw("DrawElements", mode, offset, count, true)
}

// GetError reports INVALID_OPERATION once any violation was recorded.
func (f *Functions) GetError() driver.Enum {
	if len(f.Violations) > 0 {
		return driver.INVALID_OPERATION
	}
	return driver.NO_ERROR
}

// GetString answers VERSION.
func (f *Functions) GetString(pname driver.Enum) string {
	if pname == driver.VERSION {
		return "4.1 drivertest"
	}
	return ""
}

// logLength mirrors INFO_LOG_LENGTH: the log size including its
// terminating zero, or 0 for an empty log.
func logLength(log string) int {
	if log == "" {
		return 0
	}
	return len(log) + 1
}

func copyLog(buf []byte, log string) int {
	if len(buf) == 0 {
		return 0
	}
	n := copy(buf[:len(buf)-1], log)
	buf[n] = 0
	return n
}
