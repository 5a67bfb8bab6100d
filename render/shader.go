// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"strings"

	"github.com/devblok/korugl/driver"
	"github.com/devblok/korugl/resources"
	"github.com/pkg/errors"
)

// ShaderType represents the type of shader thats loaded
type ShaderType int

// Identifies shader objects with their types
const (
	VertexShaderType ShaderType = iota
	FragmentShaderType
	UnknownShaderType
)

// Shader suffixes, the part of a resource name after the last dot.
const (
	VertexSuffix   = ".vert"
	FragmentSuffix = ".frag"
)

func (t ShaderType) String() string {
	switch t {
	case VertexShaderType:
		return "vertex"
	case FragmentShaderType:
		return "fragment"
	default:
		return "unknown"
	}
}

func (t ShaderType) enum() driver.Enum {
	switch t {
	case VertexShaderType:
		return driver.VERTEX_SHADER
	case FragmentShaderType:
		return driver.FRAGMENT_SHADER
	default:
		return 0
	}
}

// ShaderTypeFromName derives the shader type from the resource
// name suffix.
func ShaderTypeFromName(name string) (ShaderType, error) {
	switch {
	case strings.HasSuffix(name, VertexSuffix):
		return VertexShaderType, nil
	case strings.HasSuffix(name, FragmentSuffix):
		return FragmentShaderType, nil
	default:
		return UnknownShaderType, errors.Wrapf(ErrUnknownStage, "resource %s", name)
	}
}

// Shader is a compiled shader stage. It is only ever handed out
// compiled; Release deletes the native object.
type Shader struct {
	f    driver.Functions
	id   driver.Shader
	typ  ShaderType
	name string
}

// ShaderFromResources loads and compiles the named shader, deriving
// its type from the name suffix.
func ShaderFromResources(f driver.Functions, l *resources.Loader, name string) (*Shader, error) {
	typ, err := ShaderTypeFromName(name)
	if err != nil {
		return nil, err
	}
	src, err := l.LoadText(name)
	if err != nil {
		return nil, &ResourceError{Name: name, Err: err}
	}
	return ShaderFromSource(f, name, string(src), typ)
}

// ShaderFromSource compiles src as a shader of type typ. A single
// trailing zero byte is accepted, any other zero byte is not. On a
// compile failure the native object is deleted and a *CompileError
// holding the driver log is returned.
func ShaderFromSource(f driver.Functions, name, src string, typ ShaderType) (*Shader, error) {
	if typ.enum() == 0 {
		return nil, errors.Wrapf(ErrUnknownStage, "shader %s", name)
	}
	src = strings.TrimSuffix(src, "\x00")
	if strings.IndexByte(src, 0) >= 0 {
		return nil, errors.Wrapf(ErrSourceContainsNil, "shader %s", name)
	}

	id := f.CreateShader(typ.enum())
	f.ShaderSource(id, src)
	f.CompileShader(id)

	if f.GetShaderi(id, driver.COMPILE_STATUS) == driver.FALSE {
		msg := infoLog(f.GetShaderi(id, driver.INFO_LOG_LENGTH), func(buf []byte) int {
			return f.GetShaderInfoLog(id, buf)
		})
		f.DeleteShader(id)
		return nil, &CompileError{Name: name, Type: typ, Log: msg}
	}

	return &Shader{f: f, id: id, typ: typ, name: name}, nil
}

// infoLog allocates exactly the reported log length and lets read
// fill it.
func infoLog(length int, read func([]byte) int) string {
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length)
	n := read(buf)
	if n > len(buf) {
		n = len(buf)
	}
	return strings.TrimRight(string(buf[:n]), "\x00")
}

// ID returns the native shader name.
func (s *Shader) ID() driver.Shader {
	return s.id
}

// Type returns the shader stage.
func (s *Shader) Type() ShaderType {
	return s.typ
}

// Name returns the name the shader was created with.
func (s *Shader) Name() string {
	return s.name
}

// Release deletes the native shader. Calling it again does nothing.
func (s *Shader) Release() {
	if !s.id.Valid() {
		return
	}
	s.f.DeleteShader(s.id)
	s.id = driver.Shader{}
}
