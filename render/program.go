// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"github.com/devblok/korugl/driver"
	"github.com/devblok/korugl/resources"
	"github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
)

// Program is a linked shader program.
type Program struct {
	f    driver.Functions
	id   driver.Program
	name string
}

// ProgramFromResources compiles name+".vert" and name+".frag" and
// links them. The shader objects are released before returning.
func ProgramFromResources(f driver.Functions, l *resources.Loader, name string) (*Program, error) {
	var shaders []*Shader
	defer func() {
		for _, s := range shaders {
			s.Release()
		}
	}()
	for _, suffix := range []string{VertexSuffix, FragmentSuffix} {
		s, err := ShaderFromResources(f, l, name+suffix)
		if err != nil {
			return nil, err
		}
		shaders = append(shaders, s)
	}
	return Link(f, name, shaders...)
}

// Link attaches the shaders to a new program and links it. The
// shaders are detached again whatever the outcome, so they can be
// released independently of the program. On failure the program is
// deleted and a *LinkError holding the driver log is returned.
func Link(f driver.Functions, name string, shaders ...*Shader) (*Program, error) {
	for _, s := range shaders {
		mustBeLive(s.id.Valid(), "Shader")
	}
	id := f.CreateProgram()
	for _, s := range shaders {
		f.AttachShader(id, s.id)
	}

	f.LinkProgram(id)
	linked := f.GetProgrami(id, driver.LINK_STATUS) != driver.FALSE

	var msg string
	if !linked {
		msg = infoLog(f.GetProgrami(id, driver.INFO_LOG_LENGTH), func(buf []byte) int {
			return f.GetProgramInfoLog(id, buf)
		})
	}
	for _, s := range shaders {
		f.DetachShader(id, s.id)
	}
	if !linked {
		f.DeleteProgram(id)
		return nil, &LinkError{Name: name, Log: msg}
	}

	log.WithFields(log.Fields{
		"program": name,
		"id":      id.V,
		"stages":  len(shaders),
	}).Debug("program linked")
	return &Program{f: f, id: id, name: name}, nil
}

// ID returns the native program name.
func (p *Program) ID() driver.Program {
	return p.id
}

// Name returns the name the program was linked with.
func (p *Program) Name() string {
	return p.name
}

// Use makes p the current program.
func (p *Program) Use() {
	mustBeLive(p.id.Valid(), "Program")
	p.f.UseProgram(p.id)
}

// Unuse clears the current program.
func (p *Program) Unuse() {
	p.f.UseProgram(driver.Program{})
}

// UniformLocation looks up a uniform. Names the linker optimised away
// or never saw yield an invalid location rather than an error; setting
// an invalid location is a no-op.
func (p *Program) UniformLocation(name string) driver.Uniform {
	mustBeLive(p.id.Valid(), "Program")
	return p.f.GetUniformLocation(p.id, name)
}

// SetMatrix4 sets a mat4 uniform. p must be the current program,
// otherwise the result is undefined.
func (p *Program) SetMatrix4(loc driver.Uniform, m mgl32.Mat4) {
	p.f.UniformMatrix4fv(loc, false, m[:])
}

// SetInt sets an int or sampler uniform. p must be the current
// program, otherwise the result is undefined.
func (p *Program) SetInt(loc driver.Uniform, v int) {
	p.f.Uniform1i(loc, v)
}

// GetAndSetMatrix4 looks up a uniform and sets it.
func (p *Program) GetAndSetMatrix4(name string, m mgl32.Mat4) {
	p.SetMatrix4(p.UniformLocation(name), m)
}

// GetAndSetInt looks up a uniform and sets it.
func (p *Program) GetAndSetInt(name string, v int) {
	p.SetInt(p.UniformLocation(name), v)
}

// Release deletes the native program. Calling it again does nothing.
func (p *Program) Release() {
	if !p.id.Valid() {
		return
	}
	p.f.DeleteProgram(p.id)
	p.id = driver.Program{}
}
