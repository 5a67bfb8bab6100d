// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"github.com/devblok/korugl/driver"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a mat4 uniform of one program, looked up once.
type Transform struct {
	program  *Program
	location driver.Uniform
}

// NewTransform looks up uniform in p. A missing uniform is not an
// error; Set then does nothing.
func NewTransform(p *Program, uniform string) *Transform {
	return &Transform{program: p, location: p.UniformLocation(uniform)}
}

// Location returns the uniform location.
func (t *Transform) Location() driver.Uniform {
	return t.location
}

// Set pushes m. The program must be in use.
func (t *Transform) Set(m mgl32.Mat4) {
	t.program.SetMatrix4(t.location, m)
}
