// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model

import (
	"github.com/devblok/korugl/driver"
	"github.com/devblok/korugl/render"
	"github.com/devblok/korugl/resources"
)

// TriangleVertex is a vertex of the triangle scene.
type TriangleVertex struct {
	Pos   render.Vec3        `location:"0"`
	Color render.PackedColor `location:"1"`
}

// TriangleLayout is the attribute layout of TriangleVertex.
var TriangleLayout = render.MustLayout(TriangleVertex{})

// TriangleVertices are the red, green and blue corners of the triangle.
var TriangleVertices = []TriangleVertex{
	{Pos: render.Vec3{-0.5, -0.5, 0}, Color: render.NewPackedColor(1, 0, 0, 1)},
	{Pos: render.Vec3{0.5, -0.5, 0}, Color: render.NewPackedColor(0, 1, 0, 1)},
	{Pos: render.Vec3{0, 0.5, 0}, Color: render.NewPackedColor(0, 0, 1, 1)},
}

// Triangle draws one vertex colored triangle.
type Triangle struct {
	f       driver.Functions
	program *render.Program
	vbo     *render.Buffer
	vao     *render.VertexArray
}

// NewTriangle builds the scene from the shaders/triangle program.
func NewTriangle(f driver.Functions, l *resources.Loader) (*Triangle, error) {
	var objs releaser
	program, err := render.ProgramFromResources(f, l, "shaders/triangle")
	if err != nil {
		return nil, err
	}
	objs.add(program)

	vbo := render.NewArrayBuffer(f)
	objs.add(vbo)
	vbo.Bind()
	err = vbo.StaticDrawData(TriangleVertices)
	vbo.Unbind()
	if err != nil {
		objs.Release()
		return nil, err
	}

	vao := render.NewVertexArray(f)
	objs.add(vao)
	if err := vao.Configure(vbo, TriangleLayout); err != nil {
		objs.Release()
		return nil, err
	}

	return &Triangle{f: f, program: program, vbo: vbo, vao: vao}, nil
}

// Render implements Scene.
func (t *Triangle) Render() {
	t.program.Use()
	t.vao.Bind()
	t.f.DrawArrays(driver.TRIANGLES, 0, len(TriangleVertices))
	t.vao.Unbind()
	t.program.Unuse()
}

// Release implements Scene.
func (t *Triangle) Release() {
	t.vao.Release()
	t.vbo.Release()
	t.program.Release()
}
