// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model

import (
	"sync"

	"github.com/devblok/korugl/driver"
	"github.com/devblok/korugl/render"
	"github.com/devblok/korugl/resources"
	glm "github.com/go-gl/mathgl/mgl32"
)

// SquareVertex is a vertex of the textured square scene.
type SquareVertex struct {
	Pos      render.Vec3        `location:"0"`
	Color    render.PackedColor `location:"1"`
	TexCoord render.Vec2        `location:"2"`
}

// SquareLayout is the attribute layout of SquareVertex.
var SquareLayout = render.MustLayout(SquareVertex{})

// SquareVertices are the corners of the square, bottom row first.
var SquareVertices = []SquareVertex{
	{Pos: render.Vec3{-0.5, -0.5, 0}, Color: render.NewPackedColor(1, 0, 0, 1), TexCoord: render.Vec2{0, 0}},
	{Pos: render.Vec3{0.5, -0.5, 0}, Color: render.NewPackedColor(0, 1, 0, 1), TexCoord: render.Vec2{1, 0}},
	{Pos: render.Vec3{-0.5, 0.5, 0}, Color: render.NewPackedColor(1, 1, 1, 1), TexCoord: render.Vec2{0, 1}},
	{Pos: render.Vec3{0.5, 0.5, 0}, Color: render.NewPackedColor(0, 0, 1, 1), TexCoord: render.Vec2{1, 1}},
}

// SquareIndices split the square into two triangles.
var SquareIndices = []uint32{0, 1, 2, 2, 1, 3}

// Square textures and their sampler uniforms.
const (
	ContainerTexture = "textures/container.png"
	FaceTexture      = "textures/awesomeface.png"
)

// Square draws a square blending two textures, transformed by a
// rotation that may be updated from any goroutine.
type Square struct {
	f         driver.Functions
	program   *render.Program
	vbo       *render.Buffer
	ebo       *render.Buffer
	vao       *render.VertexArray
	container *render.Texture
	face      *render.Texture
	transform *render.Transform

	mutex    sync.RWMutex
	rotation glm.Mat4
}

// NewSquare builds the scene from the shaders/square program. Each
// texture claims a unit from units.
func NewSquare(f driver.Functions, l *resources.Loader, units *render.UnitAllocator) (*Square, error) {
	var objs releaser
	fail := func(err error) (*Square, error) {
		objs.Release()
		return nil, err
	}

	program, err := render.ProgramFromResources(f, l, "shaders/square")
	if err != nil {
		return nil, err
	}
	objs.add(program)

	container, err := render.TextureFromResources(f, l, ContainerTexture, units, &render.Sampler{Program: program, Uniform: "container"})
	if err != nil {
		return fail(err)
	}
	objs.add(container)
	face, err := render.TextureFromResources(f, l, FaceTexture, units, &render.Sampler{Program: program, Uniform: "face"})
	if err != nil {
		return fail(err)
	}
	objs.add(face)

	vbo := render.NewArrayBuffer(f)
	objs.add(vbo)
	vbo.Bind()
	err = vbo.StaticDrawData(SquareVertices)
	vbo.Unbind()
	if err != nil {
		return fail(err)
	}

	ebo := render.NewElementArrayBuffer(f)
	objs.add(ebo)
	ebo.Bind()
	err = ebo.StaticDrawData(SquareIndices)
	ebo.Unbind()
	if err != nil {
		return fail(err)
	}

	vao := render.NewVertexArray(f)
	objs.add(vao)
	if err := vao.Configure(vbo, SquareLayout); err != nil {
		return fail(err)
	}

	return &Square{
		f:         f,
		program:   program,
		vbo:       vbo,
		ebo:       ebo,
		vao:       vao,
		container: container,
		face:      face,
		transform: render.NewTransform(program, "transform"),
		rotation:  glm.Ident4(),
	}, nil
}

// SetRotation sets the rotation applied on the next Render.
func (s *Square) SetRotation(rot glm.Mat4) {
	s.mutex.Lock()
	s.rotation = rot
	s.mutex.Unlock()
}

// Rotation returns the current rotation.
func (s *Square) Rotation() glm.Mat4 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.rotation
}

// Program returns the square's shader program.
func (s *Square) Program() *render.Program {
	return s.program
}

// Render implements Scene.
func (s *Square) Render() {
	s.program.Use()
	s.transform.Set(s.Rotation())
	s.vao.Bind()
	s.ebo.Bind()
	s.container.Bind()
	s.face.Bind()

	s.f.DrawElements(driver.TRIANGLES, len(SquareIndices), driver.UNSIGNED_INT, 0)

	s.face.Unbind()
	s.container.Unbind()
	s.ebo.Unbind()
	s.vao.Unbind()
	s.program.Unuse()
}

// Release implements Scene.
func (s *Square) Release() {
	s.vao.Release()
	s.ebo.Release()
	s.vbo.Release()
	s.face.Release()
	s.container.Release()
	s.program.Release()
}
