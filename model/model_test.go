// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model_test

import (
	"testing"

	"github.com/devblok/korugl/driver"
	"github.com/devblok/korugl/driver/drivertest"
	"github.com/devblok/korugl/model"
	"github.com/devblok/korugl/render"
	"github.com/devblok/korugl/resources"
	qt "github.com/frankban/quicktest"
	glm "github.com/go-gl/mathgl/mgl32"
)

func loader() *resources.Loader {
	return resources.NewLoader(resources.DirSource("../assets"))
}

func TestNames(t *testing.T) {
	c := qt.New(t)
	c.Assert(model.Names(), qt.DeepEquals, []string{"square", "triangle"})

	_, err := model.New("cube", drivertest.New(), loader(), nil)
	c.Assert(err, qt.ErrorIs, model.ErrUnknownScene)
	c.Assert(err, qt.ErrorMatches, `"cube", have \[square triangle\]: unknown scene`)
}

func TestLayouts(t *testing.T) {
	c := qt.New(t)
	c.Assert(model.TriangleLayout.Stride, qt.Equals, 16)
	c.Assert(model.SquareLayout.Stride, qt.Equals, 24)
	c.Assert(model.SquareLayout.Attribs[2].Offset, qt.Equals, 16)
}

func TestTriangle(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()

	scene, err := model.New("triangle", f, loader(), nil)
	c.Assert(err, qt.IsNil)
	scene.Render()
	scene.Render()

	c.Assert(f.Draws, qt.HasLen, 2)
	d := f.Draws[0]
	c.Assert(d.Mode, qt.Equals, driver.Enum(driver.TRIANGLES))
	c.Assert(d.Count, qt.Equals, 3)
	c.Assert(d.Indexed, qt.IsFalse)

	va := f.VertexArray(d.VertexArray)
	c.Assert(va.Attribs, qt.HasLen, 2)
	c.Assert(va.Attribs[1].Type, qt.Equals, driver.Enum(driver.UNSIGNED_INT_2_10_10_10_REV))
	c.Assert(va.Attribs[1].Normalized, qt.IsTrue)
	c.Assert(f.Buffer(va.Attribs[0].Buffer).Data, qt.HasLen, 3*16)

	c.Assert(f.CurrentProgram().Valid(), qt.IsFalse)
	c.Assert(f.BoundVertexArray().Valid(), qt.IsFalse)

	scene.Release()
	c.Assert(f.LiveTotal(), qt.Equals, 0)
	c.Assert(f.Violations, qt.HasLen, 0, qt.Commentf("%q", f.Violations))
}

func TestSquare(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()
	units := render.NewUnitAllocator(0)

	square, err := model.NewSquare(f, loader(), units)
	c.Assert(err, qt.IsNil)
	c.Assert(units.Claimed(), qt.Equals, 2)

	p := f.Program(square.Program().ID())
	container := square.Program().UniformLocation("container")
	face := square.Program().UniformLocation("face")
	c.Assert(p.Ints[container.V], qt.Equals, 0)
	c.Assert(p.Ints[face.V], qt.Equals, 1)

	c.Assert(square.Rotation(), qt.Equals, glm.Ident4())
	rot := glm.HomogRotate3DZ(glm.DegToRad(45))
	square.SetRotation(rot)
	square.Render()

	c.Assert(f.Draws, qt.HasLen, 1)
	d := f.Draws[0]
	c.Assert(d.Indexed, qt.IsTrue)
	c.Assert(d.Count, qt.Equals, 6)
	c.Assert(d.Textures, qt.HasLen, 2)
	transform := square.Program().UniformLocation("transform")
	c.Assert(p.Matrices[transform.V], qt.DeepEquals, rot[:])

	// Textures are unbound once the frame is drawn.
	c.Assert(f.UnitTexture(0).Valid(), qt.IsFalse)
	c.Assert(f.UnitTexture(1).Valid(), qt.IsFalse)

	square.Release()
	c.Assert(f.LiveTotal(), qt.Equals, 0)
	c.Assert(f.Violations, qt.HasLen, 0, qt.Commentf("%q", f.Violations))
}

func TestSquareOutOfUnits(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()

	_, err := model.NewSquare(f, loader(), render.NewUnitAllocator(1))
	c.Assert(err, qt.ErrorIs, render.ErrNoTextureUnits)
	c.Assert(f.LiveTotal(), qt.Equals, 0)
}

func TestSceneMissingAssets(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()
	empty := resources.NewLoader(resources.DirSource("../assets/missing"))

	for _, name := range model.Names() {
		_, err := model.New(name, f, empty, render.NewUnitAllocator(0))
		c.Assert(err, qt.ErrorIs, resources.ErrNotFound)
	}
	c.Assert(f.LiveTotal(), qt.Equals, 0)
}
