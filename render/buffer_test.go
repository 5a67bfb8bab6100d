// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render_test

import (
	"testing"

	"github.com/devblok/korugl/driver"
	"github.com/devblok/korugl/driver/drivertest"
	"github.com/devblok/korugl/render"
	qt "github.com/frankban/quicktest"
	"github.com/go-gl/mathgl/mgl32"
)

func TestBufferUpload(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()

	buf := render.NewArrayBuffer(f)
	defer buf.Release()
	c.Assert(buf.Target(), qt.Equals, driver.Enum(driver.ARRAY_BUFFER))

	buf.Bind()
	c.Assert(f.BoundBuffer(driver.ARRAY_BUFFER), qt.Equals, buf.ID())
	buf.Upload([]byte{1, 2, 3, 4}, render.DynamicDraw)
	c.Assert(buf.Len(), qt.Equals, 4)
	c.Assert(f.Buffer(buf.ID()).Usage, qt.Equals, driver.Enum(driver.DYNAMIC_DRAW))

	// A second upload replaces the contents.
	buf.Upload([]byte{9}, render.StreamDraw)
	c.Assert(f.Buffer(buf.ID()).Data, qt.DeepEquals, []byte{9})
	c.Assert(buf.Len(), qt.Equals, 1)
	buf.Unbind()
	c.Assert(f.BoundBuffer(driver.ARRAY_BUFFER).Valid(), qt.IsFalse)
	assertClean(c, f)
}

func TestBufferUploadUnbound(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()

	buf := render.NewArrayBuffer(f)
	defer buf.Release()
	// Upload never binds on its own.
	buf.Upload([]byte{1}, render.StaticDraw)
	c.Assert(f.Violations, qt.HasLen, 1)
	c.Assert(f.Buffer(buf.ID()).Data, qt.IsNil)
}

func TestBufferStaticDrawData(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()

	vertices := render.NewArrayBuffer(f)
	defer vertices.Release()
	vertices.Bind()
	c.Assert(vertices.StaticDrawData([]colorVertex{
		{Pos: render.Vec3{-0.5, -0.5, 0}, Color: render.Vec3(mgl32.Vec3{1, 0, 0})},
		{Pos: render.Vec3{0.5, -0.5, 0}, Color: render.Vec3{0, 1, 0}},
		{Pos: render.Vec3{0, 0.5, 0}, Color: render.Vec3{0, 0, 1}},
	}), qt.IsNil)
	c.Assert(vertices.Len(), qt.Equals, 3*24)
	c.Assert(f.Buffer(vertices.ID()).Usage, qt.Equals, driver.Enum(driver.STATIC_DRAW))

	indices := render.NewElementArrayBuffer(f)
	defer indices.Release()
	c.Assert(indices.Target(), qt.Equals, driver.Enum(driver.ELEMENT_ARRAY_BUFFER))
	indices.Bind()
	c.Assert(indices.StaticDrawData([]uint32{0, 1, 3, 1, 2, 3}), qt.IsNil)
	c.Assert(indices.Len(), qt.Equals, 24)
	c.Assert(f.Buffer(indices.ID()).Data[4:8], qt.DeepEquals, []byte{1, 0, 0, 0})

	c.Assert(indices.StaticDrawData(map[int]int{}), qt.Not(qt.IsNil))
	assertClean(c, f)
}

func TestColorBuffer(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()

	cb := render.ColorBufferFromColor(mgl32.Vec3{0.3, 0.3, 0.5})
	cb.SetUsed(f)
	cb.Clear(f)
	color, clears := f.ClearState()
	c.Assert(color, qt.Equals, [4]float32{0.3, 0.3, 0.5, 1})
	c.Assert(clears, qt.Equals, 1)

	cb.UpdateColor(mgl32.Vec3{1, 0, 0})
	c.Assert(cb.Color(), qt.Equals, mgl32.Vec4{1, 0, 0, 1})
	cb.SetUsed(f)
	color, _ = f.ClearState()
	c.Assert(color, qt.Equals, [4]float32{1, 0, 0, 1})
}
