// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render_test

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/devblok/korugl/driver"
	"github.com/devblok/korugl/driver/drivertest"
	"github.com/devblok/korugl/render"
	"github.com/devblok/korugl/resources"
	qt "github.com/frankban/quicktest"
	"github.com/go-gl/mathgl/mgl32"
)

// assets writes shader and image fixtures to a temporary directory.
func assets(c *qt.C) string {
	dir, err := ioutil.TempDir("", "render")
	c.Assert(err, qt.IsNil)
	c.Cleanup(func() { os.RemoveAll(dir) })

	write := func(name string, data []byte) {
		path := filepath.Join(dir, filepath.FromSlash(name))
		c.Assert(os.MkdirAll(filepath.Dir(path), 0755), qt.IsNil)
		c.Assert(ioutil.WriteFile(path, data, 0644), qt.IsNil)
	}
	write("shaders/test.vert", []byte(vertSource))
	write("shaders/test.frag", []byte(fragSource))
	write("shaders/test.txt", []byte(vertSource))
	write("shaders/broken.vert", []byte(vertSource))
	write("shaders/broken.frag", []byte("#version 330 core\n"))

	var wall bytes.Buffer
	c.Assert(png.Encode(&wall, image.NewNRGBA(image.Rect(0, 0, 3, 2))), qt.IsNil)
	write("textures/wall.png", wall.Bytes())
	write("textures/gray.png", grayPNG(c))
	return dir
}

func TestLink(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()

	p := newProgram(c, f)
	c.Assert(p.Name(), qt.Equals, "test")
	st := f.Program(p.ID())
	c.Assert(st.Linked, qt.IsTrue)
	c.Assert(st.Attached, qt.HasLen, 0)

	// Shaders were released by newProgram, the program survives.
	c.Assert(f.Live(drivertest.KindShader), qt.Equals, 0)
	c.Assert(f.Live(drivertest.KindProgram), qt.Equals, 1)

	p.Use()
	c.Assert(f.CurrentProgram(), qt.Equals, p.ID())
	p.Unuse()
	c.Assert(f.CurrentProgram().Valid(), qt.IsFalse)

	p.Release()
	c.Assert(f.LiveTotal(), qt.Equals, 0)
	assertClean(c, f)
}

func TestLinkError(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()

	vert, err := render.ShaderFromSource(f, "test.vert", vertSource, render.VertexShaderType)
	c.Assert(err, qt.IsNil)
	defer vert.Release()

	_, err = render.Link(f, "vertex only", vert)
	var lerr *render.LinkError
	c.Assert(errors.As(err, &lerr), qt.IsTrue)
	c.Assert(lerr.Name, qt.Equals, "vertex only")
	c.Assert(lerr.Log, qt.Equals, "error: program lacks a fragment shader")

	c.Assert(f.Live(drivertest.KindProgram), qt.Equals, 0)
	// The shader was detached, so releasing it is clean.
	vert.Release()
	c.Assert(f.LiveTotal(), qt.Equals, 0)
	assertClean(c, f)
}

func TestLinkCustomLog(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()
	f.LinkLog = func([]*drivertest.ShaderState) string {
		return "error: varying Color not written by vertex shader"
	}

	p, err := render.ProgramFromResources(f, resources.NewLoader(resources.DirSource(assets(c))), "shaders/test")
	c.Assert(p, qt.IsNil)
	c.Assert(err, qt.ErrorMatches, "failed to link program shaders/test: error: varying Color not written by vertex shader")
	c.Assert(f.LiveTotal(), qt.Equals, 0)
	assertClean(c, f)
}

func TestProgramFromResources(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()
	l := resources.NewLoader(resources.DirSource(assets(c)))

	p, err := render.ProgramFromResources(f, l, "shaders/test")
	c.Assert(err, qt.IsNil)
	c.Assert(f.Live(drivertest.KindShader), qt.Equals, 0)
	p.Release()

	_, err = render.ProgramFromResources(f, l, "shaders/broken")
	var cerr *render.CompileError
	c.Assert(errors.As(err, &cerr), qt.IsTrue)
	c.Assert(cerr.Name, qt.Equals, "shaders/broken.frag")

	_, err = render.ProgramFromResources(f, l, "shaders/missing")
	c.Assert(err, qt.ErrorIs, resources.ErrNotFound)

	c.Assert(f.LiveTotal(), qt.Equals, 0)
	assertClean(c, f)
}

func TestUniforms(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()
	p := newProgram(c, f)
	defer p.Release()

	tex := p.UniformLocation("tex")
	transform := p.UniformLocation("transform")
	c.Assert(tex.Valid(), qt.IsTrue)
	c.Assert(transform.Valid(), qt.IsTrue)

	missing := p.UniformLocation("missing")
	c.Assert(missing, qt.Equals, driver.NoUniform)

	p.Use()
	p.SetInt(tex, 3)
	p.GetAndSetMatrix4("transform", mgl32.Translate3D(1, 2, 3))
	p.SetMatrix4(missing, mgl32.Ident4())
	p.GetAndSetInt("missing", 1)
	p.Unuse()

	st := f.Program(p.ID())
	c.Assert(st.Ints[tex.V], qt.Equals, 3)
	want := mgl32.Translate3D(1, 2, 3)
	c.Assert(st.Matrices[transform.V], qt.DeepEquals, want[:])
	c.Assert(st.Ints, qt.HasLen, 1)
	c.Assert(st.Matrices, qt.HasLen, 1)
	assertClean(c, f)
}

func TestTransform(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()
	p := newProgram(c, f)
	defer p.Release()

	tr := render.NewTransform(p, "transform")
	c.Assert(tr.Location(), qt.Equals, p.UniformLocation("transform"))

	m := mgl32.HomogRotate3DZ(mgl32.DegToRad(90))
	p.Use()
	tr.Set(m)
	p.Unuse()
	c.Assert(f.Program(p.ID()).Matrices[tr.Location().V], qt.DeepEquals, m[:])

	none := render.NewTransform(p, "model")
	c.Assert(none.Location().Valid(), qt.IsFalse)
	p.Use()
	none.Set(m)
	p.Unuse()
	assertClean(c, f)
}
