// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render_test

import (
	"bytes"
	"image"
	"image/png"
	"sync"
	"testing"

	"github.com/devblok/korugl/driver"
	"github.com/devblok/korugl/driver/drivertest"
	"github.com/devblok/korugl/render"
	"github.com/devblok/korugl/resources"
	qt "github.com/frankban/quicktest"
)

func grayPNG(c *qt.C) []byte {
	var buf bytes.Buffer
	c.Assert(png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))), qt.IsNil)
	return buf.Bytes()
}

// rgbImage is 3x2 with rows that are easy to tell apart.
func rgbImage() *resources.Image {
	return &resources.Image{
		Width:    3,
		Height:   2,
		Channels: 3,
		Pix: []byte{
			1, 1, 1, 2, 2, 2, 3, 3, 3,
			4, 4, 4, 5, 5, 5, 6, 6, 6,
		},
	}
}

func rgbaImage() *resources.Image {
	return &resources.Image{
		Width:    1,
		Height:   2,
		Channels: 4,
		Pix:      []byte{1, 2, 3, 4, 5, 6, 7, 8},
	}
}

func TestNewTexture(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()
	units := render.NewUnitAllocator(0)

	rgb, err := render.NewTexture(f, rgbImage(), units, nil)
	c.Assert(err, qt.IsNil)
	defer rgb.Release()
	rgba, err := render.NewTexture(f, rgbaImage(), units, nil)
	c.Assert(err, qt.IsNil)
	defer rgba.Release()

	c.Assert(rgb.Unit(), qt.Equals, 0)
	c.Assert(rgba.Unit(), qt.Equals, 1)
	c.Assert(units.Claimed(), qt.Equals, 2)

	st := f.Texture(rgb.ID())
	c.Assert(st.Width, qt.Equals, 3)
	c.Assert(st.Height, qt.Equals, 2)
	c.Assert(st.InternalFormat, qt.Equals, driver.Enum(driver.RGB))
	c.Assert(st.Format, qt.Equals, driver.Enum(driver.RGB))
	c.Assert(st.Type, qt.Equals, driver.Enum(driver.UNSIGNED_BYTE))
	c.Assert(st.Pixels, qt.DeepEquals, []byte{
		4, 4, 4, 5, 5, 5, 6, 6, 6,
		1, 1, 1, 2, 2, 2, 3, 3, 3,
	})
	c.Assert(st.Mipmapped, qt.IsTrue)
	c.Assert(st.Params, qt.DeepEquals, map[driver.Enum]int{
		driver.TEXTURE_WRAP_S:     driver.REPEAT,
		driver.TEXTURE_WRAP_T:     driver.REPEAT,
		driver.TEXTURE_MIN_FILTER: driver.LINEAR,
		driver.TEXTURE_MAG_FILTER: driver.LINEAR,
	})

	st = f.Texture(rgba.ID())
	c.Assert(st.InternalFormat, qt.Equals, driver.Enum(driver.RGBA))
	c.Assert(st.Pixels, qt.DeepEquals, []byte{5, 6, 7, 8, 1, 2, 3, 4})
	c.Assert(st.Unit, qt.Equals, 1)

	// Creation leaves the units empty.
	c.Assert(f.UnitTexture(0).Valid(), qt.IsFalse)
	c.Assert(f.UnitTexture(1).Valid(), qt.IsFalse)

	rgba.Bind()
	c.Assert(f.ActiveUnit(), qt.Equals, 1)
	c.Assert(f.UnitTexture(1), qt.Equals, rgba.ID())
	rgba.Unbind()
	c.Assert(f.UnitTexture(1).Valid(), qt.IsFalse)
	assertClean(c, f)
}

func TestNewTextureDefaultUnit(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()

	tex, err := render.NewTexture(f, rgbImage(), nil, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(tex.Unit(), qt.Equals, 0)
	w, h := tex.Size()
	c.Assert(w, qt.Equals, 3)
	c.Assert(h, qt.Equals, 2)

	tex.Release()
	tex.Release()
	c.Assert(f.LiveTotal(), qt.Equals, 0)
	c.Assert(tex.Bind, qt.PanicMatches, "render: use of released Texture")
	assertClean(c, f)
}

func TestNewTextureSampler(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()
	p := newProgram(c, f)
	defer p.Release()
	units := render.NewUnitAllocator(0)
	_, err := units.Claim()
	c.Assert(err, qt.IsNil)

	tex, err := render.NewTexture(f, rgbaImage(), units, &render.Sampler{Program: p, Uniform: "tex"})
	c.Assert(err, qt.IsNil)
	defer tex.Release()

	c.Assert(tex.Unit(), qt.Equals, 1)
	loc := p.UniformLocation("tex")
	c.Assert(f.Program(p.ID()).Ints[loc.V], qt.Equals, 1)
	c.Assert(f.CurrentProgram().Valid(), qt.IsFalse)
	assertClean(c, f)
}

func TestNewTextureReleasedSampler(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()
	p := newProgram(c, f)
	p.Release()
	units := render.NewUnitAllocator(0)

	c.Assert(func() {
		render.NewTexture(f, rgbaImage(), units, &render.Sampler{Program: p, Uniform: "tex"})
	}, qt.PanicMatches, "render: use of released Program")
	c.Assert(units.Claimed(), qt.Equals, 0)
	c.Assert(f.Live(drivertest.KindTexture), qt.Equals, 0)
}

func TestNewTextureUnsupportedFormat(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()
	units := render.NewUnitAllocator(0)

	gray := &resources.Image{Width: 2, Height: 2, Channels: 1, Pix: make([]byte, 4)}
	_, err := render.NewTexture(f, gray, units, nil)
	c.Assert(err, qt.ErrorIs, render.ErrUnsupportedPixelFormat)
	c.Assert(units.Claimed(), qt.Equals, 0)
	c.Assert(f.LiveTotal(), qt.Equals, 0)
}

func TestNewTextureOutOfUnits(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()
	units := render.NewUnitAllocator(1)

	tex, err := render.NewTexture(f, rgbImage(), units, nil)
	c.Assert(err, qt.IsNil)
	defer tex.Release()

	_, err = render.NewTexture(f, rgbImage(), units, nil)
	c.Assert(err, qt.ErrorIs, render.ErrNoTextureUnits)
	c.Assert(f.Live(drivertest.KindTexture), qt.Equals, 1)
	assertClean(c, f)
}

func TestTextureFromResources(t *testing.T) {
	c := qt.New(t)
	f := drivertest.New()
	l := resources.NewLoader(resources.DirSource(assets(c)))

	tex, err := render.TextureFromResources(f, l, "textures/wall.png", nil, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(f.Texture(tex.ID()).InternalFormat, qt.Equals, driver.Enum(driver.RGBA))
	tex.Release()

	_, err = render.TextureFromResources(f, l, "textures/gray.png", nil, nil)
	c.Assert(err, qt.ErrorIs, render.ErrUnsupportedPixelFormat)

	_, err = render.TextureFromResources(f, l, "textures/missing.png", nil, nil)
	c.Assert(err, qt.ErrorIs, resources.ErrNotFound)

	c.Assert(f.LiveTotal(), qt.Equals, 0)
	assertClean(c, f)
}

func TestUnitAllocatorConcurrent(t *testing.T) {
	c := qt.New(t)
	units := render.NewUnitAllocator(render.DefaultTextureUnits)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int]bool)
	)
	for i := 0; i < render.DefaultTextureUnits+4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unit, err := units.Claim()
			if err != nil {
				return
			}
			mu.Lock()
			seen[unit] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	c.Assert(seen, qt.HasLen, render.DefaultTextureUnits)
	c.Assert(units.Claimed(), qt.Equals, render.DefaultTextureUnits)
	_, err := units.Claim()
	c.Assert(err, qt.ErrorIs, render.ErrNoTextureUnits)
}
