// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"github.com/devblok/korugl/driver"
	"github.com/devblok/korugl/resources"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Sampler names the sampler uniform a texture is read through.
type Sampler struct {
	Program *Program
	Uniform string
}

// Texture is a 2D texture with a fixed texture unit.
type Texture struct {
	f             driver.Functions
	id            driver.Texture
	unit          int
	width, height int
}

// TextureFromResources loads an image and uploads it with NewTexture.
func TextureFromResources(f driver.Functions, l *resources.Loader, name string, units *UnitAllocator, sampler *Sampler) (*Texture, error) {
	img, err := l.LoadImage(name)
	if err != nil {
		return nil, &ResourceError{Name: name, Err: err}
	}
	t, err := NewTexture(f, img, units, sampler)
	if err != nil {
		return nil, errors.Wrapf(err, "texture %s", name)
	}
	return t, nil
}

// NewTexture uploads img as a mipmapped 2D texture. Rows are flipped so
// the first row of the image ends up at texture coordinate t=1. The
// texture takes the next unit from units, or unit 0 when units is nil,
// and if sampler is set its uniform is pointed at that unit. Only 3 and
// 4 channel images are accepted.
func NewTexture(f driver.Functions, img *resources.Image, units *UnitAllocator, sampler *Sampler) (*Texture, error) {
	var format driver.Enum
	switch img.Channels {
	case 3:
		format = driver.RGB
	case 4:
		format = driver.RGBA
	default:
		return nil, errors.Wrapf(ErrUnsupportedPixelFormat, "%d channels", img.Channels)
	}
	if sampler != nil {
		mustBeLive(sampler.Program.ID().Valid(), "Program")
	}

	var unit int
	if units != nil {
		var err error
		if unit, err = units.Claim(); err != nil {
			return nil, err
		}
	}
	flipped := img.FlipVertical()

	t := &Texture{
		f:      f,
		id:     f.CreateTexture(),
		unit:   unit,
		width:  img.Width,
		height: img.Height,
	}
	f.ActiveTexture(t.unitEnum())
	if sampler != nil {
		sampler.Program.Use()
		sampler.Program.GetAndSetInt(sampler.Uniform, unit)
		sampler.Program.Unuse()
	}

	f.BindTexture(driver.TEXTURE_2D, t.id)
	f.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_WRAP_S, driver.REPEAT)
	f.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_WRAP_T, driver.REPEAT)
	f.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_MIN_FILTER, driver.LINEAR)
	f.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_MAG_FILTER, driver.LINEAR)
	f.PixelStorei(driver.UNPACK_ALIGNMENT, 1)
	f.TexImage2D(driver.TEXTURE_2D, 0, format, img.Width, img.Height, format, driver.UNSIGNED_BYTE, flipped.Pix)
	f.GenerateMipmap(driver.TEXTURE_2D)
	f.BindTexture(driver.TEXTURE_2D, driver.Texture{})

	log.WithFields(log.Fields{
		"id":       t.id.V,
		"unit":     unit,
		"width":    img.Width,
		"height":   img.Height,
		"channels": img.Channels,
	}).Debug("texture created")
	return t, nil
}

func (t *Texture) unitEnum() driver.Enum {
	return driver.TEXTURE0 + driver.Enum(t.unit)
}

// ID returns the native texture name.
func (t *Texture) ID() driver.Texture {
	return t.id
}

// Unit returns the texture unit the texture binds to.
func (t *Texture) Unit() int {
	return t.unit
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// Bind activates the texture's unit and binds the texture to it.
func (t *Texture) Bind() {
	mustBeLive(t.id.Valid(), "Texture")
	t.f.ActiveTexture(t.unitEnum())
	t.f.BindTexture(driver.TEXTURE_2D, t.id)
}

// Unbind clears the texture's unit.
func (t *Texture) Unbind() {
	t.f.ActiveTexture(t.unitEnum())
	t.f.BindTexture(driver.TEXTURE_2D, driver.Texture{})
}

// Release deletes the native texture. The unit stays claimed. Calling
// Release again does nothing.
func (t *Texture) Release() {
	if !t.id.Valid() {
		return
	}
	t.f.DeleteTexture(t.id)
	t.id = driver.Texture{}
}
