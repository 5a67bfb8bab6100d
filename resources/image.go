// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package resources

import (
	"image"

	// Decoders available to LoadImage.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a decoded image with tightly packed 8 bit channels,
// rows ordered top to bottom.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// Stride returns the length of one row in bytes.
func (i *Image) Stride() int {
	return i.Width * i.Channels
}

// FlipVertical returns a copy of the image with the row order reversed.
func (i *Image) FlipVertical() *Image {
	stride := i.Stride()
	pix := make([]byte, len(i.Pix))
	for y := 0; y < i.Height; y++ {
		src := i.Pix[y*stride : (y+1)*stride]
		copy(pix[(i.Height-1-y)*stride:], src)
	}
	return &Image{Width: i.Width, Height: i.Height, Channels: i.Channels, Pix: pix}
}

// NewImage converts a decoded image into packed pixels. Gray images
// keep one channel, YCbCr and CMYK images (JPEG) become RGB, every
// other model becomes non-premultiplied RGBA.
func NewImage(m image.Image) *Image {
	b := m.Bounds()
	rect := image.Rect(0, 0, b.Dx(), b.Dy())
	switch m.(type) {
	case *image.Gray, *image.Gray16:
		dst := image.NewGray(rect)
		draw.Draw(dst, rect, m, b.Min, draw.Src)
		return &Image{Width: rect.Dx(), Height: rect.Dy(), Channels: 1, Pix: dst.Pix}
	case *image.YCbCr, *image.CMYK:
		dst := image.NewNRGBA(rect)
		draw.Draw(dst, rect, m, b.Min, draw.Src)
		return &Image{Width: rect.Dx(), Height: rect.Dy(), Channels: 3, Pix: dropAlpha(dst.Pix)}
	default:
		dst := image.NewNRGBA(rect)
		draw.Draw(dst, rect, m, b.Min, draw.Src)
		return &Image{Width: rect.Dx(), Height: rect.Dy(), Channels: 4, Pix: dst.Pix}
	}
}

func dropAlpha(rgba []byte) []byte {
	rgb := make([]byte, 0, len(rgba)/4*3)
	for i := 0; i+3 < len(rgba); i += 4 {
		rgb = append(rgb, rgba[i], rgba[i+1], rgba[i+2])
	}
	return rgb
}
