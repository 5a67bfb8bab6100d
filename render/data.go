// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"math"

	"github.com/devblok/korugl/driver"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 is a two component float attribute.
type Vec2 [2]float32

// AttribFormat implements AttribType.
func (Vec2) AttribFormat() AttribFormat {
	return AttribFormat{Size: 2, Type: driver.FLOAT}
}

// Vec returns v as an mgl32 vector.
func (v Vec2) Vec() mgl32.Vec2 {
	return mgl32.Vec2(v)
}

// Vec3 is a three component float attribute.
type Vec3 [3]float32

// AttribFormat implements AttribType.
func (Vec3) AttribFormat() AttribFormat {
	return AttribFormat{Size: 3, Type: driver.FLOAT}
}

// Vec returns v as an mgl32 vector.
func (v Vec3) Vec() mgl32.Vec3 {
	return mgl32.Vec3(v)
}

// PackedColor stores four components in 32 bits, 10 bits each for the
// first three and 2 bits for the last, which sits in the highest bits
// (GL_UNSIGNED_INT_2_10_10_10_REV). The GPU normalizes the components
// back to [0, 1].
type PackedColor uint32

// AttribFormat implements AttribType.
func (PackedColor) AttribFormat() AttribFormat {
	return AttribFormat{Size: 4, Type: driver.UNSIGNED_INT_2_10_10_10_REV, Normalized: true}
}

// NewPackedColor packs components clamped to [0, 1].
func NewPackedColor(x, y, z, w float32) PackedColor {
	pack := func(v float32, max float64) uint32 {
		return uint32(math.Round(float64(mgl32.Clamp(v, 0, 1)) * max))
	}
	return PackedColor(pack(w, 3)<<30 | pack(z, 1023)<<20 | pack(y, 1023)<<10 | pack(x, 1023))
}

// PackedColorFromVec packs an RGBA vector.
func PackedColorFromVec(v mgl32.Vec4) PackedColor {
	return NewPackedColor(v[0], v[1], v[2], v[3])
}

// Vec unpacks the components the way the GPU normalizes them.
func (c PackedColor) Vec() mgl32.Vec4 {
	return mgl32.Vec4{
		float32(c&0x3ff) / 1023,
		float32(c>>10&0x3ff) / 1023,
		float32(c>>20&0x3ff) / 1023,
		float32(c>>30&0x3) / 3,
	}
}
