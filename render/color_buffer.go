// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"github.com/devblok/korugl/driver"
	"github.com/go-gl/mathgl/mgl32"
)

// ColorBuffer holds the clear color of the default framebuffer.
type ColorBuffer struct {
	color mgl32.Vec4
}

// ColorBufferFromColor returns an opaque clear color.
func ColorBufferFromColor(c mgl32.Vec3) ColorBuffer {
	return ColorBuffer{color: c.Vec4(1)}
}

// Color returns the clear color.
func (c ColorBuffer) Color() mgl32.Vec4 {
	return c.color
}

// UpdateColor replaces the clear color.
func (c *ColorBuffer) UpdateColor(color mgl32.Vec3) {
	c.color = color.Vec4(1)
}

// SetUsed makes c the clear color of f.
func (c ColorBuffer) SetUsed(f driver.Functions) {
	f.ClearColor(c.color[0], c.color[1], c.color[2], c.color[3])
}

// Clear clears the color buffer.
func (c ColorBuffer) Clear(f driver.Functions) {
	f.Clear(driver.COLOR_BUFFER_BIT)
}
