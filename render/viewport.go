// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import "github.com/devblok/korugl/driver"

// Viewport is the window area the scene is drawn into.
type Viewport struct {
	X, Y int
	W, H int
}

// ViewportForSize covers a whole window of the given size.
func ViewportForSize(w, h int) Viewport {
	return Viewport{W: w, H: h}
}

// UpdateSize resizes the viewport after a window resize.
func (v *Viewport) UpdateSize(w, h int) {
	v.W, v.H = w, h
}

// SetUsed applies the viewport to f.
func (v Viewport) SetUsed(f driver.Functions) {
	f.Viewport(v.X, v.Y, v.W, v.H)
}
