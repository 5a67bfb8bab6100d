// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package model assembles the demo scenes drawn by korugl.
package model

import (
	"sort"

	"github.com/devblok/korugl/driver"
	"github.com/devblok/korugl/render"
	"github.com/devblok/korugl/resources"
	"github.com/pkg/errors"
)

// ErrUnknownScene is returned by New for names that are not registered.
var ErrUnknownScene = errors.New("unknown scene")

// Scene is something the main loop can draw every frame.
type Scene interface {
	// Render draws the scene. It must be called on the context thread.
	Render()

	// Release frees every GPU object of the scene.
	Release()
}

// Constructor builds a scene from shader and texture resources.
type Constructor func(f driver.Functions, l *resources.Loader, units *render.UnitAllocator) (Scene, error)

var scenes = map[string]Constructor{
	"triangle": func(f driver.Functions, l *resources.Loader, _ *render.UnitAllocator) (Scene, error) {
		return NewTriangle(f, l)
	},
	"square": func(f driver.Functions, l *resources.Loader, units *render.UnitAllocator) (Scene, error) {
		return NewSquare(f, l, units)
	},
}

// Names lists the registered scenes.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scene.
func New(name string, f driver.Functions, l *resources.Loader, units *render.UnitAllocator) (Scene, error) {
	ctor, ok := scenes[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownScene, "%q, have %v", name, Names())
	}
	return ctor(f, l, units)
}

// releaser collects GPU objects while a scene is assembled, so a
// failure halfway frees whatever was already created.
type releaser []render.Releasable

func (r *releaser) add(obj render.Releasable) {
	*r = append(*r, obj)
}

func (r releaser) Release() {
	for i := len(r) - 1; i >= 0; i-- {
		r[i].Release()
	}
}
