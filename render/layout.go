// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"encoding/binary"
	"reflect"
	"strconv"

	"github.com/devblok/korugl/driver"
	"github.com/pkg/errors"
)

// AttribFormat describes how the GPU reads one attribute.
type AttribFormat struct {
	// Size is the number of components.
	Size       int
	Type       driver.Enum
	Normalized bool
}

// AttribType is implemented by types that can be vertex struct fields.
type AttribType interface {
	AttribFormat() AttribFormat
}

// Attrib is one attribute of a VertexLayout.
type Attrib struct {
	AttribFormat
	Name     string
	Location driver.Attrib
	// Offset is the byte offset of the attribute within a vertex.
	Offset int
}

// VertexLayout describes a packed vertex struct.
type VertexLayout struct {
	Stride  int
	Attribs []Attrib
}

var attribType = reflect.TypeOf((*AttribType)(nil)).Elem()

// LayoutOf derives the layout of a vertex struct. Every field must
// implement AttribType and carry a `location:"N"` tag. Fields are
// packed in declaration order, so offsets are the running sum of the
// preceding field sizes and never include alignment padding.
func LayoutOf(vertex interface{}) (VertexLayout, error) {
	t := reflect.TypeOf(vertex)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return VertexLayout{}, errors.Wrapf(ErrInvalidLayout, "%v is not a struct", t)
	}

	var layout VertexLayout
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag, ok := field.Tag.Lookup("location")
		if !ok {
			return VertexLayout{}, errors.Wrapf(ErrInvalidLayout, "field %s.%s is missing a location tag", t.Name(), field.Name)
		}
		loc, err := strconv.ParseUint(tag, 10, 32)
		if err != nil {
			return VertexLayout{}, errors.Wrapf(ErrInvalidLayout, "field %s.%s has location %q", t.Name(), field.Name, tag)
		}
		if !field.Type.Implements(attribType) {
			return VertexLayout{}, errors.Wrapf(ErrInvalidLayout, "field %s.%s of type %s is not an attribute type", t.Name(), field.Name, field.Type)
		}
		zero := reflect.Zero(field.Type).Interface()
		size := binary.Size(zero)
		if size <= 0 {
			return VertexLayout{}, errors.Wrapf(ErrInvalidLayout, "field %s.%s has no fixed size", t.Name(), field.Name)
		}
		for _, a := range layout.Attribs {
			if a.Location == driver.Attrib(loc) {
				return VertexLayout{}, errors.Wrapf(ErrInvalidLayout, "fields %s and %s share location %d", a.Name, field.Name, loc)
			}
		}
		layout.Attribs = append(layout.Attribs, Attrib{
			AttribFormat: zero.(AttribType).AttribFormat(),
			Name:         field.Name,
			Location:     driver.Attrib(loc),
			Offset:       layout.Stride,
		})
		layout.Stride += size
	}
	return layout, nil
}

// MustLayout is like LayoutOf but panics on error. It is meant for
// package level layout variables.
func MustLayout(vertex interface{}) VertexLayout {
	l, err := LayoutOf(vertex)
	if err != nil {
		panic(err)
	}
	return l
}

// AttribPointers enables and describes every attribute. The target
// vertex array and the source array buffer must both be bound.
func (l VertexLayout) AttribPointers(f driver.Functions) {
	for _, a := range l.Attribs {
		f.EnableVertexAttribArray(a.Location)
		f.VertexAttribPointer(a.Location, a.Size, a.Type, a.Normalized, l.Stride, a.Offset)
	}
}
