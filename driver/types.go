// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package driver

// Native object names. The zero value of each names no object.
type (
	Buffer      struct{ V uint32 }
	Program     struct{ V uint32 }
	Shader      struct{ V uint32 }
	Texture     struct{ V uint32 }
	VertexArray struct{ V uint32 }
	Uniform     struct{ V int32 }
)

// NoUniform is returned by GetUniformLocation for names the linked
// program does not contain.
var NoUniform = Uniform{V: -1}

func (b Buffer) Valid() bool {
	return b.V != 0
}

func (p Program) Valid() bool {
	return p.V != 0
}

func (s Shader) Valid() bool {
	return s.V != 0
}

func (t Texture) Valid() bool {
	return t.V != 0
}

func (a VertexArray) Valid() bool {
	return a.V != 0
}

func (u Uniform) Valid() bool {
	return u.V != -1
}
