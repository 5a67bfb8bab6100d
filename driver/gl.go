// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package driver

// Enum is an OpenGL enumerant.
type Enum uint32

// Attrib is a vertex attribute location.
type Attrib uint32

// OpenGL enumerants used by the renderer.
const (
	ARRAY_BUFFER                = 0x8892
	COLOR_BUFFER_BIT            = 0x4000
	COMPILE_STATUS              = 0x8b81
	DYNAMIC_DRAW                = 0x88e8
	ELEMENT_ARRAY_BUFFER        = 0x8893
	FALSE                       = 0
	FLOAT                       = 0x1406
	FRAGMENT_SHADER             = 0x8b30
	INFO_LOG_LENGTH             = 0x8b84
	INVALID_ENUM                = 0x0500
	INVALID_OPERATION           = 0x0502
	INVALID_VALUE               = 0x0501
	LINEAR                      = 0x2601
	LINK_STATUS                 = 0x8b82
	NO_ERROR                    = 0x0
	REPEAT                      = 0x2901
	RGB                         = 0x1907
	RGBA                        = 0x1908
	STATIC_DRAW                 = 0x88e4
	STREAM_DRAW                 = 0x88e0
	TEXTURE_2D                  = 0x0de1
	TEXTURE_MAG_FILTER          = 0x2800
	TEXTURE_MIN_FILTER          = 0x2801
	TEXTURE_WRAP_S              = 0x2802
	TEXTURE_WRAP_T              = 0x2803
	TEXTURE0                    = 0x84c0
	TRIANGLES                   = 0x4
	TRIANGLE_STRIP              = 0x5
	TRUE                        = 1
	UNPACK_ALIGNMENT            = 0x0cf5
	UNSIGNED_BYTE               = 0x1401
	UNSIGNED_INT                = 0x1405
	UNSIGNED_INT_2_10_10_10_REV = 0x8368
	UNSIGNED_SHORT              = 0x1403
	VERSION                     = 0x1f02
	VERTEX_SHADER               = 0x8b31
)
