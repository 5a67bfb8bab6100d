// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package resources loads flat files by logical name. A name is a
// forward slash separated path, like "shaders/triangle.vert", resolved
// against one or more Sources. Nothing is cached: every call reads
// the storage again.
package resources

import (
	"bytes"
	"image"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Loader resolves resource names against its sources in order.
type Loader struct {
	sources []Source
}

// NewLoader creates a Loader over the given sources.
func NewLoader(sources ...Source) *Loader {
	return &Loader{sources: sources}
}

// FromRelativeExePath creates a Loader rooted at rel, relative to the
// directory holding the running executable.
func FromRelativeExePath(rel string, extra ...Source) (*Loader, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, &Error{Op: "locate", Name: rel, Kind: ErrExePath, Err: err}
	}
	root := filepath.Join(filepath.Dir(exe), filepath.FromSlash(rel))
	return NewLoader(append([]Source{DirSource(root)}, extra...)...), nil
}

// Append adds sources consulted after the existing ones.
func (l *Loader) Append(sources ...Source) {
	l.sources = append(l.sources, sources...)
}

func cleanName(name string) (string, bool) {
	if name == "" || strings.HasPrefix(name, "/") {
		return "", false
	}
	clean := path.Clean(name)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", false
	}
	return clean, true
}

func (l *Loader) read(op, name string) ([]byte, error) {
	clean, ok := cleanName(name)
	if !ok {
		return nil, &Error{Op: op, Name: name, Kind: ErrNotFound}
	}
	for _, src := range l.sources {
		data, err := src.ReadFile(clean)
		switch {
		case err == nil:
			return data, nil
		case err == ErrNotFound:
			continue
		default:
			return nil, &Error{Op: op, Name: name, Kind: ErrIO, Err: err}
		}
	}
	return nil, &Error{Op: op, Name: name, Kind: ErrNotFound}
}

// LoadBytes returns the raw contents of a resource.
func (l *Loader) LoadBytes(name string) ([]byte, error) {
	return l.read("load", name)
}

// LoadText returns the contents of a text resource. The result is
// guaranteed to contain no zero byte, so it can be passed on as a
// null terminated string.
func (l *Loader) LoadText(name string) ([]byte, error) {
	data, err := l.read("load text", name)
	if err != nil {
		return nil, err
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return nil, &Error{Op: "load text", Name: name, Kind: ErrFileContainsNil}
	}
	return data, nil
}

// LoadCString returns a text resource with a terminating zero appended.
func (l *Loader) LoadCString(name string) (string, error) {
	data, err := l.LoadText(name)
	if err != nil {
		return "", err
	}
	return string(data) + "\x00", nil
}

// LoadImage decodes an image resource.
func (l *Loader) LoadImage(name string) (*Image, error) {
	data, err := l.read("load image", name)
	if err != nil {
		return nil, err
	}
	m, _, err := image.Decode(bytes.NewReader(data))
	switch {
	case err == image.ErrFormat:
		return nil, &Error{Op: "load image", Name: name, Kind: ErrUnsupportedFormat}
	case err != nil:
		return nil, &Error{Op: "load image", Name: name, Kind: ErrDecode, Err: err}
	}
	return NewImage(m), nil
}
