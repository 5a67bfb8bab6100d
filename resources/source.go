// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package resources

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/devblok/korugl/utility/kar"
	"github.com/gobuffalo/packd"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Source is a storage that resources are read from. ReadFile must
// return an error matching ErrNotFound when the name is absent, so
// the Loader can fall through to the next Source.
// Names passed to ReadFile are cleaned, slash separated and relative.
type Source interface {
	ReadFile(name string) ([]byte, error)
}

// DirSource reads resources from a directory tree.
type DirSource string

// ReadFile implements Source.
func (d DirSource) ReadFile(name string) ([]byte, error) {
	data, err := ioutil.ReadFile(filepath.Join(string(d), filepath.FromSlash(name)))
	switch {
	case err == nil:
		return data, nil
	case os.IsNotExist(err):
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

// ArchiveSource reads resources out of a kar archive.
type ArchiveSource struct {
	*kar.Archive
}

// OpenArchive memory maps a kar archive for reading.
func OpenArchive(path string) (*ArchiveSource, error) {
	ar, err := kar.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open archive %s", path)
	}
	log.WithFields(log.Fields{
		"archive": path,
		"files":   len(ar.Names()),
		"author":  ar.Header().Author,
	}).Debug("resource archive opened")
	return &ArchiveSource{Archive: ar}, nil
}

// ReadFile implements Source.
func (a *ArchiveSource) ReadFile(name string) ([]byte, error) {
	data, err := a.ReadAll(name)
	if err == kar.ErrNotExist {
		return nil, ErrNotFound
	}
	return data, err
}

// BoxSource reads resources from a packr box or any other packd finder.
type BoxSource struct {
	Box packd.Finder
}

// ReadFile implements Source.
func (b BoxSource) ReadFile(name string) ([]byte, error) {
	if h, ok := b.Box.(packd.Haser); ok && !h.Has(name) {
		return nil, ErrNotFound
	}
	data, err := b.Box.Find(name)
	if err != nil && os.IsNotExist(errors.Cause(err)) {
		return nil, ErrNotFound
	}
	return data, err
}
