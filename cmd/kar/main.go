// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"flag"
	"os"
	"os/user"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/devblok/korugl/utility/kar"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func init() {
	currentUserName = "unknown"
	if u, err := user.Current(); err == nil {
		currentUserName = u.Username
	}
}

var (
	currentUserName string
	author          = flag.String("author", "", "Set the author of the package when compressing")
	version         = flag.Int64("version", 1, "Archive version number to create it with")
	extract         = flag.String("e", "", "Extract the archive given")
	compress        = flag.String("c", "", "Compress the given folder")
	dstFile         = flag.String("f", "out.kar", "Destination file, or directory when extracting")
	silent          = flag.Bool("s", false, "Silent")
)

func main() {
	flag.Parse()
	if *silent {
		log.SetLevel(log.WarnLevel)
	}

	switch {
	case *extract != "" && *compress != "":
		log.Fatal("only one operation at a time")
	case *extract != "":
		if err := extractFiles(); err != nil {
			log.Fatal(err)
		}
	case *compress != "":
		if err := compressFiles(); err != nil {
			log.Fatal(err)
		}
	default:
		flag.PrintDefaults()
	}
}

// compressFiles packs every file under the compress directory. Entry
// names are slash separated paths relative to that directory, the
// same names the resource loader asks for.
func compressFiles() error {
	if _, err := os.Stat(*dstFile); err == nil {
		return errors.New("destination file exists, will not overwrite")
	}

	var filesToCompress []string
	if err := filepath.Walk(*compress, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		filesToCompress = append(filesToCompress, path)
		return nil
	}); err != nil {
		return errors.Wrapf(err, "walk %s", *compress)
	}

	name := *author
	if name == "" {
		name = currentUserName
	}
	karBuilder, err := kar.NewBuilder(kar.Header{
		Author:      name,
		DateCreated: time.Now().Unix(),
		Version:     *version,
	})
	if err != nil {
		return err
	}
	defer karBuilder.Close()

	for _, ftc := range filesToCompress {
		rel, err := filepath.Rel(*compress, ftc)
		if err != nil {
			return err
		}
		if err := addFile(karBuilder, filepath.ToSlash(rel), ftc); err != nil {
			return err
		}
		log.WithField("file", rel).Info("added")
	}

	dst, err := os.Create(*dstFile)
	if err != nil {
		return err
	}
	n, err := karBuilder.WriteTo(dst)
	if err != nil {
		dst.Close()
		os.Remove(*dstFile)
		return errors.Wrapf(err, "write %s", *dstFile)
	}
	log.WithFields(log.Fields{
		"archive": *dstFile,
		"files":   len(filesToCompress),
		"bytes":   n,
	}).Info("archive written")
	return dst.Close()
}

func addFile(b *kar.Builder, name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return errors.Wrapf(b.Add(name, f), "add %s", path)
}

// extractFiles unpacks the archive into the destination directory.
func extractFiles() error {
	ar, err := kar.OpenFile(*extract)
	if err != nil {
		return errors.Wrapf(err, "open %s", *extract)
	}
	defer ar.Close()

	dir := *dstFile
	if dir == "out.kar" {
		dir = "."
	}
	for _, name := range ar.Names() {
		data, err := ar.ReadAll(name)
		if err != nil {
			return errors.Wrapf(err, "read %s", name)
		}
		dst, err := entryPath(dir, name)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		if err := writeFile(dst, data); err != nil {
			return err
		}
		log.WithField("file", name).Info("extracted")
	}
	return nil
}

// entryPath maps an archive entry name to a file under dir. Names that
// are absolute or climb out of dir are refused.
func entryPath(dir, name string) (string, error) {
	if name == "" || path.IsAbs(name) || filepath.IsAbs(name) {
		return "", errors.Errorf("refusing to extract %q", name)
	}
	clean := path.Clean(name)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", errors.Errorf("refusing to extract %q", name)
	}
	return filepath.Join(dir, filepath.FromSlash(clean)), nil
}

func writeFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return errors.Wrap(err, "will not overwrite")
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
