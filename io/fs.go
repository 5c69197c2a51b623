package io

import (
	"errors"
	"io/fs"
	"path"
	"strings"
)

const (
	ROM_EXTENSION = ".bin"
)

// DefaultPaths are the directories searched by a Finder with no Paths.
var DefaultPaths = []string{".", "examples"}

// Finder locates a program image by name in a list of directories of a
// file system.
type Finder struct {
	FS        fs.FS                        // File system to search.
	Paths     []string                     // Directories to search, in order.
	Extension string                       // Extension added to bare names.
	Attempted func(name string, err error) // If set, called on each failed attempt.
}

// Name returns the image file name for a requested name, adding the
// extension if it is missing.
func (fd *Finder) Name(name string) string {
	ext := fd.Extension
	if len(ext) == 0 {
		ext = ROM_EXTENSION
	}

	if len(name) <= len(ext) || !strings.HasSuffix(name, ext) {
		name += ext
	}

	return name
}

// Find loads the first image matching name along the search paths.
func (fd *Finder) Find(name string) (rom *Rom, found string, err error) {
	name = fd.Name(name)

	paths := fd.Paths
	if len(paths) == 0 {
		paths = DefaultPaths
	}

	errs := []error{ErrNotFound}
	for _, dir := range paths {
		candidate := path.Join(dir, name)
		rom, err = fd.load(candidate)
		if err == nil {
			found = candidate
			return
		}
		if fd.Attempted != nil {
			fd.Attempted(candidate, err)
		}
		if errors.Is(err, ErrRomSize) {
			return
		}
		errs = append(errs, err)
	}

	rom = nil
	err = errors.Join(errs...)
	return
}

func (fd *Finder) load(name string) (rom *Rom, err error) {
	inf, err := fd.FS.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	return ReadRom(inf)
}
