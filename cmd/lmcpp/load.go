package main

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/ezrec/lmcpp/io"
)

// newFinder creates the image finder for a program name.
// Names that leave the working directory (absolute, or climbing through
// '..') are loaded from their own directory only; other names are
// searched for along the configured paths.
func newFinder(name string, cfg *Config) (finder *io.Finder, base string, dir string, err error) {
	finder = &io.Finder{
		FS:        os.DirFS("."),
		Paths:     cfg.Paths,
		Extension: cfg.Extension,
	}
	base = name

	if fs.ValidPath(path.Clean(filepath.ToSlash(name))) {
		return
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return
	}

	dir = filepath.Dir(abs)
	base = filepath.Base(abs)
	finder.FS = os.DirFS(dir)
	finder.Paths = []string{"."}

	return
}

// loadRom finds and reads the named program image, returning the path
// it was loaded from.
func loadRom(name string, cfg *Config, attempted func(name string, err error)) (rom *io.Rom, found string, err error) {
	finder, base, dir, err := newFinder(name, cfg)
	if err != nil {
		return
	}

	finder.Attempted = func(candidate string, err error) {
		if attempted != nil {
			attempted(filepath.Join(dir, filepath.FromSlash(candidate)), err)
		}
	}

	rom, found, err = finder.Find(base)
	if err != nil {
		return
	}

	found = filepath.Join(dir, filepath.FromSlash(found))
	return
}
