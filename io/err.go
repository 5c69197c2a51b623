package io

import (
	"errors"

	"github.com/ezrec/lmcpp/translate"
)

var f = translate.From

var (
	// Loader errors
	ErrRomSize  = errors.New(f("image too large"))
	ErrNotFound = errors.New(f("image not found"))

	// Console errors
	ErrNotInteger = errors.New(f("must be integer"))
)
