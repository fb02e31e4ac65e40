// Package ptyerrors holds the sentinel errors shared between the public
// ptyhost package and the platform providers (internal/unixpty,
// internal/winpty). It exists purely to break the import cycle that would
// otherwise result from the providers wanting to return the same sentinel
// the public package documents: ptyhost depends on the providers, so the
// providers can't depend back on ptyhost for an error value.
package ptyerrors

import "errors"

var (
	ErrInvalidArguments     = errors.New("ptyhost: invalid arguments")
	ErrPlatformNotSupported = errors.New("ptyhost: platform not supported")
	ErrAlreadyDisposed      = errors.New("ptyhost: connection already disposed")
)
