package ptyhost

import (
	"fmt"

	"github.com/corvid-systems/ptyhost/internal/ptyerrors"
)

// Sentinel errors, checkable with errors.Is. Package-prefixed messages
// follow the same convention as internal/sessionbroker/errors.go elsewhere
// in this lineage. The values live in internal/ptyerrors so the platform
// providers can return the same sentinel without importing this package.
var (
	ErrInvalidArguments     = ptyerrors.ErrInvalidArguments
	ErrPlatformNotSupported = ptyerrors.ErrPlatformNotSupported
	ErrAlreadyDisposed      = ptyerrors.ErrAlreadyDisposed
)

// SpawnError wraps an OS-level failure encountered while creating the PTY
// or launching the child. Spawn always sets Op to "spawn"; the step that
// failed is named in the wrapped error's message (e.g. "open pty: ...",
// "create pseudo console: ...", "start process: ...").
type SpawnError struct {
	Op  string // "spawn"
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("ptyhost: %s: %v", e.Op, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ResizeError wraps an ioctl/ResizePseudoConsole failure from Resize.
type ResizeError struct {
	Err error
}

func (e *ResizeError) Error() string {
	return fmt.Sprintf("ptyhost: resize: %v", e.Err)
}

func (e *ResizeError) Unwrap() error { return e.Err }
