package ptyhost

import (
	"context"
	"io"
)

// Conn is a live PTY-attached child process. Exactly one Conn exists per
// successful Spawn; Close releases every OS resource it owns exactly once.
//
// Read/Write are not safe for concurrent use on the same direction; the two
// directions are independent and may be driven from different goroutines.
type Conn interface {
	io.Reader
	io.Writer

	// Pid is the child's process ID. Always positive on a live Conn.
	Pid() int

	// Resize changes the terminal dimensions. Returns ErrAlreadyDisposed if
	// the connection has been closed.
	Resize(cols, rows uint16) error

	// Kill terminates the child (and, on Unix, its process group) without
	// waiting for it to exit. Use Wait or Done to observe termination.
	Kill() error

	// Wait blocks until the child exits or ctx is done, whichever comes
	// first. It returns true iff the child was reaped before ctx expired.
	Wait(ctx context.Context) (bool, error)

	// ExitCode returns the child's exit code and true once the child has
	// exited; before that it returns (0, false).
	ExitCode() (code int, ok bool)

	// Done returns a channel closed exactly once, when the child exits.
	Done() <-chan struct{}

	// Close disposes the connection: it releases every OS handle the
	// connection owns and is idempotent. It does not stop the exit watcher:
	// if the child exits after Close, Done is still closed and ExitCode
	// still reports the code.
	Close() error
}

// Spawn creates a PTY, launches opts.App inside it, and returns the
// resulting connection. Spawn validates opts synchronously before any OS
// call; a successful Spawn happens-before the first observable byte on the
// returned Conn's Read side.
func Spawn(ctx context.Context, opts SpawnOptions) (Conn, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	conn, err := spawnPlatform(ctx, opts)
	if err != nil {
		return nil, &SpawnError{Op: "spawn", Err: err}
	}
	return &resizeWrappedConn{Conn: conn}, nil
}

// resizeWrappedConn decorates a platform Conn so that Resize failures surface
// as the public *ResizeError type, regardless of which provider produced the
// underlying ioctl/ResizePseudoConsole error.
type resizeWrappedConn struct {
	Conn
}

func (c *resizeWrappedConn) Resize(cols, rows uint16) error {
	if err := c.Conn.Resize(cols, rows); err != nil {
		return &ResizeError{Err: err}
	}
	return nil
}
