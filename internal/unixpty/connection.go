//go:build linux || darwin

package unixpty

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"github.com/corvid-systems/ptyhost/internal/logging"
	"github.com/corvid-systems/ptyhost/internal/ptyerrors"
)

// Connection is a live Unix PTY-attached child process: the master end of
// the PTY plus the *exec.Cmd that was started against its follower.
type Connection struct {
	master *os.File
	cmd    *exec.Cmd
	log    *slog.Logger

	mu       sync.Mutex
	cols     uint16
	rows     uint16
	disposed bool

	done     chan struct{}
	exitOnce sync.Once
	exitCode int
	exited   bool
}

func newConnection(master *os.File, cmd *exec.Cmd, cols, rows uint16) *Connection {
	return &Connection{
		master: master,
		cmd:    cmd,
		log:    logging.WithConn(logging.L("unixpty"), fmt.Sprintf("pid-%d", cmd.Process.Pid), cmd.Process.Pid),
		cols:   cols,
		rows:   rows,
		done:   make(chan struct{}),
	}
}

// startExitWatcher blocks in reap (cmd.Wait on Linux, a WNOHANG Wait4 poll
// on Darwin) on a dedicated goroutine and records
// the exit code once the child terminates. This goroutine is deliberately
// not run through internal/workerpool: it blocks for the lifetime of the
// child, and a bounded pool sized for short tasks would starve under a
// handful of long-lived connections.
func (c *Connection) startExitWatcher() {
	go func() {
		code := reap(c.cmd)

		c.mu.Lock()
		c.exited = true
		c.exitCode = code
		c.mu.Unlock()

		c.log.Info("exited", "exitCode", code)
		c.exitOnce.Do(func() { close(c.done) })
	}()
}

func exitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func (c *Connection) Read(p []byte) (int, error) {
	return c.master.Read(p)
}

func (c *Connection) Write(p []byte) (int, error) {
	return c.master.Write(p)
}

// Pid returns the child's process ID.
func (c *Connection) Pid() int {
	return c.cmd.Process.Pid
}

// Resize applies new terminal dimensions via TIOCSWINSZ on the master fd.
func (c *Connection) Resize(cols, rows uint16) error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return fmt.Errorf("resize: %w", ptyerrors.ErrAlreadyDisposed)
	}
	c.mu.Unlock()

	if err := setWinsize(c.master.Fd(), cols, rows); err != nil {
		return fmt.Errorf("resize: %w", err)
	}

	c.mu.Lock()
	c.cols, c.rows = cols, rows
	c.mu.Unlock()
	return nil
}

// Kill signals the child's process group: SIGHUP first, then SIGKILL
// after 50ms if the group hasn't exited. Using the process group (not
// just the direct child) ensures descendants spawned via the shell also
// receive the signal, matching a real terminal's hang-up semantics. The
// SIGKILL stage also signals the leader directly: a child that called
// setpgid or otherwise left its own process group wouldn't see -pid at
// all, and the direct signal is a harmless no-op when the leader is
// still a member of the group.
func (c *Connection) Kill() error {
	pid := c.cmd.Process.Pid
	if err := unix.Kill(-pid, unix.SIGHUP); err != nil && err != unix.ESRCH {
		return fmt.Errorf("kill: sighup: %w", err)
	}

	select {
	case <-c.done:
		return nil
	case <-time.After(50 * time.Millisecond):
	}

	groupErr := unix.Kill(-pid, unix.SIGKILL)
	if groupErr != nil && groupErr != unix.ESRCH {
		groupErr = fmt.Errorf("kill: sigkill: %w", groupErr)
	} else {
		groupErr = nil
	}

	if err := unix.Kill(pid, unix.SIGKILL); err != nil && err != unix.ESRCH {
		if groupErr != nil {
			return groupErr
		}
		return fmt.Errorf("kill: sigkill leader: %w", err)
	}
	return groupErr
}

// Wait blocks until the child exits or ctx is done.
func (c *Connection) Wait(ctx context.Context) (bool, error) {
	select {
	case <-c.done:
		return true, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// ExitCode returns the child's exit code once it has exited.
func (c *Connection) ExitCode() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exitCode, c.exited
}

// Done returns a channel closed when the child exits.
func (c *Connection) Done() <-chan struct{} {
	return c.done
}

// Close disposes the connection: closes the master fd. Idempotent.
func (c *Connection) Close() error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return nil
	}
	c.disposed = true
	c.mu.Unlock()

	return c.master.Close()
}
