//go:build windows

package winpty

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sys/windows"

	"github.com/corvid-systems/ptyhost/internal/logging"
	"github.com/corvid-systems/ptyhost/internal/ptyerrors"
)

// disposeState is the mandatory teardown sequence: each stage only ever
// advances forward, never skips a stage, and Close is idempotent from any
// stage.
type disposeState int

const (
	stateRunning disposeState = iota
	statePseudoConsoleClosed
	statePipesClosed
	stateProcessHandlesClosed
	stateJobClosed
	stateDisposed
)

// Connection is a live Windows PTY-attached child process: a ConPTY
// pseudo console, a Job Object the child (and its descendants) are
// assigned to, and the two anonymous pipes used to talk to the console.
type Connection struct {
	pc      *pseudoConsole
	job     *job
	process windows.Handle
	pid     uint32

	pipeToConsole   windows.Handle // write end; bytes we write reach the console's input
	pipeFromConsole windows.Handle // read end; console output arrives here

	log *slog.Logger

	mu    sync.Mutex
	state disposeState
	cols  uint16
	rows  uint16

	done     chan struct{}
	exitOnce sync.Once
	exitCode uint32
	exited   bool
}

func newConnection(pc *pseudoConsole, j *job, process windows.Handle, pid uint32, pipeToConsole, pipeFromConsole windows.Handle, cols, rows uint16) *Connection {
	return &Connection{
		pc:              pc,
		job:             j,
		process:         process,
		pid:             pid,
		pipeToConsole:   pipeToConsole,
		pipeFromConsole: pipeFromConsole,
		log:             logging.WithConn(logging.L("winpty"), fmt.Sprintf("pid-%d", pid), int(pid)),
		cols:            cols,
		rows:            rows,
		done:            make(chan struct{}),
	}
}

// startExitWatcher blocks on WaitForSingleObject for the lifetime of the
// child; like internal/unixpty's exit watcher, this deliberately bypasses
// internal/workerpool since it never returns until the child exits.
func (c *Connection) startExitWatcher() {
	go func() {
		windows.WaitForSingleObject(c.process, windows.INFINITE)

		var code uint32
		windows.GetExitCodeProcess(c.process, &code)

		c.mu.Lock()
		c.exited = true
		c.exitCode = code
		c.mu.Unlock()

		c.log.Info("exited", "exitCode", code)
		c.exitOnce.Do(func() { close(c.done) })
	}()
}

// Read reads bytes the console has produced. ReadFile is used directly on
// the pipe handle rather than wrapping it in an os.File: anonymous pipe
// handles don't integrate with Go's runtime poller the way named pipes
// opened in overlapped mode do, so a synchronous ReadFile is the correct
// primitive here.
func (c *Connection) Read(p []byte) (int, error) {
	var n uint32
	err := windows.ReadFile(c.pipeFromConsole, p, &n, nil)
	return int(n), err
}

func (c *Connection) Write(p []byte) (int, error) {
	var n uint32
	err := windows.WriteFile(c.pipeToConsole, p, &n, nil)
	return int(n), err
}

// Pid returns the child's process ID.
func (c *Connection) Pid() int {
	return int(c.pid)
}

// Resize applies new dimensions via ResizePseudoConsole.
func (c *Connection) Resize(cols, rows uint16) error {
	c.mu.Lock()
	if c.state != stateRunning {
		c.mu.Unlock()
		return fmt.Errorf("resize: %w", ptyerrors.ErrAlreadyDisposed)
	}
	c.mu.Unlock()

	if err := c.pc.resize(cols, rows); err != nil {
		return fmt.Errorf("resize: %w", err)
	}

	c.mu.Lock()
	c.cols, c.rows = cols, rows
	c.mu.Unlock()
	return nil
}

// Kill terminates the child immediately. The Job Object's
// KILL_ON_JOB_CLOSE limit means Close (not Kill) is what actually reaches
// descendant processes; Kill alone only guarantees the direct child dies.
func (c *Connection) Kill() error {
	if err := windows.TerminateProcess(c.process, 1); err != nil {
		return fmt.Errorf("kill: %w", err)
	}
	return nil
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
	return int(c.exitCode), c.exited
}

// Done returns a channel closed when the child exits.
func (c *Connection) Done() <-chan struct{} {
	return c.done
}

// Close runs the mandatory teardown sequence in order:
// PseudoConsoleClosed -> PipesClosed -> ProcessHandlesClosed -> JobClosed
// -> Disposed. Each stage only runs once; Close is idempotent and safe to
// call from any current stage, including concurrently with itself.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state >= stateDisposed {
		return nil
	}

	if c.state < statePseudoConsoleClosed {
		c.pc.close()
		c.state = statePseudoConsoleClosed
	}
	if c.state < statePipesClosed {
		windows.CloseHandle(c.pipeToConsole)
		windows.CloseHandle(c.pipeFromConsole)
		c.state = statePipesClosed
	}
	if c.state < stateProcessHandlesClosed {
		windows.TerminateProcess(c.process, 1)
		c.waitForExitWatcher()
		windows.CloseHandle(c.process)
		c.state = stateProcessHandlesClosed
	}
	if c.state < stateJobClosed {
		c.job.close()
		c.state = stateJobClosed
	}
	c.state = stateDisposed
	return nil
}

// waitForExitWatcher blocks until startExitWatcher's own WaitForSingleObject
// has observed the just-terminated process and closed c.done, rather than
// racing CloseHandle against a fixed timeout: closing the process handle
// while the watcher's WaitForSingleObject is still outstanding on it risks
// handle reuse once Close returns the value to the OS. A falling-back
// deadline still bounds Close in case the watcher itself is wedged, but the
// common path waits for the real signal.
func (c *Connection) waitForExitWatcher() {
	select {
	case <-c.done:
	case <-time.After(2 * time.Second):
		c.log.Warn("exit watcher did not observe termination in time, closing handle anyway")
	}
}
