//go:build windows

package winpty

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/corvid-systems/ptyhost/internal/logging"
	"github.com/corvid-systems/ptyhost/internal/ptyerrors"
)

// Spawn creates a ConPTY pseudo console backed by a Job Object, then
// launches opts.App attached to it. On any failure after a resource is
// acquired, everything acquired so far is released in reverse order
// before returning.
func Spawn(ctx context.Context, opts Options) (*Connection, error) {
	log := logging.L("winpty")

	if err := checkPseudoConsoleSupported(); err != nil {
		return nil, fmt.Errorf("%w: CreatePseudoConsole unavailable", ptyerrors.ErrPlatformNotSupported)
	}

	var consoleInRead, consoleInWrite windows.Handle
	if err := windows.CreatePipe(&consoleInRead, &consoleInWrite, nil, 0); err != nil {
		return nil, fmt.Errorf("create input pipe: %w", err)
	}

	var consoleOutRead, consoleOutWrite windows.Handle
	if err := windows.CreatePipe(&consoleOutRead, &consoleOutWrite, nil, 0); err != nil {
		windows.CloseHandle(consoleInRead)
		windows.CloseHandle(consoleInWrite)
		return nil, fmt.Errorf("create output pipe: %w", err)
	}

	pc, err := createPseudoConsole(opts.Cols, opts.Rows, consoleInRead, consoleOutWrite)
	if err != nil {
		windows.CloseHandle(consoleInRead)
		windows.CloseHandle(consoleInWrite)
		windows.CloseHandle(consoleOutRead)
		windows.CloseHandle(consoleOutWrite)
		return nil, fmt.Errorf("create pseudo console: %w", err)
	}
	// The console owns these ends now; the parent only talks through
	// consoleInWrite/consoleOutRead.
	windows.CloseHandle(consoleInRead)
	windows.CloseHandle(consoleOutWrite)

	j, err := newJob()
	if err != nil {
		pc.close()
		windows.CloseHandle(consoleInWrite)
		windows.CloseHandle(consoleOutRead)
		return nil, fmt.Errorf("create job object: %w", err)
	}

	process, pid, err := startProcess(opts, pc)
	if err != nil {
		j.close()
		pc.close()
		windows.CloseHandle(consoleInWrite)
		windows.CloseHandle(consoleOutRead)
		return nil, fmt.Errorf("start process: %w", err)
	}

	if err := j.assign(process); err != nil {
		windows.TerminateProcess(process, 1)
		windows.CloseHandle(process)
		j.close()
		pc.close()
		windows.CloseHandle(consoleInWrite)
		windows.CloseHandle(consoleOutRead)
		return nil, fmt.Errorf("assign job: %w", err)
	}

	log.Info("spawned", logging.KeyPid, pid, "name", opts.Name)

	conn := newConnection(pc, j, process, pid, consoleInWrite, consoleOutRead, opts.Cols, opts.Rows)
	conn.startExitWatcher()
	return conn, nil
}
