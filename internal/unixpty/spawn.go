//go:build linux || darwin

package unixpty

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"syscall"

	"github.com/corvid-systems/ptyhost/internal/logging"
	"github.com/corvid-systems/ptyhost/internal/winenv"
)

// Spawn opens a PTY, configures its termios and window size, and execs
// opts.App inside it with the follower as controlling terminal. The
// follower is closed in the parent once the child has it open; only the
// master survives into the returned Connection.
func Spawn(ctx context.Context, opts Options) (*Connection, error) {
	log := logging.L("unixpty")

	master, follower, err := openPty()
	if err != nil {
		return nil, fmt.Errorf("open pty: %w", err)
	}

	t := defaultTermios()
	if err := setTermios(follower.Fd(), &t); err != nil {
		master.Close()
		follower.Close()
		return nil, fmt.Errorf("set termios: %w", err)
	}

	if err := setWinsize(master.Fd(), opts.Cols, opts.Rows); err != nil {
		master.Close()
		follower.Close()
		return nil, fmt.Errorf("set winsize: %w", err)
	}

	// Built with exec.Command rather than exec.CommandContext: ctx only
	// gates whether Spawn starts at all (checked in ptyhost.Spawn).
	// Killing a running connection goes through Connection.Kill, which
	// signals the whole process group rather than just the direct child.
	cmd := exec.Command(opts.App, opts.Argv...)
	cmd.Dir = opts.Cwd
	cmd.Env = environForChild(opts.Environment)
	cmd.Stdin = follower
	cmd.Stdout = follower
	cmd.Stderr = follower
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
		Ctty:    0, // index into {Stdin, Stdout, Stderr}; all three are the follower
	}

	if err := cmd.Start(); err != nil {
		master.Close()
		follower.Close()
		return nil, fmt.Errorf("start: %w", err)
	}
	follower.Close()

	log.Info("spawned", logging.KeyPid, cmd.Process.Pid, "name", opts.Name)

	conn := newConnection(master, cmd, opts.Cols, opts.Rows)
	conn.startExitWatcher()
	return conn, nil
}

// environForChild merges opts.Environment onto the host process's own
// environment (empty override value unsets) and always ensures TERM is
// set, matching the cooked-terminal defaults defaultTermios() configures.
func environForChild(overrides map[string]string) []string {
	merged := winenv.MergeEnvironment(os.Environ(), overrides)
	if merged["TERM"] == "" {
		merged["TERM"] = "xterm-256color"
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	env := make([]string, 0, len(names))
	for _, name := range names {
		env = append(env, name+"="+merged[name])
	}
	return env
}
