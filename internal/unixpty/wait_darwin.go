//go:build darwin

package unixpty

import (
	"os/exec"
	"time"

	"golang.org/x/sys/unix"

	"github.com/corvid-systems/ptyhost/internal/logging"
)

// reap polls with WNOHANG at 100ms intervals instead of calling cmd.Wait
// directly: blocking waitpid occasionally hangs on ARM64 macOS in the
// presence of certain signal/PTY interactions, so the process is reaped
// by hand and cmd.Process.Release() tells the runtime not to wait again.
//
// Unlike the bounded wait_for_exit(timeout) callers get via Connection.Wait,
// this loop is the only reaper the child has, so it doesn't give up after
// the ~60s threshold the quirk is usually described with — it logs a
// warning past that point and keeps polling, since abandoning the reap
// would leave a zombie process behind.
func reap(cmd *exec.Cmd) int {
	pid := cmd.Process.Pid
	log := logging.L("unixpty")
	started := time.Now()
	warned := false

	var status unix.WaitStatus
	for {
		wpid, err := unix.Wait4(pid, &status, unix.WNOHANG, nil)
		if err == unix.ECHILD {
			return -1
		}
		if wpid == pid {
			cmd.Process.Release()
			if status.Signaled() {
				return 128 + int(status.Signal())
			}
			return status.ExitStatus()
		}

		if !warned && time.Since(started) > 60*time.Second {
			warned = true
			log.Warn("waitpid poll exceeded expected bound", logging.KeyPid, pid)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
