//go:build linux

package unixpty

import "os/exec"

// reap blocks in cmd.Wait, which on Linux is a plain blocking waitpid
// under the hood. Linux doesn't exhibit the ARM64 macOS hang described in
// wait_darwin.go, so no polling fallback is needed here.
func reap(cmd *exec.Cmd) int {
	return exitCodeFromError(cmd.Wait())
}
