//go:build linux || darwin

// Package unixpty is the Unix PTY provider: it allocates a
// /dev/ptmx master/follower pair, configures the follower's termios and
// window size, and execs the target program with the follower as its
// controlling terminal. It realizes the "native shim" idea (fork/exec must
// happen without a managed runtime running bytecode in between) using
// os/exec + SysProcAttr instead of a separate C helper binary — the Go
// runtime never runs user goroutines between the
// fork and the exec because SysProcAttr.Setctty/Setsid are applied by
// the forkAndExecInChild trampoline in the runtime itself, not by
// Go code running in the child.
package unixpty

// Options mirrors the public ptyhost.SpawnOptions the root package
// converts into before calling Spawn. It's a separate type (rather than
// importing the root package) so this package stays free of a cycle
// back to ptyhost.
type Options struct {
	App                 string
	Cwd                 string
	Cols                uint16
	Rows                uint16
	Argv                []string
	Environment         map[string]string
	VerbatimCommandLine bool
	Name                string
}
