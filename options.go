package ptyhost

import "fmt"

// SpawnOptions describes the child process to launch inside a new PTY.
type SpawnOptions struct {
	// App is the executable to run: an absolute path, or a name resolved
	// via PATH (Windows additionally applies Sysnative/System32 remapping
	// and .com/.exe probing; see internal/winenv).
	App string

	// Cwd is the child's working directory. Must be absolute and non-empty.
	Cwd string

	// Cols and Rows are the initial terminal dimensions. Must be positive.
	Cols uint16
	Rows uint16

	// CommandLine is the ordered argument list (excluding argv[0]). May be empty.
	CommandLine []string

	// Environment overrides the child's environment on top of the host
	// process's own. An empty value for a name means "unset" rather than
	// "set to empty".
	Environment map[string]string

	// VerbatimCommandLine, when true, tells the Windows provider to
	// concatenate App and CommandLine with single-space separators instead
	// of applying argument quoting (see internal/winenv.QuoteArg). Ignored
	// on Unix, where argv is passed as a vector, not a quoted string.
	VerbatimCommandLine bool

	// Name is an optional human-readable label for logging; it has no
	// effect on spawn behavior.
	Name string
}

// Validate checks the required fields before any OS call is made, per
// spec's InvalidArguments propagation policy: validation is synchronous
// and precedes resource acquisition.
func (o *SpawnOptions) Validate() error {
	if o.App == "" {
		return fmt.Errorf("%w: app must not be empty", ErrInvalidArguments)
	}
	if o.Cwd == "" {
		return fmt.Errorf("%w: cwd must not be empty", ErrInvalidArguments)
	}
	if o.Cols == 0 || o.Rows == 0 {
		return fmt.Errorf("%w: cols and rows must be positive", ErrInvalidArguments)
	}
	return nil
}
