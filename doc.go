// Package ptyhost spawns a child program attached to a newly-created
// pseudo-terminal and hands back a bidirectional byte stream plus resize,
// kill, and exit-notification controls.
//
// It is a transport, not a terminal emulator: bytes written to Conn reach
// the child's stdin as PTY input, and bytes the child writes to its
// stdout/stderr arrive on Conn's Read side, unparsed. The hard part lives
// in internal/unixpty and internal/winpty, which implement the
// platform-specific fork/exec-inside-PTY and ConPTY+Job-Object sequences
// respectively; this package is the thin facade that picks one of them.
package ptyhost
