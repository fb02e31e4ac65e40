//go:build windows

package main

import "github.com/corvid-systems/ptyhost"

// watchResize is a no-op on Windows: there is no SIGWINCH equivalent for a
// console window resize, and ConPTY has no notification callback for it
// either. A real host would poll GetConsoleScreenBufferInfo; the demo CLI
// sticks to the size given on the command line.
func watchResize(conn ptyhost.Conn) (stop func()) {
	return func() {}
}
