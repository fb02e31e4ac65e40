//go:build linux || darwin

package main

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/corvid-systems/ptyhost"
)

// watchResize forwards SIGWINCH (the calling terminal's resize notification)
// to conn.Resize for as long as the returned stop function hasn't been
// called. It applies the current size once immediately so a terminal
// resized before `run` started isn't missed.
func watchResize(conn ptyhost.Conn) (stop func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGWINCH)

	applySize(conn)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-sigChan:
				applySize(conn)
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}

func applySize(conn ptyhost.Conn) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	if cols <= 0 || rows <= 0 {
		return
	}
	if err := conn.Resize(uint16(cols), uint16(rows)); err != nil {
		log.Warn("resize failed", "error", err)
	}
}
