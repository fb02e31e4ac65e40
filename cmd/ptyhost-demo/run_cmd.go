package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/corvid-systems/ptyhost"
)

// runSession spawns shellFlag inside a PTY and attaches the calling
// terminal's stdin/stdout to it, restoring the terminal to its original
// mode on exit regardless of how the session ended.
func runSession() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getwd: %w", err)
	}

	stdinFd := int(os.Stdin.Fd())
	oldState, rawErr := term.MakeRaw(stdinFd)
	if rawErr == nil {
		defer term.Restore(stdinFd, oldState)
	} else {
		log.Warn("stdin is not a terminal, running without raw mode", "error", rawErr)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, err := ptyhost.Spawn(ctx, ptyhost.SpawnOptions{
		App:  shellFlag,
		Cwd:  cwd,
		Cols: colsFlag,
		Rows: rowsFlag,
		Name: "ptyhost-demo",
	})
	if err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	defer conn.Close()

	log.Info("session started", "pid", conn.Pid(), "shell", shellFlag)

	stopResize := watchResize(conn)
	defer stopResize()

	copyDone := make(chan struct{})
	go func() {
		io.Copy(os.Stdout, conn)
		close(copyDone)
	}()
	go func() {
		io.Copy(conn, os.Stdin)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-conn.Done():
	case <-copyDone:
	case <-sigChan:
		log.Info("received interrupt, killing session")
		conn.Kill()
	}

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	conn.Wait(waitCtx)

	code, _ := conn.ExitCode()
	log.Info("session ended", "exitCode", code)
	return nil
}
