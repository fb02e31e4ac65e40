package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/corvid-systems/ptyhost"
)

// runResizeDemo spawns a shell, immediately resizes it to cols+10/rows+5,
// and confirms the call succeeded. It never attaches stdin/stdout: it is a
// scripted smoke test for Conn.Resize, not an interactive session.
func runResizeDemo() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getwd: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := ptyhost.Spawn(ctx, ptyhost.SpawnOptions{
		App:  shellFlag,
		Cwd:  cwd,
		Cols: colsFlag,
		Rows: rowsFlag,
		Name: "ptyhost-demo-resize",
	})
	if err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	defer conn.Close()

	fmt.Printf("spawned pid=%d at %dx%d\n", conn.Pid(), colsFlag, rowsFlag)

	newCols, newRows := colsFlag+10, rowsFlag+5
	if err := conn.Resize(newCols, newRows); err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	fmt.Printf("resized to %dx%d\n", newCols, newRows)

	if err := conn.Kill(); err != nil {
		return fmt.Errorf("kill: %w", err)
	}

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	exited, err := conn.Wait(waitCtx)
	if err != nil {
		return fmt.Errorf("wait: %w", err)
	}
	if !exited {
		return fmt.Errorf("session did not exit within timeout")
	}

	code, _ := conn.ExitCode()
	fmt.Printf("session exited with code %d\n", code)
	return nil
}
