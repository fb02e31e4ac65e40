//go:build linux || darwin

package unixpty

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"
)

func requirePtmx(t *testing.T) {
	t.Helper()
	f, err := os.OpenFile("/dev/ptmx", os.O_RDWR, 0)
	if err != nil {
		t.Skipf("/dev/ptmx unavailable in this environment: %v", err)
	}
	f.Close()
}

func readUntil(t *testing.T, conn *Connection, want string, timeout time.Duration) string {
	t.Helper()
	deadline := time.Now().Add(timeout)
	var buf bytes.Buffer
	chunk := make([]byte, 4096)
	for time.Now().Before(deadline) {
		conn.master.SetReadDeadline(time.Now().Add(50 * time.Millisecond))
		n, err := conn.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			if bytes.Contains(buf.Bytes(), []byte(want)) {
				return buf.String()
			}
		}
		if err != nil && !os.IsTimeout(err) {
			break
		}
	}
	return buf.String()
}

func TestSpawnEchoesOutput(t *testing.T) {
	requirePtmx(t)

	opts := Options{
		App:  "/bin/sh",
		Cwd:  "/",
		Cols: 120,
		Rows: 25,
		Argv: []string{"-c", "echo test"},
	}

	conn, err := Spawn(context.Background(), opts)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	defer conn.Close()

	got := readUntil(t, conn, "test", 5*time.Second)
	if !bytes.Contains([]byte(got), []byte("test")) {
		t.Fatalf("expected output to contain %q, got %q", "test", got)
	}
}

func TestSpawnPassesEnvironment(t *testing.T) {
	requirePtmx(t)

	opts := Options{
		App:         "/bin/sh",
		Cwd:         "/",
		Cols:        120,
		Rows:        25,
		Argv:        []string{"-c", "echo $MY_TEST_VAR"},
		Environment: map[string]string{"MY_TEST_VAR": "custom_value_12345"},
	}

	conn, err := Spawn(context.Background(), opts)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	defer conn.Close()

	got := readUntil(t, conn, "custom_value_12345", 5*time.Second)
	if !bytes.Contains([]byte(got), []byte("custom_value_12345")) {
		t.Fatalf("expected output to contain custom_value_12345, got %q", got)
	}
}

func TestConnectionExitCodeAfterExit(t *testing.T) {
	requirePtmx(t)

	opts := Options{
		App:  "/bin/sh",
		Cwd:  "/",
		Cols: 80,
		Rows: 24,
		Argv: []string{"-c", "exit 7"},
	}

	conn, err := Spawn(context.Background(), opts)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exited, err := conn.Wait(ctx)
	if err != nil || !exited {
		t.Fatalf("Wait: exited=%v err=%v", exited, err)
	}

	code, ok := conn.ExitCode()
	if !ok || code != 7 {
		t.Fatalf("ExitCode() = %d, %v; want 7, true", code, ok)
	}
}

func TestConnectionResize(t *testing.T) {
	requirePtmx(t)

	opts := Options{
		App:  "/bin/sh",
		Cwd:  "/",
		Cols: 80,
		Rows: 24,
		Argv: []string{"-c", "sleep 5"},
	}

	conn, err := Spawn(context.Background(), opts)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	defer conn.Close()
	defer conn.Kill()

	if err := conn.Resize(100, 40); err != nil {
		t.Fatalf("Resize: %v", err)
	}

	ws, err := getWinsize(conn.master.Fd())
	if err != nil {
		t.Fatalf("getWinsize: %v", err)
	}
	if ws.Col != 100 || ws.Row != 40 {
		t.Fatalf("winsize = %+v, want Col=100 Row=40", ws)
	}
}
