//go:build linux || darwin

package unixpty

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestDefaultTermiosControlChars(t *testing.T) {
	term := defaultTermios()

	cases := []struct {
		name string
		idx  int
		want byte
	}{
		{"VEOF", unix.VEOF, 4},
		{"VERASE", unix.VERASE, 0x7f},
		{"VWERASE", unix.VWERASE, 23},
		{"VKILL", unix.VKILL, 21},
		{"VREPRINT", unix.VREPRINT, 18},
		{"VINTR", unix.VINTR, 3},
		{"VQUIT", unix.VQUIT, 0x1c},
		{"VSUSP", unix.VSUSP, 26},
		{"VSTART", unix.VSTART, 17},
		{"VSTOP", unix.VSTOP, 19},
		{"VLNEXT", unix.VLNEXT, 22},
		{"VDISCARD", unix.VDISCARD, 15},
		{"VMIN", unix.VMIN, 1},
		{"VTIME", unix.VTIME, 0},
	}

	for _, c := range cases {
		if got := term.Cc[c.idx]; got != c.want {
			t.Errorf("Cc[%s]=%d, want %d", c.name, got, c.want)
		}
	}
}

func TestDefaultTermiosCookedFlags(t *testing.T) {
	term := defaultTermios()

	if term.Iflag&unix.ICRNL == 0 {
		t.Error("expected ICRNL set in Iflag")
	}
	if term.Oflag&unix.OPOST == 0 {
		t.Error("expected OPOST set in Oflag")
	}
	if term.Cflag&unix.CREAD == 0 {
		t.Error("expected CREAD set in Cflag")
	}
	if term.Lflag&unix.ICANON == 0 {
		t.Error("expected ICANON set in Lflag")
	}
	if term.Lflag&unix.ECHO == 0 {
		t.Error("expected ECHO set in Lflag")
	}
}

func TestToWinsize(t *testing.T) {
	ws := toWinsize(120, 40)
	if ws.Col != 120 || ws.Row != 40 {
		t.Errorf("toWinsize(120,40) = %+v", ws)
	}
}
