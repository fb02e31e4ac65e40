//go:build linux

package unixpty

import "golang.org/x/sys/unix"

// setControlChars fills Cc using Linux's VEOF/VERASE/... indices into the
// NCCS-sized array. Values match the kernel's ttydefaults.h defaults.
func setControlChars(t *unix.Termios) {
	t.Cc[unix.VEOF] = 4
	t.Cc[unix.VERASE] = 0x7f
	t.Cc[unix.VWERASE] = 23
	t.Cc[unix.VKILL] = 21
	t.Cc[unix.VREPRINT] = 18
	t.Cc[unix.VINTR] = 3
	t.Cc[unix.VQUIT] = 0x1c
	t.Cc[unix.VSUSP] = 26
	t.Cc[unix.VSTART] = 17
	t.Cc[unix.VSTOP] = 19
	t.Cc[unix.VLNEXT] = 22
	t.Cc[unix.VDISCARD] = 15
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
}

// setSpeed encodes 38400 baud into Cflag's CBAUD bits, the field the
// kernel's TCSETS ioctl actually reads on Linux (Ispeed/Ospeed are only
// consulted by the TCSETS2/BOTHER path, which this package doesn't use).
func setSpeed(t *unix.Termios) {
	t.Cflag &^= unix.CBAUD
	t.Cflag |= unix.B38400
	t.Ispeed = unix.B38400
	t.Ospeed = unix.B38400
}
