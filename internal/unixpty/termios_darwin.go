//go:build darwin

package unixpty

import "golang.org/x/sys/unix"

// setControlChars fills Cc using Darwin's VEOF/VERASE/... indices, which
// differ from Linux's: these are platform-specific header values, and are
// always named via unix.VEOF etc rather than hard-coded positions.
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

// setSpeed sets 38400 baud. Darwin's termios speed_t holds the literal
// baud value rather than an encoded index, and B38400's numeric value
// (0x9600 = 38400) happens to equal that literal value.
func setSpeed(t *unix.Termios) {
	t.Ispeed = unix.B38400
	t.Ospeed = unix.B38400
}
