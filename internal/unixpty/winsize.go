//go:build linux || darwin

package unixpty

import "golang.org/x/sys/unix"

func getWinsize(fd uintptr) (unix.Winsize, error) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return unix.Winsize{}, err
	}
	return *ws, nil
}

func setWinsize(fd uintptr, cols, rows uint16) error {
	ws := toWinsize(cols, rows)
	return unix.IoctlSetWinsize(int(fd), unix.TIOCSWINSZ, &ws)
}

func setTermios(fd uintptr, t *unix.Termios) error {
	return unix.IoctlSetTermios(int(fd), unix.TCSETS, t)
}
