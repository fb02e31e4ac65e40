//go:build linux || darwin

package unixpty

import "golang.org/x/sys/unix"

// defaultTermios builds the standard cooked-terminal mode line disciplines
// expect by default, using each platform's own control-character indices
// (set in termios_linux.go / termios_darwin.go) rather than hard-coded
// positions.
func defaultTermios() unix.Termios {
	t := unix.Termios{
		Iflag: unix.ICRNL | unix.IXON | unix.IXANY | unix.IMAXBEL | unix.BRKINT | unix.IUTF8,
		Oflag: unix.OPOST | unix.ONLCR,
		Cflag: unix.CREAD | unix.CS8 | unix.HUPCL,
		Lflag: unix.ICANON | unix.ISIG | unix.IEXTEN | unix.ECHO | unix.ECHOE | unix.ECHOK | unix.ECHOKE | unix.ECHOCTL,
	}
	setControlChars(&t)
	setSpeed(&t)
	return t
}

// toWinsize translates the requested terminal dimensions into a
// unix.Winsize. Pixel dimensions are left zero; no caller in this package
// reports them.
func toWinsize(cols, rows uint16) unix.Winsize {
	return unix.Winsize{Row: rows, Col: cols}
}
