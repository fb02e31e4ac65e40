//go:build darwin

package unixpty

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// openPty opens /dev/ptmx and resolves the follower path via
// TIOCPTYGNAME. Darwin grants and unlocks the follower automatically
// when it's opened through /dev/ptmx, so TIOCPTYGRANT/TIOCPTYUNLK are
// unnecessary here (unlike the Linux TIOCSPTLCK dance in openpty_linux.go).
func openPty() (master, follower *os.File, err error) {
	master, err = os.OpenFile("/dev/ptmx", os.O_RDWR, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("open /dev/ptmx: %w", err)
	}

	name, err := followerName(master.Fd())
	if err != nil {
		master.Close()
		return nil, nil, fmt.Errorf("get follower name: %w", err)
	}

	follower, err = os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		master.Close()
		return nil, nil, fmt.Errorf("open %s: %w", name, err)
	}

	return master, follower, nil
}

// followerName issues TIOCPTYGNAME directly; x/sys/unix exposes the
// request constant but not a typed wrapper for its fixed 128-byte buffer.
func followerName(masterFd uintptr) (string, error) {
	var buf [128]byte
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, masterFd, uintptr(unix.TIOCPTYGNAME), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return "", errno
	}
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i]), nil
		}
	}
	return string(buf[:]), nil
}
