//go:build linux

package unixpty

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// openPty opens /dev/ptmx, unlocks the follower, and returns both ends.
// The follower path is derived from TIOCGPTN; Linux names followers
// /dev/pts/<N>, unlike Darwin's TIOCPTYGNAME which returns the full path.
func openPty() (master, follower *os.File, err error) {
	master, err = os.OpenFile("/dev/ptmx", os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("open /dev/ptmx: %w", err)
	}

	if err := unix.IoctlSetPointerInt(int(master.Fd()), unix.TIOCSPTLCK, 0); err != nil {
		master.Close()
		return nil, nil, fmt.Errorf("unlock pty: %w", err)
	}

	n, err := unix.IoctlGetInt(int(master.Fd()), unix.TIOCGPTN)
	if err != nil {
		master.Close()
		return nil, nil, fmt.Errorf("get pty number: %w", err)
	}

	followerPath := fmt.Sprintf("/dev/pts/%d", n)
	follower, err = os.OpenFile(followerPath, os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		master.Close()
		return nil, nil, fmt.Errorf("open %s: %w", followerPath, err)
	}

	return master, follower, nil
}
