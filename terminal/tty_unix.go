//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// enterCbreak disables line buffering and echo on fd, returning a restore func
// Output post-processing stays on so '\n' still moves to column 0
func enterCbreak(fd int) (func() error, error) {
	saved, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}

	cbreak := *saved
	// Local flags: disable echo and canonical mode, signals stay enabled
	cbreak.Lflag &^= unix.ECHO | unix.ICANON
	// Control chars: min bytes = 1, timeout = 0
	cbreak.Cc[unix.VMIN] = 1
	cbreak.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &cbreak); err != nil {
		return nil, err
	}
	return func() error {
		return unix.IoctlSetTermios(fd, ioctlSetTermios, saved)
	}, nil
}

// resetTerminalMode attempts to restore terminal to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// Try to restore via /dev/tty (works even if stdin redirected)
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	if termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios); err == nil {
		termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
		termios.Iflag |= unix.ICRNL
		termios.Oflag |= unix.OPOST
		unix.IoctlSetTermios(fd, ioctlSetTermios, termios)
	}
}
