//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import "github.com/pkg/errors"

func enterCbreak(fd int) (func() error, error) {
	return nil, errors.New("cbreak mode not supported on this platform")
}

func resetTerminalMode() {}
