//go:build unix

package service

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func platformDescription() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("uname failed: %w", err)
	}

	return formatPlatform(
		unix.ByteSliceToString(uts.Sysname[:]),
		unix.ByteSliceToString(uts.Release[:]),
		unix.ByteSliceToString(uts.Machine[:]),
	), nil
}
