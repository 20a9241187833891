//go:build !unix

package service

import "runtime"

func platformDescription() (string, error) {
	return formatPlatform(runtime.GOOS, runtime.GOARCH), nil
}
