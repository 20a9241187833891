// Package service provides the probing logic of the tool version reporter.
package service

import (
	"fmt"
	"runtime"
	"strings"
)

// RuntimeVersion describes the running Go runtime, e.g. "go1.25.5 (gc linux/amd64)".
func RuntimeVersion() string {
	return fmt.Sprintf("%s (%s %s/%s)", runtime.Version(), runtime.Compiler, runtime.GOOS, runtime.GOARCH)
}

// PlatformDescription describes the host platform, e.g. "Linux-6.8.0-x86_64".
func PlatformDescription() (string, error) {
	return platformDescription()
}

// formatPlatform joins the non-empty parts with "-".
func formatPlatform(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "-")
}
