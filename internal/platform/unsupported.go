//go:build !linux
// +build !linux

package platform

import (
	"fmt"
	"runtime"
)

// NewPlatform reports that the current OS has no /proc-based implementation.
func NewPlatform() (Platform, error) {
	return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
}
