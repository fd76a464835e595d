//go:build linux
// +build linux

package platform

import (
	"fmt"

	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"
)

// NewPlatform creates the Platform implementation for Linux.
func NewPlatform() (Platform, error) {
	return NewLinuxPlatform(), nil
}

// NewLinuxPlatform returns a Platform backed by uname(2) and sysconf(3).
func NewLinuxPlatform() Platform {
	return NewStaticPlatform("linux", unameHost{}, sysconfClock{})
}

// unameHost queries the kernel identity with uname(2).
type unameHost struct{}

// Identity implements HostInfoProvider.
func (unameHost) Identity() (Identity, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return Identity{}, fmt.Errorf("uname: %w", err)
	}
	return Identity{
		Sysname:  unix.ByteSliceToString(uts.Sysname[:]),
		Nodename: unix.ByteSliceToString(uts.Nodename[:]),
		Release:  unix.ByteSliceToString(uts.Release[:]),
		Version:  unix.ByteSliceToString(uts.Version[:]),
		Machine:  unix.ByteSliceToString(uts.Machine[:]),
	}, nil
}

// sysconfClock reads _SC_CLK_TCK.
type sysconfClock struct{}

// TicksPerSecond implements ClockConfig.
func (sysconfClock) TicksPerSecond() (int64, error) {
	hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil {
		return 0, fmt.Errorf("sysconf(SC_CLK_TCK): %w", err)
	}
	if hz <= 0 {
		return 0, fmt.Errorf("sysconf(SC_CLK_TCK) returned %d", hz)
	}
	return hz, nil
}
