package platform

import "fmt"

// Platform bundles the OS capability providers used by the report.
type Platform interface {
	// Name returns the platform identifier (e.g., "linux").
	Name() string

	// Host returns the host identity provider.
	Host() HostInfoProvider

	// Clock returns the clock configuration provider.
	Clock() ClockConfig
}

// Identity holds the five uname(2) fields.
type Identity struct {
	// Sysname is the OS name (e.g., "Linux").
	Sysname string
	// Nodename is the network node hostname.
	Nodename string
	// Release is the kernel release (e.g., "6.8.0-45-generic").
	Release string
	// Version is the kernel build version string.
	Version string
	// Machine is the hardware name (e.g., "x86_64").
	Machine string
}

// HostInfoProvider answers the host identity query.
type HostInfoProvider interface {
	// Identity returns the uname fields of the running kernel.
	Identity() (Identity, error)
}

// ClockConfig answers the clock-tick rate query.
type ClockConfig interface {
	// TicksPerSecond returns the number of clock ticks per second used by
	// /proc/stat CPU time accounting (USER_HZ).
	TicksPerSecond() (int64, error)
}

// StaticHost is a HostInfoProvider returning a fixed identity.
type StaticHost Identity

// Identity implements HostInfoProvider.
func (h StaticHost) Identity() (Identity, error) {
	return Identity(h), nil
}

// FixedClock is a ClockConfig returning a constant tick rate.
type FixedClock int64

// TicksPerSecond implements ClockConfig.
func (c FixedClock) TicksPerSecond() (int64, error) {
	if c <= 0 {
		return 0, fmt.Errorf("invalid clock tick rate %d", int64(c))
	}
	return int64(c), nil
}

// DefaultTicksPerSecond is USER_HZ on every mainstream Linux architecture.
const DefaultTicksPerSecond FixedClock = 100

// staticPlatform serves fixed providers.
type staticPlatform struct {
	name  string
	host  HostInfoProvider
	clock ClockConfig
}

// NewStaticPlatform returns a Platform backed by the given providers.
func NewStaticPlatform(name string, host HostInfoProvider, clock ClockConfig) Platform {
	return &staticPlatform{name: name, host: host, clock: clock}
}

func (p *staticPlatform) Name() string           { return p.name }
func (p *staticPlatform) Host() HostInfoProvider { return p.host }
func (p *staticPlatform) Clock() ClockConfig     { return p.clock }
