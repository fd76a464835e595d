// Package monitor collects host statistics for the system report. Each
// reader issues one labeled-record query against a /proc source and
// extracts fixed fields from the result.
package monitor

// BootTime holds the boot instant from the /proc/stat btime record.
type BootTime struct {
	// Epoch is the boot time in seconds since the Unix epoch.
	Epoch int64
}

// UptimeStats contains system uptime information from /proc/uptime.
type UptimeStats struct {
	// Seconds is the time since boot, truncated to whole seconds.
	Seconds int64
	// IdleSeconds is the cumulative idle time of all CPUs, truncated to whole seconds.
	IdleSeconds int64
}

// CPUTimeStats contains aggregate CPU time in user and system mode from the
// /proc/stat cpu record.
type CPUTimeStats struct {
	// UserTicks is the raw user-mode time in clock ticks.
	UserTicks uint64
	// SystemTicks is the raw system-mode time in clock ticks.
	SystemTicks uint64
	// TicksPerSecond is the clock-tick rate used for conversion.
	TicksPerSecond int64
	// UserSeconds is UserTicks converted to whole seconds.
	UserSeconds int64
	// SystemSeconds is SystemTicks converted to whole seconds.
	SystemSeconds int64
}

// MemoryStats contains the memory totals from /proc/meminfo, in kilobytes
// exactly as the kernel reports them.
type MemoryStats struct {
	// TotalKB is the MemTotal value.
	TotalKB uint64
	// AvailableKB is the MemAvailable value.
	AvailableKB uint64
}

// MemoryUnit is the unit suffix of /proc/meminfo values.
const MemoryUnit = "kB"
