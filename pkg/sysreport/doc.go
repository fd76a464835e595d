// Package sysreport renders a one-shot text report of the local host:
// kernel identity, boot time, uptime and idle time, CPU time in user and
// system mode, and memory totals.
//
// # Basic Usage
//
//	r, err := sysreport.New(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := r.Run(os.Stdout); err != nil {
//		log.Fatal(err)
//	}
//
// # Output
//
// The report is a sequence of sections separated by blank lines. Every
// line is a label padded to a fixed column, ": ", and the value:
//
//	System name     : Linux
//	Node name       : build-01
//	Release         : 6.8.0-45-generic
//	Version         : #45-Ubuntu SMP PREEMPT_DYNAMIC
//	Machine         : x86_64
//
//	Boot time       : 2024-01-15 08:30:00
//
//	Uptime          : 3:04:12:09
//	Idle time       : 12:01:44:50
//
//	CPU user time   : 0:05:02:11
//	CPU system time : 0:01:12:40
//
//	Memory total    : 16384000 kB
//	Memory available: 8192000 kB
//
// Durations are days:hh:mm:ss.
//
// # Error Handling
//
// Failures match one of [ErrSourceUnavailable], [ErrMalformedRecord],
// [ErrInvalidDuration] or [ErrPlatform] via errors.Is, and are wrapped in a
// [SectionError] naming the section at which the report stopped. Sections
// before it are written in full; nothing after it is written.
package sysreport
