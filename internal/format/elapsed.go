// Package format renders raw /proc values as text: elapsed durations as
// days:hh:mm:ss and epoch instants as local calendar time.
package format

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour
)

// ErrInvalidDuration is returned when a negative seconds count reaches the
// duration formatter.
var ErrInvalidDuration = errors.New("invalid duration")

// Elapsed is a seconds count split into days, hours, minutes and seconds.
// Days is unbounded; the other fields stay within their natural range.
type Elapsed struct {
	Days    uint64
	Hours   uint64
	Minutes uint64
	Seconds uint64
}

// Total recombines the components into a seconds count.
func (e Elapsed) Total() uint64 {
	return e.Days*SecondsPerDay + e.Hours*SecondsPerHour + e.Minutes*SecondsPerMinute + e.Seconds
}

// String renders the value as days:hh:mm:ss.
func (e Elapsed) String() string {
	return strconv.FormatUint(e.Days, 10) + ":" +
		PadTwoDigits(e.Hours) + ":" +
		PadTwoDigits(e.Minutes) + ":" +
		PadTwoDigits(e.Seconds)
}

// SplitElapsed decomposes total seconds into its components.
func SplitElapsed(total uint64) Elapsed {
	return Elapsed{
		Days:    total / SecondsPerDay,
		Hours:   total % SecondsPerDay / SecondsPerHour,
		Minutes: total % SecondsPerHour / SecondsPerMinute,
		Seconds: total % SecondsPerMinute,
	}
}

// FormatElapsed renders a non-negative seconds count as days:hh:mm:ss,
// e.g. 90061 -> "1:01:01:01".
func FormatElapsed(total int64) (string, error) {
	if total < 0 {
		return "", fmt.Errorf("%w: %d seconds", ErrInvalidDuration, total)
	}
	return SplitElapsed(uint64(total)).String(), nil
}

// PadTwoDigits renders n in decimal with a leading zero when n < 10.
func PadTwoDigits(n uint64) string {
	if n < 10 {
		return "0" + strconv.FormatUint(n, 10)
	}
	return strconv.FormatUint(n, 10)
}
