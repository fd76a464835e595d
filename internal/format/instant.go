package format

import (
	"errors"
	"fmt"
	"time"

	"github.com/arnodel/strftime"
)

// CanonicalPattern is the strftime layout used for every timestamp in the
// report, e.g. "2024-01-15 08:30:00".
const CanonicalPattern = "%Y-%m-%d %H:%M:%S"

// ErrInvalidPattern is returned when a strftime pattern holds a directive
// the formatter does not know.
var ErrInvalidPattern = errors.New("invalid time pattern")

// FormatInstant renders epoch seconds in loc using a strftime pattern.
// A nil loc means the host's local time zone.
func FormatInstant(epoch int64, pattern string, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.Local
	}
	s, err := strftime.Format(pattern, time.Unix(epoch, 0).In(loc))
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
	}
	return s, nil
}
