// Package elapsed renders elapsed time intervals in the human-readable
// H:MM:SS.mmm form. Hours are unpadded and do not roll over into days.
package elapsed

import (
	"fmt"
	"time"
)

// Millisecond spans of the constituent units.
const (
	PerSecond int64 = 1000
	PerMinute       = PerSecond * 60
	PerHour         = PerMinute * 60
	PerDay          = PerHour * 24
)

// Breakdown is an elapsed interval split into display units.
type Breakdown struct {
	Hours   int64
	Minutes int64
	Seconds int64
	Millis  int64
}

// Split breaks a millisecond interval into display units.
func Split(ms int64) Breakdown {
	rem := ms

	hours := rem / PerHour
	rem %= PerHour

	minutes := rem / PerMinute
	rem %= PerMinute

	return Breakdown{
		Hours:   hours,
		Minutes: minutes,
		Seconds: rem / PerSecond,
		Millis:  rem % PerSecond,
	}
}

func (b Breakdown) String() string {
	return fmt.Sprintf("%d:%02d:%02d.%03d", b.Hours, b.Minutes, b.Seconds, b.Millis)
}

// FormatMillis renders a millisecond interval as H:MM:SS.mmm.
func FormatMillis(ms int64) string {
	return Split(ms).String()
}

// Format renders a duration as H:MM:SS.mmm. Sub-millisecond precision is
// truncated.
func Format(d time.Duration) string {
	return FormatMillis(d.Milliseconds())
}
