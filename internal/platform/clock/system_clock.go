package clock

import "time"

// SystemClock returns the current wall-clock time in UTC, truncated to
// microseconds so values survive a round trip through Postgres unchanged.
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }
