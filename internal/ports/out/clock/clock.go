package clock

import "time"

// Clock stamps session creation and update times.
type Clock interface {
	Now() time.Time
}
