package recurrence

import "time"

// SetNow replaces the clock for the duration of a test.
func SetNow(f func() time.Time) (restore func()) {
	prev := now
	now = f
	return func() { now = prev }
}
