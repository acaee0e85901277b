package envio

import "time"

// TimeSource is the source of time information.
type TimeSource interface {
	Now() time.Time
}

// SystemTime is a TimeSource backed by the system clock.
type SystemTime struct{}

// Now returns the current system time.
func (SystemTime) Now() time.Time {
	return time.Now()
}

// FixedTime is a TimeSource that always reports the same instant, for
// deterministic tests.
type FixedTime struct {
	T time.Time
}

// Now returns the fixed instant.
func (f FixedTime) Now() time.Time {
	return f.T
}
