// Package clock supplies time to command handlers so timestamps written to
// histories and ledgers can be pinned in tests.
package clock

import "time"

type System struct{}

func NewSystem() System {
	return System{}
}

// Now returns the current UTC time truncated to microseconds, the precision postgres keeps.
func (System) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Fixed always returns the same instant.
type Fixed struct {
	at time.Time
}

func NewFixed(at time.Time) Fixed {
	return Fixed{at: at.UTC()}
}

func (f Fixed) Now() time.Time {
	return f.at
}
