package ports

import "time"

// Clock supplies the current time to command handlers.
type Clock interface {
	Now() time.Time
}
