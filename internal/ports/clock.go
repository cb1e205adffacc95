package ports

import "time"

// Clock is satisfied by github.com/benbjohnson/clock.
type Clock interface {
	Now() time.Time
}
