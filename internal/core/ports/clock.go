package ports

import "time"

// Clock abstracts the wall clock so handlers can stamp lifecycle
// timestamps deterministically under test.
type Clock interface {
	Now() time.Time
}
