package driven

import "time"

// Clock abstracts the time source so TTL expiry can be driven
// deterministically in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
