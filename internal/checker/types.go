// internal/checker/types.go
package checker

import "time"

// Result is the outcome of probing one entry.
type Result struct {
	URL string
	At  time.Time

	// Reachable means a response arrived with a non-error status
	// class (2xx/3xx). All transport failures collapse to false.
	Reachable  bool
	StatusCode int // 0 when no response was received

	// KeywordFound is set only when the entry has a keyword AND the
	// page was reachable. Nil otherwise.
	KeywordFound *bool

	// Err records the transport failure for logging. It never makes
	// the check itself fail; unreachable is a normal outcome.
	Err error
}

// Ok reports whether the check counts as a success: reachable, and
// the keyword (if any) present.
func (r Result) Ok() bool {
	if !r.Reachable {
		return false
	}
	if r.KeywordFound != nil {
		return *r.KeywordFound
	}
	return true
}
