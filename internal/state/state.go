// internal/state/state.go
package state

// Counts maps a monitored URL to its consecutive-failure count.
// Counts are never negative.
type Counts map[string]int

// Get returns the count for a URL, defaulting to 0.
func (c Counts) Get(url string) int {
	return c[url]
}

// Set stores a count, clamping negatives to 0.
func (c Counts) Set(url string, n int) {
	if n < 0 {
		n = 0
	}
	c[url] = n
}
