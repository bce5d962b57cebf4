// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks settings correctness.
// It performs declarative validation only.
// It MUST NOT mutate settings; zero values mean "unset" and are
// filled in later by Normalize.
func Validate(s *Settings) error {
	m := s.Monitor

	if m.TimeoutMs < 0 {
		return fmt.Errorf("settings: timeout_ms must be >= 0, got %d", m.TimeoutMs)
	}

	if m.FailureThreshold < 0 {
		return fmt.Errorf("settings: failure_threshold must be >= 0, got %d", m.FailureThreshold)
	}

	for _, h := range m.InsecureHosts {
		if h == "" {
			return fmt.Errorf("settings: insecure_hosts must not contain empty patterns")
		}
	}

	return nil
}
