// internal/config/normalize.go
package config

// Defaults applied by Normalize for unset fields.
const (
	DefaultCredoFile        = "url-monitor.credo"
	DefaultStateFile        = "failures.json"
	DefaultTimeoutMs        = 10000
	DefaultFailureThreshold = 5
)

// Normalize applies post-validation defaulting.
// It is allowed to mutate settings.
// It MUST be called only after Validate().
func Normalize(s *Settings) {
	if s == nil {
		return
	}

	m := &s.Monitor

	if m.CredoFile == "" {
		m.CredoFile = DefaultCredoFile
	}
	if m.StateFile == "" {
		m.StateFile = DefaultStateFile
	}
	if m.TimeoutMs == 0 {
		m.TimeoutMs = DefaultTimeoutMs
	}
	if m.FailureThreshold == 0 {
		m.FailureThreshold = DefaultFailureThreshold
	}
}
