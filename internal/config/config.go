// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Settings struct {
	Monitor MonitorSettings `yaml:"monitor"`
}

// ---- MONITOR ----

type MonitorSettings struct {
	CredoFile        string `yaml:"credo_file"`
	StateFile        string `yaml:"state_file"`
	TimeoutMs        int    `yaml:"timeout_ms"`
	FailureThreshold int    `yaml:"failure_threshold"`

	// Optional logfile; when set, logging is mirrored to it.
	LogFile string `yaml:"log_file"`

	// Host patterns that disable TLS verification (self-signed LAN devices).
	// Leading-dot patterns match as suffix, everything else as prefix.
	InsecureHosts []string `yaml:"insecure_hosts"`
}

// Load reads the settings file. An absent file is not an error:
// the monitor runs on defaults (filled in by Normalize).
func Load(path string) (*Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &s, nil
		}
		return nil, fmt.Errorf("settings: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("settings: parse %s: %w", path, err)
	}

	return &s, nil
}
