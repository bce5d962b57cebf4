// internal/checker/builder.go
package checker

import (
	"crypto/tls"
	"net/http"
	"time"

	cfg "github.com/bjoerrrn/url-monitoring/internal/config"
)

// Build constructs a Checker from monitor settings, wiring the two
// HTTP clients: a verifying default and a TLS-skipping one for
// insecure hosts.
func Build(m cfg.MonitorSettings) (*Checker, error) {
	timeout := time.Duration(m.TimeoutMs) * time.Millisecond

	client := &http.Client{Timeout: timeout}

	insecure := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}

	return New(
		Config{
			Timeout:       timeout,
			InsecureHosts: m.InsecureHosts,
		},
		client,
		insecure,
	)
}
