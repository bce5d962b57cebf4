// internal/checker/checker.go
package checker

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	cfg "github.com/bjoerrrn/url-monitoring/internal/config"
)

// Doer abstracts the HTTP round trip the checker needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// maxBodyBytes caps how much of a page is read for keyword scanning.
const maxBodyBytes = 1 << 20

// Config is the minimal runtime config the checker needs.
type Config struct {
	Timeout time.Duration

	// InsecureHosts disables TLS verification for matching hosts.
	// Leading-dot patterns match as suffix, everything else as prefix.
	InsecureHosts []string
}

// Checker probes entries one at a time. It holds two clients: the
// default verifying client and one with TLS verification disabled
// for hosts matching InsecureHosts.
type Checker struct {
	cfg      Config
	client   Doer
	insecure Doer
}

// New creates a checker with immutable config.
func New(c Config, client, insecure Doer) (*Checker, error) {
	if c.Timeout <= 0 {
		return nil, errors.New("checker: timeout must be > 0")
	}
	if client == nil {
		return nil, errors.New("checker: client required")
	}
	if insecure == nil {
		insecure = client
	}
	return &Checker{cfg: c, client: client, insecure: insecure}, nil
}

// Check performs exactly one probe of the entry.
// Transport failures never surface as errors; they collapse into
// Reachable=false with Err retained for logging.
func (c *Checker) Check(ctx context.Context, e cfg.Entry) Result {
	res := Result{
		URL: e.URL,
		At:  time.Now(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.URL, nil)
	if err != nil {
		res.Err = err
		return res
	}

	resp, err := c.doerFor(e.URL).Do(req)
	if err != nil {
		res.Err = err
		return res
	}
	defer resp.Body.Close()

	res.StatusCode = resp.StatusCode

	// 2xx/3xx count as reachable, 4xx/5xx as down.
	if resp.StatusCode >= 400 {
		return res
	}
	res.Reachable = true

	if e.Keyword == "" {
		return res
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		// Body died mid-read: treat like any other transport failure.
		res.Reachable = false
		res.Err = err
		return res
	}

	found := keywordInPage(body, e.Keyword)
	res.KeywordFound = &found
	return res
}

func (c *Checker) doerFor(rawURL string) Doer {
	u, err := url.Parse(rawURL)
	if err != nil {
		return c.client
	}
	if hostMatches(u.Hostname(), c.cfg.InsecureHosts) {
		return c.insecure
	}
	return c.client
}

// hostMatches reports whether host matches any pattern. Patterns
// starting with "." match as suffix ("node.local" matches ".local"),
// all others as prefix ("192.168.1.5" matches "192.168.").
func hostMatches(host string, patterns []string) bool {
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if strings.HasPrefix(p, ".") {
			if strings.HasSuffix(host, p) {
				return true
			}
			continue
		}
		if strings.HasPrefix(host, p) {
			return true
		}
	}
	return false
}
