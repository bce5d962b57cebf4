// internal/monitor/runner.go
package monitor

import (
	"context"
	"fmt"
	"log"

	"github.com/bjoerrrn/url-monitoring/internal/checker"
	cfg "github.com/bjoerrrn/url-monitoring/internal/config"
	"github.com/bjoerrrn/url-monitoring/internal/notify"
	"github.com/bjoerrrn/url-monitoring/internal/state"
)

// Checker is the probing contract the runner depends on.
type Checker interface {
	Check(ctx context.Context, e cfg.Entry) checker.Result
}

// Runner drives one monitoring pass: check every entry, advance its
// failure count, and notify exactly once per threshold crossing and
// once per recovery.
type Runner struct {
	Threshold int
	Checker   Checker
	Notifier  notify.Notifier
}

// RunOnce processes all entries sequentially against the loaded
// counts and returns the updated counts for persistence.
//
// Per entry, with prior count n and threshold T:
//   - success: recovery notification iff n >= T, then count = 0
//   - failure: count = n+1, down/keyword notification iff count == T
//
// Counts keep incrementing past T without further notifications, so
// a re-run without intervening state change never double-sends.
func (r *Runner) RunOnce(ctx context.Context, entries []cfg.Entry, counts state.Counts) state.Counts {
	for _, e := range entries {
		res := r.Checker.Check(ctx, e)
		prior := counts.Get(e.URL)

		if res.Ok() {
			if prior >= r.Threshold {
				r.send(ctx, e.Webhook, recoveryMessage(e))
			}
			if prior != 0 {
				log.Printf("up, failures reset (entry=%s url=%s)", e.Description, e.URL)
			}
			counts.Set(e.URL, 0)
			continue
		}

		count := prior + 1
		counts.Set(e.URL, count)

		if res.Err != nil {
			log.Printf("check failed (entry=%s url=%s count=%d/%d): %v",
				e.Description, e.URL, count, r.Threshold, res.Err)
		} else {
			log.Printf("check failed (entry=%s url=%s status=%d count=%d/%d)",
				e.Description, e.URL, res.StatusCode, count, r.Threshold)
		}

		if count == r.Threshold {
			r.send(ctx, e.Webhook, failureMessage(e, res))
		}
	}

	return counts
}

// send delivers a notification. Delivery failure is logged and never
// aborts the pass or blocks state persistence.
func (r *Runner) send(ctx context.Context, webhookURL, message string) {
	log.Printf("notify: %s", message)

	if err := r.Notifier.Notify(ctx, webhookURL, message); err != nil {
		log.Printf("notification failed (webhook=%s): %v", webhookURL, err)
	}
}

func failureMessage(e cfg.Entry, res checker.Result) string {
	if res.Reachable {
		// Reachable but the keyword is absent.
		return fmt.Sprintf("⚠️ %q MISSING '%s'", e.URL, e.Keyword)
	}
	return fmt.Sprintf("❌ %q", e.URL)
}

func recoveryMessage(e cfg.Entry) string {
	return fmt.Sprintf("✅ %q", e.URL)
}
