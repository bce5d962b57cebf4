// internal/notify/notify.go
package notify

import "context"

// Notifier is the delivery-only contract for alerts.
// It receives a formatted message and posts it verbatim.
// No logic, no state, no interpretation.
type Notifier interface {
	Notify(ctx context.Context, webhookURL, message string) error
}
