// internal/notify/discord.go
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Discord posts messages to Discord webhook URLs.
// Delivery failures are the caller's problem to log; they are never
// retried here.
type Discord struct {
	client *http.Client
}

type discordPayload struct {
	Content string `json:"content"`
}

func NewDiscord(timeout time.Duration) *Discord {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Discord{
		client: &http.Client{Timeout: timeout},
	}
}

// Notify POSTs {"content": message} to the webhook URL.
// Any non-2xx response is an error.
func (d *Discord) Notify(ctx context.Context, webhookURL, message string) error {
	if webhookURL == "" {
		return errors.New("discord: webhook url required")
	}

	body, err := json.Marshal(discordPayload{Content: message})
	if err != nil {
		return fmt.Errorf("discord: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("discord: webhook returned %s", resp.Status)
	}

	return nil
}
