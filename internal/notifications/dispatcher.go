package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/folio-dev/folio/internal/contact"
)

// Dispatcher delivers notifications to webhook subscribers in the
// background.
type Dispatcher struct {
	webhooks []string
	client   *http.Client
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// NewDispatcher creates a Dispatcher posting to every url in webhooks.
func NewDispatcher(webhooks []string, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		webhooks: webhooks,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Notify implements contact.Notifier. It never blocks the caller.
func (d *Dispatcher) Notify(sub contact.Submission) {
	if len(d.webhooks) == 0 {
		return
	}
	n := FromSubmission(sub)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := d.Dispatch(ctx, n); err != nil {
			d.logger.Warn("contact notification failed", "id", n.ID, "error", err)
		}
	}()
}

// Wait blocks until every pending delivery has finished.
func (d *Dispatcher) Wait() { d.wg.Wait() }

// FromSubmission builds the notification for a stored message.
func FromSubmission(sub contact.Submission) Notification {
	return Notification{
		ID:        sub.ID,
		Kind:      KindContactReceived,
		Title:     sub.Subject,
		Message:   sub.Message,
		From:      sub.Name,
		ReplyTo:   sub.Email,
		CreatedAt: sub.Timestamp,
	}
}

// Dispatch sends n to every webhook and returns the first failure, after
// trying them all.
func (d *Dispatcher) Dispatch(ctx context.Context, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}
	var first error
	for _, url := range d.webhooks {
		if err := d.SendWebhook(ctx, url, payload); err != nil {
			d.logger.Debug("webhook delivery failed", "url", url, "error", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// SendWebhook POSTs payload to the given URL.
func (d *Dispatcher) SendWebhook(ctx context.Context, url string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
