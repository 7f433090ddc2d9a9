package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Poster interface {
	Post(ctx context.Context, url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error)
}

// WebhookSender posts each message as JSON to a fixed URL, retrying
// transport errors and 5xx responses.
type WebhookSender struct {
	client  Poster
	url     string
	retries int
	backoff time.Duration
}

func NewWebhookSender(client Poster, url string) *WebhookSender {
	return &WebhookSender{
		client:  client,
		url:     url,
		retries: 3,
		backoff: 500 * time.Millisecond,
	}
}

func (w *WebhookSender) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	headers := http.Header{"Content-Type": []string{"application/json"}}

	var lastErr error
	for attempt := 0; attempt < w.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(w.backoff * time.Duration(attempt)):
			}
		}

		status, _, err := w.client.Post(ctx, w.url, headers, body)
		switch {
		case err != nil:
			lastErr = err
		case status >= http.StatusInternalServerError:
			lastErr = fmt.Errorf("webhook responded with status %d", status)
		case status >= http.StatusBadRequest:
			return fmt.Errorf("webhook rejected notification with status %d", status)
		default:
			return nil
		}
	}
	return lastErr
}
