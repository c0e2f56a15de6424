// Package discord delivers formatted messages to a Discord webhook.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=webhook.go -destination=../mocks/discord/mock_notifier.go -package=mock_discord

// Notifier delivers a formatted message.
type Notifier interface {
	Send(ctx context.Context, message string) error
}

var ErrEmptyMessage = errors.New("message is empty")

const defaultTimeout = 10 * time.Second

// NewNotifier returns a webhook-backed Notifier, or a noop one when no
// webhook URL is configured.
func NewNotifier(webhookURL string, timeout time.Duration, limit int) Notifier {
	webhookURL = strings.TrimSpace(webhookURL)
	if webhookURL == "" {
		return noopNotifier{}
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &WebhookClient{
		httpClient: resty.New().SetTimeout(timeout),
		url:        webhookURL,
		limit:      limit,
	}
}

type noopNotifier struct{}

func (noopNotifier) Send(ctx context.Context, message string) error {
	slog.Default().Debug("no webhook configured, skipping delivery")
	return nil
}

// WebhookClient posts messages to a Discord webhook.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
	limit      int
}

type webhookPayload struct {
	Content string `json:"content"`
}

// Send posts message, split into consecutive posts when it exceeds the limit.
func (c *WebhookClient) Send(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}

	chunks := SplitMessage(message, c.limit)
	for i, chunk := range chunks {
		if err := c.post(ctx, chunk); err != nil {
			return fmt.Errorf("post part %d of %d > %w", i+1, len(chunks), err)
		}
	}
	slog.Default().Debug("delivered message to webhook", "parts", len(chunks))
	return nil
}

func (c *WebhookClient) post(ctx context.Context, content string) error {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(webhookPayload{Content: content}).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("client.R.Post > %w", err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return nil
}
