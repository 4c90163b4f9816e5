// Package social posts rendered puzzles to bot-style JSON endpoints
// (Telegram sendMessage and compatible APIs).
package social

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"svw.info/puzzlefeed/internal/config"
	"svw.info/puzzlefeed/internal/ctxlog"
)

// BotPoster publishes text posts to one configured endpoint.
type BotPoster struct {
	client   *resty.Client
	platform string
	endpoint string
	chatID   string
}

// NewBotPoster builds a poster for one social config entry.
func NewBotPoster(cfg config.Social) *BotPoster {
	c := resty.New().
		SetTimeout(15*time.Second).
		SetHeader("Content-Type", "application/json")
	if cfg.Token != "" {
		c.SetAuthToken(cfg.Token)
	}
	return &BotPoster{
		client:   c,
		platform: cfg.Platform,
		endpoint: cfg.Endpoint,
		chatID:   cfg.ChatID,
	}
}

// Close releases the underlying HTTP client.
func (p *BotPoster) Close() error { return p.client.Close() }

type sendMessage struct {
	ChatID string `json:"chat_id,omitempty"`
	Text   string `json:"text"`
}

// Post sends text to the endpoint. Non-2xx responses are errors; the caller
// decides whether a failed post is fatal.
func (p *BotPoster) Post(ctx context.Context, text string) error {
	res, err := p.client.R().
		SetContext(ctx).
		SetBody(sendMessage{ChatID: p.chatID, Text: text}).
		Post(p.endpoint)
	if err != nil {
		return fmt.Errorf("post to %s: %w", p.platform, err)
	}
	if res.IsError() {
		return fmt.Errorf("post to %s: status %d", p.platform, res.StatusCode())
	}
	ctxlog.FromContext(ctx).Info("posted", "platform", p.platform, "status", res.StatusCode())
	return nil
}

// TestConnection sends a zero-length probe so dashboards can verify
// credentials without publishing anything visible.
func (p *BotPoster) TestConnection(ctx context.Context) error {
	res, err := p.client.R().
		SetContext(ctx).
		SetBody(sendMessage{ChatID: p.chatID}).
		Post(p.endpoint)
	if err != nil {
		return fmt.Errorf("test %s: %w", p.platform, err)
	}
	// Many bot APIs reject an empty text with 400 while still proving the
	// endpoint and auth are reachable; only 401/403/404 mean misconfiguration.
	switch res.StatusCode() {
	case 401, 403, 404:
		return fmt.Errorf("test %s: status %d", p.platform, res.StatusCode())
	}
	return nil
}
