package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (d *discordImpl) GetWebhookURL() string {
	if d.baseURL != "" {
		return d.baseURL
	}
	return fmt.Sprintf(webhookURLTemplate, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  truncate(content, maxDescriptionLen),
		Username: d.config.DefaultUsername,
	})
}

func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []Embed{{
			Title:       options.Title,
			Description: truncate(options.Description, maxDescriptionLen),
			Color:       colorFor(options.Type),
			Timestamp:   ts.Format(time.RFC3339),
			Fields:      options.Fields,
		}},
	})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	fields := []EmbedField{}
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: truncate(err.Error(), 1000)})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
		Fields:      fields,
	})
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       "Bug report",
		Description: "```" + truncate(message, maxDescriptionLen-6) + "```",
	})
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.GetWebhookURL(), bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("discord: build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := d.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		resp.Body.Close()

		if resp.StatusCode < 300 {
			return nil
		}
		lastErr = fmt.Errorf("discord: unexpected status %d", resp.StatusCode)
		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			break
		}
	}

	d.l.Warnf(ctx, "pkg.discord.send: Failed to deliver webhook: %v", lastErr)
	return lastErr
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeError:
		return 0xE74C3C
	case MessageTypeWarning:
		return 0xF1C40F
	default:
		return 0x3498DB
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
