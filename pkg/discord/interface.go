package discord

import (
	"context"

	"vendor-report-srv/pkg/log"
)

// IDiscord sends operational alerts to a Discord webhook.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendEmbed(ctx context.Context, options MessageOptions) error
	SendError(ctx context.Context, title, description string, err error) error
	ReportBug(ctx context.Context, message string) error
	GetWebhookURL() string
}

// DiscordWebhook contains webhook information for Discord API.
type DiscordWebhook struct {
	ID    string
	Token string
}

// New creates a new Discord service.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	cfg := DefaultConfig()
	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  cfg,
		client:  newHTTPClient(cfg.Timeout),
	}, nil
}
