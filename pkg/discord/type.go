package discord

import (
	"errors"
	"net/http"
	"time"

	"vendor-report-srv/pkg/log"
)

const (
	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"
	maxDescriptionLen  = 4000
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// Config contains configuration for Discord service.
type Config struct {
	Timeout         time.Duration
	RetryCount      int
	RetryDelay      time.Duration
	DefaultUsername string
}

// DefaultConfig returns the default Discord client configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      500 * time.Millisecond,
		DefaultUsername: "vendor-report-srv",
	}
}

type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	config  Config
	client  *http.Client
	baseURL string
}

// MessageType defines different types of messages.
type MessageType string

const (
	MessageTypeInfo    MessageType = "info"
	MessageTypeWarning MessageType = "warning"
	MessageTypeError   MessageType = "error"
)

// EmbedField represents a field in a Discord embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed represents a Discord embed message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// WebhookPayload represents the payload sent to Discord webhook.
type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}

// MessageOptions contains options for creating a message.
type MessageOptions struct {
	Type        MessageType
	Title       string
	Description string
	Fields      []EmbedField
	Timestamp   time.Time
}
