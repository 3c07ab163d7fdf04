// Package notification delivers analyzed records to messaging services
package notification

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/raykavin/dexscout/pkg/core"
	"github.com/raykavin/dexscout/pkg/logger"
	tb "gopkg.in/tucnak/telebot.v2"
)

// chatRecipient addresses a chat by numeric ID or @channel username.
type chatRecipient string

func (c chatRecipient) Recipient() string {
	return string(c)
}

// Telegram implements core.Notifier on top of the Bot API
type Telegram struct {
	client     *tb.Bot
	chat       tb.Recipient
	token      string
	apiURL     string
	httpClient *http.Client
	log        logger.Logger
}

// Option is a function that configures a Telegram instance
type Option func(telegram *Telegram)

// WithAPIURL overrides the Bot API base URL.
func WithAPIURL(url string) Option {
	return func(telegram *Telegram) {
		telegram.apiURL = url
	}
}

// WithHTTPClient sets the HTTP client used for Bot API calls.
func WithHTTPClient(client *http.Client) Option {
	return func(telegram *Telegram) {
		telegram.httpClient = client
	}
}

// NewTelegram validates the settings and creates the bot client. The bot is
// created offline, so nothing goes over the network until Notify.
func NewTelegram(settings core.TelegramSettings, log logger.Logger, options ...Option) (*Telegram, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	telegram := &Telegram{
		chat:  chatRecipient(settings.ChatID),
		token: settings.Token,
		log:   log,
	}

	for _, option := range options {
		option(telegram)
	}

	client, err := tb.NewBot(tb.Settings{
		URL:     telegram.apiURL,
		Token:   settings.Token,
		Client:  telegram.httpClient,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	telegram.client = client
	return telegram, nil
}

// Notify sends one plain-text message for the record.
func (t *Telegram) Notify(record core.Record) error {
	message, err := t.client.Send(t.chat, FormatMessage(record))
	if err != nil {
		return &core.DeliveryError{Token: record.Name, Err: t.redact(err)}
	}

	t.log.WithFields(map[string]any{
		"token":      record.Name,
		"message_id": message.ID,
	}).Debug("telegram message sent")

	return nil
}

// redact strips the bot token from transport errors, whose text carries the
// full /bot<token>/method URL.
func (t *Telegram) redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = fmt.Errorf("telebot: %s: %w", urlErr.Op, urlErr.Err)
	}

	if t.token == "" || !strings.Contains(err.Error(), t.token) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), t.token, "<redacted>"))
}

// FormatMessage renders the three-line notification text.
func FormatMessage(record core.Record) string {
	return fmt.Sprintf("Token: %s\nCA: %s\nDescription: %s", record.Name, record.ContractAddress, record.Description)
}

// NotifyAll sends records one after another and stops at the first failure.
// It returns how many records were delivered.
func NotifyAll(notifier core.Notifier, records core.Records) (int, error) {
	for i, record := range records {
		if err := notifier.Notify(record); err != nil {
			return i, err
		}
	}
	return len(records), nil
}
