package core

// Environment keys holding the Telegram credentials
const (
	EnvTelegramToken  = "TELEGRAM_BOT_TOKEN"
	EnvTelegramChatID = "TELEGRAM_CHAT_ID"
)

// TelegramSettings holds configuration for Telegram integration
type TelegramSettings struct {
	Token  string // Telegram bot token
	ChatID string // Numeric chat ID or @channel username
}

// Validate reports every required key that is empty.
func (t TelegramSettings) Validate() error {
	var missing []string
	if t.Token == "" {
		missing = append(missing, EnvTelegramToken)
	}
	if t.ChatID == "" {
		missing = append(missing, EnvTelegramChatID)
	}

	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}
