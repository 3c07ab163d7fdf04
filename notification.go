package dexscout

import (
	"github.com/raykavin/dexscout/pkg/config"
	"github.com/raykavin/dexscout/pkg/core"
	"github.com/raykavin/dexscout/pkg/notification"
)

// telegramFromEnv reads the Telegram credentials at call time so that each
// run sees the current environment.
func (d *Dexscout) telegramFromEnv() (core.Notifier, error) {
	settings := config.LoadTelegram()

	telegram, err := notification.NewTelegram(settings, d.log, d.telegramOpts...)
	if err != nil {
		return nil, err
	}

	d.log.WithField("chat", settings.ChatID).Debug("telegram notifier ready")
	return telegram, nil
}
