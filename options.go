package dexscout

import (
	"io"
	"time"

	"github.com/raykavin/dexscout/pkg/core"
	"github.com/raykavin/dexscout/pkg/logger"
	"github.com/raykavin/dexscout/pkg/notification"
	"github.com/raykavin/dexscout/pkg/shell"
)

// Option is a functional option for configuring a Dexscout instance
type Option func(*Dexscout)

// WithLogger replaces DefaultLog for this instance
func WithLogger(log logger.Logger) Option {
	return func(app *Dexscout) {
		app.log = log
	}
}

// WithFetcher replaces the DEX Screener client
func WithFetcher(fetcher core.Fetcher) Option {
	return func(app *Dexscout) {
		app.fetcher = fetcher
	}
}

// WithFetchTimeout bounds the market data request of the default client
func WithFetchTimeout(timeout time.Duration) Option {
	return func(app *Dexscout) {
		if timeout > 0 {
			app.fetchTimeout = timeout
		}
	}
}

// WithNotifierFactory replaces the environment based Telegram notifier
func WithNotifierFactory(factory shell.NotifierFactory) Option {
	return func(app *Dexscout) {
		app.newNotifier = factory
	}
}

// WithTelegramOptions passes options to every Telegram notifier created from the environment
func WithTelegramOptions(options ...notification.Option) Option {
	return func(app *Dexscout) {
		app.telegramOpts = append(app.telegramOpts, options...)
	}
}

// WithOutput sets where the screen is drawn, stdout by default
func WithOutput(out io.Writer) Option {
	return func(app *Dexscout) {
		app.out = out
	}
}

// WithScreenOptions configures the terminal screen
func WithScreenOptions(options ...shell.ScreenOption) Option {
	return func(app *Dexscout) {
		app.screenOptions = append(app.screenOptions, options...)
	}
}
