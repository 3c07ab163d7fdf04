// Package dexscout wires the DEX Screener fetcher, the analyzer and the
// Telegram notifier behind an interactive terminal session.
package dexscout

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/raykavin/dexscout/pkg/analyzer"
	"github.com/raykavin/dexscout/pkg/core"
	"github.com/raykavin/dexscout/pkg/logger"
	"github.com/raykavin/dexscout/pkg/market"
	"github.com/raykavin/dexscout/pkg/notification"
	"github.com/raykavin/dexscout/pkg/shell"
)

// DefaultLog is the default logger instance
var DefaultLog logger.Logger

// Dexscout is the assembled application
type Dexscout struct {
	log          logger.Logger
	fetcher      core.Fetcher
	fetchTimeout time.Duration
	newNotifier  shell.NotifierFactory
	telegramOpts []notification.Option

	out           io.Writer
	screenOptions []shell.ScreenOption

	session *shell.Session
	screen  *shell.Screen
}

// New creates the application. Without options it queries the public
// DEX Screener endpoint and reads Telegram credentials from the environment
// on every run.
func New(options ...Option) *Dexscout {
	app := &Dexscout{
		log:          DefaultLog,
		fetchTimeout: market.DefaultTimeout,
		out:          os.Stdout,
	}

	for _, option := range options {
		option(app)
	}

	if app.fetcher == nil {
		app.fetcher = market.NewClient(app.log, market.WithTimeout(app.fetchTimeout))
	}

	if app.newNotifier == nil {
		app.newNotifier = app.telegramFromEnv
	}

	app.screen = shell.NewScreen(app.out, app.screenOptions...)
	app.session = shell.NewSession(
		app.fetcher,
		analyzer.Analyze,
		app.newNotifier,
		app.log,
		shell.WithOnChange(app.screen.Draw),
	)

	return app
}

// Session exposes the current session state.
func (d *Dexscout) Session() *shell.Session {
	return d.session
}

// FetchAndAnalyze performs a single run, as if the action was triggered once.
func (d *Dexscout) FetchAndAnalyze(ctx context.Context) {
	d.session.FetchAndAnalyze(ctx)
}

// Run starts the interactive loop reading commands from in.
func (d *Dexscout) Run(ctx context.Context, in io.Reader) error {
	d.log.WithField("endpoint", market.DefaultEndpoint).Info("dexscout started")
	defer d.log.Info("dexscout stopped")

	return shell.Run(ctx, d.session, d.screen, in)
}
