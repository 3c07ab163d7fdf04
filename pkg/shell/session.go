// Package shell holds the interactive session that runs the fetch, analyze
// and notify sequence and renders its state to a terminal.
package shell

import (
	"context"
	"fmt"

	"github.com/raykavin/dexscout/pkg/core"
	"github.com/raykavin/dexscout/pkg/logger"
	"github.com/raykavin/dexscout/pkg/notification"
)

const (
	StatusReady     = "Ready"
	StatusFetching  = "Fetching token data..."
	StatusAnalyzing = "Analyzing token data..."
	StatusSending   = "Sending Telegram messages..."
	StatusDone      = "Done"
	StatusError     = "Error occurred"
)

// AnalyzeFunc turns a market snapshot into records.
type AnalyzeFunc func(core.MarketResponse) (core.Records, error)

// NotifierFactory builds the notifier for one run. It is called only when
// there is something to send, after the records are displayed.
type NotifierFactory func() (core.Notifier, error)

// Session owns the output area and the status line. Each FetchAndAnalyze call
// is independent of the previous ones.
type Session struct {
	Output string
	Status string

	// LastErr and LastKind describe how the most recent run failed, if it did.
	LastErr  error
	LastKind core.ErrorKind

	fetcher     core.Fetcher
	analyze     AnalyzeFunc
	newNotifier NotifierFactory
	log         logger.Logger
	onChange    func(*Session)
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithOnChange registers a callback fired after every status or output change.
func WithOnChange(fn func(*Session)) SessionOption {
	return func(s *Session) {
		s.onChange = fn
	}
}

// NewSession creates a session in the Ready state around its collaborators.
func NewSession(fetcher core.Fetcher, analyze AnalyzeFunc, newNotifier NotifierFactory, log logger.Logger, options ...SessionOption) *Session {
	s := &Session{
		Status:      StatusReady,
		fetcher:     fetcher,
		analyze:     analyze,
		newNotifier: newNotifier,
		log:         log,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// FetchAndAnalyze runs the whole sequence once. Any failure stops the
// remaining stages and is rendered in the output area.
func (s *Session) FetchAndAnalyze(ctx context.Context) {
	s.LastErr = nil
	s.LastKind = core.KindUnknown

	if err := s.run(ctx); err != nil {
		s.fail(err)
		return
	}

	s.setStatus(StatusDone)
}

func (s *Session) run(ctx context.Context) error {
	s.setStatus(StatusFetching)
	resp, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}

	s.setStatus(StatusAnalyzing)
	records, err := s.analyze(resp)
	if err != nil {
		return err
	}
	s.setOutput(records.String())

	s.setStatus(StatusSending)
	if len(records) == 0 {
		return nil
	}

	notifier, err := s.newNotifier()
	if err != nil {
		return err
	}

	sent, err := notification.NotifyAll(notifier, records)
	s.log.WithFields(map[string]any{
		"records": len(records),
		"sent":    sent,
	}).Info("telegram notifications processed")

	return err
}

func (s *Session) fail(err error) {
	kind := core.KindOf(err)
	s.LastErr = err
	s.LastKind = kind

	s.log.WithError(err).WithField("kind", kind.String()).Error("fetch and analyze failed")

	s.Status = StatusError
	s.setOutput(fmt.Sprintf("Error: %s", err))
}

func (s *Session) setStatus(status string) {
	s.Status = status
	s.changed()
}

func (s *Session) setOutput(output string) {
	s.Output = output
	s.changed()
}

func (s *Session) changed() {
	if s.onChange != nil {
		s.onChange(s)
	}
}
