// Package logrus adapts sirupsen/logrus to logger.Logger.
package logrus

import (
	"io"

	"github.com/raykavin/dexscout/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Adapter wraps a logrus entry to implement logger.Logger.
type Adapter struct {
	*logrus.Entry
}

// New creates a logrus-backed logger writing text (or JSON) entries to out.
func New(out io.Writer, level, dateTimeLayout string, colored, jsonFormat bool) (*Adapter, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(parsed)

	if jsonFormat {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: dateTimeLayout})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: dateTimeLayout,
			ForceColors:     colored,
			DisableColors:   !colored,
		})
	}

	return &Adapter{logrus.NewEntry(l)}, nil
}

// WithField implements logger.Logger.
func (a *Adapter) WithField(key string, value any) logger.Logger {
	return &Adapter{a.Entry.WithField(key, value)}
}

// WithFields implements logger.Logger.
func (a *Adapter) WithFields(fields map[string]any) logger.Logger {
	return &Adapter{a.Entry.WithFields(logrus.Fields(fields))}
}

// WithError implements logger.Logger.
func (a *Adapter) WithError(err error) logger.Logger {
	return &Adapter{a.Entry.WithError(err)}
}

// SetLevel implements logger.Logger.
func (a *Adapter) SetLevel(level logger.Level) {
	a.Entry.Logger.SetLevel(toLogrusLevel(level))
}

// GetLevel implements logger.Logger.
func (a *Adapter) GetLevel() logger.Level {
	switch a.Entry.Logger.GetLevel() {
	case logrus.TraceLevel:
		return logger.TraceLevel
	case logrus.DebugLevel:
		return logger.DebugLevel
	case logrus.InfoLevel:
		return logger.InfoLevel
	case logrus.WarnLevel:
		return logger.WarnLevel
	case logrus.ErrorLevel:
		return logger.ErrorLevel
	case logrus.FatalLevel:
		return logger.FatalLevel
	case logrus.PanicLevel:
		return logger.PanicLevel
	default:
		return logger.NoLevel
	}
}

// logrus has no disabled level; PanicLevel is the quietest it offers.
func toLogrusLevel(level logger.Level) logrus.Level {
	switch level {
	case logger.TraceLevel:
		return logrus.TraceLevel
	case logger.DebugLevel:
		return logrus.DebugLevel
	case logger.InfoLevel, logger.NoLevel:
		return logrus.InfoLevel
	case logger.WarnLevel:
		return logrus.WarnLevel
	case logger.ErrorLevel:
		return logrus.ErrorLevel
	case logger.FatalLevel:
		return logrus.FatalLevel
	default:
		return logrus.PanicLevel
	}
}
