package dexscout

import (
	"fmt"
	"io"
	"os"

	"github.com/raykavin/dexscout/pkg/config"
	"github.com/raykavin/dexscout/pkg/logger"
	"github.com/raykavin/dexscout/pkg/logger/logrus"
	"github.com/raykavin/dexscout/pkg/logger/zerolog"
)

func init() {
	DefaultLog = loadDefaultLog(os.Stderr)
}

// loadDefaultLog builds the logger from environment variables. A bad setting
// falls back to the defaults; the command reports it when it loads its config.
func loadDefaultLog(out io.Writer) logger.Logger {
	cfg, err := config.LoadLog()
	if err == nil {
		var log logger.Logger
		if log, err = NewLogger(out, cfg); err == nil {
			return log
		}
	}

	log, _ := NewLogger(out, defaultLogConfig)
	return log
}

var defaultLogConfig = config.LogConfig{
	Level:      config.DefaultLogLevel,
	TimeFormat: config.DefaultLogTimeFormat,
	Backend:    config.DefaultLogBackend,
}

// NewLogger builds the logger selected by cfg.Backend. Logs go to out, which
// should not be the writer the screen is drawn on.
func NewLogger(out io.Writer, cfg config.LogConfig) (logger.Logger, error) {
	switch cfg.Backend {
	case config.BackendLogrus:
		l, err := logrus.New(out, cfg.Level, cfg.TimeFormat, cfg.Colored, cfg.JSON)
		if err != nil {
			return nil, err
		}
		return l, nil
	case config.BackendZerolog, "":
		l, err := zerolog.New(out, cfg.Level, cfg.TimeFormat, cfg.Colored, cfg.JSON)
		if err != nil {
			return nil, err
		}
		return zerolog.NewAdapter(l), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", cfg.Backend)
	}
}
