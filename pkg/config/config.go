// Package config loads dexscout settings from the environment using Viper
package config

import (
	"fmt"
	"time"

	"github.com/raykavin/dexscout/pkg/core"
	"github.com/spf13/viper"
	"github.com/xhit/go-str2duration/v2"
)

// Environment variable names
const (
	EnvLogLevel      = "DEXSCOUT_LOG_LEVEL"
	EnvLogTimeFormat = "DEXSCOUT_LOG_TIME_FORMAT"
	EnvLogColor      = "DEXSCOUT_LOG_COLOR"
	EnvLogJSON       = "DEXSCOUT_LOG_JSON"
	EnvLogBackend    = "DEXSCOUT_LOG_BACKEND"
	EnvFetchTimeout  = "DEXSCOUT_FETCH_TIMEOUT"
)

// Default configuration values
const (
	DefaultLogLevel      = "info"
	DefaultLogTimeFormat = "2006-01-02 15:04:05"
	DefaultLogBackend    = BackendZerolog
	DefaultFetchTimeout  = "10s"
)

const (
	BackendZerolog = "zerolog"
	BackendLogrus  = "logrus"
)

// AppConfig holds the application configuration
type AppConfig struct {
	Fetch    FetchConfig
	Telegram core.TelegramSettings
	Log      LogConfig
}

// FetchConfig holds the market data request settings
type FetchConfig struct {
	Timeout time.Duration
}

// LogConfig holds the logger settings
type LogConfig struct {
	Level      string
	TimeFormat string
	Colored    bool
	JSON       bool
	Backend    string
}

// Load reads the whole configuration from the environment.
func Load() (*AppConfig, error) {
	v := newViper()

	fetch, err := fetchConfig(v)
	if err != nil {
		return nil, err
	}

	log, err := logConfig(v)
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		Fetch:    fetch,
		Telegram: telegramSettings(v),
		Log:      log,
	}, nil
}

// LoadTelegram reads only the Telegram credentials. Values are not validated here.
func LoadTelegram() core.TelegramSettings {
	return telegramSettings(newViper())
}

// LoadLog reads only the logger settings.
func LoadLog() (LogConfig, error) {
	return logConfig(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(EnvLogLevel, DefaultLogLevel)
	v.SetDefault(EnvLogTimeFormat, DefaultLogTimeFormat)
	v.SetDefault(EnvLogColor, true)
	v.SetDefault(EnvLogJSON, false)
	v.SetDefault(EnvLogBackend, DefaultLogBackend)
	v.SetDefault(EnvFetchTimeout, DefaultFetchTimeout)

	return v
}

func telegramSettings(v *viper.Viper) core.TelegramSettings {
	return core.TelegramSettings{
		Token:  v.GetString(core.EnvTelegramToken),
		ChatID: v.GetString(core.EnvTelegramChatID),
	}
}

func fetchConfig(v *viper.Viper) (FetchConfig, error) {
	raw := v.GetString(EnvFetchTimeout)
	timeout, err := str2duration.ParseDuration(raw)
	if err != nil {
		return FetchConfig{}, fmt.Errorf("invalid %s %q: %w", EnvFetchTimeout, raw, err)
	}
	if timeout <= 0 {
		return FetchConfig{}, fmt.Errorf("invalid %s %q: must be positive", EnvFetchTimeout, raw)
	}

	return FetchConfig{Timeout: timeout}, nil
}

func logConfig(v *viper.Viper) (LogConfig, error) {
	cfg := LogConfig{
		Level:      v.GetString(EnvLogLevel),
		TimeFormat: v.GetString(EnvLogTimeFormat),
		Colored:    v.GetBool(EnvLogColor),
		JSON:       v.GetBool(EnvLogJSON),
		Backend:    v.GetString(EnvLogBackend),
	}

	switch cfg.Backend {
	case BackendZerolog, BackendLogrus:
		return cfg, nil
	default:
		return LogConfig{}, fmt.Errorf("invalid %s %q: expected %s or %s",
			EnvLogBackend, cfg.Backend, BackendZerolog, BackendLogrus)
	}
}
