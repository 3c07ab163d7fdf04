package config

import (
	"testing"
	"time"

	"github.com/raykavin/dexscout/pkg/core"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvFetchTimeout, "")
	t.Setenv(EnvLogBackend, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(core.EnvTelegramToken, "")
	t.Setenv(core.EnvTelegramChatID, "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 10*time.Second, cfg.Fetch.Timeout)
	require.Equal(t, DefaultLogLevel, cfg.Log.Level)
	require.Equal(t, BackendZerolog, cfg.Log.Backend)
	require.Empty(t, cfg.Telegram.Token)
	require.Error(t, cfg.Telegram.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv(EnvFetchTimeout, "1m30s")
	t.Setenv(EnvLogBackend, BackendLogrus)
	t.Setenv(EnvLogJSON, "true")
	t.Setenv(core.EnvTelegramToken, "123:abc")
	t.Setenv(core.EnvTelegramChatID, "@dexalerts")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 90*time.Second, cfg.Fetch.Timeout)
	require.Equal(t, BackendLogrus, cfg.Log.Backend)
	require.True(t, cfg.Log.JSON)
	require.Equal(t, core.TelegramSettings{Token: "123:abc", ChatID: "@dexalerts"}, cfg.Telegram)
	require.NoError(t, cfg.Telegram.Validate())
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv(EnvFetchTimeout, "soon")
	_, err := Load()
	require.ErrorContains(t, err, EnvFetchTimeout)

	t.Setenv(EnvFetchTimeout, "0s")
	_, err = Load()
	require.Error(t, err)
}

func TestLoadLog_InvalidBackend(t *testing.T) {
	t.Setenv(EnvLogBackend, "syslog")
	_, err := LoadLog()
	require.ErrorContains(t, err, "syslog")
}

func TestLoadTelegram_ReadsAtCallTime(t *testing.T) {
	t.Setenv(core.EnvTelegramToken, "")
	t.Setenv(core.EnvTelegramChatID, "42")
	require.Empty(t, LoadTelegram().Token)

	t.Setenv(core.EnvTelegramToken, "123:abc")
	require.Equal(t, "123:abc", LoadTelegram().Token)
}
