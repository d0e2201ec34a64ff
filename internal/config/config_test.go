package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DEVCONNECT_API_URL", "")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	cfg := Load()

	assert.Equal(t, "http://127.0.0.1:8000/api", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.PollInterval())
	assert.Equal(t, 5*time.Minute, cfg.ProjectPollInterval())
	assert.Equal(t, ".devconnect", cfg.SessionPath)
	assert.Equal(t, ".cache", cfg.CachePath)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DEVCONNECT_API_URL", "https://api.devconnect.example/api")
	t.Setenv("TELEGRAM_BOT_TOKEN", "bot-token")
	t.Setenv("TELEGRAM_CHAT_ID", "12345")

	cfg := Load()

	assert.Equal(t, "https://api.devconnect.example/api", cfg.APIBaseURL)
	assert.Equal(t, "bot-token", cfg.TelegramToken)
	assert.Equal(t, int64(12345), cfg.TelegramChatID)
}

func TestLoadYAML(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DEVCONNECT_API_URL", "")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	yaml := `
api_base_url: "http://localhost:9000/api"
keywords:
  - golang
poll_interval_seconds: 10
`
	require.NoError(t, os.Mkdir("configs", 0755))
	require.NoError(t, os.WriteFile("configs/config.yaml", []byte(yaml), 0644))

	cfg := Load()

	assert.Equal(t, "http://localhost:9000/api", cfg.APIBaseURL)
	assert.Equal(t, []string{"golang"}, cfg.Keywords)
	assert.Equal(t, 10*time.Second, cfg.PollInterval())
}
