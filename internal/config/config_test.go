package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "data.db", cfg.DBPath)
	assert.Equal(t, "Asia/Dhaka", cfg.Timezone)
	assert.Equal(t, "18:00", cfg.EveningAt)
	assert.Equal(t, "23:50", cfg.CheckinAt)
	assert.Equal(t, "polling", cfg.RunMode)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Dhaka", loc.String())
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadTimes(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("EVENING_AT", "25:00")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadWebhookNeedsBaseURL(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("RUN_MODE", "webhook")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("WEBHOOK_BASE_URL", "https://example.com/")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", cfg.WebhookBase)
	assert.Equal(t, "remindme-hook", cfg.WebhookPath)
}

func TestParseHM(t *testing.T) {
	h, m, err := ParseHM("23:50")
	require.NoError(t, err)
	assert.Equal(t, 23, h)
	assert.Equal(t, 50, m)

	for _, bad := range []string{"", "1800", "18:60", "-1:00", "aa:bb"} {
		_, _, err := ParseHM(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
