package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration, read from the environment.
// main loads .env first via godotenv, so a local file works too.
type Config struct {
	Token string

	DBPath   string
	Timezone string

	// Local wall-clock times, "HH:MM".
	EveningAt string
	CheckinAt string

	RunMode     string // "polling" or "webhook"
	Port        string
	WebhookBase string
	WebhookPath string
}

func Load() (Config, error) {
	cfg := Config{
		Token:       strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		DBPath:      envOr("DB_PATH", "data.db"),
		Timezone:    envOr("BOT_TZ", "Asia/Dhaka"),
		EveningAt:   envOr("EVENING_AT", "18:00"),
		CheckinAt:   envOr("CHECKIN_AT", "23:50"),
		RunMode:     strings.ToLower(envOr("RUN_MODE", "polling")),
		Port:        envOr("PORT", "8000"),
		WebhookBase: strings.TrimRight(os.Getenv("WEBHOOK_BASE_URL"), "/"),
		WebhookPath: strings.Trim(envOr("WEBHOOK_PATH", "remindme-hook"), "/"),
	}

	if cfg.Token == "" {
		return cfg, fmt.Errorf("missing BOT_TOKEN")
	}
	if _, _, err := ParseHM(cfg.EveningAt); err != nil {
		return cfg, fmt.Errorf("EVENING_AT: %w", err)
	}
	if _, _, err := ParseHM(cfg.CheckinAt); err != nil {
		return cfg, fmt.Errorf("CHECKIN_AT: %w", err)
	}
	if cfg.RunMode == "webhook" && cfg.WebhookBase == "" {
		return cfg, fmt.Errorf("missing WEBHOOK_BASE_URL")
	}
	return cfg, nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// ParseHM splits a "HH:MM" wall-clock time.
func ParseHM(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want HH:MM, got %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("bad hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("bad minute in %q", s)
	}
	return hour, minute, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
