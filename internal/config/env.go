package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	APIBase       string
	HTTPTimeout   time.Duration
	Home          string
	AlertProvider string
	TelegramToken string
	TelegramChat  int64
}

func LoadEnv() Env {
	apiBase := strings.TrimSpace(os.Getenv("RUSTOUR_API_BASE"))
	if apiBase == "" {
		apiBase = "http://localhost:5281/api"
	}
	apiBase = strings.TrimRight(apiBase, "/")

	timeout := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("RUSTOUR_HTTP_TIMEOUT")); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	home := strings.TrimSpace(os.Getenv("RUSTOUR_HOME"))
	if home == "" {
		if dir, err := os.UserHomeDir(); err == nil {
			home = filepath.Join(dir, ".rustour")
		}
	}

	var chatID int64
	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			chatID = id
		}
	}

	return Env{
		APIBase:       apiBase,
		HTTPTimeout:   timeout,
		Home:          home,
		AlertProvider: strings.TrimSpace(os.Getenv("RUSTOUR_ALERT_PROVIDER")),
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		TelegramChat:  chatID,
	}
}
