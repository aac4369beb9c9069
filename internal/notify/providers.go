package notify

import (
	"context"
	"log"

	"rustour/internal/config"
)

// Alerter delivers one platform-level alert.
type Alerter interface {
	Alert(ctx context.Context, title, body string) error
}

// NewAlerter picks the delivery provider from the environment. Unknown or
// misconfigured providers fall back to the log provider.
func NewAlerter(env config.Env) Alerter {
	switch env.AlertProvider {
	case "", "log":
		return logAlerter{}
	case "noop":
		return noopAlerter{}
	case "telegram":
		tg, err := NewTelegramAlerter(env.TelegramToken, env.TelegramChat)
		if err != nil {
			log.Printf("telegram alerter unavailable, using log provider: %v", err)
			return logAlerter{}
		}
		return tg
	default:
		return logAlerter{}
	}
}

type logAlerter struct{}

func (logAlerter) Alert(ctx context.Context, title, body string) error {
	log.Printf("alert: %s: %s", title, body)
	return nil
}

type noopAlerter struct{}

func (noopAlerter) Alert(ctx context.Context, title, body string) error {
	return nil
}
