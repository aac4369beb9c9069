// Package notify keeps the in-memory notification feed and forwards each
// notice to a platform alerter, best-effort.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"rustour/internal/domain/models"
	"rustour/internal/utils"
)

// Relay holds user-facing notices newest-first. Posting mutates the list
// synchronously; platform delivery runs detached and its errors never touch
// the list.
type Relay struct {
	mu      sync.Mutex
	items   []models.Notification
	alerter Alerter
}

func NewRelay(alerter Alerter) *Relay {
	return &Relay{alerter: alerter}
}

// Post prepends a notice and kicks off delivery. The stored record is
// returned so callers can reference its ID.
func (r *Relay) Post(title, body string) models.Notification {
	n := models.Notification{
		ID:    uuid.NewString(),
		Title: title,
		Body:  body,
		Date:  utils.NowUTC(),
	}

	r.mu.Lock()
	r.items = append([]models.Notification{n}, r.items...)
	r.mu.Unlock()

	go r.deliver(n)
	return n
}

func (r *Relay) deliver(n models.Notification) {
	if r.alerter == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.alerter.Alert(ctx, n.Title, n.Body); err != nil {
		utils.LogEvent("", "notify", "alert", "delivery failed: "+err.Error())
	}
}

// Items returns a copy of the feed, newest first.
func (r *Relay) Items() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Notification, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Relay) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
