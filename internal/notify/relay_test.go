package notify

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recordingAlerter struct {
	calls chan string
	err   error
}

func (a *recordingAlerter) Alert(ctx context.Context, title, body string) error {
	a.calls <- title
	return a.err
}

func TestPostPrependsNewestFirst(t *testing.T) {
	r := NewRelay(nil)

	r.Post("first", "a")
	r.Post("second", "b")

	items := r.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 notices, got %d", len(items))
	}
	if items[0].Title != "second" || items[1].Title != "first" {
		t.Fatalf("feed not newest-first: %v", items)
	}
	if items[0].ID == "" || items[0].ID == items[1].ID {
		t.Fatalf("notices need distinct ids: %v", items)
	}
}

func TestAlertDeliveryIsBestEffort(t *testing.T) {
	alerter := &recordingAlerter{calls: make(chan string, 1), err: errors.New("no permission")}
	r := NewRelay(alerter)

	r.Post("welcome", "hello")

	select {
	case title := <-alerter.calls:
		if title != "welcome" {
			t.Fatalf("delivered wrong notice: %q", title)
		}
	case <-time.After(time.Second):
		t.Fatalf("delivery never attempted")
	}

	if r.Len() != 1 {
		t.Fatalf("failed delivery must not touch the feed, got %d items", r.Len())
	}
}

func TestItemsReturnsACopy(t *testing.T) {
	r := NewRelay(nil)
	r.Post("only", "x")

	items := r.Items()
	items[0].Title = "mutated"

	if r.Items()[0].Title != "only" {
		t.Fatalf("Items must hand out a copy")
	}
}
