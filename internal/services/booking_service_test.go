package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"rustour/internal/api"
	"rustour/internal/api/apitest"
	"rustour/internal/domain/models"
	"rustour/internal/notify"
)

func searchCriteria(city string) models.SearchCriteria {
	return models.SearchCriteria{City: city, Adults: 1}
}

func newBookingFixture(t *testing.T) (*apitest.Server, *notify.Relay, *BookingService) {
	t.Helper()

	srv := apitest.New()
	t.Cleanup(srv.Close)
	srv.AddUser("Ivan", "Petrov", "a@b.com", "pw", "User")

	client := api.New(srv.Base(), 5*time.Second)
	client.TokenSource = func() string {
		return apitest.IssueToken("a@b.com", "User", time.Hour)
	}
	relay := notify.NewRelay(nil)
	return srv, relay, NewBookingService(client, relay)
}

func TestCreatePostsConfirmationNotice(t *testing.T) {
	srv, relay, svc := newBookingFixture(t)

	tour := models.Tour{ID: 7, Title: "Paris Getaway", PricePerAdult: 100, PricePerChild: 50}
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	if err := svc.Create(context.Background(), tour, date, 2, 1, 3); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(srv.LastBookingBody), &body); err != nil {
		t.Fatalf("booking body not JSON: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("party size and price must never reach the wire: %v", body)
	}

	items := relay.Items()
	if len(items) != 1 {
		t.Fatalf("expected one confirmation notice, got %d", len(items))
	}
	if !strings.Contains(items[0].Body, "Paris Getaway") || !strings.Contains(items[0].Body, "Jun 1, 2024") {
		t.Fatalf("notice should carry the title and a human date: %q", items[0].Body)
	}
}

func TestCreateFailurePostsNothing(t *testing.T) {
	srv, relay, svc := newBookingFixture(t)
	srv.BookingStatus = http.StatusConflict

	err := svc.Create(context.Background(), models.Tour{ID: 7}, time.Now(), 1, 0, 0)
	if err == nil {
		t.Fatalf("Create should fail")
	}
	if relay.Len() != 0 {
		t.Fatalf("no notice on failure, got %d", relay.Len())
	}
}

func TestQuoteIsClientSideOnly(t *testing.T) {
	_, _, svc := newBookingFixture(t)

	tour := models.Tour{PricePerAdult: 100, PricePerChild: 50}
	if got := svc.Quote(tour, 2, 1); got != 250 {
		t.Fatalf("quote wrong: %v", got)
	}
}

func TestLoadMyFailureKeepsPreviousList(t *testing.T) {
	srv, _, svc := newBookingFixture(t)
	srv.BookingsBody = `[{"id": 1, "tour": {"id": 2, "title": "T"}, "bookingDate": "2024-05-01T10:00:00"}]`

	svc.LoadMy(context.Background())
	if len(svc.Bookings()) != 1 {
		t.Fatalf("expected 1 booking after first load")
	}

	srv.BookingsStatus = http.StatusInternalServerError
	srv.BookingsBody = "boom"

	svc.LoadMy(context.Background())
	if len(svc.Bookings()) != 1 {
		t.Fatalf("failed refresh must keep the previous list")
	}
}
