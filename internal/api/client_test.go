package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rustour/internal/api/apitest"
	"rustour/internal/domain"
	"rustour/internal/domain/models"
)

func newTestClient(srv *apitest.Server) *Client {
	return New(srv.Base(), 5*time.Second)
}

func authedClient(srv *apitest.Server, email, role string) *Client {
	c := newTestClient(srv)
	c.TokenSource = func() string {
		return apitest.IssueToken(email, role, time.Hour)
	}
	return c
}

func TestLoginTokenShapes(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.AddUser("Ivan", "Petrov", "a@b.com", "pw", "User")

	for _, shape := range []apitest.TokenShape{apitest.TokenJSON, apitest.TokenRaw, apitest.TokenQuoted} {
		srv.TokenShape = shape
		token, err := newTestClient(srv).Login(context.Background(), "a@b.com", "pw")
		if err != nil {
			t.Fatalf("login failed for shape %d: %v", shape, err)
		}
		if token == "" {
			t.Fatalf("empty token for shape %d", shape)
		}
		if strings.Contains(token, `"`) || strings.Contains(token, "{") {
			t.Fatalf("token not cleaned for shape %d: %q", shape, token)
		}
	}
}

func TestLoginRejectionCarriesServerMessage(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.AddUser("Ivan", "Petrov", "a@b.com", "pw", "User")

	_, err := newTestClient(srv).Login(context.Background(), "a@b.com", "wrong")
	if !domain.IsAuth(err) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if err.Error() != "Invalid credentials" {
		t.Fatalf("server message not carried through: %q", err.Error())
	}
}

func TestToursDecodesSnakeCaseKeys(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.AddUser("Ivan", "Petrov", "a@b.com", "pw", "User")
	srv.ToursBody = `[{
		"id": 1,
		"title": "Paris Getaway",
		"country": "France",
		"image_url": "http://img/1.jpg",
		"rating_value": 4.5,
		"rating_count": 120,
		"duration_days": 7,
		"price_per_adult": 100,
		"price_per_child": 50,
		"available_dates": [{"id": 9, "tour_id": 1, "date": "2024-06-01T00:00:00Z"}]
	}]`

	tours, err := authedClient(srv, "a@b.com", "User").Tours(context.Background())
	if err != nil {
		t.Fatalf("Tours failed: %v", err)
	}
	if len(tours) != 1 {
		t.Fatalf("expected 1 tour, got %d", len(tours))
	}

	tour := tours[0]
	if tour.ImageURL != "http://img/1.jpg" || tour.RatingValue != 4.5 || tour.PricePerAdult != 100 {
		t.Fatalf("snake_case fields not mapped: %+v", tour)
	}
	if len(tour.AvailableDates) != 1 || tour.AvailableDates[0].TourID != 1 {
		t.Fatalf("nested snake_case fields not mapped: %+v", tour.AvailableDates)
	}
	if tour.Rooms == nil || tour.Services == nil {
		t.Fatalf("absent list fields should default to empty, got %+v", tour)
	}
}

func TestSearchFailureCarriesMessage(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.SearchStatus = http.StatusBadGateway
	srv.SearchBody = "search backend down"

	_, err := newTestClient(srv).SearchTours(context.Background(), models.SearchCriteria{City: "Paris", Adults: 1})
	if !domain.IsSearch(err) {
		t.Fatalf("expected SearchError, got %v", err)
	}
	if err.Error() != "search backend down" {
		t.Fatalf("server message not carried: %q", err.Error())
	}
}

func TestMyBookingsToleratesBothDateFormats(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.AddUser("Ivan", "Petrov", "a@b.com", "pw", "User")
	srv.BookingsBody = `[
		{"id": 1, "tour": {"id": 2, "title": "T"}, "bookingDate": "2024-05-01T10:00:00.123Z"},
		{"id": 2, "tour": {"id": 2, "title": "T"}, "bookingDate": "2024-05-01T10:00:00"}
	]`

	bookings, err := authedClient(srv, "a@b.com", "User").MyBookings(context.Background())
	if err != nil {
		t.Fatalf("MyBookings failed: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}

	a := bookings[0].BookingDate.Truncate(time.Second)
	b := bookings[1].BookingDate.Time
	if !a.Equal(b) {
		t.Fatalf("both formats should land on the same moment: %v vs %v", a, b)
	}
}

func TestMyBookingsBadDateNamesTheString(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.AddUser("Ivan", "Petrov", "a@b.com", "pw", "User")
	srv.BookingsBody = `[{"id": 1, "tour": {"id": 2, "title": "T"}, "bookingDate": "not-a-date"}]`

	_, err := authedClient(srv, "a@b.com", "User").MyBookings(context.Background())
	if !domain.IsDecode(err) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if !strings.Contains(err.Error(), "not-a-date") {
		t.Fatalf("error should reference the offending string: %q", err.Error())
	}
}

func TestCreateBookingBodyIsPassThrough(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.AddUser("Ivan", "Petrov", "a@b.com", "pw", "User")

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	err := authedClient(srv, "a@b.com", "User").CreateBooking(context.Background(), 7, date)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(srv.LastBookingBody), &body); err != nil {
		t.Fatalf("booking body not JSON: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("booking body must carry exactly tourId and bookingDate, got %v", body)
	}
	if body["tourId"] != float64(7) {
		t.Fatalf("tourId wrong: %v", body["tourId"])
	}
	if body["bookingDate"] != "2024-06-01T00:00:00Z" {
		t.Fatalf("bookingDate wrong: %v", body["bookingDate"])
	}
}

func TestCreateBookingRejectionIsBookingError(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.AddUser("Ivan", "Petrov", "a@b.com", "pw", "User")
	srv.BookingStatus = http.StatusConflict

	err := authedClient(srv, "a@b.com", "User").CreateBooking(context.Background(), 7, time.Now())
	if !domain.IsBooking(err) {
		t.Fatalf("expected BookingError, got %v", err)
	}
}

func TestTimeoutSurfacesAsTimeoutError(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer slow.Close()

	c := New(slow.URL, 20*time.Millisecond)
	_, err := c.Tours(context.Background())
	if !domain.IsTimeout(err) {
		t.Fatalf("expected TimeoutError, got %v", err)
	}
}
