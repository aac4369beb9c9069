package services

import (
	"context"
	"strconv"
	"sync"
	"time"

	"rustour/internal/api"
	"rustour/internal/domain/models"
	"rustour/internal/notify"
	"rustour/internal/utils"
)

// BookingService holds the signed-in user's bookings and creates new ones.
type BookingService struct {
	Client    *api.Client
	Relay     *notify.Relay
	RequestID string

	mu       sync.Mutex
	bookings []models.Booking
}

func NewBookingService(client *api.Client, relay *notify.Relay) *BookingService {
	return &BookingService{Client: client, Relay: relay}
}

// LoadMy refreshes the booking list. A failed refresh is logged and leaves
// the previous list in place; it is never user-fatal.
func (s *BookingService) LoadMy(ctx context.Context) {
	bookings, err := s.Client.MyBookings(ctx)
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "load_my", "failed: "+err.Error())
		return
	}

	s.mu.Lock()
	s.bookings = bookings
	s.mu.Unlock()

	utils.LogEvent(s.RequestID, "booking", "load_my", "bookings="+strconv.Itoa(len(bookings)))
}

// Bookings returns a copy of the last loaded list.
func (s *BookingService) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// Create books the tour for the chosen date. Party size and room selection
// only drive the client-side quote; the request carries tour id and date
// alone, pricing stays server-side. A confirmed booking posts a notice with
// the tour title and a human-formatted date.
func (s *BookingService) Create(ctx context.Context, tour models.Tour, date time.Time, adults, children int, roomID int) error {
	if err := s.Client.CreateBooking(ctx, tour.ID, date); err != nil {
		utils.LogEvent(s.RequestID, "booking", "create", "failed: "+err.Error())
		return err
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		"tour_id="+strconv.Itoa(tour.ID)+" adults="+strconv.Itoa(adults)+" children="+strconv.Itoa(children)+" room_id="+strconv.Itoa(roomID))

	if s.Relay != nil {
		s.Relay.Post("Бронирование подтверждено ✅", tour.Title+" — "+utils.FormatHumanDate(date))
	}
	return nil
}

// Quote is the display total for the party. Never sent to the backend.
func (s *BookingService) Quote(tour models.Tour, adults, children int) float64 {
	return tour.Quote(adults, children)
}
