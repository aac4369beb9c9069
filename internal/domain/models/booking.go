package models

// Booking embeds a snapshot of the tour as it was at booking time, not a
// reference into the catalog.
type Booking struct {
	ID          int     `json:"id"`
	Tour        Tour    `json:"tour"`
	BookingDate APITime `json:"bookingDate"`
}

// SearchCriteria is transient; zero-value optionals are omitted on the wire.
type SearchCriteria struct {
	City     string `json:"city,omitempty"`
	FromDate string `json:"fromDate,omitempty"`
	ToDate   string `json:"toDate,omitempty"`
	Adults   int    `json:"adults"`
	Rooms    int    `json:"rooms"`
}
