package models

import "rustour/internal/utils"

// Tour is immutable once fetched. List fields are never nil after Normalize.
type Tour struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Country        string     `json:"country"`
	Description    string     `json:"description"`
	ImageURL       string     `json:"imageUrl"`
	RatingValue    float64    `json:"ratingValue"`
	RatingCount    int        `json:"ratingCount"`
	DurationDays   int        `json:"durationDays"`
	DistanceKm     int        `json:"distanceKm"`
	TemperatureC   int        `json:"temperatureC"`
	WeatherState   string     `json:"weatherState"`
	PricePerAdult  float64    `json:"pricePerAdult"`
	PricePerChild  float64    `json:"pricePerChild"`
	AvailableDates []TourDate `json:"availableDates"`
	Rooms          []RoomType `json:"rooms"`
	Services       []Service  `json:"services"`
}

type TourDate struct {
	ID     int     `json:"id"`
	TourID int     `json:"tourId"`
	Date   APITime `json:"date"`
}

type RoomType struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type Service struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Normalize replaces absent list fields with empty slices.
func (t *Tour) Normalize() {
	if t.AvailableDates == nil {
		t.AvailableDates = []TourDate{}
	}
	if t.Rooms == nil {
		t.Rooms = []RoomType{}
	}
	if t.Services == nil {
		t.Services = []Service{}
	}
}

// City derives the tab label used for client-side filtering: the first token
// of the title, falling back to the country.
func (t Tour) City() string {
	return utils.CityFromTitle(t.Title, t.Country)
}

// Quote computes the display total for a party. The booking request never
// carries it; pricing stays server-side.
func (t Tour) Quote(adults, children int) float64 {
	if adults < 0 {
		adults = 0
	}
	if children < 0 {
		children = 0
	}
	return float64(adults)*t.PricePerAdult + float64(children)*t.PricePerChild
}
