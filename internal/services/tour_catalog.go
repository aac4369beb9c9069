package services

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"rustour/internal/api"
	"rustour/internal/domain/models"
	"rustour/internal/utils"
)

// TourCatalog owns the loaded tour list plus the loading and error flags the
// UI layer renders. Each successful load replaces the list wholesale; a
// failed load records the message and keeps whatever was already loaded.
type TourCatalog struct {
	Client    *api.Client
	RequestID string

	mu      sync.Mutex
	tours   []models.Tour
	loading bool
	errMsg  string
}

func NewTourCatalog(client *api.Client) *TourCatalog {
	return &TourCatalog{Client: client}
}

// Load fetches the catalog. The loading flag is set for the duration of the
// call and always cleared on exit.
func (s *TourCatalog) Load(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	tours, err := s.Client.Tours(ctx)
	if err != nil {
		s.mu.Lock()
		s.errMsg = err.Error()
		s.mu.Unlock()
		utils.LogEvent(s.RequestID, "catalog", "load", "failed: "+err.Error())
		return err
	}

	s.mu.Lock()
	s.tours = tours
	s.errMsg = ""
	s.mu.Unlock()

	utils.LogEvent(s.RequestID, "catalog", "load", "tours="+strconv.Itoa(len(tours)))
	return nil
}

// Search posts the criteria and returns a fresh list. The catalog's own tours
// are not touched.
func (s *TourCatalog) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Tour, error) {
	results, err := s.Client.SearchTours(ctx, criteria)
	if err != nil {
		utils.LogEvent(s.RequestID, "catalog", "search", "failed: "+err.Error())
		return nil, err
	}
	utils.LogEvent(s.RequestID, "catalog", "search", "results="+strconv.Itoa(len(results)))
	return results, nil
}

func (s *TourCatalog) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *TourCatalog) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *TourCatalog) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Tours returns a copy of the loaded catalog.
func (s *TourCatalog) Tours() []models.Tour {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Tour, len(s.tours))
	copy(out, s.tours)
	return out
}

// CityTabs lists the distinct derived cities, sorted, with a leading "All".
func (s *TourCatalog) CityTabs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]bool{}
	cities := []string{}
	for _, t := range s.tours {
		city := t.City()
		if city == "" || seen[city] {
			continue
		}
		seen[city] = true
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return append([]string{"All"}, cities...)
}

// FilterByCity narrows the loaded tours to one city tab. "All" or an empty
// selection returns everything.
func (s *TourCatalog) FilterByCity(city string) []models.Tour {
	if city == "" || city == "All" {
		return s.Tours()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Tour{}
	for _, t := range s.tours {
		if t.City() == city {
			out = append(out, t)
		}
	}
	return out
}
