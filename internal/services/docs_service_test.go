package services

import (
	"strings"
	"testing"
	"time"

	"rustour/internal/domain/models"
)

func TestDocsServiceGenerateETicket(t *testing.T) {
	booking := models.Booking{
		ID: 42,
		Tour: models.Tour{
			ID:            7,
			Title:         "Paris Getaway",
			Country:       "France",
			DurationDays:  7,
			PricePerAdult: 100,
			PricePerChild: 50,
		},
		BookingDate: models.APITime{Time: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	svc := DocsService{}
	pdf, filename, err := svc.GenerateETicket(booking, "Ivan Petrov")
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateETicket returned empty data")
	}
	if !strings.HasPrefix(filename, "ETICKET_42_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename: %q", filename)
	}
	if strings.ContainsAny(filename, " ,/") {
		t.Fatalf("filename not sanitized: %q", filename)
	}
}
