package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/phpdave11/gofpdf"

	"rustour/internal/domain/models"
	"rustour/internal/utils"
)

// DocsService renders booking confirmations as PDF e-tickets.
type DocsService struct {
	RequestID string
}

// GenerateETicket returns the PDF bytes and a suggested filename for one
// booking.
func (s DocsService) GenerateETicket(b models.Booking, holder string) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("booking_id=%d", b.ID))
	return buildETicketPDF(b, holder)
}

func buildETicketPDF(b models.Booking, holder string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RUSTOUR E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Holder        : %s", safe(holder, "-")),
		fmt.Sprintf("Tour          : %s", safe(b.Tour.Title, "-")),
		fmt.Sprintf("Country       : %s", safe(b.Tour.Country, "-")),
		fmt.Sprintf("Booked for    : %s", utils.FormatHumanDate(b.BookingDate.Time)),
		fmt.Sprintf("Duration      : %d days", b.Tour.DurationDays),
		fmt.Sprintf("Price (adult) : %s", utils.FormatMoney(b.Tour.PricePerAdult)),
		fmt.Sprintf("Price (child) : %s", utils.FormatMoney(b.Tour.PricePerChild)),
		fmt.Sprintf("Booking code  : #%d", b.ID),
		fmt.Sprintf("Ticket code   : TCK-%d-%d", b.ID, b.Tour.ID),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: this e-ticket confirms one booking. Present it at check-in together with a valid ID.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d_%s.pdf", b.ID, safeFilenamePart(b.Tour.Title))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

var filenameJunk = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func safeFilenamePart(s string) string {
	s = filenameJunk.ReplaceAllString(strings.TrimSpace(s), "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "ticket"
	}
	return s
}
