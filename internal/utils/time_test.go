package utils

import (
	"strings"
	"testing"
	"time"
)

func TestParseAPIDateAcceptsBothShapes(t *testing.T) {
	withFraction, err := ParseAPIDate("2024-05-01T10:00:00.123Z")
	if err != nil {
		t.Fatalf("fractional ISO date rejected: %v", err)
	}
	naive, err := ParseAPIDate("2024-05-01T10:00:00")
	if err != nil {
		t.Fatalf("naive date rejected: %v", err)
	}

	if !withFraction.Truncate(time.Second).Equal(naive) {
		t.Fatalf("same nominal moment parsed differently: %v vs %v", withFraction, naive)
	}
	if naive.Location() != time.UTC {
		t.Fatalf("naive date should be taken as UTC, got %v", naive.Location())
	}
}

func TestParseAPIDateRejectsGarbage(t *testing.T) {
	_, err := ParseAPIDate("not-a-date")
	if err == nil {
		t.Fatalf("expected error for unparseable input")
	}
	if !strings.Contains(err.Error(), "not-a-date") {
		t.Fatalf("error should name the offending string, got %q", err.Error())
	}
}

func TestFormatAPIDateRoundTrips(t *testing.T) {
	moment := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	got, err := ParseAPIDate(FormatAPIDate(moment))
	if err != nil {
		t.Fatalf("round trip parse failed: %v", err)
	}
	if !got.Equal(moment) {
		t.Fatalf("round trip changed the moment: %v vs %v", got, moment)
	}
}
