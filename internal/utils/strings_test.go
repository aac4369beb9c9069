package utils

import "testing"

func TestSplitFullName(t *testing.T) {
	first, last := SplitFullName("Ivan Petrov")
	if first != "Ivan" || last != "Petrov" {
		t.Fatalf("two-word split wrong: %q %q", first, last)
	}

	first, last = SplitFullName("Ivan")
	if first != "Ivan" || last != "" {
		t.Fatalf("single word should leave last name empty: %q %q", first, last)
	}

	first, last = SplitFullName("Анна Мария Петрова")
	if first != "Анна" || last != "Мария Петрова" {
		t.Fatalf("split must be on the first space only: %q %q", first, last)
	}
}

func TestCityFromTitle(t *testing.T) {
	if got := CityFromTitle("Paris Getaway", "France"); got != "Paris" {
		t.Fatalf("expected Paris, got %q", got)
	}
	if got := CityFromTitle("Rome, ancient wonders", "Italy"); got != "Rome" {
		t.Fatalf("expected Rome, got %q", got)
	}
	if got := CityFromTitle("", "Italy"); got != "Italy" {
		t.Fatalf("empty title should fall back to country, got %q", got)
	}
}
