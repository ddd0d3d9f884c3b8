package helpers

import (
	"testing"
	"time"
)

func TestValidPeriod(t *testing.T) {
	tests := []struct {
		period string
		valid  bool
	}{
		{"2024-01", true},
		{"2024-12", true},
		{"2024-13", false},
		{"2024-00", false},
		{"2024-1", false},
		{"24-01", false},
		{"2024/01", false},
		{"2024-01-05", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidPeriod(tt.period); got != tt.valid {
			t.Errorf("ValidPeriod(%q) = %v, want %v", tt.period, got, tt.valid)
		}
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-05")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if date.Year() != 2024 || date.Month() != time.March || date.Day() != 5 {
		t.Fatalf("unexpected date: %v", date)
	}

	if _, err := ParseDate("05/03/2024"); err == nil {
		t.Fatal("expected error for wrong layout")
	}
	if _, err := ParseDate(""); err == nil {
		t.Fatal("expected error for empty string")
	}
}

func TestCurrentPeriod(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)
	if got := CurrentPeriod(now); got != "2024-03" {
		t.Fatalf("CurrentPeriod = %q, want 2024-03", got)
	}
}

func TestPeriodFor(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		year  string
		month string
		want  string
	}{
		{"year and numeric month", "2024", "6", "2024-06"},
		{"full period in month", "", "2024-06", "2024-06"},
		{"year ignored next to a full period", "2023", "2024-06", "2024-06"},
		{"nothing given defaults to now", "", "", "2024-03"},
		{"year alone defaults to now", "2024", "", "2024-03"},
	}

	for _, tt := range tests {
		if got := PeriodFor(tt.year, tt.month, now); got != tt.want {
			t.Errorf("%s: PeriodFor = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPeriodYear(t *testing.T) {
	if got := PeriodYear("2024-03"); got != 2024 {
		t.Fatalf("PeriodYear = %d, want 2024", got)
	}
}

func TestDaysOverdue(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"five days past", time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC), 5},
		{"half a day past rounds down", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), 0},
		{"due now", now, 0},
		{"due in the future", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		if got := DaysOverdue(now, tt.due); got != tt.want {
			t.Errorf("%s: DaysOverdue = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"three days out", time.Date(2024, time.March, 13, 12, 0, 0, 0, time.UTC), 3},
		{"later today rounds up", time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC), 1},
		{"already past", time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		if got := DaysUntil(now, tt.due); got != tt.want {
			t.Errorf("%s: DaysUntil = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("2h", time.Minute); got != 2*time.Hour {
		t.Fatalf("ParseDuration = %v, want 2h", got)
	}
	if got := ParseDuration("not-a-duration", time.Minute); got != time.Minute {
		t.Fatalf("ParseDuration fallback = %v, want 1m", got)
	}
}
