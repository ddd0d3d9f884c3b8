package services

import (
	"testing"
	"time"

	"github.com/dojanghq/dojang/internal/app/models/dto"
)

func TestBuildDistribution(t *testing.T) {
	entries := []dto.DistributionEntry{
		{Key: "taekwondo", Count: 9},
		{Key: "hapkido", Count: 3},
		{Key: "muay-thai", Count: 2},
	}

	resp := buildDistribution(entries, 14)

	if resp.TotalStudents != 14 {
		t.Fatalf("total = %d, want 14", resp.TotalStudents)
	}
	if len(resp.Distribution) != 3 {
		t.Fatalf("distribution has %d entries, want 3", len(resp.Distribution))
	}

	// Percentages are rounded to two decimals
	if got := resp.Distribution[0].Percentage; got != 64.29 {
		t.Errorf("taekwondo percentage = %v, want 64.29", got)
	}
	if got := resp.Distribution[1].Percentage; got != 21.43 {
		t.Errorf("hapkido percentage = %v, want 21.43", got)
	}
	if got := resp.Distribution[2].Percentage; got != 14.29 {
		t.Errorf("muay-thai percentage = %v, want 14.29", got)
	}
}

func TestBuildDistributionZeroTotal(t *testing.T) {
	resp := buildDistribution([]dto.DistributionEntry{{Key: "taekwondo", Count: 0}}, 0)
	if resp.Distribution[0].Percentage != 0 {
		t.Fatalf("percentage = %v, want 0 when the roster is empty", resp.Distribution[0].Percentage)
	}
}

func TestMonthWindow(t *testing.T) {
	now := time.Date(2024, time.March, 17, 15, 42, 7, 0, time.UTC)

	first, end := monthWindow(now)

	want := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !first.Equal(want) {
		t.Errorf("window start = %v, want first of month", first)
	}
	if !end.Equal(now) {
		t.Errorf("window end = %v, want now", end)
	}
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2024, time.March, 17, 23, 59, 59, 0, time.UTC)
	if got := startOfDay(ts); !got.Equal(time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("startOfDay = %v", got)
	}
}
