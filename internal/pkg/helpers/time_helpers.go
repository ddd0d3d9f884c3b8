package helpers

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ValidPeriod reports whether s is a YYYY-MM period
func ValidPeriod(s string) bool {
	return periodPattern.MatchString(s)
}

// CurrentPeriod formats now as a YYYY-MM period
func CurrentPeriod(now time.Time) string {
	return now.Format("2006-01")
}

// PeriodFor assembles a YYYY-MM period from report query parameters. A
// numeric year+month pair is combined; otherwise month may already carry the
// full period; empty input falls back to the current period.
func PeriodFor(year, month string, now time.Time) string {
	if year != "" {
		y, errYear := strconv.Atoi(year)
		m, errMonth := strconv.Atoi(month)
		if errYear == nil && errMonth == nil {
			return fmt.Sprintf("%04d-%02d", y, m)
		}
	}
	if month != "" {
		return month
	}
	return CurrentPeriod(now)
}

// PeriodYear extracts the year from a YYYY-MM period. The period must already
// be validated.
func PeriodYear(period string) int {
	t, _ := time.Parse("2006-01", period)
	return t.Year()
}

// DaysOverdue returns the whole days elapsed since due, rounded down.
// Returns 0 when due is not in the past.
func DaysOverdue(now, due time.Time) int {
	if !due.Before(now) {
		return 0
	}
	return int(math.Floor(now.Sub(due).Hours() / 24))
}

// DaysUntil returns the days remaining until due, rounded up so a payment due
// later today still counts as one day out. Returns 0 when due has passed.
func DaysUntil(now, due time.Time) int {
	if due.Before(now) {
		return 0
	}
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
