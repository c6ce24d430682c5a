package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClock converts an "HH:MM" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	return h*60 + mins, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes > 23*60+59 {
		minutes = 23*60 + 59
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ClockMinutes returns t's minutes since midnight in t's own location.
func ClockMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func NowUTC() time.Time { return time.Now().UTC() }

// DaysUntil counts whole calendar days from today (UTC) to date.
func DaysUntil(date time.Time) int {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	target := date.UTC().Truncate(24 * time.Hour)
	return int(target.Sub(today).Hours() / 24)
}
