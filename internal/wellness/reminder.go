package wellness

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/models"
)

// Repeat is how often a reminder fires.
type Repeat string

const (
	RepeatDaily  Repeat = "daily"
	RepeatWeekly Repeat = "weekly"
)

var repeatAliases = map[string]Repeat{
	"daily":   RepeatDaily,
	"diario":  RepeatDaily,
	"weekly":  RepeatWeekly,
	"semanal": RepeatWeekly,
}

// ParseRepeat accepts English and Spanish names, case-insensitively.
func ParseRepeat(s string) (Repeat, error) {
	if r, ok := repeatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	return "", fmt.Errorf("%w: unknown repeat %q", common.ErrorValidation, s)
}

var clockLayouts = []string{"15:04", "3:04 PM", "3:04PM"}

// ParseClock normalizes a time of day such as "08:30", "8:30 AM" or
// "8:30pm" to the 24h form "HH:MM".
func ParseClock(s string) (string, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("%w: invalid time %q", common.ErrorValidation, s)
}

// NextFire returns the first trigger time of r strictly after now, in
// now's location. Weekly reminders fire on r.Weekday.
func NextFire(r models.Reminder, now time.Time) (time.Time, error) {
	clock, err := ParseClock(r.Clock)
	if err != nil {
		return time.Time{}, err
	}
	repeat, err := ParseRepeat(r.Repeat)
	if err != nil {
		return time.Time{}, err
	}

	t, _ := time.Parse("15:04", clock)
	y, m, d := now.Date()
	next := time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, now.Location())

	switch repeat {
	case RepeatWeekly:
		days := (int(r.Weekday) - int(now.Weekday()) + 7) % 7
		next = next.AddDate(0, 0, days)
		if !next.After(now) {
			next = next.AddDate(0, 0, 7)
		}
	default:
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
	}
	return next, nil
}
