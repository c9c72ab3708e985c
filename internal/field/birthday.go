package field

import (
	"regexp"
	"time"

	"github.com/hpungsan/satchel/internal/errors"
)

// DateLayout is the boundary text format for dates: zero-padded DD.MM.YYYY.
const DateLayout = "02.01.2006"

// dateRegex enforces zero padding and a four-digit year before time.Parse,
// which would otherwise accept "3.1.2024".
var dateRegex = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}\.[0-9]{4}$`)

// Birthday is a validated calendar date.
type Birthday struct {
	date time.Time
}

// ParseBirthday parses a strict DD.MM.YYYY date.
// Impossible calendar dates (31.04, 29.02 in a non-leap year) are rejected.
func ParseBirthday(s string) (Birthday, error) {
	if !dateRegex.MatchString(s) {
		return Birthday{}, errors.NewValidation("invalid date format, use DD.MM.YYYY")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Birthday{}, errors.NewValidation("invalid date format, use DD.MM.YYYY")
	}
	return Birthday{date: t}, nil
}

// Date returns the birthday as a time.Time (midnight UTC).
func (b Birthday) Date() time.Time {
	return b.date
}

// String formats the birthday as DD.MM.YYYY.
func (b Birthday) String() string {
	return b.date.Format(DateLayout)
}

// NextOccurrence returns the birthday's next occurrence on or after today.
// The year component is replaced with today's year; if that date has already
// passed, it rolls to next year. A Feb 29 birthday in a non-leap target year
// normalizes to Mar 1 (time.Date rollover).
func (b Birthday) NextOccurrence(today time.Time) time.Time {
	today = Midnight(today)
	occ := time.Date(today.Year(), b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	if occ.Before(today) {
		occ = time.Date(today.Year()+1, b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	}
	return occ
}

// Midnight truncates t to midnight UTC, keeping only the calendar date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
