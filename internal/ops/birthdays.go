package ops

import (
	"database/sql"
	"time"

	"github.com/hpungsan/satchel/internal/config"
	"github.com/hpungsan/satchel/internal/store"
)

// UpcomingBirthdaysInput contains parameters for the UpcomingBirthdays operation.
type UpcomingBirthdaysInput struct {
	Days int // <=0 falls back to the configured window (default 7)
}

// UpcomingBirthdaysOutput contains the result of the UpcomingBirthdays operation.
type UpcomingBirthdaysOutput struct {
	Days  int      `json:"days"`
	Names []string `json:"names"`
}

// UpcomingBirthdays returns contacts whose birthday falls within the next
// Days days, inclusive of today and the window edge.
func UpcomingBirthdays(db *sql.DB, cfg *config.Config, input UpcomingBirthdaysInput) (*UpcomingBirthdaysOutput, error) {
	return upcomingBirthdaysAt(db, cfg, input, time.Now())
}

// upcomingBirthdaysAt is the clock-injected implementation.
func upcomingBirthdaysAt(db *sql.DB, cfg *config.Config, input UpcomingBirthdaysInput, today time.Time) (*UpcomingBirthdaysOutput, error) {
	days := input.Days
	if days <= 0 {
		days = cfg.BirthdayWindowDays
	}
	if days <= 0 {
		days = 7
	}

	book, err := store.LoadBook(db)
	if err != nil {
		return nil, err
	}

	return &UpcomingBirthdaysOutput{
		Days:  days,
		Names: book.UpcomingBirthdays(today, days),
	}, nil
}
