package contact

import (
	"time"

	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/field"
)

// Book is the contact directory: an owned, insertion-ordered mapping of
// name to Record. Keys are unique; re-adding a name replaces the stored
// record at its original position.
type Book struct {
	order   []string
	records map[string]*Record
}

// NewBook creates an empty Book.
func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Add inserts or replaces a record by its name key.
// Upsert semantics: an existing name keeps its position in listing order,
// the stored record reference is replaced, not merged.
func (b *Book) Add(r *Record) {
	if _, exists := b.records[r.Name]; !exists {
		b.order = append(b.order, r.Name)
	}
	b.records[r.Name] = r
}

// Get returns the record for name, or false if absent.
func (b *Book) Get(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record for name, reporting NOT_FOUND if absent.
func (b *Book) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return errors.NewNotFound("contact", name)
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Names returns contact names in insertion order.
func (b *Book) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Records returns all records in insertion order.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Len returns the number of records.
func (b *Book) Len() int {
	return len(b.records)
}

// UpcomingBirthdays returns the names of contacts whose next birthday
// occurrence falls within windowDays of today, inclusive on both ends.
// Results follow insertion order; contacts without a birthday are skipped.
func (b *Book) UpcomingBirthdays(today time.Time, windowDays int) []string {
	from := field.Midnight(today)
	to := from.AddDate(0, 0, windowDays)

	upcoming := make([]string, 0)
	for _, r := range b.Records() {
		if r.Birthday == nil {
			continue
		}
		occ := r.Birthday.NextOccurrence(from)
		if !occ.Before(from) && !occ.After(to) {
			upcoming = append(upcoming, r.Name)
		}
	}
	return upcoming
}
