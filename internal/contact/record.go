package contact

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/field"
)

// Record holds one contact's aggregated field data.
// Name is the unique key inside a Book; ID is a ULID that survives
// snapshot round-trips.
type Record struct {
	ID       string
	Name     string
	Phones   []field.Phone
	Birthday *field.Birthday
	Email    *field.Email
	Address  *field.Address
}

// NewRecord creates a Record with the given name and a fresh ULID.
// The name must be non-empty after trimming.
func NewRecord(name string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.NewValidation("contact name must not be empty")
	}
	id, err := newID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return &Record{ID: id, Name: name}, nil
}

// AddPhone validates number and appends it. Duplicates are allowed:
// adding the same number twice produces two independent entries.
func (r *Record) AddPhone(number string) error {
	p, err := field.NewPhone(number)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, p)
	return nil
}

// RemovePhone removes all phones equal to number.
// Removing a number that is not present is a no-op, not an error.
func (r *Record) RemovePhone(number string) {
	kept := r.Phones[:0]
	for _, p := range r.Phones {
		if p.String() != number {
			kept = append(kept, p)
		}
	}
	r.Phones = kept
}

// EditPhone replaces all occurrences of old with a single new entry.
// The new number is validated before old is removed, so a failed edit
// leaves the record untouched.
func (r *Record) EditPhone(old, new string) error {
	p, err := field.NewPhone(new)
	if err != nil {
		return err
	}
	r.RemovePhone(old)
	r.Phones = append(r.Phones, p)
	return nil
}

// FindPhone returns the first phone equal to number.
func (r *Record) FindPhone(number string) (field.Phone, error) {
	for _, p := range r.Phones {
		if p.String() == number {
			return p, nil
		}
	}
	return "", errors.NewNotFound("phone", number)
}

// SetBirthday parses and overwrites the birthday.
// On a validation failure the previous value is untouched.
func (r *Record) SetBirthday(s string) error {
	b, err := field.ParseBirthday(s)
	if err != nil {
		return err
	}
	r.Birthday = &b
	return nil
}

// SetAddress validates and overwrites the address.
func (r *Record) SetAddress(s string) error {
	a, err := field.NewAddress(s)
	if err != nil {
		return err
	}
	r.Address = &a
	return nil
}

// SetEmail validates and overwrites the email.
func (r *Record) SetEmail(s string) error {
	e, err := field.NewEmail(s)
	if err != nil {
		return err
	}
	r.Email = &e
	return nil
}

// PhoneStrings returns the phone numbers as plain strings, in insertion order.
func (r *Record) PhoneStrings() []string {
	out := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		out[i] = p.String()
	}
	return out
}

// String renders a one-line summary of the record.
func (r *Record) String() string {
	birthday := "no birthday"
	if r.Birthday != nil {
		birthday = r.Birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, birthday: %s, phones: %s",
		r.Name, birthday, strings.Join(r.PhoneStrings(), "; "))
}

// newID generates a new ULID.
func newID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
