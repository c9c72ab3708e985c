package ops

import (
	"database/sql"
	"strings"

	"github.com/hpungsan/satchel/internal/contact"
	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/store"
)

// SetFieldInput contains parameters for the contact field setters.
type SetFieldInput struct {
	Name  string
	Value string
}

// SetFieldOutput contains the result of a contact field setter.
type SetFieldOutput struct {
	Contact ContactView `json:"contact"`
}

// SetBirthday parses and sets a contact's birthday (DD.MM.YYYY).
func SetBirthday(db *sql.DB, input SetFieldInput) (*SetFieldOutput, error) {
	return setField(db, input, func(r *contact.Record, v string) error {
		return r.SetBirthday(v)
	})
}

// SetAddress validates and sets a contact's address.
func SetAddress(db *sql.DB, input SetFieldInput) (*SetFieldOutput, error) {
	return setField(db, input, func(r *contact.Record, v string) error {
		return r.SetAddress(v)
	})
}

// SetEmail validates and sets a contact's email.
func SetEmail(db *sql.DB, input SetFieldInput) (*SetFieldOutput, error) {
	return setField(db, input, func(r *contact.Record, v string) error {
		return r.SetEmail(v)
	})
}

// setField runs a record setter inside the load-mutate-save bracket.
// Validation failures surface before the snapshot is written, so the
// previous value stays persisted.
func setField(db *sql.DB, input SetFieldInput, set func(*contact.Record, string) error) (*SetFieldOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.NewInvalidRequest("name is required")
	}

	book, err := store.LoadBook(db)
	if err != nil {
		return nil, err
	}

	record, ok := book.Get(name)
	if !ok {
		return nil, errors.NewNotFound("contact", name)
	}

	if err := set(record, input.Value); err != nil {
		return nil, err
	}

	if err := store.SaveBook(db, book); err != nil {
		return nil, err
	}

	return &SetFieldOutput{Contact: contactView(record)}, nil
}
