package ops

import (
	"database/sql"
	"strings"

	"github.com/hpungsan/satchel/internal/contact"
	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/store"
)

// AddContactInput contains parameters for the AddContact operation.
type AddContactInput struct {
	Name  string // required
	Phone string // optional; validated and appended when present
}

// AddContactOutput contains the result of the AddContact operation.
type AddContactOutput struct {
	Contact ContactView `json:"contact"`
	Created bool        `json:"created"` // false when an existing contact was updated
}

// AddContact creates a contact or appends a phone to an existing one.
// Adding an existing name updates that record instead of creating a
// duplicate. Nothing is persisted if validation fails.
func AddContact(db *sql.DB, input AddContactInput) (*AddContactOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.NewInvalidRequest("name is required")
	}

	book, err := store.LoadBook(db)
	if err != nil {
		return nil, err
	}

	record, found := book.Get(name)
	if !found {
		record, err = contact.NewRecord(name)
		if err != nil {
			return nil, err
		}
	}

	if phone := strings.TrimSpace(input.Phone); phone != "" {
		if err := record.AddPhone(phone); err != nil {
			return nil, err
		}
	}

	if !found {
		book.Add(record)
	}

	if err := store.SaveBook(db, book); err != nil {
		return nil, err
	}

	return &AddContactOutput{
		Contact: contactView(record),
		Created: !found,
	}, nil
}
