package ops

import (
	"database/sql"
	"strings"

	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/store"
)

// ChangePhoneInput contains parameters for the ChangePhone operation.
type ChangePhoneInput struct {
	Name     string
	OldPhone string
	NewPhone string
}

// ChangePhoneOutput contains the result of the ChangePhone operation.
type ChangePhoneOutput struct {
	Contact ContactView `json:"contact"`
}

// ChangePhone replaces a contact's phone number.
// The old number must be present and the new one is validated before the
// old is removed, so a failed change leaves the record untouched.
func ChangePhone(db *sql.DB, input ChangePhoneInput) (*ChangePhoneOutput, error) {
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

	if _, err := record.FindPhone(input.OldPhone); err != nil {
		return nil, err
	}

	if err := record.EditPhone(input.OldPhone, input.NewPhone); err != nil {
		return nil, err
	}

	if err := store.SaveBook(db, book); err != nil {
		return nil, err
	}

	return &ChangePhoneOutput{Contact: contactView(record)}, nil
}
