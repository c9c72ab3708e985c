package ops

import (
	"database/sql"
	"strings"

	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/store"
)

// GetContactInput contains parameters for the GetContact operation.
type GetContactInput struct {
	Name string
}

// GetContactOutput contains the result of the GetContact operation.
type GetContactOutput struct {
	Contact ContactView `json:"contact"`
}

// GetContact looks up a single contact by name.
func GetContact(db *sql.DB, input GetContactInput) (*GetContactOutput, error) {
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

	return &GetContactOutput{Contact: contactView(record)}, nil
}
