package ops

import (
	"database/sql"
	"strings"

	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/store"
)

// DeleteContactInput contains parameters for the DeleteContact operation.
type DeleteContactInput struct {
	Name string
}

// DeleteContactOutput contains the result of the DeleteContact operation.
type DeleteContactOutput struct {
	Deleted bool   `json:"deleted"`
	Name    string `json:"name"`
}

// DeleteContact removes a contact by name.
func DeleteContact(db *sql.DB, input DeleteContactInput) (*DeleteContactOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.NewInvalidRequest("name is required")
	}

	book, err := store.LoadBook(db)
	if err != nil {
		return nil, err
	}

	if err := book.Delete(name); err != nil {
		return nil, err
	}

	if err := store.SaveBook(db, book); err != nil {
		return nil, err
	}

	return &DeleteContactOutput{Deleted: true, Name: name}, nil
}
