package ops

import (
	"database/sql"

	"github.com/hpungsan/satchel/internal/store"
)

// ListContactsOutput contains the result of the ListContacts operation.
type ListContactsOutput struct {
	Items []ContactView `json:"items"`
	Total int           `json:"total"`
}

// ListContacts returns all contacts in insertion order.
func ListContacts(db *sql.DB) (*ListContactsOutput, error) {
	book, err := store.LoadBook(db)
	if err != nil {
		return nil, err
	}

	items := make([]ContactView, 0, book.Len())
	for _, r := range book.Records() {
		items = append(items, contactView(r))
	}

	return &ListContactsOutput{
		Items: items,
		Total: len(items),
	}, nil
}
