package ops

import (
	"database/sql"

	"github.com/hpungsan/satchel/internal/store"
)

// ListNotesOutput contains the result of the ListNotes operation.
type ListNotesOutput struct {
	Items []NoteView `json:"items"`
	Total int        `json:"total"`
}

// ListNotes returns all notes in insertion order.
func ListNotes(db *sql.DB) (*ListNotesOutput, error) {
	collection, err := store.LoadNotes(db)
	if err != nil {
		return nil, err
	}

	items := make([]NoteView, 0, collection.Len())
	for _, n := range collection.Notes() {
		items = append(items, noteView(n))
	}

	return &ListNotesOutput{
		Items: items,
		Total: len(items),
	}, nil
}
