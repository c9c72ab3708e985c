package ops

import (
	"database/sql"

	"github.com/hpungsan/satchel/internal/store"
)

// SearchNotesInput contains parameters for the SearchNotes operation.
type SearchNotesInput struct {
	Query string // required; a blank query fails with EMPTY_QUERY
}

// SearchNotesOutput contains the result of the SearchNotes operation.
type SearchNotesOutput struct {
	Items []NoteView `json:"items"`
	Total int        `json:"total"`
}

// SearchNotes performs a case-insensitive substring search against note
// titles and contents. Results follow collection insertion order.
func SearchNotes(db *sql.DB, input SearchNotesInput) (*SearchNotesOutput, error) {
	collection, err := store.LoadNotes(db)
	if err != nil {
		return nil, err
	}

	matches, err := collection.Search(input.Query)
	if err != nil {
		return nil, err
	}

	items := make([]NoteView, len(matches))
	for i, n := range matches {
		items[i] = noteView(n)
	}

	return &SearchNotesOutput{
		Items: items,
		Total: len(items),
	}, nil
}
