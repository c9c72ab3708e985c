package ops

import (
	"database/sql"

	"github.com/hpungsan/satchel/internal/store"
)

// DeleteNoteInput contains parameters for the DeleteNote operation.
type DeleteNoteInput struct {
	Title string
}

// DeleteNoteOutput contains the result of the DeleteNote operation.
type DeleteNoteOutput struct {
	Deleted bool   `json:"deleted"`
	Title   string `json:"title"`
}

// DeleteNote removes a note by title.
func DeleteNote(db *sql.DB, input DeleteNoteInput) (*DeleteNoteOutput, error) {
	collection, err := store.LoadNotes(db)
	if err != nil {
		return nil, err
	}

	if err := collection.Delete(input.Title); err != nil {
		return nil, err
	}

	if err := store.SaveNotes(db, collection); err != nil {
		return nil, err
	}

	return &DeleteNoteOutput{Deleted: true, Title: input.Title}, nil
}
