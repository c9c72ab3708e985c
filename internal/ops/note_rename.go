package ops

import (
	"database/sql"

	"github.com/hpungsan/satchel/internal/store"
)

// RenameNoteInput contains parameters for the RenameNote operation.
type RenameNoteInput struct {
	OldTitle string
	NewTitle string
}

// RenameNoteOutput contains the result of the RenameNote operation.
type RenameNoteOutput struct {
	Note NoteView `json:"note"`
}

// RenameNote moves a note to a new title.
// The collision check happens before any mutation: renaming onto an
// existing different title fails with ALREADY_EXISTS.
func RenameNote(db *sql.DB, input RenameNoteInput) (*RenameNoteOutput, error) {
	collection, err := store.LoadNotes(db)
	if err != nil {
		return nil, err
	}

	if err := collection.Rename(input.OldTitle, input.NewTitle); err != nil {
		return nil, err
	}

	if err := store.SaveNotes(db, collection); err != nil {
		return nil, err
	}

	n, _ := collection.Get(input.NewTitle)
	return &RenameNoteOutput{Note: noteView(n)}, nil
}
