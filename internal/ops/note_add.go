package ops

import (
	"database/sql"

	"github.com/hpungsan/satchel/internal/store"
)

// AddNoteInput contains parameters for the AddNote operation.
type AddNoteInput struct {
	Title   string // required, must not collide with an existing note
	Content string // may be empty
}

// AddNoteOutput contains the result of the AddNote operation.
type AddNoteOutput struct {
	Note NoteView `json:"note"`
}

// AddNote creates a new note with an empty tag set.
// Fails with ALREADY_EXISTS if the title is taken; the existing note is
// left untouched.
func AddNote(db *sql.DB, input AddNoteInput) (*AddNoteOutput, error) {
	collection, err := store.LoadNotes(db)
	if err != nil {
		return nil, err
	}

	n, err := collection.Add(input.Title, input.Content)
	if err != nil {
		return nil, err
	}

	if err := store.SaveNotes(db, collection); err != nil {
		return nil, err
	}

	return &AddNoteOutput{Note: noteView(n)}, nil
}
