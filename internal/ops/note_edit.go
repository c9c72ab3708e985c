package ops

import (
	"database/sql"

	"github.com/hpungsan/satchel/internal/store"
)

// EditNoteInput contains parameters for the EditNote operation.
type EditNoteInput struct {
	Title   string
	Content string // replaces the note's content; may be empty
}

// EditNoteOutput contains the result of the EditNote operation.
type EditNoteOutput struct {
	Note NoteView `json:"note"`
}

// EditNote overwrites a note's content in place.
func EditNote(db *sql.DB, input EditNoteInput) (*EditNoteOutput, error) {
	collection, err := store.LoadNotes(db)
	if err != nil {
		return nil, err
	}

	if err := collection.EditContent(input.Title, input.Content); err != nil {
		return nil, err
	}

	if err := store.SaveNotes(db, collection); err != nil {
		return nil, err
	}

	n, _ := collection.Get(input.Title)
	return &EditNoteOutput{Note: noteView(n)}, nil
}
