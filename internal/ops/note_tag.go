package ops

import (
	"database/sql"
	"strings"

	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/store"
)

// TagNoteInput contains parameters for the TagNote operation.
type TagNoteInput struct {
	Title string
	Tag   string
}

// TagNoteOutput contains the result of the TagNote operation.
type TagNoteOutput struct {
	Note  NoteView `json:"note"`
	Added bool     `json:"added"` // false when the tag was already present
}

// TagNote appends a tag to a note. Tagging is idempotent: adding a tag
// that is already present is reported but not an error.
func TagNote(db *sql.DB, input TagNoteInput) (*TagNoteOutput, error) {
	tag := strings.TrimSpace(input.Tag)
	if tag == "" {
		return nil, errors.NewInvalidRequest("tag is required")
	}

	collection, err := store.LoadNotes(db)
	if err != nil {
		return nil, err
	}

	n, ok := collection.Get(input.Title)
	if !ok {
		return nil, errors.NewNotFound("note", input.Title)
	}

	added := n.AddTag(tag)
	if added {
		if err := store.SaveNotes(db, collection); err != nil {
			return nil, err
		}
	}

	return &TagNoteOutput{Note: noteView(n), Added: added}, nil
}
