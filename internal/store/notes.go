package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/note"
)

// SaveNotes replaces the persisted note snapshot with the collection's
// current state in a single transaction.
func SaveNotes(db *sql.DB, collection *note.Collection) error {
	tx, err := db.Begin()
	if err != nil {
		return errors.NewInternal(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM notes"); err != nil {
		return errors.NewInternal(err)
	}

	now := time.Now().Unix()
	for pos, n := range collection.Notes() {
		var tagsJSON sql.NullString
		if len(n.Tags) > 0 {
			data, err := json.Marshal(n.Tags)
			if err != nil {
				return errors.NewInternal(err)
			}
			tagsJSON = sql.NullString{String: string(data), Valid: true}
		}

		_, err := tx.Exec(
			`INSERT INTO notes (id, title, content, tags_json, position, saved_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			n.ID, n.Title, n.Content, tagsJSON, pos, now,
		)
		if err != nil {
			return errors.NewInternal(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// LoadNotes restores the note collection from the persisted snapshot.
// A missing or empty snapshot yields an empty collection, not an error.
func LoadNotes(db *sql.DB) (*note.Collection, error) {
	rows, err := db.Query(
		`SELECT id, title, content, tags_json FROM notes ORDER BY position`,
	)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	collection := note.NewCollection()
	for rows.Next() {
		var id, title, content string
		var tagsJSON sql.NullString
		if err := rows.Scan(&id, &title, &content, &tagsJSON); err != nil {
			return nil, errors.NewInternal(err)
		}

		var tags []string
		if tagsJSON.Valid {
			if err := json.Unmarshal([]byte(tagsJSON.String), &tags); err != nil {
				return nil, errors.NewInternal(fmt.Errorf("corrupt snapshot: bad tags for note %q: %w", title, err))
			}
		}

		n := &note.Note{ID: id, Title: title, Content: content, Tags: tags}
		if err := collection.Restore(n); err != nil {
			return nil, errors.NewInternal(fmt.Errorf("corrupt snapshot: %w", err))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return collection, nil
}
