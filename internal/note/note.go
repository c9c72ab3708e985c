package note

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Note is a titled free-text entry with tags.
// Title is the unique key inside a Collection; ID is a ULID that survives
// renames and snapshot round-trips. Tags keep insertion order and are
// append-only.
type Note struct {
	ID      string
	Title   string
	Content string
	Tags    []string
}

// AddTag appends tag if not already present. Returns true if it was added.
func (n *Note) AddTag(tag string) bool {
	if n.HasTag(tag) {
		return false
	}
	n.Tags = append(n.Tags, tag)
	return true
}

// HasTag reports whether the note carries tag.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// newID generates a new ULID.
func newID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
