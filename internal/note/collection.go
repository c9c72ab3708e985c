package note

import (
	"strings"

	"github.com/hpungsan/satchel/internal/errors"
)

// Collection is an owned, insertion-ordered mapping of title to Note.
// Titles are unique; operations that would collide are rejected before
// any mutation.
type Collection struct {
	order []string
	notes map[string]*Note
}

// NewCollection creates an empty Collection.
func NewCollection() *Collection {
	return &Collection{notes: make(map[string]*Note)}
}

// Add inserts a new note with an empty tag set.
// Fails with ALREADY_EXISTS if the title is taken and VALIDATION if the
// title is empty. Content may be empty.
func (c *Collection) Add(title, content string) (*Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.NewValidation("note title must not be empty")
	}
	if _, exists := c.notes[title]; exists {
		return nil, errors.NewAlreadyExists("note", title)
	}
	id, err := newID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	n := &Note{ID: id, Title: title, Content: content}
	c.notes[title] = n
	c.order = append(c.order, title)
	return n, nil
}

// Get returns the note for title, or false if absent.
func (c *Collection) Get(title string) (*Note, bool) {
	n, ok := c.notes[title]
	return n, ok
}

// Delete removes the note for title, reporting NOT_FOUND if absent.
func (c *Collection) Delete(title string) error {
	if _, ok := c.notes[title]; !ok {
		return errors.NewNotFound("note", title)
	}
	delete(c.notes, title)
	for i, t := range c.order {
		if t == title {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Rename moves a note to a new title and updates the note's own Title.
// The collision check runs before any mutation: renaming onto an existing
// different title fails with ALREADY_EXISTS and leaves both notes
// untouched. The note keeps its position in listing order.
func (c *Collection) Rename(oldTitle, newTitle string) error {
	if strings.TrimSpace(newTitle) == "" {
		return errors.NewValidation("note title must not be empty")
	}
	n, ok := c.notes[oldTitle]
	if !ok {
		return errors.NewNotFound("note", oldTitle)
	}
	if newTitle == oldTitle {
		return nil
	}
	if _, exists := c.notes[newTitle]; exists {
		return errors.NewAlreadyExists("note", newTitle)
	}

	delete(c.notes, oldTitle)
	n.Title = newTitle
	c.notes[newTitle] = n
	for i, t := range c.order {
		if t == oldTitle {
			c.order[i] = newTitle
			break
		}
	}
	return nil
}

// EditContent overwrites the note's content in place.
func (c *Collection) EditContent(title, newContent string) error {
	n, ok := c.notes[title]
	if !ok {
		return errors.NewNotFound("note", title)
	}
	n.Content = newContent
	return nil
}

// Search returns notes whose title or content contains query,
// case-insensitively, in insertion order. A blank query fails with
// EMPTY_QUERY rather than matching everything.
func (c *Collection) Search(query string) ([]*Note, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, errors.NewEmptyQuery()
	}

	matches := make([]*Note, 0)
	for _, n := range c.Notes() {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) {
			matches = append(matches, n)
		}
	}
	return matches, nil
}

// Titles returns note titles in insertion order.
func (c *Collection) Titles() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Notes returns all notes in insertion order.
func (c *Collection) Notes() []*Note {
	out := make([]*Note, 0, len(c.order))
	for _, title := range c.order {
		out = append(out, c.notes[title])
	}
	return out
}

// Len returns the number of notes.
func (c *Collection) Len() int {
	return len(c.notes)
}

// Restore re-inserts a note loaded from a persisted snapshot, preserving
// its ID and tags. Used by the persistence gateway only.
func (c *Collection) Restore(n *Note) error {
	if _, exists := c.notes[n.Title]; exists {
		return errors.NewAlreadyExists("note", n.Title)
	}
	c.notes[n.Title] = n
	c.order = append(c.order, n.Title)
	return nil
}
