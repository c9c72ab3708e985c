package ops

import (
	"github.com/hpungsan/satchel/internal/contact"
	"github.com/hpungsan/satchel/internal/note"
)

// ContactView is the JSON representation of a contact record.
type ContactView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday *string  `json:"birthday,omitempty"`
	Email    *string  `json:"email,omitempty"`
	Address  *string  `json:"address,omitempty"`
	Summary  string   `json:"summary"`
}

// NoteView is the JSON representation of a note.
type NoteView struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func contactView(r *contact.Record) ContactView {
	v := ContactView{
		ID:      r.ID,
		Name:    r.Name,
		Phones:  r.PhoneStrings(),
		Summary: r.String(),
	}
	if r.Birthday != nil {
		s := r.Birthday.String()
		v.Birthday = &s
	}
	if r.Email != nil {
		s := r.Email.String()
		v.Email = &s
	}
	if r.Address != nil {
		s := r.Address.String()
		v.Address = &s
	}
	return v
}

func noteView(n *note.Note) NoteView {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteView{
		ID:      n.ID,
		Title:   n.Title,
		Content: n.Content,
		Tags:    tags,
	}
}
