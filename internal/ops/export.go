package ops

import (
	"bytes"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/hpungsan/satchel/internal/contact"
	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/note"
	"github.com/hpungsan/satchel/internal/store"
)

// Export formats.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	BaseDir string // data directory; the export lands under BaseDir/exports
	Format  string // "markdown" (default) or "html"
	Path    string // optional explicit output path; overrides the default
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Path     string `json:"path"`
	Format   string `json:"format"`
	Contacts int    `json:"contacts"`
	Notes    int    `json:"notes"`
}

// Export writes the full contact book and note collection to a single
// document. Markdown is rendered directly; HTML runs the same markdown
// through goldmark.
func Export(db *sql.DB, input ExportInput) (*ExportOutput, error) {
	format := input.Format
	if format == "" {
		format = FormatMarkdown
	}
	if format != FormatMarkdown && format != FormatHTML {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("unsupported format: %s", input.Format))
	}

	book, err := store.LoadBook(db)
	if err != nil {
		return nil, err
	}
	collection, err := store.LoadNotes(db)
	if err != nil {
		return nil, err
	}

	md := renderMarkdown(book, collection)

	data := []byte(md)
	ext := "md"
	if format == FormatHTML {
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(md), &buf); err != nil {
			return nil, errors.NewInternal(err)
		}
		data = buf.Bytes()
		ext = "html"
	}

	path := input.Path
	if path == "" {
		name := fmt.Sprintf("satchel-%s.%s", time.Now().UTC().Format("20060102-150405"), ext)
		path = filepath.Join(input.BaseDir, "exports", name)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.NewInternal(err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &ExportOutput{
		Path:     path,
		Format:   format,
		Contacts: book.Len(),
		Notes:    collection.Len(),
	}, nil
}

// renderMarkdown builds the export document: one section per contact,
// one section per note.
func renderMarkdown(book *contact.Book, collection *note.Collection) string {
	var b strings.Builder

	b.WriteString("# Satchel Export\n\n")
	fmt.Fprintf(&b, "Exported %s\n\n", time.Now().UTC().Format("2006-01-02 15:04 UTC"))

	b.WriteString("## Contacts\n\n")
	records := book.Records()
	if len(records) == 0 {
		b.WriteString("_No contacts._\n\n")
	}
	for _, r := range records {
		fmt.Fprintf(&b, "### %s\n\n", r.Name)
		if len(r.Phones) > 0 {
			fmt.Fprintf(&b, "- Phones: %s\n", strings.Join(r.PhoneStrings(), ", "))
		}
		if r.Birthday != nil {
			fmt.Fprintf(&b, "- Birthday: %s\n", r.Birthday.String())
		}
		if r.Email != nil {
			fmt.Fprintf(&b, "- Email: %s\n", r.Email.String())
		}
		if r.Address != nil {
			fmt.Fprintf(&b, "- Address: %s\n", r.Address.String())
		}
		b.WriteString("\n")
	}

	b.WriteString("## Notes\n\n")
	notes := collection.Notes()
	if len(notes) == 0 {
		b.WriteString("_No notes._\n\n")
	}
	for _, n := range notes {
		fmt.Fprintf(&b, "### %s\n\n", n.Title)
		if len(n.Tags) > 0 {
			fmt.Fprintf(&b, "Tags: %s\n\n", strings.Join(n.Tags, ", "))
		}
		if n.Content != "" {
			b.WriteString(n.Content)
			b.WriteString("\n\n")
		}
	}

	return b.String()
}
