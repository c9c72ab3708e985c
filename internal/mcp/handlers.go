package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/satchel/internal/config"
	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	db  *sql.DB
	cfg *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *sql.DB, cfg *config.Config) *Handlers {
	return &Handlers{db: db, cfg: cfg}
}

// decode maps a tool call's argument object onto a request struct by
// round-tripping it through JSON, so the struct's json tags drive the
// field mapping instead of per-field type assertions.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var out T
	raw, err := json.Marshal(req.GetArguments())
	if err != nil {
		return out, fmt.Errorf("encode arguments: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode arguments: %w", err)
	}
	return out, nil
}

// Request types for each tool

// ContactAddRequest represents the arguments for contact_add.
type ContactAddRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// ContactGetRequest represents the arguments for contact_get.
type ContactGetRequest struct {
	Name string `json:"name"`
}

// ContactDeleteRequest represents the arguments for contact_delete.
type ContactDeleteRequest struct {
	Name string `json:"name"`
}

// ContactChangePhoneRequest represents the arguments for contact_change_phone.
type ContactChangePhoneRequest struct {
	Name     string `json:"name"`
	OldPhone string `json:"old_phone"`
	NewPhone string `json:"new_phone"`
}

// ContactSetBirthdayRequest represents the arguments for contact_set_birthday.
type ContactSetBirthdayRequest struct {
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
}

// ContactSetAddressRequest represents the arguments for contact_set_address.
type ContactSetAddressRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ContactSetEmailRequest represents the arguments for contact_set_email.
type ContactSetEmailRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ContactBirthdaysRequest represents the arguments for contact_birthdays.
type ContactBirthdaysRequest struct {
	Days int `json:"days,omitempty"`
}

// NoteAddRequest represents the arguments for note_add.
type NoteAddRequest struct {
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
}

// NoteDeleteRequest represents the arguments for note_delete.
type NoteDeleteRequest struct {
	Title string `json:"title"`
}

// NoteRenameRequest represents the arguments for note_rename.
type NoteRenameRequest struct {
	OldTitle string `json:"old_title"`
	NewTitle string `json:"new_title"`
}

// NoteEditRequest represents the arguments for note_edit.
type NoteEditRequest struct {
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
}

// NoteTagRequest represents the arguments for note_tag.
type NoteTagRequest struct {
	Title string `json:"title"`
	Tag   string `json:"tag"`
}

// NoteSearchRequest represents the arguments for note_search.
type NoteSearchRequest struct {
	Query string `json:"query"`
}

// Handler implementations

// HandleContactAdd handles the contact_add tool call.
func (h *Handlers) HandleContactAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ContactAddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.AddContact(h.db, ops.AddContactInput{
		Name:  input.Name,
		Phone: input.Phone,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleContactGet handles the contact_get tool call.
func (h *Handlers) HandleContactGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ContactGetRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.GetContact(h.db, ops.GetContactInput{Name: input.Name})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleContactList handles the contact_list tool call.
func (h *Handlers) HandleContactList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.ListContacts(h.db)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleContactDelete handles the contact_delete tool call.
func (h *Handlers) HandleContactDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ContactDeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.DeleteContact(h.db, ops.DeleteContactInput{Name: input.Name})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleContactChangePhone handles the contact_change_phone tool call.
func (h *Handlers) HandleContactChangePhone(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ContactChangePhoneRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.ChangePhone(h.db, ops.ChangePhoneInput{
		Name:     input.Name,
		OldPhone: input.OldPhone,
		NewPhone: input.NewPhone,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleContactSetBirthday handles the contact_set_birthday tool call.
func (h *Handlers) HandleContactSetBirthday(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ContactSetBirthdayRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.SetBirthday(h.db, ops.SetFieldInput{Name: input.Name, Value: input.Birthday})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleContactSetAddress handles the contact_set_address tool call.
func (h *Handlers) HandleContactSetAddress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ContactSetAddressRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.SetAddress(h.db, ops.SetFieldInput{Name: input.Name, Value: input.Address})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleContactSetEmail handles the contact_set_email tool call.
func (h *Handlers) HandleContactSetEmail(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ContactSetEmailRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.SetEmail(h.db, ops.SetFieldInput{Name: input.Name, Value: input.Email})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleContactBirthdays handles the contact_birthdays tool call.
func (h *Handlers) HandleContactBirthdays(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ContactBirthdaysRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.UpcomingBirthdays(h.db, h.cfg, ops.UpcomingBirthdaysInput{Days: input.Days})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleNoteAdd handles the note_add tool call.
func (h *Handlers) HandleNoteAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NoteAddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.AddNote(h.db, ops.AddNoteInput{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleNoteDelete handles the note_delete tool call.
func (h *Handlers) HandleNoteDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NoteDeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.DeleteNote(h.db, ops.DeleteNoteInput{Title: input.Title})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleNoteRename handles the note_rename tool call.
func (h *Handlers) HandleNoteRename(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NoteRenameRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.RenameNote(h.db, ops.RenameNoteInput{
		OldTitle: input.OldTitle,
		NewTitle: input.NewTitle,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleNoteEdit handles the note_edit tool call.
func (h *Handlers) HandleNoteEdit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NoteEditRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.EditNote(h.db, ops.EditNoteInput{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleNoteTag handles the note_tag tool call.
func (h *Handlers) HandleNoteTag(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NoteTagRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.TagNote(h.db, ops.TagNoteInput{
		Title: input.Title,
		Tag:   input.Tag,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleNoteSearch handles the note_search tool call.
func (h *Handlers) HandleNoteSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NoteSearchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.SearchNotes(h.db, ops.SearchNotesInput{Query: input.Query})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleNoteList handles the note_list tool call.
func (h *Handlers) HandleNoteList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.ListNotes(h.db)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	var sErr *errors.SatchelError
	if stderrors.As(err, &sErr) {
		// Keep wrapper context (e.g. "items[2]: ...") when present
		message := sErr.Message
		if err.Error() != sErr.Error() {
			message = err.Error()
		}
		errorObj := map[string]any{
			"code":    sErr.Code,
			"message": message,
			"status":  sErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if sErr.Code != errors.ErrInternal && sErr.Details != nil {
			errorObj["details"] = sErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
