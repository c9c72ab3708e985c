package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/satchel/internal/config"
	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/store"
)

// testSetup creates a temporary database and config for testing.
func testSetup(t *testing.T) (*sql.DB, *config.Config, func()) {
	t.Helper()

	tmpDir := t.TempDir()
	database, err := store.Init(tmpDir)
	if err != nil {
		t.Fatalf("failed to init db: %v", err)
	}

	cfg := config.DefaultConfig()

	cleanup := func() {
		database.Close()
	}

	return database, cfg, cleanup
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

// TestHandleContactAdd tests the contact_add handler.
func TestHandleContactAdd(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()

	tests := []struct {
		name      string
		args      map[string]any
		wantError bool
		errorCode string
	}{
		{
			name: "add with phone",
			args: map[string]any{
				"name":  "Ann",
				"phone": "0501234567",
			},
			wantError: false,
		},
		{
			name: "add without phone",
			args: map[string]any{
				"name": "Bob",
			},
			wantError: false,
		},
		{
			name: "existing name appends phone",
			args: map[string]any{
				"name":  "Ann",
				"phone": "0509999999",
			},
			wantError: false,
		},
		{
			name:      "missing name",
			args:      map[string]any{},
			wantError: true,
			errorCode: "INVALID_REQUEST",
		},
		{
			name: "invalid phone",
			args: map[string]any{
				"name":  "Carol",
				"phone": "123",
			},
			wantError: true,
			errorCode: "VALIDATION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := makeRequest(tt.args)
			result, err := h.HandleContactAdd(ctx, req)

			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}

			if tt.wantError {
				if !result.IsError {
					t.Errorf("expected error result, got success")
				}
				if tt.errorCode != "" {
					assertErrorCode(t, result, tt.errorCode)
				}
			} else {
				if result.IsError {
					t.Errorf("expected success, got error: %v", extractErrorMessage(result))
				}
			}
		})
	}
}

// TestHandleContactGet tests the contact_get handler.
func TestHandleContactGet(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()

	addReq := makeRequest(map[string]any{"name": "Ann", "phone": "0501234567"})
	addResult, _ := h.HandleContactAdd(ctx, addReq)
	if addResult.IsError {
		t.Fatalf("setup add failed: %v", extractErrorMessage(addResult))
	}

	t.Run("get existing", func(t *testing.T) {
		req := makeRequest(map[string]any{"name": "Ann"})
		result, err := h.HandleContactGet(ctx, req)
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		output := parseOutput(t, result)
		contact := output["contact"].(map[string]any)
		if contact["name"] != "Ann" {
			t.Errorf("name = %v, want Ann", contact["name"])
		}
	})

	t.Run("get non-existent", func(t *testing.T) {
		req := makeRequest(map[string]any{"name": "Nobody"})
		result, err := h.HandleContactGet(ctx, req)
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if !result.IsError {
			t.Fatal("expected error result")
		}
		assertErrorCode(t, result, "NOT_FOUND")
	})
}

// TestHandleContactChangePhone tests the contact_change_phone handler.
func TestHandleContactChangePhone(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()

	addReq := makeRequest(map[string]any{"name": "Ann", "phone": "0501234567"})
	if _, err := h.HandleContactAdd(ctx, addReq); err != nil {
		t.Fatalf("setup add failed: %v", err)
	}

	tests := []struct {
		name      string
		args      map[string]any
		wantError bool
		errorCode string
	}{
		{
			name: "change existing phone",
			args: map[string]any{
				"name":      "Ann",
				"old_phone": "0501234567",
				"new_phone": "0667778899",
			},
			wantError: false,
		},
		{
			name: "old phone absent",
			args: map[string]any{
				"name":      "Ann",
				"old_phone": "0501234567", // replaced above
				"new_phone": "0600000000",
			},
			wantError: true,
			errorCode: "NOT_FOUND",
		},
		{
			name: "invalid new phone",
			args: map[string]any{
				"name":      "Ann",
				"old_phone": "0667778899",
				"new_phone": "nope",
			},
			wantError: true,
			errorCode: "VALIDATION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := makeRequest(tt.args)
			result, err := h.HandleContactChangePhone(ctx, req)
			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}

			if tt.wantError {
				if !result.IsError {
					t.Errorf("expected error result, got success")
				}
				if tt.errorCode != "" {
					assertErrorCode(t, result, tt.errorCode)
				}
			} else if result.IsError {
				t.Errorf("expected success, got error: %v", extractErrorMessage(result))
			}
		})
	}
}

// TestHandleContactSetters tests the set_birthday/set_address/set_email handlers.
func TestHandleContactSetters(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()

	addReq := makeRequest(map[string]any{"name": "Ann"})
	if _, err := h.HandleContactAdd(ctx, addReq); err != nil {
		t.Fatalf("setup add failed: %v", err)
	}

	t.Run("set birthday", func(t *testing.T) {
		req := makeRequest(map[string]any{"name": "Ann", "birthday": "12.06.1990"})
		result, err := h.HandleContactSetBirthday(ctx, req)
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		output := parseOutput(t, result)
		contact := output["contact"].(map[string]any)
		if contact["birthday"] != "12.06.1990" {
			t.Errorf("birthday = %v, want 12.06.1990", contact["birthday"])
		}
	})

	t.Run("set birthday invalid format", func(t *testing.T) {
		req := makeRequest(map[string]any{"name": "Ann", "birthday": "1990-06-12"})
		result, err := h.HandleContactSetBirthday(ctx, req)
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if !result.IsError {
			t.Fatal("expected error result")
		}
		assertErrorCode(t, result, "VALIDATION")
	})

	t.Run("set address", func(t *testing.T) {
		req := makeRequest(map[string]any{"name": "Ann", "address": "12 Main St"})
		result, err := h.HandleContactSetAddress(ctx, req)
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if result.IsError {
			t.Errorf("expected success, got error: %v", extractErrorMessage(result))
		}
	})

	t.Run("set email invalid", func(t *testing.T) {
		req := makeRequest(map[string]any{"name": "Ann", "email": "not-an-email"})
		result, err := h.HandleContactSetEmail(ctx, req)
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if !result.IsError {
			t.Fatal("expected error result")
		}
		assertErrorCode(t, result, "VALIDATION")
	})
}

// TestHandleContactBirthdays tests the contact_birthdays handler.
func TestHandleContactBirthdays(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()

	req := makeRequest(map[string]any{"days": 7})
	result, err := h.HandleContactBirthdays(ctx, req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	output := parseOutput(t, result)
	if int(output["days"].(float64)) != 7 {
		t.Errorf("days = %v, want 7", output["days"])
	}
}

// TestHandleNoteLifecycle walks a note through add, rename, tag, search, delete.
func TestHandleNoteLifecycle(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()

	// Add
	addReq := makeRequest(map[string]any{"title": "Shopping", "content": "milk"})
	addResult, err := h.HandleNoteAdd(ctx, addReq)
	if err != nil {
		t.Fatalf("add handler returned error: %v", err)
	}
	addOutput := parseOutput(t, addResult)
	noteID := addOutput["note"].(map[string]any)["id"].(string)

	// Duplicate title rejected
	dupResult, _ := h.HandleNoteAdd(ctx, addReq)
	if !dupResult.IsError {
		t.Fatal("expected error for duplicate title")
	}
	assertErrorCode(t, dupResult, "ALREADY_EXISTS")

	// Rename keeps the ID
	renameReq := makeRequest(map[string]any{"old_title": "Shopping", "new_title": "Groceries"})
	renameResult, err := h.HandleNoteRename(ctx, renameReq)
	if err != nil {
		t.Fatalf("rename handler returned error: %v", err)
	}
	renameOutput := parseOutput(t, renameResult)
	if got := renameOutput["note"].(map[string]any)["id"].(string); got != noteID {
		t.Errorf("id after rename = %q, want %q", got, noteID)
	}

	// Edit
	editReq := makeRequest(map[string]any{"title": "Groceries", "content": "milk, eggs"})
	editResult, err := h.HandleNoteEdit(ctx, editReq)
	if err != nil {
		t.Fatalf("edit handler returned error: %v", err)
	}
	if editResult.IsError {
		t.Fatalf("edit failed: %v", extractErrorMessage(editResult))
	}

	// Tag twice, second is reported as not added
	tagReq := makeRequest(map[string]any{"title": "Groceries", "tag": "errands"})
	tagResult, err := h.HandleNoteTag(ctx, tagReq)
	if err != nil {
		t.Fatalf("tag handler returned error: %v", err)
	}
	if added := parseOutput(t, tagResult)["added"]; added != true {
		t.Errorf("added = %v, want true", added)
	}
	tagResult, _ = h.HandleNoteTag(ctx, tagReq)
	if added := parseOutput(t, tagResult)["added"]; added != false {
		t.Errorf("added = %v, want false on repeat", added)
	}

	// Search is case-insensitive
	searchReq := makeRequest(map[string]any{"query": "MILK"})
	searchResult, err := h.HandleNoteSearch(ctx, searchReq)
	if err != nil {
		t.Fatalf("search handler returned error: %v", err)
	}
	searchOutput := parseOutput(t, searchResult)
	if int(searchOutput["total"].(float64)) != 1 {
		t.Errorf("total = %v, want 1", searchOutput["total"])
	}

	// Blank query rejected
	blankReq := makeRequest(map[string]any{"query": "  "})
	blankResult, _ := h.HandleNoteSearch(ctx, blankReq)
	if !blankResult.IsError {
		t.Fatal("expected error for blank query")
	}
	assertErrorCode(t, blankResult, "EMPTY_QUERY")

	// Delete
	deleteReq := makeRequest(map[string]any{"title": "Groceries"})
	deleteResult, err := h.HandleNoteDelete(ctx, deleteReq)
	if err != nil {
		t.Fatalf("delete handler returned error: %v", err)
	}
	if deleteResult.IsError {
		t.Fatalf("delete failed: %v", extractErrorMessage(deleteResult))
	}

	// List is now empty
	listResult, err := h.HandleNoteList(ctx, makeRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("list handler returned error: %v", err)
	}
	listOutput := parseOutput(t, listResult)
	if int(listOutput["total"].(float64)) != 0 {
		t.Errorf("total = %v, want 0", listOutput["total"])
	}
}

func TestServerRegistration(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	s := NewServer(database, cfg, "test")
	tools := s.ListTools()
	if tools == nil {
		t.Fatal("expected tools to be registered, got nil")
	}

	expectedTools := []string{
		"contact_add",
		"contact_get",
		"contact_list",
		"contact_delete",
		"contact_change_phone",
		"contact_set_birthday",
		"contact_set_address",
		"contact_set_email",
		"contact_birthdays",
		"note_add",
		"note_delete",
		"note_rename",
		"note_edit",
		"note_tag",
		"note_search",
		"note_list",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("registered tool count = %d, want %d", len(tools), len(expectedTools))
	}

	for _, name := range expectedTools {
		if _, ok := tools[name]; !ok {
			t.Errorf("missing registered tool: %s", name)
		}
	}
}

func TestServerRegistration_WithDisabledTools(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	cfg.DisabledTools = []string{"note_tag", "contact_birthdays"}
	s := NewServer(database, cfg, "test")
	tools := s.ListTools()

	if len(tools) != 14 {
		t.Errorf("registered tool count = %d, want 14", len(tools))
	}

	for _, name := range []string{"note_tag", "contact_birthdays"} {
		if _, ok := tools[name]; ok {
			t.Errorf("disabled tool %q should not be registered", name)
		}
	}

	for _, name := range []string{"contact_add", "note_add"} {
		if _, ok := tools[name]; !ok {
			t.Errorf("core tool %q should be registered", name)
		}
	}
}

func TestServerRegistration_WithDisabledTypes(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	cfg.DisabledTypes = []string{"note"}
	s := NewServer(database, cfg, "test")
	tools := s.ListTools()

	// Only the 9 contact tools remain
	if len(tools) != 9 {
		t.Errorf("registered tool count = %d, want 9", len(tools))
	}
	for name := range tools {
		if strings.HasPrefix(name, "note_") {
			t.Errorf("note tool %q should not be registered", name)
		}
	}
}

func TestServerRegistration_AllToolsDisabled(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	cfg.DisabledTools = AllToolNames()
	s := NewServer(database, cfg, "test")
	tools := s.ListTools()

	if len(tools) != 0 {
		t.Errorf("registered tool count = %d, want 0 (all disabled)", len(tools))
	}
}

func TestValidateDisabledTools(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantLen int
	}{
		{
			name:    "all valid",
			input:   []string{"note_tag", "contact_add"},
			wantLen: 0,
		},
		{
			name:    "one unknown",
			input:   []string{"note_tag", "fake_tool"},
			wantLen: 1,
		},
		{
			name:    "all unknown",
			input:   []string{"foo", "bar", "baz"},
			wantLen: 3,
		},
		{
			name:    "empty list",
			input:   []string{},
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unknown := ValidateDisabledTools(tt.input)
			if len(unknown) != tt.wantLen {
				t.Errorf("ValidateDisabledTools() returned %d unknown, want %d", len(unknown), tt.wantLen)
			}
		})
	}
}

func TestValidateDisabledTypes(t *testing.T) {
	unknown := ValidateDisabledTypes([]string{"contact", "note", "capsule"})
	if len(unknown) != 1 || unknown[0] != "capsule" {
		t.Errorf("unknown = %v, want [capsule]", unknown)
	}
}

func TestGetTypeForTool(t *testing.T) {
	if typ := GetTypeForTool("contact_change_phone"); typ != "contact" {
		t.Errorf("type = %q, want contact", typ)
	}
	if typ := GetTypeForTool("note_add"); typ != "note" {
		t.Errorf("type = %q, want note", typ)
	}
	if typ := GetTypeForTool("plain"); typ != "" {
		t.Errorf("type = %q, want empty", typ)
	}
}

func TestAllToolNames(t *testing.T) {
	names := AllToolNames()

	if len(names) != 16 {
		t.Errorf("AllToolNames() returned %d names, want 16", len(names))
	}

	unknown := ValidateDisabledTools(names)
	if len(unknown) != 0 {
		t.Errorf("AllToolNames() returned invalid names: %v", unknown)
	}
}

func TestErrorResult_InternalDoesNotExposeDetails(t *testing.T) {
	r := errorResult(errors.NewInternal(fmt.Errorf("sql error: open /tmp/secret.db: permission denied")))
	if !r.IsError {
		t.Fatal("expected IsError=true")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(r.Content[0].(mcp.TextContent).Text), &payload); err != nil {
		t.Fatalf("failed to unmarshal error payload: %v", err)
	}
	errObj := payload["error"].(map[string]any)

	if errObj["code"] != string(errors.ErrInternal) {
		t.Fatalf("code=%v, want %v", errObj["code"], errors.ErrInternal)
	}
	if _, ok := errObj["details"]; ok {
		t.Fatal("expected INTERNAL errors to omit details")
	}
}

func TestErrorResult_WrappedErrorPreservesContext(t *testing.T) {
	originalErr := errors.NewNotFound("note", "Groceries")
	wrappedErr := fmt.Errorf("items[2]: %w", originalErr)

	r := errorResult(wrappedErr)
	if !r.IsError {
		t.Fatal("expected IsError=true")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(r.Content[0].(mcp.TextContent).Text), &payload); err != nil {
		t.Fatalf("failed to unmarshal error payload: %v", err)
	}
	errObj := payload["error"].(map[string]any)

	if errObj["code"] != string(errors.ErrNotFound) {
		t.Errorf("code=%v, want %v", errObj["code"], errors.ErrNotFound)
	}

	msg := errObj["message"].(string)
	if !strings.Contains(msg, "items[2]") {
		t.Errorf("message should contain wrapper context 'items[2]', got: %s", msg)
	}
}

func TestErrorResult_NonInternalIncludesDetails(t *testing.T) {
	r := errorResult(errors.NewNotFound("contact", "Ann"))
	if !r.IsError {
		t.Fatal("expected IsError=true")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(r.Content[0].(mcp.TextContent).Text), &payload); err != nil {
		t.Fatalf("failed to unmarshal error payload: %v", err)
	}
	errObj := payload["error"].(map[string]any)

	if errObj["code"] != string(errors.ErrNotFound) {
		t.Fatalf("code=%v, want %v", errObj["code"], errors.ErrNotFound)
	}
	if _, ok := errObj["details"]; !ok {
		t.Fatal("expected non-INTERNAL errors to include details when present")
	}
}

// Helper functions

// parseOutput extracts and unmarshals the JSON output from an MCP result.
func parseOutput(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractErrorMessage(result))
	}
	var output map[string]any
	if err := json.Unmarshal([]byte(result.Content[0].(mcp.TextContent).Text), &output); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return output
}

func assertErrorCode(t *testing.T, result *mcp.CallToolResult, expectedCode string) {
	t.Helper()

	if len(result.Content) == 0 {
		t.Errorf("no content in error result")
		return
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Errorf("content is not TextContent")
		return
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Errorf("failed to unmarshal error payload: %v", err)
		return
	}

	errorObj, ok := payload["error"].(map[string]any)
	if !ok {
		t.Errorf("no error object in payload")
		return
	}

	code, ok := errorObj["code"].(string)
	if !ok {
		t.Errorf("no code in error object")
		return
	}

	if code != expectedCode {
		t.Errorf("got error code %q, want %q", code, expectedCode)
	}
}

func extractErrorMessage(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return "<no content>"
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		return "<not text content>"
	}

	return text.Text
}
