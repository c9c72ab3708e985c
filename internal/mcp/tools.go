package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool definitions. Names follow the "type_action" pattern so that
// whole types can be disabled via config.

var contactAddToolDef = mcp.NewTool("contact_add",
	mcp.WithDescription("Add a contact, or append a phone number to an existing contact with the same name."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Contact name.")),
	mcp.WithString("phone", mcp.Description("Phone number, exactly 10 digits.")),
)

var contactGetToolDef = mcp.NewTool("contact_get",
	mcp.WithDescription("Look up a single contact by name."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Contact name.")),
)

var contactListToolDef = mcp.NewTool("contact_list",
	mcp.WithDescription("List all contacts in the order they were added."),
)

var contactDeleteToolDef = mcp.NewTool("contact_delete",
	mcp.WithDescription("Delete a contact by name."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Contact name.")),
)

var contactChangePhoneToolDef = mcp.NewTool("contact_change_phone",
	mcp.WithDescription("Replace one of a contact's phone numbers. The new number is validated before the old one is removed."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Contact name.")),
	mcp.WithString("old_phone", mcp.Required(), mcp.Description("Existing phone number to replace.")),
	mcp.WithString("new_phone", mcp.Required(), mcp.Description("Replacement phone number, exactly 10 digits.")),
)

var contactSetBirthdayToolDef = mcp.NewTool("contact_set_birthday",
	mcp.WithDescription("Set a contact's birthday. Format: DD.MM.YYYY, zero-padded."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Contact name.")),
	mcp.WithString("birthday", mcp.Required(), mcp.Description("Birthday in DD.MM.YYYY format.")),
)

var contactSetAddressToolDef = mcp.NewTool("contact_set_address",
	mcp.WithDescription("Set a contact's address."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Contact name.")),
	mcp.WithString("address", mcp.Required(), mcp.Description("Address, at least 2 characters.")),
)

var contactSetEmailToolDef = mcp.NewTool("contact_set_email",
	mcp.WithDescription("Set a contact's email address."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Contact name.")),
	mcp.WithString("email", mcp.Required(), mcp.Description("Email address.")),
)

var contactBirthdaysToolDef = mcp.NewTool("contact_birthdays",
	mcp.WithDescription("List contacts whose birthday falls within the next N days, inclusive of today and the window edge."),
	mcp.WithNumber("days", mcp.Description("Window size in days. Defaults to the configured window (7).")),
)

var noteAddToolDef = mcp.NewTool("note_add",
	mcp.WithDescription("Create a note. Titles are unique; adding an existing title fails."),
	mcp.WithString("title", mcp.Required(), mcp.Description("Note title.")),
	mcp.WithString("content", mcp.Description("Note body. May be empty.")),
)

var noteDeleteToolDef = mcp.NewTool("note_delete",
	mcp.WithDescription("Delete a note by title."),
	mcp.WithString("title", mcp.Required(), mcp.Description("Note title.")),
)

var noteRenameToolDef = mcp.NewTool("note_rename",
	mcp.WithDescription("Rename a note. Fails if the new title is already taken; content, tags, and position are preserved."),
	mcp.WithString("old_title", mcp.Required(), mcp.Description("Current note title.")),
	mcp.WithString("new_title", mcp.Required(), mcp.Description("New note title.")),
)

var noteEditToolDef = mcp.NewTool("note_edit",
	mcp.WithDescription("Replace a note's content."),
	mcp.WithString("title", mcp.Required(), mcp.Description("Note title.")),
	mcp.WithString("content", mcp.Description("New note body. May be empty.")),
)

var noteTagToolDef = mcp.NewTool("note_tag",
	mcp.WithDescription("Add a tag to a note. Tagging is idempotent."),
	mcp.WithString("title", mcp.Required(), mcp.Description("Note title.")),
	mcp.WithString("tag", mcp.Required(), mcp.Description("Tag to add.")),
)

var noteSearchToolDef = mcp.NewTool("note_search",
	mcp.WithDescription("Case-insensitive substring search over note titles and contents."),
	mcp.WithString("query", mcp.Required(), mcp.Description("Search term. Must not be blank.")),
)

var noteListToolDef = mcp.NewTool("note_list",
	mcp.WithDescription("List all notes in the order they were added."),
)
