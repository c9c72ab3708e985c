package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/satchel/internal/config"
	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/ops"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config, baseDir string) *cli.App {
	app := &cli.App{
		Name:    "satchel",
		Usage:   "Personal contacts and notes",
		Version: Version,
		Commands: []*cli.Command{
			addCmd(db),
			changeCmd(db),
			phoneCmd(db),
			allCmd(db),
			addBirthdayCmd(db),
			showBirthdayCmd(db),
			addAddressCmd(db),
			addEmailCmd(db),
			birthdaysCmd(db, cfg),
			deleteCmd(db),
			noteCmd(db),
			exportCmd(db, baseDir),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// addCmd creates the add command.
func addCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a contact, or append a phone to an existing one",
		ArgsUsage: "<name> [phone]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("usage: add <name> [phone]"))
			}

			output, err := ops.AddContact(db, ops.AddContactInput{
				Name:  c.Args().Get(0),
				Phone: c.Args().Get(1),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// changeCmd creates the change command.
func changeCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "change",
		Usage:     "Replace a contact's phone number",
		ArgsUsage: "<name> <old-phone> <new-phone>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 3 {
				return outputError(errors.NewInvalidRequest("usage: change <name> <old-phone> <new-phone>"))
			}

			output, err := ops.ChangePhone(db, ops.ChangePhoneInput{
				Name:     c.Args().Get(0),
				OldPhone: c.Args().Get(1),
				NewPhone: c.Args().Get(2),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// phoneCmd creates the phone command.
func phoneCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "phone",
		Usage:     "Show a contact's record",
		ArgsUsage: "<name>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return outputError(errors.NewInvalidRequest("usage: phone <name>"))
			}

			output, err := ops.GetContact(db, ops.GetContactInput{Name: c.Args().Get(0)})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// allCmd creates the all command.
func allCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "all",
		Usage: "List all contacts",
		Action: func(c *cli.Context) error {
			output, err := ops.ListContacts(db)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// addBirthdayCmd creates the add-birthday command.
func addBirthdayCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "add-birthday",
		Usage:     "Set a contact's birthday (DD.MM.YYYY)",
		ArgsUsage: "<name> <birthday>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return outputError(errors.NewInvalidRequest("usage: add-birthday <name> <DD.MM.YYYY>"))
			}

			output, err := ops.SetBirthday(db, ops.SetFieldInput{
				Name:  c.Args().Get(0),
				Value: c.Args().Get(1),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// showBirthdayCmd creates the show-birthday command.
func showBirthdayCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "show-birthday",
		Usage:     "Show a contact's birthday",
		ArgsUsage: "<name>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return outputError(errors.NewInvalidRequest("usage: show-birthday <name>"))
			}

			output, err := ops.GetContact(db, ops.GetContactInput{Name: c.Args().Get(0)})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(map[string]any{
				"name":     output.Contact.Name,
				"birthday": output.Contact.Birthday,
			})
		},
	}
}

// addAddressCmd creates the add-address command.
func addAddressCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "add-address",
		Usage:     "Set a contact's address",
		ArgsUsage: "<name> <address>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return outputError(errors.NewInvalidRequest("usage: add-address <name> <address>"))
			}

			output, err := ops.SetAddress(db, ops.SetFieldInput{
				Name:  c.Args().Get(0),
				Value: c.Args().Get(1),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// addEmailCmd creates the add-email command.
func addEmailCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "add-email",
		Usage:     "Set a contact's email",
		ArgsUsage: "<name> <email>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return outputError(errors.NewInvalidRequest("usage: add-email <name> <email>"))
			}

			output, err := ops.SetEmail(db, ops.SetFieldInput{
				Name:  c.Args().Get(0),
				Value: c.Args().Get(1),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// birthdaysCmd creates the birthdays command.
func birthdaysCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "birthdays",
		Usage: "List contacts with birthdays in the coming days",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "days", Aliases: []string{"d"}, Usage: "Window size in days (default: configured window)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.UpcomingBirthdays(db, cfg, ops.UpcomingBirthdaysInput{
				Days: c.Int("days"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a contact",
		ArgsUsage: "<name>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return outputError(errors.NewInvalidRequest("usage: delete <name>"))
			}

			output, err := ops.DeleteContact(db, ops.DeleteContactInput{Name: c.Args().Get(0)})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// noteCmd creates the note command with its subcommands.
func noteCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "note",
		Usage: "Manage notes",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Create a note",
				ArgsUsage: "<title> [content]",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("usage: note add <title> [content]"))
					}

					output, err := ops.AddNote(db, ops.AddNoteInput{
						Title:   c.Args().Get(0),
						Content: c.Args().Get(1),
					})
					if err != nil {
						return outputError(err)
					}

					return outputJSON(output)
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a note",
				ArgsUsage: "<title>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return outputError(errors.NewInvalidRequest("usage: note delete <title>"))
					}

					output, err := ops.DeleteNote(db, ops.DeleteNoteInput{Title: c.Args().Get(0)})
					if err != nil {
						return outputError(err)
					}

					return outputJSON(output)
				},
			},
			{
				Name:      "rename",
				Usage:     "Rename a note",
				ArgsUsage: "<old-title> <new-title>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return outputError(errors.NewInvalidRequest("usage: note rename <old-title> <new-title>"))
					}

					output, err := ops.RenameNote(db, ops.RenameNoteInput{
						OldTitle: c.Args().Get(0),
						NewTitle: c.Args().Get(1),
					})
					if err != nil {
						return outputError(err)
					}

					return outputJSON(output)
				},
			},
			{
				Name:      "edit",
				Usage:     "Replace a note's content",
				ArgsUsage: "<title> <content>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("usage: note edit <title> [content]"))
					}

					output, err := ops.EditNote(db, ops.EditNoteInput{
						Title:   c.Args().Get(0),
						Content: c.Args().Get(1),
					})
					if err != nil {
						return outputError(err)
					}

					return outputJSON(output)
				},
			},
			{
				Name:      "tag",
				Usage:     "Add a tag to a note",
				ArgsUsage: "<title> <tag>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return outputError(errors.NewInvalidRequest("usage: note tag <title> <tag>"))
					}

					output, err := ops.TagNote(db, ops.TagNoteInput{
						Title: c.Args().Get(0),
						Tag:   c.Args().Get(1),
					})
					if err != nil {
						return outputError(err)
					}

					return outputJSON(output)
				},
			},
			{
				Name:      "search",
				Usage:     "Search note titles and contents",
				ArgsUsage: "<query>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return outputError(errors.NewInvalidRequest("usage: note search <query>"))
					}

					output, err := ops.SearchNotes(db, ops.SearchNotesInput{Query: c.Args().Get(0)})
					if err != nil {
						return outputError(err)
					}

					return outputJSON(output)
				},
			},
			{
				Name:  "list",
				Usage: "List all notes",
				Action: func(c *cli.Context) error {
					output, err := ops.ListNotes(db)
					if err != nil {
						return outputError(err)
					}

					return outputJSON(output)
				},
			},
		},
	}
}

// exportCmd creates the export command.
func exportCmd(db *sql.DB, baseDir string) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export all contacts and notes to a document",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Export file path (default: ~/.satchel/exports/satchel-<timestamp>.<ext>)"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "markdown", Usage: "Output format: markdown|html"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Export(db, ops.ExportInput{
				BaseDir: baseDir,
				Format:  c.String("format"),
				Path:    c.String("path"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if sErr, ok := err.(*errors.SatchelError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", sErr.Code, sErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
