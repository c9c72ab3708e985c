package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hpungsan/satchel/internal/contact"
	"github.com/hpungsan/satchel/internal/errors"
)

// SaveBook replaces the persisted contact snapshot with the book's current
// state in a single transaction. Record IDs, insertion order, and phone
// order (including duplicates) are preserved.
func SaveBook(db *sql.DB, book *contact.Book) error {
	tx, err := db.Begin()
	if err != nil {
		return errors.NewInternal(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM contact_phones"); err != nil {
		return errors.NewInternal(err)
	}
	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return errors.NewInternal(err)
	}

	now := time.Now().Unix()
	for pos, r := range book.Records() {
		var birthday, email, address *string
		if r.Birthday != nil {
			s := r.Birthday.String()
			birthday = &s
		}
		if r.Email != nil {
			s := r.Email.String()
			email = &s
		}
		if r.Address != nil {
			s := r.Address.String()
			address = &s
		}

		_, err := tx.Exec(
			`INSERT INTO contacts (id, name, birthday, email, address, position, saved_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Name, toNullString(birthday), toNullString(email), toNullString(address), pos, now,
		)
		if err != nil {
			return errors.NewInternal(err)
		}

		for i, p := range r.Phones {
			_, err := tx.Exec(
				`INSERT INTO contact_phones (contact_id, position, number) VALUES (?, ?, ?)`,
				r.ID, i, p.String(),
			)
			if err != nil {
				return errors.NewInternal(err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// LoadBook restores the contact book from the persisted snapshot.
// A missing or empty snapshot yields an empty book, not an error.
func LoadBook(db *sql.DB) (*contact.Book, error) {
	phones, err := loadPhones(db)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT id, name, birthday, email, address FROM contacts ORDER BY position`,
	)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	book := contact.NewBook()
	for rows.Next() {
		var id, name string
		var birthday, email, address sql.NullString
		if err := rows.Scan(&id, &name, &birthday, &email, &address); err != nil {
			return nil, errors.NewInternal(err)
		}

		r := &contact.Record{ID: id, Name: name}
		for _, number := range phones[id] {
			if err := r.AddPhone(number); err != nil {
				return nil, corrupt("phone", number, err)
			}
		}
		if birthday.Valid {
			if err := r.SetBirthday(birthday.String); err != nil {
				return nil, corrupt("birthday", birthday.String, err)
			}
		}
		if email.Valid {
			if err := r.SetEmail(email.String); err != nil {
				return nil, corrupt("email", email.String, err)
			}
		}
		if address.Valid {
			if err := r.SetAddress(address.String); err != nil {
				return nil, corrupt("address", address.String, err)
			}
		}

		book.Add(r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return book, nil
}

// loadPhones returns all phone numbers keyed by contact ID, in stored order.
func loadPhones(db *sql.DB) (map[string][]string, error) {
	rows, err := db.Query(
		`SELECT contact_id, number FROM contact_phones ORDER BY contact_id, position`,
	)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	phones := make(map[string][]string)
	for rows.Next() {
		var contactID, number string
		if err := rows.Scan(&contactID, &number); err != nil {
			return nil, errors.NewInternal(err)
		}
		phones[contactID] = append(phones[contactID], number)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return phones, nil
}

// corrupt wraps a validation failure on persisted data. Values were
// validated before saving, so this indicates snapshot corruption.
func corrupt(kind, value string, err error) error {
	return errors.NewInternal(fmt.Errorf("corrupt snapshot: invalid %s %q: %w", kind, value, err))
}
