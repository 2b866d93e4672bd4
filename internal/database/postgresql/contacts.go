package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"contacts/internal/database"
)

const contactColumns = `id, owner_id, first_name, last_name, email, phone, birthday,
	additional_data, created_at, updated_at`

// likeEscaper makes search text match literally inside ILIKE patterns.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (database.Contact, error) {
	var c database.Contact
	var additional sql.NullString

	err := row.Scan(&c.ID, &c.OwnerID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.Birthday, &additional, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return database.Contact{}, err
	}

	c.AdditionalData = additional.String

	return c, nil
}

func (d *Database) SaveContact(ctx context.Context, contact database.Contact) (database.Contact, error) {
	const op = "database.postgresql.SaveContact"

	stmt, err := d.db.PrepareContext(ctx, `
	INSERT INTO contacts (owner_id, first_name, last_name, email, phone, birthday, additional_data)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, created_at, updated_at;`)
	if err != nil {
		return database.Contact{}, fmt.Errorf("%s: Preparing statement error: %w", op, err)
	}
	defer stmt.Close()

	err = stmt.QueryRowContext(ctx, contact.OwnerID, contact.FirstName, contact.LastName,
		contact.Email, contact.Phone, contact.Birthday, nullString(contact.AdditionalData)).
		Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return database.Contact{}, fmt.Errorf("%s: %w", op, database.ErrContactExists)
		}

		return database.Contact{}, fmt.Errorf("%s: Executing statement error: %w", op, err)
	}

	return contact, nil
}

func (d *Database) Contact(ctx context.Context, ownerID, id int64) (database.Contact, error) {
	const op = "database.postgresql.Contact"

	stmt, err := d.db.PrepareContext(ctx, `SELECT `+contactColumns+`
	FROM contacts WHERE id = $1 AND owner_id = $2;`)
	if err != nil {
		return database.Contact{}, fmt.Errorf("%s: Preparing statement error: %w", op, err)
	}
	defer stmt.Close()

	contact, err := scanContact(stmt.QueryRowContext(ctx, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return database.Contact{}, database.ErrContactNotFound
	}

	if err != nil {
		return database.Contact{}, fmt.Errorf("%s: Executing statement error: %w", op, err)
	}

	return contact, nil
}

func (d *Database) Contacts(ctx context.Context, ownerID int64, filter database.ContactFilter) ([]database.Contact, error) {
	const op = "database.postgresql.Contacts"

	stmt, err := d.db.PrepareContext(ctx, `SELECT `+contactColumns+`
	FROM contacts
	WHERE owner_id = $1 AND ($2 = '' OR first_name ILIKE '%' || $2 || '%' ESCAPE '\'
		OR last_name ILIKE '%' || $2 || '%' ESCAPE '\' OR email ILIKE '%' || $2 || '%' ESCAPE '\')
	ORDER BY id
	OFFSET $3 LIMIT $4;`)
	if err != nil {
		return nil, fmt.Errorf("%s: Preparing statement error: %w", op, err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, ownerID, likeEscaper.Replace(filter.Search), filter.Skip, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("%s: Executing statement error: %w", op, err)
	}

	return collectContacts(op, rows)
}

// ContactsByOwner returns every contact of the owner, unpaginated.
func (d *Database) ContactsByOwner(ctx context.Context, ownerID int64) ([]database.Contact, error) {
	const op = "database.postgresql.ContactsByOwner"

	stmt, err := d.db.PrepareContext(ctx, `SELECT `+contactColumns+`
	FROM contacts WHERE owner_id = $1 ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("%s: Preparing statement error: %w", op, err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: Executing statement error: %w", op, err)
	}

	return collectContacts(op, rows)
}

func collectContacts(op string, rows *sql.Rows) ([]database.Contact, error) {
	defer rows.Close()

	contacts := make([]database.Contact, 0)

	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scanning row error: %w", op, err)
		}

		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: Reading rows error: %w", op, err)
	}

	return contacts, nil
}

func (d *Database) UpdateContact(ctx context.Context, contact database.Contact) (database.Contact, error) {
	const op = "database.postgresql.UpdateContact"

	stmt, err := d.db.PrepareContext(ctx, `
	UPDATE contacts
	SET first_name = $3, last_name = $4, email = $5, phone = $6, birthday = $7,
		additional_data = $8, updated_at = now()
	WHERE id = $1 AND owner_id = $2
	RETURNING created_at, updated_at;`)
	if err != nil {
		return database.Contact{}, fmt.Errorf("%s: Preparing statement error: %w", op, err)
	}
	defer stmt.Close()

	err = stmt.QueryRowContext(ctx, contact.ID, contact.OwnerID, contact.FirstName, contact.LastName,
		contact.Email, contact.Phone, contact.Birthday, nullString(contact.AdditionalData)).
		Scan(&contact.CreatedAt, &contact.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return database.Contact{}, database.ErrContactNotFound
	}

	if err != nil {
		if isUniqueViolation(err) {
			return database.Contact{}, fmt.Errorf("%s: %w", op, database.ErrContactExists)
		}

		return database.Contact{}, fmt.Errorf("%s: Executing statement error: %w", op, err)
	}

	return contact, nil
}

func (d *Database) DeleteContact(ctx context.Context, ownerID, id int64) error {
	const op = "database.postgresql.DeleteContact"

	stmt, err := d.db.PrepareContext(ctx, `DELETE FROM contacts WHERE id = $1 AND owner_id = $2;`)
	if err != nil {
		return fmt.Errorf("%s: Preparing statement error: %w", op, err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("%s: Executing statement error: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: Reading affected rows error: %w", op, err)
	}

	if affected == 0 {
		return database.ErrContactNotFound
	}

	return nil
}
