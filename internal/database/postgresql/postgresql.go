package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"contacts/internal/config"
	"contacts/internal/database"
	"contacts/internal/database/postgresql/migrations"
)

const uniqueViolation = "23505"

type Database struct {
	db *sql.DB
}

// New connects to Postgres and applies the embedded migrations.
func New(ctx context.Context, configDb config.Database) (*Database, error) {
	const op = "database.postgresql.New"

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s "+"password=%s dbname=%s sslmode=%s",
		configDb.Host, configDb.Port, configDb.User, configDb.Password, configDb.Name, configDb.SSLMode)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("%s: Can not to connect: %w", op, err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: Can not to ping: %w", op, err)
	}

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: Setting migration dialect error: %w", op, err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: Migration error: %w", op, err)
	}

	return &Database{db: db}, nil
}

// NewFromDB wraps an already opened and migrated connection.
func NewFromDB(db *sql.DB) *Database {
	return &Database{db: db}
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) SaveUser(ctx context.Context, email, passwordHash string) (database.User, error) {
	const op = "database.postgresql.SaveUser"

	stmt, err := d.db.PrepareContext(ctx, `
	INSERT INTO users (email, hashed_password)
	VALUES ($1, $2)
	RETURNING id, is_active, is_verified, role, created_at;`)
	if err != nil {
		return database.User{}, fmt.Errorf("%s: Preparing statement error: %w", op, err)
	}
	defer stmt.Close()

	user := database.User{Email: email, PasswordHash: passwordHash}

	err = stmt.QueryRowContext(ctx, email, passwordHash).
		Scan(&user.ID, &user.IsActive, &user.IsVerified, &user.Role, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return database.User{}, fmt.Errorf("%s: %w", op, database.ErrUserExists)
		}

		return database.User{}, fmt.Errorf("%s: Executing statement error: %w", op, err)
	}

	return user, nil
}

func (d *Database) UserByEmail(ctx context.Context, email string) (database.User, error) {
	const op = "database.postgresql.UserByEmail"

	stmt, err := d.db.PrepareContext(ctx, `
	SELECT id, email, hashed_password, is_active, is_verified, avatar, role, created_at
	FROM users WHERE email = $1;`)
	if err != nil {
		return database.User{}, fmt.Errorf("%s: Preparing statement error: %w", op, err)
	}
	defer stmt.Close()

	var user database.User
	var avatar sql.NullString

	err = stmt.QueryRowContext(ctx, email).Scan(&user.ID, &user.Email, &user.PasswordHash,
		&user.IsActive, &user.IsVerified, &avatar, &user.Role, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return database.User{}, database.ErrUserNotFound
	}

	if err != nil {
		return database.User{}, fmt.Errorf("%s: Executing statement error: %w", op, err)
	}

	user.Avatar = avatar.String

	return user, nil
}

func (d *Database) VerifyUser(ctx context.Context, email string) error {
	const op = "database.postgresql.VerifyUser"

	return d.updateUser(ctx, op, `UPDATE users SET is_verified = true WHERE email = $1;`, email)
}

func (d *Database) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	const op = "database.postgresql.UpdatePassword"

	return d.updateUser(ctx, op, `UPDATE users SET hashed_password = $2 WHERE email = $1;`, email, passwordHash)
}

func (d *Database) UpdateAvatar(ctx context.Context, email, avatarURL string) error {
	const op = "database.postgresql.UpdateAvatar"

	return d.updateUser(ctx, op, `UPDATE users SET avatar = $2 WHERE email = $1;`, email, avatarURL)
}

func (d *Database) updateUser(ctx context.Context, op, query string, args ...any) error {
	stmt, err := d.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%s: Preparing statement error: %w", op, err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		return fmt.Errorf("%s: Executing statement error: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: Reading affected rows error: %w", op, err)
	}

	if affected == 0 {
		return database.ErrUserNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
