package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"passvault/internal/domain"
	"passvault/internal/repository"
)

const createLoginsTable = `
CREATE TABLE IF NOT EXISTS logins (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	owner_id INTEGER NOT NULL,
	username TEXT NOT NULL DEFAULT '',
	password TEXT NOT NULL DEFAULT '',
	note TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	linked_websites TEXT NOT NULL DEFAULT '',
	collections TEXT NOT NULL DEFAULT '',
	used_at DATETIME NOT NULL,
	FOREIGN KEY(owner_id) REFERENCES users(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_logins_owner_id ON logins(owner_id);
`

type LoginEntryRepository struct {
	db *sql.DB
}

func NewLoginEntryRepository(db *sql.DB) repository.LoginEntryRepository {
	return &LoginEntryRepository{db: db}
}

func (r *LoginEntryRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createLoginsTable); err != nil {
		return fmt.Errorf("create logins table: %w", err)
	}
	return nil
}

func (r *LoginEntryRepository) Create(ctx context.Context, entry *domain.LoginEntry) (int64, error) {
	if entry.UsedAt.IsZero() {
		entry.UsedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO logins (owner_id, username, password, note, email, linked_websites, collections, used_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.OwnerID,
		entry.Username,
		entry.Password,
		entry.Note,
		entry.Email,
		joinList(entry.LinkedWebsites),
		joinList(entry.Collections),
		entry.UsedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert login: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("login last insert id: %w", err)
	}
	entry.ID = id
	return id, nil
}

func (r *LoginEntryRepository) Get(ctx context.Context, id int64) (*domain.LoginEntry, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, owner_id, username, password, note, email, linked_websites, collections, used_at
FROM logins
WHERE id = ?`,
		id,
	)
	return scanLogin(row)
}

func (r *LoginEntryRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.LoginEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, owner_id, username, password, note, email, linked_websites, collections, used_at
FROM logins
WHERE owner_id = ?
ORDER BY id ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query logins: %w", err)
	}
	defer rows.Close()

	var entries []domain.LoginEntry
	for rows.Next() {
		entry, err := scanLogin(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	return entries, rows.Err()
}

func (r *LoginEntryRepository) Update(ctx context.Context, entry *domain.LoginEntry) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE logins
SET username = ?, password = ?, note = ?, email = ?, linked_websites = ?, collections = ?
WHERE id = ?`,
		entry.Username,
		entry.Password,
		entry.Note,
		entry.Email,
		joinList(entry.LinkedWebsites),
		joinList(entry.Collections),
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("update login: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update login rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *LoginEntryRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM logins WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete login: %w", err)
	}
	return nil
}

func scanLogin(row interface {
	Scan(dest ...any) error
}) (*domain.LoginEntry, error) {
	var (
		entry       domain.LoginEntry
		websites    string
		collections string
	)
	if err := row.Scan(
		&entry.ID,
		&entry.OwnerID,
		&entry.Username,
		&entry.Password,
		&entry.Note,
		&entry.Email,
		&websites,
		&collections,
		&entry.UsedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan login: %w", err)
	}
	entry.LinkedWebsites = splitList(websites)
	entry.Collections = splitList(collections)
	return &entry, nil
}

func joinList(items []string) string {
	return strings.Join(items, ",")
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
