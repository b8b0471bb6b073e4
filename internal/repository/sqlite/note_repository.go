package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"passvault/internal/domain"
	"passvault/internal/repository"
)

const createNotesTables = `
CREATE TABLE IF NOT EXISTS secured_notes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	owner_id INTEGER NOT NULL,
	name TEXT NOT NULL DEFAULT '',
	content TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	modified_at DATETIME NOT NULL,
	FOREIGN KEY(owner_id) REFERENCES users(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_secured_notes_owner_id ON secured_notes(owner_id);

CREATE TABLE IF NOT EXISTS note_attachments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	note_id INTEGER NOT NULL,
	owner_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	size INTEGER NOT NULL,
	content_type TEXT NOT NULL DEFAULT '',
	object_key TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	FOREIGN KEY(note_id) REFERENCES secured_notes(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_note_attachments_note_id ON note_attachments(note_id);
`

type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) repository.NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createNotesTables); err != nil {
		return fmt.Errorf("create notes tables: %w", err)
	}
	return nil
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.SecuredNote) (int64, error) {
	now := time.Now().UTC()
	note.CreatedAt = now
	note.ModifiedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO secured_notes (owner_id, name, content, color, created_at, modified_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		note.OwnerID,
		note.Name,
		note.Content,
		note.Color,
		note.CreatedAt,
		note.ModifiedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("note last insert id: %w", err)
	}
	note.ID = id
	return id, nil
}

func (r *NoteRepository) Get(ctx context.Context, id int64) (*domain.SecuredNote, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, owner_id, name, content, color, created_at, modified_at
FROM secured_notes
WHERE id = ?`,
		id,
	)
	return scanNote(row)
}

func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.SecuredNote, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, owner_id, name, content, color, created_at, modified_at
FROM secured_notes
WHERE owner_id = ?
ORDER BY id ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.SecuredNote
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}

	return notes, rows.Err()
}

func (r *NoteRepository) Update(ctx context.Context, note *domain.SecuredNote) error {
	note.ModifiedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
UPDATE secured_notes
SET name = ?, content = ?, color = ?, modified_at = ?
WHERE id = ?`,
		note.Name,
		note.Content,
		note.Color,
		note.ModifiedAt,
		note.ID,
	)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update note rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM secured_notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

func (r *NoteRepository) CreateAttachment(ctx context.Context, att *domain.NoteAttachment) (int64, error) {
	if att.CreatedAt.IsZero() {
		att.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO note_attachments (note_id, owner_id, name, size, content_type, object_key, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		att.NoteID,
		att.OwnerID,
		att.Name,
		att.Size,
		att.ContentType,
		att.ObjectKey,
		att.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert attachment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("attachment last insert id: %w", err)
	}
	att.ID = id
	return id, nil
}

func (r *NoteRepository) GetAttachment(ctx context.Context, id int64) (*domain.NoteAttachment, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, note_id, owner_id, name, size, content_type, object_key, created_at
FROM note_attachments
WHERE id = ?`,
		id,
	)
	return scanAttachment(row)
}

func (r *NoteRepository) ListAttachments(ctx context.Context, noteID int64) ([]domain.NoteAttachment, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, note_id, owner_id, name, size, content_type, object_key, created_at
FROM note_attachments
WHERE note_id = ?
ORDER BY id ASC`, noteID)
	if err != nil {
		return nil, fmt.Errorf("query attachments: %w", err)
	}
	defer rows.Close()

	var atts []domain.NoteAttachment
	for rows.Next() {
		att, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}
		atts = append(atts, *att)
	}

	return atts, rows.Err()
}

func (r *NoteRepository) DeleteAttachment(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM note_attachments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete attachment: %w", err)
	}
	return nil
}

func scanNote(row interface {
	Scan(dest ...any) error
}) (*domain.SecuredNote, error) {
	var note domain.SecuredNote
	if err := row.Scan(
		&note.ID,
		&note.OwnerID,
		&note.Name,
		&note.Content,
		&note.Color,
		&note.CreatedAt,
		&note.ModifiedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan note: %w", err)
	}
	return &note, nil
}

func scanAttachment(row interface {
	Scan(dest ...any) error
}) (*domain.NoteAttachment, error) {
	var att domain.NoteAttachment
	if err := row.Scan(
		&att.ID,
		&att.NoteID,
		&att.OwnerID,
		&att.Name,
		&att.Size,
		&att.ContentType,
		&att.ObjectKey,
		&att.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan attachment: %w", err)
	}
	return &att, nil
}
