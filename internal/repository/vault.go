package repository

import (
	"context"

	"passvault/internal/domain"
)

// LoginEntryRepository persists stored website credentials.
type LoginEntryRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, entry *domain.LoginEntry) (int64, error)
	Get(ctx context.Context, id int64) (*domain.LoginEntry, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.LoginEntry, error)
	Update(ctx context.Context, entry *domain.LoginEntry) error
	Delete(ctx context.Context, id int64) error
}

// PaymentRepository persists payment card records.
type PaymentRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, payment *domain.Payment) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Payment, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, id int64) error
}

// NoteRepository persists secured notes and their attachment metadata.
type NoteRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, note *domain.SecuredNote) (int64, error)
	Get(ctx context.Context, id int64) (*domain.SecuredNote, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.SecuredNote, error)
	Update(ctx context.Context, note *domain.SecuredNote) error
	Delete(ctx context.Context, id int64) error

	CreateAttachment(ctx context.Context, att *domain.NoteAttachment) (int64, error)
	GetAttachment(ctx context.Context, id int64) (*domain.NoteAttachment, error)
	ListAttachments(ctx context.Context, noteID int64) ([]domain.NoteAttachment, error)
	DeleteAttachment(ctx context.Context, id int64) error
}
