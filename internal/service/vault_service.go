package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"passvault/internal/domain"
	"passvault/internal/repository"
	"passvault/internal/storage"
)

var (
	// ErrForbidden is returned when a vault record is missing or belongs to a
	// different user. The two cases are deliberately indistinguishable so that
	// probing IDs reveals nothing about other users' data.
	ErrForbidden = errors.New("record does not belong to user")
	// ErrStorageDisabled is returned for attachment operations when no object
	// storage bucket is configured.
	ErrStorageDisabled = errors.New("storage service not configured")
)

// UpdateLoginEntry carries optional fields for a partial login update.
type UpdateLoginEntry struct {
	Username       *string
	Password       *string
	Note           *string
	Email          *string
	LinkedWebsites *[]string
	Collections    *[]string
}

// UpdatePayment carries optional fields for a partial payment update.
type UpdatePayment struct {
	CardHolder      *string
	CardNumber      *string
	SecurityCode    *int
	ExpirationMonth *int
	ExpirationYear  *int
	Name            *string
	Color           *string
	Note            *string
}

// UpdateNote carries optional fields for a partial note update.
type UpdateNote struct {
	Name    *string
	Content *string
	Color   *string
}

// VaultService manages owner-scoped vault records: stored logins, payment
// cards and secured notes with file attachments. Every read or mutation of an
// existing record verifies ownership first.
type VaultService interface {
	CreateLogin(ctx context.Context, ownerID int64, entry *domain.LoginEntry) (*domain.LoginEntry, error)
	GetLogin(ctx context.Context, ownerID, id int64) (*domain.LoginEntry, error)
	ListLogins(ctx context.Context, ownerID int64) ([]domain.LoginEntry, error)
	UpdateLogin(ctx context.Context, ownerID, id int64, input UpdateLoginEntry) (*domain.LoginEntry, error)
	DeleteLogin(ctx context.Context, ownerID, id int64) error

	CreatePayment(ctx context.Context, ownerID int64, payment *domain.Payment) (*domain.Payment, error)
	GetPayment(ctx context.Context, ownerID, id int64) (*domain.Payment, error)
	ListPayments(ctx context.Context, ownerID int64) ([]domain.Payment, error)
	UpdatePayment(ctx context.Context, ownerID, id int64, input UpdatePayment) (*domain.Payment, error)
	DeletePayment(ctx context.Context, ownerID, id int64) error

	CreateNote(ctx context.Context, ownerID int64, note *domain.SecuredNote) (*domain.SecuredNote, error)
	GetNote(ctx context.Context, ownerID, id int64) (*domain.SecuredNote, error)
	ListNotes(ctx context.Context, ownerID int64) ([]domain.SecuredNote, error)
	UpdateNote(ctx context.Context, ownerID, id int64, input UpdateNote) (*domain.SecuredNote, error)
	DeleteNote(ctx context.Context, ownerID, id int64) error

	AddAttachment(ctx context.Context, ownerID, noteID int64, name, contentType string, size int64, body io.Reader) (*domain.NoteAttachment, error)
	ListAttachments(ctx context.Context, ownerID, noteID int64) ([]domain.NoteAttachment, error)
	OpenAttachment(ctx context.Context, ownerID, attachmentID int64) (*domain.NoteAttachment, io.ReadCloser, error)
	DeleteAttachment(ctx context.Context, ownerID, attachmentID int64) error
}

type vaultService struct {
	logins   repository.LoginEntryRepository
	payments repository.PaymentRepository
	notes    repository.NoteRepository

	store     storage.Service
	bucket    string
	keyPrefix string
}

func NewVaultService(
	logins repository.LoginEntryRepository,
	payments repository.PaymentRepository,
	notes repository.NoteRepository,
	store storage.Service,
	bucket, keyPrefix string,
) VaultService {
	return &vaultService{
		logins:    logins,
		payments:  payments,
		notes:     notes,
		store:     store,
		bucket:    bucket,
		keyPrefix: keyPrefix,
	}
}

func (s *vaultService) CreateLogin(ctx context.Context, ownerID int64, entry *domain.LoginEntry) (*domain.LoginEntry, error) {
	entry.OwnerID = ownerID
	entry.UsedAt = time.Now().UTC()
	if _, err := s.logins.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *vaultService) GetLogin(ctx context.Context, ownerID, id int64) (*domain.LoginEntry, error) {
	entry, err := s.logins.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	if entry.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return entry, nil
}

func (s *vaultService) ListLogins(ctx context.Context, ownerID int64) ([]domain.LoginEntry, error) {
	return s.logins.ListByOwner(ctx, ownerID)
}

func (s *vaultService) UpdateLogin(ctx context.Context, ownerID, id int64, input UpdateLoginEntry) (*domain.LoginEntry, error) {
	entry, err := s.GetLogin(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		entry.Username = *input.Username
	}
	if input.Password != nil {
		entry.Password = *input.Password
	}
	if input.Note != nil {
		entry.Note = *input.Note
	}
	if input.Email != nil {
		entry.Email = *input.Email
	}
	if input.LinkedWebsites != nil {
		entry.LinkedWebsites = *input.LinkedWebsites
	}
	if input.Collections != nil {
		entry.Collections = *input.Collections
	}

	if err := s.logins.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *vaultService) DeleteLogin(ctx context.Context, ownerID, id int64) error {
	if _, err := s.GetLogin(ctx, ownerID, id); err != nil {
		return err
	}
	return s.logins.Delete(ctx, id)
}

func (s *vaultService) CreatePayment(ctx context.Context, ownerID int64, payment *domain.Payment) (*domain.Payment, error) {
	payment.OwnerID = ownerID
	if _, err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *vaultService) GetPayment(ctx context.Context, ownerID, id int64) (*domain.Payment, error) {
	payment, err := s.payments.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	if payment.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return payment, nil
}

func (s *vaultService) ListPayments(ctx context.Context, ownerID int64) ([]domain.Payment, error) {
	return s.payments.ListByOwner(ctx, ownerID)
}

func (s *vaultService) UpdatePayment(ctx context.Context, ownerID, id int64, input UpdatePayment) (*domain.Payment, error) {
	payment, err := s.GetPayment(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.CardHolder != nil {
		payment.CardHolder = *input.CardHolder
	}
	if input.CardNumber != nil {
		payment.CardNumber = *input.CardNumber
	}
	if input.SecurityCode != nil {
		payment.SecurityCode = *input.SecurityCode
	}
	if input.ExpirationMonth != nil {
		payment.ExpirationMonth = *input.ExpirationMonth
	}
	if input.ExpirationYear != nil {
		payment.ExpirationYear = *input.ExpirationYear
	}
	if input.Name != nil {
		payment.Name = *input.Name
	}
	if input.Color != nil {
		payment.Color = *input.Color
	}
	if input.Note != nil {
		payment.Note = *input.Note
	}

	if err := s.payments.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *vaultService) DeletePayment(ctx context.Context, ownerID, id int64) error {
	if _, err := s.GetPayment(ctx, ownerID, id); err != nil {
		return err
	}
	return s.payments.Delete(ctx, id)
}

func (s *vaultService) CreateNote(ctx context.Context, ownerID int64, note *domain.SecuredNote) (*domain.SecuredNote, error) {
	note.OwnerID = ownerID
	if _, err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *vaultService) GetNote(ctx context.Context, ownerID, id int64) (*domain.SecuredNote, error) {
	note, err := s.notes.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	if note.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return note, nil
}

func (s *vaultService) ListNotes(ctx context.Context, ownerID int64) ([]domain.SecuredNote, error) {
	return s.notes.ListByOwner(ctx, ownerID)
}

func (s *vaultService) UpdateNote(ctx context.Context, ownerID, id int64, input UpdateNote) (*domain.SecuredNote, error) {
	note, err := s.GetNote(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		note.Name = *input.Name
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.Color != nil {
		note.Color = *input.Color
	}

	if err := s.notes.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *vaultService) DeleteNote(ctx context.Context, ownerID, id int64) error {
	note, err := s.GetNote(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if s.store != nil && s.bucket != "" {
		atts, err := s.notes.ListAttachments(ctx, note.ID)
		if err != nil {
			return err
		}
		for _, att := range atts {
			if err := s.store.Delete(ctx, s.bucket, att.ObjectKey); err != nil {
				return fmt.Errorf("delete attachment blob: %w", err)
			}
		}
	}

	return s.notes.Delete(ctx, id)
}

func (s *vaultService) AddAttachment(ctx context.Context, ownerID, noteID int64, name, contentType string, size int64, body io.Reader) (*domain.NoteAttachment, error) {
	if s.store == nil || s.bucket == "" {
		return nil, ErrStorageDisabled
	}
	note, err := s.GetNote(ctx, ownerID, noteID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("notes/%d/%s", note.ID, uuid.NewString())
	if s.keyPrefix != "" {
		key = s.keyPrefix + "/" + key
	}

	if err := s.store.Upload(ctx, s.bucket, key, body, contentType); err != nil {
		return nil, fmt.Errorf("upload attachment: %w", err)
	}

	att := &domain.NoteAttachment{
		NoteID:      note.ID,
		OwnerID:     ownerID,
		Name:        name,
		Size:        size,
		ContentType: contentType,
		ObjectKey:   key,
	}
	if _, err := s.notes.CreateAttachment(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

func (s *vaultService) ListAttachments(ctx context.Context, ownerID, noteID int64) ([]domain.NoteAttachment, error) {
	if _, err := s.GetNote(ctx, ownerID, noteID); err != nil {
		return nil, err
	}
	return s.notes.ListAttachments(ctx, noteID)
}

func (s *vaultService) OpenAttachment(ctx context.Context, ownerID, attachmentID int64) (*domain.NoteAttachment, io.ReadCloser, error) {
	if s.store == nil || s.bucket == "" {
		return nil, nil, ErrStorageDisabled
	}
	att, err := s.notes.GetAttachment(ctx, attachmentID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, ErrForbidden
	}
	if err != nil {
		return nil, nil, err
	}
	if att.OwnerID != ownerID {
		return nil, nil, ErrForbidden
	}

	body, err := s.store.Download(ctx, s.bucket, att.ObjectKey)
	if err != nil {
		return nil, nil, fmt.Errorf("download attachment: %w", err)
	}
	return att, body, nil
}

func (s *vaultService) DeleteAttachment(ctx context.Context, ownerID, attachmentID int64) error {
	att, err := s.notes.GetAttachment(ctx, attachmentID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrForbidden
	}
	if err != nil {
		return err
	}
	if att.OwnerID != ownerID {
		return ErrForbidden
	}

	if s.store != nil && s.bucket != "" {
		if err := s.store.Delete(ctx, s.bucket, att.ObjectKey); err != nil {
			return fmt.Errorf("delete attachment blob: %w", err)
		}
	}
	return s.notes.DeleteAttachment(ctx, attachmentID)
}
