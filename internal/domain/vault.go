package domain

import "time"

// LoginEntry is a stored website credential owned by a single user.
type LoginEntry struct {
	ID             int64
	OwnerID        int64
	Username       string
	Password       string
	Note           string
	Email          string
	LinkedWebsites []string
	Collections    []string
	UsedAt         time.Time
}

// Payment is a stored payment card record.
type Payment struct {
	ID              int64
	OwnerID         int64
	CardHolder      string
	CardNumber      string
	SecurityCode    int
	ExpirationMonth int
	ExpirationYear  int
	Name            string
	Color           string
	Note            string
}

// SecuredNote is an owner-scoped free-form note.
type SecuredNote struct {
	ID         int64
	OwnerID    int64
	Name       string
	Content    string
	Color      string
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// NoteAttachment records metadata for a file attached to a secured note.
// The blob itself lives in object storage under ObjectKey.
type NoteAttachment struct {
	ID          int64
	NoteID      int64
	OwnerID     int64
	Name        string
	Size        int64
	ContentType string
	ObjectKey   string
	CreatedAt   time.Time
}
