package domain

import "time"

// Note is a free-text entry owned by a single user. Notes are never edited;
// they are created, listed and deleted.
type Note struct {
	ID        int64
	OwnerID   int64
	Content   string
	CreatedAt time.Time
}
