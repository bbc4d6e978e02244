package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/memoa/internal/notes/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrReferenceMissing is returned when a write points at a parent row
	// that does not exist (foreign key violation).
	ErrReferenceMissing = errors.New("store: referenced row missing")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Repositories are reached through methods so a transaction
// scoped Store can hand out the same repositories bound to the transaction.
type Store interface {
	Users() Users
	Notes() Notes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts u and returns it with the store assigned id and
	// created_at. A duplicate email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail expects an already normalized email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// DeleteUser removes the user; notes cascade per schema. Returns
	// ErrNotFound when nothing was deleted.
	DeleteUser(ctx context.Context, id int64) error

	CountUsers(ctx context.Context) (int64, error)
}

type Notes interface {
	// CreateNote inserts n and returns it with the store assigned id and
	// created_at. An unknown owner yields ErrReferenceMissing.
	CreateNote(ctx context.Context, n domain.Note) (domain.Note, error)

	// ListNotesByOwner returns notes newest first, ties broken by id.
	ListNotesByOwner(ctx context.Context, ownerID int64) ([]domain.Note, error)

	// DeleteNote removes a note by id. Returns ErrNotFound when nothing was
	// deleted.
	DeleteNote(ctx context.Context, id int64) error

	// DeleteOwnedNote removes a note only if it belongs to ownerID.
	DeleteOwnedNote(ctx context.Context, id, ownerID int64) error

	// DeleteNotesByOwner removes every note of ownerID and reports how many
	// rows went away.
	DeleteNotesByOwner(ctx context.Context, ownerID int64) (int64, error)

	CountNotesByOwner(ctx context.Context, ownerID int64) (int64, error)
}
