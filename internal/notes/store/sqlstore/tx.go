package sqlstore

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/aussiebroadwan/memoa/internal/notes/store"
)

type txStore struct {
	tx      *sqlx.Tx
	dialect Dialect
}

func newTx(tx *sqlx.Tx, d Dialect) *txStore {
	return &txStore{tx: tx, dialect: d}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // the outer DB stays open

// Ping is a no-op, the transaction already holds a live connection.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users { return &usersRepo{conn{q: t.tx, d: t.dialect}} }
func (t *txStore) Notes() store.Notes { return &notesRepo{conn{q: t.tx, d: t.dialect}} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
