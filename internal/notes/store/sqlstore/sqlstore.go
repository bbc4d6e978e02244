// Package sqlstore implements store.Store over database/sql with sqlx. The
// concrete drivers supply a Dialect describing how to migrate the schema and
// how to classify their native errors; queries are written once with `?`
// placeholders and rebound per driver.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/aussiebroadwan/memoa/internal/notes/store"
)

// Dialect carries the driver specific pieces.
type Dialect struct {
	// DriverName is the database/sql driver name, used by sqlx to pick the
	// bind variable style.
	DriverName string

	// MapError translates driver errors into store sentinels. It must return
	// err unchanged when it has nothing better.
	MapError func(err error) error

	// Migrate applies the embedded schema.
	Migrate func(db *sql.DB) error
}

type Store struct {
	db      *sqlx.DB
	dialect Dialect
}

// New wraps an already opened *sql.DB. The Store takes ownership and closes
// it on Close.
func New(db *sql.DB, d Dialect) *Store {
	if d.MapError == nil {
		d.MapError = func(err error) error { return err }
	}
	return &Store{
		db:      sqlx.NewDb(db, d.DriverName),
		dialect: d,
	}
}

// DB exposes the underlying pool, mostly for tests.
func (s *Store) DB() *sql.DB { return s.db.DB }

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) ApplyMigrations() error {
	if s.dialect.Migrate == nil {
		return errors.New("sqlstore: dialect has no migrations")
	}
	return s.dialect.Migrate(s.db.DB)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx, s.dialect), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after a successful commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users { return &usersRepo{conn{q: s.db, d: s.dialect}} }
func (s *Store) Notes() store.Notes { return &notesRepo{conn{q: s.db, d: s.dialect}} }

// conn is what every repository needs: something to run queries on (pool or
// transaction) and the dialect to make sense of errors.
type conn struct {
	q sqlx.ExtContext
	d Dialect
}

func (c conn) get(ctx context.Context, dest any, query string, args ...any) error {
	err := sqlx.GetContext(ctx, c.q, dest, c.q.Rebind(query), args...)
	return c.mapErr(err)
}

func (c conn) selectAll(ctx context.Context, dest any, query string, args ...any) error {
	err := sqlx.SelectContext(ctx, c.q, dest, c.q.Rebind(query), args...)
	return c.mapErr(err)
}

// exec runs a statement and returns the number of affected rows.
func (c conn) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := c.q.ExecContext(ctx, c.q.Rebind(query), args...)
	if err != nil {
		return 0, c.mapErr(err)
	}
	return res.RowsAffected()
}

func (c conn) mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return c.d.MapError(err)
}
