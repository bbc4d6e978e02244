package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/aussiebroadwan/memoa/internal/notes/store"
	"github.com/aussiebroadwan/memoa/internal/notes/store/sqlstore"
)

const driverName = "pgx"

// SQLSTATE codes we translate.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type Store struct {
	*sqlstore.Store
}

var _ store.Store = (*Store)(nil)

// NewStore opens a pool against dsn, a libpq style URL or keyword string.
// The connection is verified lazily; call Ping to fail fast.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &Store{
		Store: sqlstore.New(db, sqlstore.Dialect{
			DriverName: driverName,
			MapError:   mapError,
			Migrate:    applyMigrations,
		}),
	}, nil
}

func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %s", store.ErrAlreadyExists, pgErr.ConstraintName)
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: %s", store.ErrReferenceMissing, pgErr.ConstraintName)
	default:
		return err
	}
}
