package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/aussiebroadwan/memoa/internal/notes/store"
	"github.com/aussiebroadwan/memoa/internal/notes/store/sqlstore"
)

const driverName = "sqlite"

func init() {
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

// Store is the sqlite backed store.Store.
type Store struct {
	*sqlstore.Store
}

var _ store.Store = (*Store)(nil)

// NewStore opens the database at path. ":memory:" gives a private in-memory
// database, handy in tests.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open(driverName, DSN(path))
	if err != nil {
		return nil, err
	}

	// sqlite serializes writers anyway, and an in-memory database only exists
	// on the connection that created it.
	db.SetMaxOpenConns(1)

	return &Store{
		Store: sqlstore.New(db, sqlstore.Dialect{
			DriverName: driverName,
			MapError:   mapError,
			Migrate:    applyMigrations,
		}),
	}, nil
}

// DSN builds a modernc connection string with the pragmas every connection
// needs. Pragmas given as DSN parameters are applied to each new connection,
// unlike a one-off PRAGMA statement.
func DSN(path string) string {
	params := url.Values{}
	params.Add("_pragma", "foreign_keys(1)")
	params.Add("_pragma", "busy_timeout(5000)")
	if path != ":memory:" {
		params.Add("_pragma", "journal_mode(WAL)")
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return "file:" + strings.TrimPrefix(path, "file:") + sep + params.Encode()
}

func mapError(err error) error {
	var liteErr *msqlite.Error
	if !errors.As(err, &liteErr) {
		return err
	}

	switch liteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("%w: %v", store.ErrReferenceMissing, err)
	default:
		return err
	}
}
