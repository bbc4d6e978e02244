package postgres

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/aussiebroadwan/memoa/internal/notes/store/drivers/postgres/migrations"
)

// applyMigrations runs the embedded goose migrations. Goose keeps its source
// filesystem and dialect in package state, so this is not safe to call from
// several goroutines at once; the app only calls it during startup.
func applyMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(context.Background(), db, ".")
}
