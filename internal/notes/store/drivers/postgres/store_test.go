package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/memoa/internal/notes/store"
	"github.com/aussiebroadwan/memoa/internal/notes/store/drivers/postgres"
	"github.com/aussiebroadwan/memoa/internal/notes/store/storetest"
)

const (
	pgImage    = "postgres:16-alpine"
	pgUser     = "memoa"
	pgPassword = "memoa"
	pgDatabase = "memoa"
)

// startPostgres runs a throwaway postgres and returns its DSN. The test is
// skipped when no container runtime is reachable.
func startPostgres(t *testing.T) string {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        pgImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       pgDatabase,
		},
		// postgres restarts once after initdb, so wait for the second banner
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, pgPassword, host, port.Port(), pgDatabase)
}

func TestStoreContract(t *testing.T) {
	dsn := startPostgres(t)

	storetest.Run(t, func(t *testing.T) store.Store {
		s, err := postgres.NewStore(dsn)
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })

		require.NoError(t, s.Ping(t.Context()))
		require.NoError(t, s.ApplyMigrations())

		// Subtests share one database, start each from empty tables.
		_, err = s.DB().Exec(`TRUNCATE notes, users RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
		return s
	})
}
