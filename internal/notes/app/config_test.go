package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"MEMOA_DATABASE_DRIVER", "MEMOA_DATABASE_FILE", "MEMOA_DATABASE_URL",
		"MEMOA_PEPPER_FILE", "MEMOA_CORS_ORIGINS", "ENV", "LOG_LEVEL",
		"LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, "memoa.db", cfg.DatabaseFile)
	require.Equal(t, "pepper", cfg.PepperFile)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("MEMOA_DATABASE_DRIVER", "Postgres")
	t.Setenv("MEMOA_DATABASE_URL", "postgres://u:p@localhost/memoa")
	t.Setenv("MEMOA_CORS_ORIGINS", "http://a.example, ,http://b.example")
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30")

	cfg := LoadConfig()
	require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	require.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigBadNumbersFallBack(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "soon")

	cfg := LoadConfig()
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"sqlite ok", Config{DatabaseDriver: DriverSQLite, DatabaseFile: ":memory:"}, ""},
		{"sqlite without file", Config{DatabaseDriver: DriverSQLite}, "MEMOA_DATABASE_FILE"},
		{"postgres without url", Config{DatabaseDriver: DriverPostgres}, "MEMOA_DATABASE_URL"},
		{"unknown driver", Config{DatabaseDriver: "mysql"}, "unknown MEMOA_DATABASE_DRIVER"},
		{"bad port", Config{DatabaseDriver: DriverSQLite, DatabaseFile: "x", Port: 70000}, "PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
