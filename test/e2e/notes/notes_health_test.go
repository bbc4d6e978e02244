package notes_test

import (
	"testing"

	"github.com/aussiebroadwan/memoa/pkg/notesdk"
)

func TestHealthEndpoint(t *testing.T) {
	baseURL, cleanup := setupNotesContainer(t)
	defer cleanup()

	client := notesdk.NewClient(baseURL)

	health, err := client.Health(t.Context())
	assertHealthy(t, health, err)
}

func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupNotesContainer(t)
	defer cleanup()

	client := notesdk.NewClient(baseURL)

	health, err := client.Ready(t.Context())
	assertHealthy(t, health, err)

	t.Logf("database check: %s", health.Checks["database"])
}
