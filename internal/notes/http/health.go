package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/memoa/internal/notes/store"
	"github.com/aussiebroadwan/memoa/pkg/httpx"
	"github.com/aussiebroadwan/memoa/pkg/notesdk"
)

// HealthHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe. Always 200 while the process is serving.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	notesdk.HealthResponse	"status, uptime, version"
//	@Router			/api/health [get]
func HealthHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, notesdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe; pings the database.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	notesdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	notesdk.HealthResponse	"database unreachable"
//	@Router			/api/readyz [get]
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{"database": "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, notesdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
