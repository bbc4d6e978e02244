package slogx_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/memoa/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{Service: "test", Env: "test", Format: "json", Output: &buf})

	var seenID string
	h := slogx.HTTPMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = slogx.RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("propagates caller request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set(slogx.RequestIDHeader, "req-1")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		require.Equal(t, "req-1", seenID)
		require.Equal(t, "req-1", rec.Header().Get(slogx.RequestIDHeader))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		require.Equal(t, "http_request", line["msg"])
		require.Equal(t, "req-1", line["req_id"])
		require.EqualValues(t, http.StatusTeapot, line["status"])
		require.Equal(t, "/api/health", line["path"])
	})

	t.Run("generates request id when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seenID)
		require.Equal(t, seenID, rec.Header().Get(slogx.RequestIDHeader))
	})
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NotNil(t, slogx.FromContext(req.Context()))
	require.Empty(t, slogx.RequestID(req.Context()))
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, "DEBUG", slogx.ParseLevel("debug").String())
	require.Equal(t, "WARN", slogx.ParseLevel("Warning").String())
	require.Equal(t, "ERROR", slogx.ParseLevel("error").String())
	require.Equal(t, "INFO", slogx.ParseLevel("bogus").String())
}
