package http_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	notehttp "github.com/aussiebroadwan/memoa/internal/notes/http"
	"github.com/aussiebroadwan/memoa/internal/notes/store"
	"github.com/aussiebroadwan/memoa/internal/notes/store/drivers/sqlite"
	"github.com/aussiebroadwan/memoa/pkg/httpx"
	"github.com/aussiebroadwan/memoa/pkg/notesdk"
	"github.com/aussiebroadwan/memoa/pkg/slogx"
)

type testServer struct {
	URL    string
	client *notesdk.Client
	store  store.Store
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	router := notehttp.NewRouter("test", st, slogx.Discard(), httpx.CORSConfig{AllowedOrigins: []string{"*"}})
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return testServer{URL: srv.URL, client: notesdk.NewClient(srv.URL), store: st}
}

// raw sends body as-is and returns status and response body.
func (s testServer) raw(t *testing.T, method, path, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(t.Context(), method, s.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func (s testServer) register(t *testing.T, email, password string) *notesdk.User {
	t.Helper()
	u, err := s.client.Register(t.Context(), notesdk.RegisterRequest{Name: "Test", Email: email, Password: password})
	require.NoError(t, err)
	return u
}

func requireAPIError(t *testing.T, err error, status int, code string) *notesdk.APIError {
	t.Helper()
	var apiErr *notesdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	health, err := srv.client.Health(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "test", health.Version)

	ready, err := srv.client.Ready(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks["database"])
}

func TestReadyzDegradedWhenStoreClosed(t *testing.T) {
	srv := newTestServer(t)
	require.NoError(t, srv.store.Close())

	code, body := srv.raw(t, http.MethodGet, "/api/readyz", "")
	require.Equal(t, http.StatusServiceUnavailable, code)
	require.Contains(t, body, `"degraded"`)
}

func TestRegisterAndLogin(t *testing.T) {
	srv := newTestServer(t)

	user, err := srv.client.Register(t.Context(), notesdk.RegisterRequest{
		Name:     " Ada ",
		Email:    " ADA@example.com ",
		Password: "pw",
	})
	require.NoError(t, err)
	require.Equal(t, "Ada", user.Name)
	require.Equal(t, "ada@example.com", user.Email)

	logged, err := srv.client.Login(t.Context(), "Ada@Example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, user.ID, logged.ID)
}

func TestRegisterResponseHasNoHash(t *testing.T) {
	srv := newTestServer(t)

	code, body := srv.raw(t, http.MethodPost, "/api/register",
		`{"name":"n","email":"hash@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, code)
	require.NotContains(t, body, "argon2")
	require.NotContains(t, body, "password")
	require.NotContains(t, body, "secret")
}

func TestRegisterErrors(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "taken@example.com", "pw")

	code, body := srv.raw(t, http.MethodPost, "/api/register", `{"name":"","email":"x@example.com","password":"pw"}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.JSONEq(t, `{"error":"invalid_request","message":"All fields are required."}`, body)

	code, _ = srv.raw(t, http.MethodPost, "/api/register", `not json`)
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = srv.raw(t, http.MethodPost, "/api/register", "")
	require.Equal(t, http.StatusBadRequest, code)

	_, err := srv.client.Register(t.Context(), notesdk.RegisterRequest{Name: "x", Email: "TAKEN@example.com", Password: "pw"})
	apiErr := requireAPIError(t, err, http.StatusBadRequest, notesdk.ErrorCodeEmailTaken)
	require.Equal(t, "Email already registered.", apiErr.Message)
}

func TestLoginFailuresLookTheSame(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "real@example.com", "right")

	wrongCode, wrongBody := srv.raw(t, http.MethodPost, "/api/login", `{"email":"real@example.com","password":"nope"}`)
	ghostCode, ghostBody := srv.raw(t, http.MethodPost, "/api/login", `{"email":"ghost@example.com","password":"right"}`)

	require.Equal(t, http.StatusUnauthorized, wrongCode)
	require.Equal(t, wrongCode, ghostCode)
	require.Equal(t, wrongBody, ghostBody)
	require.JSONEq(t, `{"error":"invalid_credentials","message":"Invalid credentials."}`, wrongBody)

	code, _ := srv.raw(t, http.MethodPost, "/api/login", `{"email":"real@example.com"}`)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestNotesFlow(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()
	user := srv.register(t, "notes@example.com", "pw")

	for _, c := range []string{"A", "B", "C"} {
		_, err := srv.client.CreateNote(ctx, user.ID, c)
		require.NoError(t, err)
	}
	hello, err := srv.client.CreateNote(ctx, user.ID, "  hello  ")
	require.NoError(t, err)
	require.Equal(t, "hello", hello.Content)

	notes, err := srv.client.ListNotes(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, notes, 4)
	require.Equal(t, []string{"hello", "C", "B", "A"},
		[]string{notes[0].Content, notes[1].Content, notes[2].Content, notes[3].Content})
	require.Equal(t, hello.ID, notes[0].ID)
	require.True(t, hello.CreatedAt.Equal(notes[0].CreatedAt))

	require.NoError(t, srv.client.DeleteNote(ctx, hello.ID))
	err = srv.client.DeleteNote(ctx, hello.ID)
	apiErr := requireAPIError(t, err, http.StatusNotFound, notesdk.ErrorCodeNotFound)
	require.Equal(t, "Note not found.", apiErr.Message)

	notes, err = srv.client.ListNotes(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, notes, 3)
}

func TestCreateNoteStatusAndShape(t *testing.T) {
	srv := newTestServer(t)
	user := srv.register(t, "shape@example.com", "pw")

	code, body := srv.raw(t, http.MethodPost, "/api/notes", `{"userId":"`+user.ID.String()+`","content":"from a form"}`)
	require.Equal(t, http.StatusCreated, code)
	require.Contains(t, body, `"createdAt"`)
	require.Contains(t, body, `"content":"from a form"`)
}

func TestNotesValidation(t *testing.T) {
	srv := newTestServer(t)

	code, body := srv.raw(t, http.MethodGet, "/api/notes", "")
	require.Equal(t, http.StatusBadRequest, code)
	require.JSONEq(t, `{"error":"invalid_request","message":"Missing userId."}`, body)

	code, _ = srv.raw(t, http.MethodGet, "/api/notes?userId=abc", "")
	require.Equal(t, http.StatusBadRequest, code)

	code, body = srv.raw(t, http.MethodPost, "/api/notes", `{"userId":1,"content":"   "}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, body, "userId and content are required.")

	code, _ = srv.raw(t, http.MethodPost, "/api/notes", `{"userId":"abc","content":"x"}`)
	require.Equal(t, http.StatusBadRequest, code)

	code, body = srv.raw(t, http.MethodPost, "/api/notes", `{"userId":4242,"content":"x"}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, body, "Unknown user.")

	code, _ = srv.raw(t, http.MethodDelete, "/api/notes/abc", "")
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = srv.raw(t, http.MethodDelete, "/api/notes/1?userId=zero", "")
	require.Equal(t, http.StatusBadRequest, code)
}

func TestListUnknownUserIsEmptyArray(t *testing.T) {
	srv := newTestServer(t)

	code, body := srv.raw(t, http.MethodGet, "/api/notes?userId=999", "")
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"notes":[]}`, body)
}

func TestDeleteOwnedNote(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()
	owner := srv.register(t, "owner@example.com", "pw")
	other := srv.register(t, "other@example.com", "pw")

	note, err := srv.client.CreateNote(ctx, owner.ID, "mine")
	require.NoError(t, err)

	err = srv.client.DeleteOwnedNote(ctx, note.ID, other.ID)
	requireAPIError(t, err, http.StatusNotFound, notesdk.ErrorCodeNotFound)

	require.NoError(t, srv.client.DeleteOwnedNote(ctx, note.ID, owner.ID))
}

func TestDeactivate(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()
	user := srv.register(t, "bye@example.com", "pw")
	_, err := srv.client.CreateNote(ctx, user.ID, "soon gone")
	require.NoError(t, err)

	_, err = srv.client.Deactivate(ctx, user.ID, "wrong")
	requireAPIError(t, err, http.StatusUnauthorized, notesdk.ErrorCodeInvalidCredentials)

	notes, err := srv.client.ListNotes(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)

	status, err := srv.client.Deactivate(ctx, user.ID, "pw")
	require.NoError(t, err)
	require.Equal(t, "deactivated", status.Status)
	require.NotEmpty(t, status.Message)

	notes, err = srv.client.ListNotes(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, notes)

	_, err = srv.client.Deactivate(ctx, user.ID, "pw")
	requireAPIError(t, err, http.StatusNotFound, notesdk.ErrorCodeNotFound)

	_, err = srv.client.Login(ctx, "bye@example.com", "pw")
	requireAPIError(t, err, http.StatusUnauthorized, notesdk.ErrorCodeInvalidCredentials)
}

func TestDeactivateValidation(t *testing.T) {
	srv := newTestServer(t)

	for _, body := range []string{
		`{"password":"pw"}`,
		`{"userId":"abc","password":"pw"}`,
		`{"userId":1}`,
		`{"userId":0,"password":"pw"}`,
	} {
		code, resp := srv.raw(t, http.MethodPost, "/api/account/deactivate", body)
		require.Equal(t, http.StatusBadRequest, code, body)
		require.Contains(t, resp, "invalid_request")
	}

	code, _ := srv.raw(t, http.MethodPost, "/api/account/deactivate", `{"userId":"77","password":"pw"}`)
	require.Equal(t, http.StatusNotFound, code)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodOptions, srv.URL+"/api/account/deactivate", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5500")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Less(t, resp.StatusCode, 300)
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRequestIDEchoed(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL+"/api/health", nil)
	require.NoError(t, err)
	req.Header.Set(slogx.RequestIDHeader, "trace-me")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "trace-me", resp.Header.Get(slogx.RequestIDHeader))
}

func TestSwaggerUI(t *testing.T) {
	srv := newTestServer(t)

	code, body := srv.raw(t, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "/api/account/deactivate")
}
