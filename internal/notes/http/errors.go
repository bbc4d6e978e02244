package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/memoa/internal/notes/service"
	"github.com/aussiebroadwan/memoa/pkg/notesdk"
	"github.com/aussiebroadwan/memoa/pkg/slogx"
)

func badRequest(message string) *notesdk.APIError {
	return notesdk.NewAPIError(http.StatusBadRequest, notesdk.ErrorCodeInvalidRequest, message)
}

func notFound(message string) *notesdk.APIError {
	return notesdk.NewAPIError(http.StatusNotFound, notesdk.ErrorCodeNotFound, message)
}

// writeServiceError maps the service sentinels that every endpoint shares.
// invalid is the endpoint's wording for a validation failure. Anything the
// mapping does not know about is logged and answered with a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, invalid string) {
	var apiErr *notesdk.APIError

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		apiErr = badRequest(invalid)
	case errors.Is(err, service.ErrEmailTaken):
		apiErr = notesdk.ErrEmailTaken
	case errors.Is(err, service.ErrInvalidCredentials):
		apiErr = notesdk.ErrInvalidCredentials
	case errors.Is(err, service.ErrUserNotFound):
		apiErr = notFound("User not found.")
	case errors.Is(err, service.ErrNoteNotFound):
		apiErr = notFound("Note not found.")
	case errors.Is(err, service.ErrUnknownOwner):
		apiErr = badRequest("Unknown user.")
	default:
		slogx.FromContext(r.Context()).Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		apiErr = notesdk.ErrServerError
	}

	apiErr.WriteError(w)
}
