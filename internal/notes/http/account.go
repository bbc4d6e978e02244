package http

import (
	"net/http"

	"github.com/aussiebroadwan/memoa/internal/notes/service"
	"github.com/aussiebroadwan/memoa/pkg/httpx"
	"github.com/aussiebroadwan/memoa/pkg/notesdk"
)

type RegisterHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Register
//	@Description	Create an account. The email is trimmed and lower-cased and must be unused.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		notesdk.RegisterRequest	true	"name, email, password"
//	@Success		200		{object}	notesdk.UserResponse	"the new user"
//	@Failure		400		{object}	notesdk.ErrorResponse	"missing fields or email already registered"
//	@Failure		500		{object}	notesdk.ErrorResponse	"server error"
//	@Router			/api/register [post]
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const invalid = "All fields are required."

	var req notesdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(invalid).WriteError(w)
		return
	}

	user, err := h.AccountService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, invalid)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, notesdk.UserResponse{User: toUser(user)})
}

type LoginHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Login
//	@Description	Check an email and password. Unknown email and wrong password produce the same 401.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		notesdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	notesdk.UserResponse	"the authenticated user"
//	@Failure		400		{object}	notesdk.ErrorResponse	"missing fields"
//	@Failure		401		{object}	notesdk.ErrorResponse	"invalid credentials"
//	@Failure		500		{object}	notesdk.ErrorResponse	"server error"
//	@Router			/api/login [post]
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const invalid = "Email and password are required."

	var req notesdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(invalid).WriteError(w)
		return
	}

	user, err := h.AccountService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, invalid)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, notesdk.UserResponse{User: toUser(user)})
}

type DeactivateHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Deactivate account
//	@Description	Permanently delete the account and all of its notes after re-checking the password.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		notesdk.DeactivateRequest	true	"userId, password"
//	@Success		200		{object}	notesdk.StatusResponse		"status deactivated"
//	@Failure		400		{object}	notesdk.ErrorResponse		"missing or invalid fields"
//	@Failure		401		{object}	notesdk.ErrorResponse		"invalid credentials"
//	@Failure		404		{object}	notesdk.ErrorResponse		"user not found"
//	@Failure		500		{object}	notesdk.ErrorResponse		"server error"
//	@Router			/api/account/deactivate [post]
func (h *DeactivateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const invalid = "userId and password are required."

	var req notesdk.DeactivateRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(invalid).WriteError(w)
		return
	}

	if err := h.AccountService.Deactivate(r.Context(), int64(req.UserID), req.Password); err != nil {
		writeServiceError(w, r, err, invalid)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, notesdk.StatusResponse{
		Status:  "deactivated",
		Message: "Account and all notes have been deleted.",
	})
}
