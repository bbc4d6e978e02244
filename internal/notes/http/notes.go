package http

import (
	"net/http"

	"github.com/aussiebroadwan/memoa/internal/notes/service"
	"github.com/aussiebroadwan/memoa/pkg/httpx"
	"github.com/aussiebroadwan/memoa/pkg/notesdk"
)

type NotesHandler struct {
	NoteService *service.NoteService
}

// HandleList godoc
//
//	@Summary		List notes
//	@Description	All notes of a user, newest first. Unknown users get an empty list.
//	@Tags			Notes
//	@Produce		json
//	@Param			userId	query		int						true	"owner id"
//	@Success		200		{object}	notesdk.NotesResponse	"notes"
//	@Failure		400		{object}	notesdk.ErrorResponse	"missing userId"
//	@Failure		500		{object}	notesdk.ErrorResponse	"server error"
//	@Router			/api/notes [get]
func (h *NotesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const invalid = "Missing userId."

	userID, err := notesdk.ParseID(r.URL.Query().Get("userId"))
	if err != nil {
		badRequest(invalid).WriteError(w)
		return
	}

	notes, err := h.NoteService.List(r.Context(), int64(userID))
	if err != nil {
		writeServiceError(w, r, err, invalid)
		return
	}

	resp := notesdk.NotesResponse{Notes: make([]notesdk.Note, 0, len(notes))}
	for _, n := range notes {
		resp.Notes = append(resp.Notes, toNote(n))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCreate godoc
//
//	@Summary		Create note
//	@Description	Store a note for the user. Content is trimmed and must not be empty.
//	@Tags			Notes
//	@Accept			json
//	@Produce		json
//	@Param			body	body		notesdk.CreateNoteRequest	true	"userId, content"
//	@Success		201		{object}	notesdk.NoteResponse		"the new note"
//	@Failure		400		{object}	notesdk.ErrorResponse		"missing fields or unknown user"
//	@Failure		500		{object}	notesdk.ErrorResponse		"server error"
//	@Router			/api/notes [post]
func (h *NotesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	const invalid = "userId and content are required."

	var req notesdk.CreateNoteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(invalid).WriteError(w)
		return
	}

	note, err := h.NoteService.Create(r.Context(), int64(req.UserID), req.Content)
	if err != nil {
		writeServiceError(w, r, err, invalid)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, notesdk.NoteResponse{Note: toNote(note)})
}

// HandleDelete godoc
//
//	@Summary		Delete note
//	@Description	Delete one note by id. When userId is given the note must belong to that user,
//	@Description	otherwise it is reported as not found.
//	@Tags			Notes
//	@Produce		json
//	@Param			noteId	path		int						true	"note id"
//	@Param			userId	query		int						false	"restrict to this owner"
//	@Success		200		{object}	notesdk.StatusResponse	"status deleted"
//	@Failure		400		{object}	notesdk.ErrorResponse	"bad id"
//	@Failure		404		{object}	notesdk.ErrorResponse	"note not found"
//	@Failure		500		{object}	notesdk.ErrorResponse	"server error"
//	@Router			/api/notes/{noteId} [delete]
func (h *NotesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	const invalid = "Invalid note id."

	noteID, err := notesdk.ParseID(r.PathValue("noteId"))
	if err != nil {
		badRequest(invalid).WriteError(w)
		return
	}

	var ownerID notesdk.ID
	if raw := r.URL.Query().Get("userId"); raw != "" {
		if ownerID, err = notesdk.ParseID(raw); err != nil || ownerID <= 0 {
			badRequest("Invalid userId.").WriteError(w)
			return
		}
	}

	if err := h.NoteService.Delete(r.Context(), int64(noteID), int64(ownerID)); err != nil {
		writeServiceError(w, r, err, invalid)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, notesdk.StatusResponse{Status: "deleted"})
}
