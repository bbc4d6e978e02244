package notesdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListNotes returns the user's notes, newest first.
func (c *Client) ListNotes(ctx context.Context, userID ID) ([]Note, error) {
	q := url.Values{"userId": {userID.String()}}

	resp, err := c.doJSON(ctx, http.MethodGet, "/api/notes?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var out NotesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Notes, nil
}

// CreateNote adds a note for userID.
func (c *Client) CreateNote(ctx context.Context, userID ID, content string) (*Note, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/notes", CreateNoteRequest{
		UserID:  userID,
		Content: content,
	})
	if err != nil {
		return nil, err
	}

	var out NoteResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Note, nil
}

// DeleteNote deletes a note by id without an ownership check.
func (c *Client) DeleteNote(ctx context.Context, noteID ID) error {
	return c.deleteNote(ctx, "/api/notes/"+noteID.String())
}

// DeleteOwnedNote deletes a note only if it belongs to userID.
func (c *Client) DeleteOwnedNote(ctx context.Context, noteID, userID ID) error {
	q := url.Values{"userId": {userID.String()}}
	return c.deleteNote(ctx, "/api/notes/"+noteID.String()+"?"+q.Encode())
}

func (c *Client) deleteNote(ctx context.Context, path string) error {
	resp, err := c.doJSON(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}

	var out StatusResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
