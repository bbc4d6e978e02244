package notesdk

import (
	"context"
	"net/http"
)

// Register creates an account and returns its public view.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	return c.userCall(ctx, "/api/register", req)
}

// Login verifies an email/password pair.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	return c.userCall(ctx, "/api/login", LoginRequest{Email: email, Password: password})
}

// Deactivate permanently deletes the account and all of its notes.
func (c *Client) Deactivate(ctx context.Context, userID ID, password string) (*StatusResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/account/deactivate", DeactivateRequest{
		UserID:   userID,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var out StatusResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) userCall(ctx context.Context, path string, body any) (*User, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}
