package notesdk

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidID is returned when a user or note id is neither a JSON integer
// nor a string holding one.
var ErrInvalidID = errors.New("invalid id")

// ID is a numeric identifier that also accepts its decimal string form on
// input, since browser clients frequently send ids read back from the DOM.
// It always encodes as a JSON number.
type ID int64

func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*id = 0
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
		if s == "" {
			*id = 0
			return nil
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, s)
	}
	*id = ID(n)
	return nil
}

// ParseID parses an id from a path segment or query value.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID(n), nil
}

func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// ErrorResponse is the JSON body of every error.
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message" example:"All fields are required."`
}

// StatusResponse is returned by deletions and deactivation.
type StatusResponse struct {
	Status  string `json:"status" example:"deleted"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by /api/health and /api/readyz.
type HealthResponse struct {
	Status  string            `json:"status" example:"ok"`
	Version string            `json:"version,omitempty"`
	Uptime  string            `json:"uptime,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

type RegisterRequest struct {
	Name     string `json:"name" example:"Ada Lovelace"`
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// User is the public view of an account; it never carries the password hash.
type User struct {
	ID    ID     `json:"id" swaggertype:"integer" example:"1"`
	Name  string `json:"name" example:"Ada Lovelace"`
	Email string `json:"email" example:"ada@example.com"`
}

type UserResponse struct {
	User User `json:"user"`
}

type CreateNoteRequest struct {
	UserID  ID     `json:"userId" swaggertype:"integer" example:"1"`
	Content string `json:"content" example:"buy milk"`
}

type Note struct {
	ID        ID        `json:"id" swaggertype:"integer" example:"7"`
	Content   string    `json:"content" example:"buy milk"`
	CreatedAt time.Time `json:"createdAt" example:"2024-05-01T10:00:00.123Z"`
}

type NoteResponse struct {
	Note Note `json:"note"`
}

type NotesResponse struct {
	Notes []Note `json:"notes"`
}

type DeactivateRequest struct {
	UserID   ID     `json:"userId" swaggertype:"integer" example:"1"`
	Password string `json:"password" example:"correct horse battery staple"`
}
