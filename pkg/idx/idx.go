// Package idx generates sortable request identifiers. Records in the store use
// integer keys assigned by the database; idx is only for correlating logs.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type ID string

// Zero is the empty ID.
const Zero ID = ""

// MaxHeaderLen bounds how much of a caller supplied request id we keep.
const MaxHeaderLen = 64

var ErrInvalid = errors.New("idx: invalid ulid")

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a ULID for the current UTC time. Safe for concurrent use.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt returns a ULID with the given timestamp, mostly useful in tests.
func NewAt(t time.Time) ID {
	mu.Lock()
	defer mu.Unlock()

	return ID(ulid.MustNew(ulid.Timestamp(t), entropy).String())
}

// Parse validates a ULID string.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}
	if _, err := ulid.ParseStrict(s); err != nil {
		return Zero, ErrInvalid
	}
	return ID(s), nil
}

// FromHeader returns the caller supplied request id when it is usable,
// otherwise a freshly generated one. Caller ids are not required to be ULIDs
// but are trimmed and length capped so they stay safe to log.
func FromHeader(v string) ID {
	v = strings.TrimSpace(v)
	if v == "" || len(v) > MaxHeaderLen || strings.ContainsAny(v, "\r\n") {
		return New()
	}
	return ID(v)
}

func (id ID) IsZero() bool { return id == Zero }

func (id ID) String() string { return string(id) }

// Time extracts the embedded timestamp, or the zero time for non-ULID ids.
func (id ID) Time() time.Time {
	u, err := ulid.ParseStrict(id.String())
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}
