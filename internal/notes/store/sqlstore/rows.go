package sqlstore

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/memoa/internal/notes/domain"
)

// legacyTimeLayout is what sqlite's CURRENT_TIMESTAMP produces.
const legacyTimeLayout = "2006-01-02 15:04:05"

// dbTime scans timestamps from drivers that return time.Time (pgx) as well as
// drivers that hand back the stored text (sqlite TEXT columns).
type dbTime time.Time

func (t *dbTime) Scan(v any) error {
	switch x := v.(type) {
	case nil:
		*t = dbTime(time.Time{})
		return nil
	case time.Time:
		*t = dbTime(x.UTC())
		return nil
	case string:
		return t.parse(x)
	case []byte:
		return t.parse(string(x))
	default:
		return fmt.Errorf("sqlstore: cannot scan %T into timestamp", v)
	}
}

func (t *dbTime) parse(s string) error {
	for _, layout := range []string{time.RFC3339Nano, legacyTimeLayout} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = dbTime(parsed.UTC())
			return nil
		}
	}
	return fmt.Errorf("sqlstore: unrecognised timestamp %q", s)
}

func (t dbTime) Time() time.Time { return time.Time(t) }

type userRow struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	CreatedAt    dbTime `db:"created_at"`
}

func mapUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.Time(),
	}
}

type noteRow struct {
	ID        int64  `db:"id"`
	UserID    int64  `db:"user_id"`
	Content   string `db:"content"`
	CreatedAt dbTime `db:"created_at"`
}

func mapNote(row noteRow) domain.Note {
	return domain.Note{
		ID:        row.ID,
		OwnerID:   row.UserID,
		Content:   row.Content,
		CreatedAt: row.CreatedAt.Time(),
	}
}

// inserted is the RETURNING projection of both insert statements.
type inserted struct {
	ID        int64  `db:"id"`
	CreatedAt dbTime `db:"created_at"`
}
