package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/memoa/internal/notes/domain"
	"github.com/aussiebroadwan/memoa/internal/notes/store"
)

type notesRepo struct {
	conn
}

func (r *notesRepo) CreateNote(ctx context.Context, n domain.Note) (domain.Note, error) {
	var out inserted
	err := r.get(ctx, &out,
		`INSERT INTO notes (user_id, content) VALUES (?, ?) RETURNING id, created_at`,
		n.OwnerID, n.Content,
	)
	if err != nil {
		return domain.Note{}, err
	}

	n.ID = out.ID
	n.CreatedAt = out.CreatedAt.Time()
	return n, nil
}

func (r *notesRepo) ListNotesByOwner(ctx context.Context, ownerID int64) ([]domain.Note, error) {
	var rows []noteRow
	err := r.selectAll(ctx, &rows,
		`SELECT id, user_id, content, created_at FROM notes
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}

	notes := make([]domain.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, mapNote(row))
	}
	return notes, nil
}

func (r *notesRepo) DeleteNote(ctx context.Context, id int64) error {
	return r.deleteOne(ctx, `DELETE FROM notes WHERE id = ?`, id)
}

func (r *notesRepo) DeleteOwnedNote(ctx context.Context, id, ownerID int64) error {
	return r.deleteOne(ctx, `DELETE FROM notes WHERE id = ? AND user_id = ?`, id, ownerID)
}

func (r *notesRepo) DeleteNotesByOwner(ctx context.Context, ownerID int64) (int64, error) {
	return r.exec(ctx, `DELETE FROM notes WHERE user_id = ?`, ownerID)
}

func (r *notesRepo) CountNotesByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var n int64
	err := r.get(ctx, &n, `SELECT COUNT(*) FROM notes WHERE user_id = ?`, ownerID)
	return n, err
}

func (r *notesRepo) deleteOne(ctx context.Context, query string, args ...any) error {
	n, err := r.exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
