package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/memoa/internal/notes/domain"
	"github.com/aussiebroadwan/memoa/internal/notes/store"
)

const userColumns = `id, name, email, password_hash, created_at`

type usersRepo struct {
	conn
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	var out inserted
	err := r.get(ctx, &out,
		`INSERT INTO users (name, email, password_hash) VALUES (?, ?, ?) RETURNING id, created_at`,
		u.Name, u.Email, u.PasswordHash,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.ID = out.ID
	u.CreatedAt = out.CreatedAt.Time()
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	var row userRow
	if err := r.get(ctx, &row, `SELECT `+userColumns+` FROM users WHERE id = ?`, id); err != nil {
		return domain.User{}, err
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var row userRow
	if err := r.get(ctx, &row, `SELECT `+userColumns+` FROM users WHERE email = ?`, email); err != nil {
		return domain.User{}, err
	}
	return mapUser(row), nil
}

func (r *usersRepo) DeleteUser(ctx context.Context, id int64) error {
	n, err := r.exec(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.get(ctx, &n, `SELECT COUNT(*) FROM users`)
	return n, err
}
