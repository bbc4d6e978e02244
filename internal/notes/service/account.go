package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/memoa/internal/notes/domain"
	"github.com/aussiebroadwan/memoa/internal/notes/store"
	"github.com/aussiebroadwan/memoa/pkg/cryptox"
	"github.com/aussiebroadwan/memoa/pkg/slogx"
)

type AccountService struct {
	Store store.Store
}

type registerInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type credentialsInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type deactivateInput struct {
	UserID   int64  `json:"userId" validate:"gt=0"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new account. The password is kept exactly as given,
// whitespace included.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	in := registerInput{
		Name:     strings.TrimSpace(name),
		Email:    NormalizeEmail(email),
		Password: password,
	}
	if err := check(in); err != nil {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	// No pre-check for the email: the unique constraint is the only thing
	// that settles concurrent registrations.
	user, err := s.Store.Users().CreateUser(ctx, domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info("registration rejected, email taken")
			return domain.User{}, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))
	return user, nil
}

// Authenticate checks an email/password pair. Unknown emails and wrong
// passwords both come back as ErrInvalidCredentials, and both cost one
// password verification.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	in := credentialsInput{Email: NormalizeEmail(email), Password: password}
	if err := check(in); err != nil {
		return domain.User{}, err
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyDecoy(in.Password)
			log.Info("login failed")
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := verify(in.Password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.Info("login failed", slog.Int64("user_id", user.ID))
		} else {
			log.Error("stored password hash unusable", slog.Int64("user_id", user.ID), slog.Any("error", err))
		}
		return domain.User{}, err
	}

	return user, nil
}

// Deactivate deletes the account and every note it owns once the password
// checks out. Both deletions share one transaction.
func (s *AccountService) Deactivate(ctx context.Context, userID int64, password string) error {
	log := slogx.FromContext(ctx)

	in := deactivateInput{UserID: userID, Password: password}
	if err := check(in); err != nil {
		return err
	}

	user, err := s.Store.Users().GetUserByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	if err := verify(in.Password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.Warn("deactivation with wrong password", slog.Int64("user_id", user.ID))
		}
		return err
	}

	var removed int64
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Notes().DeleteNotesByOwner(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("delete notes: %w", err)
		}
		removed = n

		if err := tx.Users().DeleteUser(ctx, user.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Raced with another deactivation.
				return ErrUserNotFound
			}
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Error("failed to deactivate account", slog.Int64("user_id", user.ID), slog.Any("error", err))
		}
		return err
	}

	log.Info("account deactivated",
		slog.Int64("user_id", user.ID),
		slog.Int64("notes_removed", removed),
	)
	return nil
}

// verify maps password verification onto service errors. A hash that cannot
// be parsed is a server side fault, not a credential failure.
func verify(password, hash string) error {
	err := cryptox.VerifyPassword(password, hash)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cryptox.ErrMismatch):
		return ErrInvalidCredentials
	default:
		return fmt.Errorf("verify password: %w", err)
	}
}
