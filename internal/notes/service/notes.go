package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/memoa/internal/notes/domain"
	"github.com/aussiebroadwan/memoa/internal/notes/store"
	"github.com/aussiebroadwan/memoa/pkg/slogx"
)

type NoteService struct {
	Store store.Store
}

type createNoteInput struct {
	UserID  int64  `json:"userId" validate:"gt=0"`
	Content string `json:"content" validate:"required"`
}

type ownerInput struct {
	UserID int64 `json:"userId" validate:"gt=0"`
}

type deleteNoteInput struct {
	NoteID int64 `json:"noteId" validate:"gt=0"`
	UserID int64 `json:"userId" validate:"gte=0"`
}

// Create stores a note for ownerID. Whether the owner exists is left to the
// foreign key.
func (s *NoteService) Create(ctx context.Context, ownerID int64, content string) (domain.Note, error) {
	log := slogx.FromContext(ctx)

	in := createNoteInput{UserID: ownerID, Content: strings.TrimSpace(content)}
	if err := check(in); err != nil {
		return domain.Note{}, err
	}

	note, err := s.Store.Notes().CreateNote(ctx, domain.Note{OwnerID: in.UserID, Content: in.Content})
	if err != nil {
		if errors.Is(err, store.ErrReferenceMissing) {
			log.Info("note for unknown owner rejected", slog.Int64("user_id", in.UserID))
			return domain.Note{}, ErrUnknownOwner
		}
		log.Error("failed to create note", slog.Any("error", err))
		return domain.Note{}, err
	}

	log.Debug("note created", slog.Int64("note_id", note.ID), slog.Int64("user_id", note.OwnerID))
	return note, nil
}

// List returns the owner's notes, newest first. An owner without notes, or
// one that does not exist, gets an empty slice.
func (s *NoteService) List(ctx context.Context, ownerID int64) ([]domain.Note, error) {
	if err := check(ownerInput{UserID: ownerID}); err != nil {
		return nil, err
	}

	notes, err := s.Store.Notes().ListNotesByOwner(ctx, ownerID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list notes", slog.Any("error", err))
		return nil, err
	}
	return notes, nil
}

// Delete removes one note. With ownerID 0 any note may be deleted by id;
// otherwise a note belonging to someone else is reported as not found.
func (s *NoteService) Delete(ctx context.Context, noteID, ownerID int64) error {
	log := slogx.FromContext(ctx)

	if err := check(deleteNoteInput{NoteID: noteID, UserID: ownerID}); err != nil {
		return err
	}

	var err error
	if ownerID == 0 {
		err = s.Store.Notes().DeleteNote(ctx, noteID)
	} else {
		err = s.Store.Notes().DeleteOwnedNote(ctx, noteID, ownerID)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNoteNotFound
		}
		log.Error("failed to delete note", slog.Int64("note_id", noteID), slog.Any("error", err))
		return err
	}

	log.Debug("note deleted", slog.Int64("note_id", noteID))
	return nil
}
