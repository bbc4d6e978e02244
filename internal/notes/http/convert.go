package http

import (
	"github.com/aussiebroadwan/memoa/internal/notes/domain"
	"github.com/aussiebroadwan/memoa/pkg/notesdk"
)

func toUser(u domain.User) notesdk.User {
	return notesdk.User{ID: notesdk.ID(u.ID), Name: u.Name, Email: u.Email}
}

func toNote(n domain.Note) notesdk.Note {
	return notesdk.Note{ID: notesdk.ID(n.ID), Content: n.Content, CreatedAt: n.CreatedAt}
}
