// Package storetest holds behaviour tests every store.Store driver must pass.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/memoa/internal/notes/domain"
	"github.com/aussiebroadwan/memoa/internal/notes/store"
)

// Factory returns a migrated, empty store. It is called once per subtest.
type Factory func(t *testing.T) store.Store

// Run exercises the full store contract against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, s store.Store)
	}{
		{"CreateUserAssignsIDAndTimestamp", testCreateUser},
		{"DuplicateEmailRejected", testDuplicateEmail},
		{"GetUserMissing", testGetUserMissing},
		{"NoteRequiresExistingOwner", testNoteRequiresOwner},
		{"ListNewestFirst", testListNewestFirst},
		{"ListEmpty", testListEmpty},
		{"CreatedAtRoundTrip", testCreatedAtRoundTrip},
		{"DeleteNote", testDeleteNote},
		{"DeleteOwnedNote", testDeleteOwnedNote},
		{"DeleteUserCascades", testDeleteUserCascades},
		{"WithTxRollsBack", testWithTxRollsBack},
		{"WithTxCommits", testWithTxCommits},
		{"NestedTxUnsupported", testNestedTx},
		{"MigrationsIdempotent", testMigrationsIdempotent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newStore(t))
		})
	}
}

func mustUser(t *testing.T, s store.Store, email string) domain.User {
	t.Helper()
	u, err := s.Users().CreateUser(context.Background(), domain.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
	})
	require.NoError(t, err)
	return u
}

func mustNote(t *testing.T, s store.Store, ownerID int64, content string) domain.Note {
	t.Helper()
	n, err := s.Notes().CreateNote(context.Background(), domain.Note{OwnerID: ownerID, Content: content})
	require.NoError(t, err)
	return n
}

func testCreateUser(t *testing.T, s store.Store) {
	ctx := context.Background()
	before := time.Now().Add(-time.Minute)

	u := mustUser(t, s, "alice@example.com")
	require.Positive(t, u.ID)
	require.True(t, u.CreatedAt.After(before), "created_at %v should be recent", u.CreatedAt)

	byEmail, err := s.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
	require.Equal(t, "Test User", byEmail.Name)
	require.Equal(t, u.PasswordHash, byEmail.PasswordHash)

	byID, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", byID.Email)
	require.True(t, u.CreatedAt.Equal(byID.CreatedAt))

	second := mustUser(t, s, "bob@example.com")
	require.Greater(t, second.ID, u.ID)
}

func testDuplicateEmail(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustUser(t, s, "dup@example.com")

	_, err := s.Users().CreateUser(ctx, domain.User{Name: "Other", Email: "dup@example.com", PasswordHash: "x"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	n, err := s.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func testGetUserMissing(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.Users().GetUserByID(ctx, 424242)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, s.Users().DeleteUser(ctx, 424242), store.ErrNotFound)
}

func testNoteRequiresOwner(t *testing.T, s store.Store) {
	_, err := s.Notes().CreateNote(context.Background(), domain.Note{OwnerID: 999, Content: "orphan"})
	require.ErrorIs(t, err, store.ErrReferenceMissing)
}

func testListNewestFirst(t *testing.T, s store.Store) {
	u := mustUser(t, s, "list@example.com")
	other := mustUser(t, s, "other@example.com")

	a := mustNote(t, s, u.ID, "A")
	b := mustNote(t, s, u.ID, "B")
	mustNote(t, s, other.ID, "not mine")
	c := mustNote(t, s, u.ID, "C")

	notes, err := s.Notes().ListNotesByOwner(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	require.Equal(t, []int64{c.ID, b.ID, a.ID}, []int64{notes[0].ID, notes[1].ID, notes[2].ID})
	require.Equal(t, "C", notes[0].Content)
	for _, n := range notes {
		require.Equal(t, u.ID, n.OwnerID)
	}
}

func testListEmpty(t *testing.T, s store.Store) {
	notes, err := s.Notes().ListNotesByOwner(context.Background(), 777)
	require.NoError(t, err)
	require.NotNil(t, notes)
	require.Empty(t, notes)
}

func testCreatedAtRoundTrip(t *testing.T, s store.Store) {
	u := mustUser(t, s, "rt@example.com")
	created := mustNote(t, s, u.ID, "round trip")

	notes, err := s.Notes().ListNotesByOwner(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, created.ID, notes[0].ID)
	require.True(t, created.CreatedAt.Equal(notes[0].CreatedAt),
		"create=%v list=%v", created.CreatedAt, notes[0].CreatedAt)
}

func testDeleteNote(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := mustUser(t, s, "del@example.com")
	keep := mustNote(t, s, u.ID, "keep")
	gone := mustNote(t, s, u.ID, "gone")

	require.NoError(t, s.Notes().DeleteNote(ctx, gone.ID))
	require.ErrorIs(t, s.Notes().DeleteNote(ctx, gone.ID), store.ErrNotFound)

	notes, err := s.Notes().ListNotesByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, keep.ID, notes[0].ID)
}

func testDeleteOwnedNote(t *testing.T, s store.Store) {
	ctx := context.Background()
	owner := mustUser(t, s, "owner@example.com")
	intruder := mustUser(t, s, "intruder@example.com")
	n := mustNote(t, s, owner.ID, "private")

	require.ErrorIs(t, s.Notes().DeleteOwnedNote(ctx, n.ID, intruder.ID), store.ErrNotFound)

	count, err := s.Notes().CountNotesByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	require.NoError(t, s.Notes().DeleteOwnedNote(ctx, n.ID, owner.ID))
}

func testDeleteUserCascades(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := mustUser(t, s, "cascade@example.com")
	for i := range 3 {
		mustNote(t, s, u.ID, fmt.Sprintf("note %d", i))
	}

	require.NoError(t, s.Users().DeleteUser(ctx, u.ID))

	count, err := s.Notes().CountNotesByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}

func testWithTxRollsBack(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := mustUser(t, s, "tx@example.com")
	mustNote(t, s, u.ID, "survives")

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		deleted, err := tx.Notes().DeleteNotesByOwner(ctx, u.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, deleted)
		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := s.Notes().CountNotesByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	_, err = s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
}

func testWithTxCommits(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := mustUser(t, s, "commit@example.com")
	mustNote(t, s, u.ID, "one")
	mustNote(t, s, u.ID, "two")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Notes().DeleteNotesByOwner(ctx, u.ID); err != nil {
			return err
		}
		return tx.Users().DeleteUser(ctx, u.ID)
	})
	require.NoError(t, err)

	_, err = s.Users().GetUserByID(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	count, err := s.Notes().CountNotesByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}

func testNestedTx(t *testing.T, s store.Store) {
	ctx := context.Background()
	err := s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Tx(ctx)
		require.Error(t, err)
		require.Error(t, tx.WithTx(ctx, func(store.Tx) error { return nil }))
		return nil
	})
	require.NoError(t, err)
}

func testMigrationsIdempotent(t *testing.T, s store.Store) {
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}
