package memory

import (
	"context"
	"testing"
	"time"

	"github.com/jmorgan/word-royale/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoom(code string) *domain.Room {
	return &domain.Room{
		Code:       code,
		Word:       "CRANE",
		Status:     domain.RoomStatusWaiting,
		MaxPlayers: domain.DefaultMaxPlayers,
		TimeLimit:  domain.DefaultTimeLimit,
		CreatedAt:  time.Now(),
	}
}

func newPlayer(roomID int, name string, host bool) *domain.Player {
	return &domain.Player{
		RoomID:   roomID,
		Name:     name,
		IsHost:   host,
		Status:   domain.PlayerStatusWaiting,
		Guesses:  []string{},
		JoinedAt: time.Now(),
	}
}

func TestRoomCRUD(t *testing.T) {
	ctx := context.Background()
	s := New()

	room := newRoom("ABC123")
	require.NoError(t, s.CreateRoom(ctx, room))
	assert.Equal(t, 1, room.ID)

	second := newRoom("XYZ789")
	require.NoError(t, s.CreateRoom(ctx, second))
	assert.Equal(t, 2, second.ID)

	got, err := s.GetRoomByCode(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, room.ID, got.ID)
	assert.Nil(t, got.StartedAt)
	assert.Nil(t, got.EndedAt)

	_, err = s.GetRoomByCode(ctx, "NOPE99")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	byID, err := s.GetRoomByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "XYZ789", byID.Code)
}

func TestUpdateRoomPatchSemantics(t *testing.T) {
	ctx := context.Background()
	s := New()

	room := newRoom("ABC123")
	require.NoError(t, s.CreateRoom(ctx, room))

	started := time.Now()
	playing := domain.RoomStatusPlaying
	updated, err := s.UpdateRoom(ctx, room.ID, domain.RoomPatch{
		Status:    &playing,
		StartedAt: &started,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusPlaying, updated.Status)
	require.NotNil(t, updated.StartedAt)
	assert.Nil(t, updated.EndedAt)
	// Untouched fields survive the patch.
	assert.Equal(t, "ABC123", updated.Code)
	assert.Equal(t, "CRANE", updated.Word)

	// A later patch without StartedAt leaves it alone.
	finished := domain.RoomStatusFinished
	ended := started.Add(time.Minute)
	updated, err = s.UpdateRoom(ctx, room.ID, domain.RoomPatch{
		Status:  &finished,
		EndedAt: &ended,
	})
	require.NoError(t, err)
	assert.Equal(t, started.Unix(), updated.StartedAt.Unix())
	require.NotNil(t, updated.EndedAt)

	_, err = s.UpdateRoom(ctx, 99, domain.RoomPatch{Status: &finished})
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestDeleteRoomCascades(t *testing.T) {
	ctx := context.Background()
	s := New()

	room := newRoom("ABC123")
	other := newRoom("XYZ789")
	require.NoError(t, s.CreateRoom(ctx, room))
	require.NoError(t, s.CreateRoom(ctx, other))

	p1 := newPlayer(room.ID, "alice", true)
	p2 := newPlayer(room.ID, "bob", false)
	p3 := newPlayer(other.ID, "carol", true)
	require.NoError(t, s.CreatePlayer(ctx, p1))
	require.NoError(t, s.CreatePlayer(ctx, p2))
	require.NoError(t, s.CreatePlayer(ctx, p3))

	require.NoError(t, s.DeleteRoom(ctx, room.ID))

	_, err := s.GetRoomByID(ctx, room.ID)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	_, err = s.GetPlayer(ctx, p1.ID)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	_, err = s.GetPlayer(ctx, p2.ID)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	// The other room is untouched.
	survivors, err := s.GetPlayersByRoom(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, survivors, 1)

	assert.ErrorIs(t, s.DeleteRoom(ctx, room.ID), domain.ErrRoomNotFound)
}

func TestPlayersOrderedByCreation(t *testing.T) {
	ctx := context.Background()
	s := New()

	room := newRoom("ABC123")
	require.NoError(t, s.CreateRoom(ctx, room))

	names := []string{"alice", "bob", "carol", "dave"}
	for i, n := range names {
		p := newPlayer(room.ID, n, i == 0)
		require.NoError(t, s.CreatePlayer(ctx, p))
	}

	players, err := s.GetPlayersByRoom(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, players, 4)
	for i, p := range players {
		assert.Equal(t, names[i], p.Name)
	}
}

func TestUpdatePlayerPatchSemantics(t *testing.T) {
	ctx := context.Background()
	s := New()

	room := newRoom("ABC123")
	require.NoError(t, s.CreateRoom(ctx, room))
	p := newPlayer(room.ID, "alice", true)
	require.NoError(t, s.CreatePlayer(ctx, p))

	guesses := []string{"CRANE"}
	attempts := 1
	current := ""
	updated, err := s.UpdatePlayer(ctx, p.ID, domain.PlayerPatch{
		Guesses:      &guesses,
		Attempts:     &attempts,
		CurrentGuess: &current,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE"}, []string(updated.Guesses))
	assert.Equal(t, 1, updated.Attempts)
	// Untouched fields survive.
	assert.True(t, updated.IsHost)
	assert.Equal(t, domain.PlayerStatusWaiting, updated.Status)
	assert.False(t, updated.Solved)

	// Mutating the caller's slice must not leak into the store.
	guesses[0] = "MUTATE"
	fresh, err := s.GetPlayer(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE"}, []string(fresh.Guesses))

	_, err = s.UpdatePlayer(ctx, 99, domain.PlayerPatch{Attempts: &attempts})
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestRemovePlayer(t *testing.T) {
	ctx := context.Background()
	s := New()

	room := newRoom("ABC123")
	require.NoError(t, s.CreateRoom(ctx, room))
	p := newPlayer(room.ID, "alice", true)
	require.NoError(t, s.CreatePlayer(ctx, p))

	require.NoError(t, s.RemovePlayer(ctx, p.ID))
	assert.ErrorIs(t, s.RemovePlayer(ctx, p.ID), domain.ErrPlayerNotFound)

	players, err := s.GetPlayersByRoom(ctx, room.ID)
	require.NoError(t, err)
	assert.Empty(t, players)
}
