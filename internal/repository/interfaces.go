package repository

import (
	"context"

	"github.com/jmorgan/word-royale/internal/domain"
)

// RoomRepository persists rooms. Backends must assign a fresh id and
// CreatedAt on create, return domain.ErrRoomNotFound for missing rooms,
// and apply patches atomically (no partial multi-field update).
type RoomRepository interface {
	CreateRoom(ctx context.Context, room *domain.Room) error
	GetRoomByCode(ctx context.Context, code string) (*domain.Room, error)
	GetRoomByID(ctx context.Context, id int) (*domain.Room, error)
	UpdateRoom(ctx context.Context, id int, patch domain.RoomPatch) (*domain.Room, error)
	// DeleteRoom removes the room and cascades to its players.
	DeleteRoom(ctx context.Context, id int) error
}

// PlayerRepository persists players. JoinedAt is set at creation and
// never mutated; missing players yield domain.ErrPlayerNotFound.
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayer(ctx context.Context, id int) (*domain.Player, error)
	// GetPlayersByRoom returns the room's players ordered by id, which is
	// creation order.
	GetPlayersByRoom(ctx context.Context, roomID int) ([]*domain.Player, error)
	UpdatePlayer(ctx context.Context, id int, patch domain.PlayerPatch) (*domain.Player, error)
	RemovePlayer(ctx context.Context, id int) error
	RemovePlayersByRoom(ctx context.Context, roomID int) error
}

// Repositories aggregates the store backends handed to the engine.
type Repositories struct {
	Rooms   RoomRepository
	Players PlayerRepository
}
