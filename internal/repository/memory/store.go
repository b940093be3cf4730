// Package memory is the volatile reference store: mutex-guarded maps
// with monotonically increasing integer id counters. State is lost on
// process restart.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jmorgan/word-royale/internal/domain"
	"github.com/jmorgan/word-royale/internal/repository"
	"gorm.io/datatypes"
)

// Store implements repository.RoomRepository and
// repository.PlayerRepository over in-memory maps. All returned
// entities are copies; mutations go through Update methods only.
type Store struct {
	mu        sync.Mutex
	rooms     map[int]*domain.Room
	players   map[int]*domain.Player
	roomSeq   int
	playerSeq int
}

func New() *Store {
	return &Store{
		rooms:   make(map[int]*domain.Room),
		players: make(map[int]*domain.Player),
	}
}

// NewRepositories wires a fresh Store into the aggregate the engine
// consumes.
func NewRepositories() *repository.Repositories {
	s := New()
	return &repository.Repositories{Rooms: s, Players: s}
}

func (s *Store) CreateRoom(ctx context.Context, room *domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roomSeq++
	room.ID = s.roomSeq
	room.StartedAt = nil
	room.EndedAt = nil

	stored := *room
	s.rooms[stored.ID] = &stored
	return nil
}

func (s *Store) GetRoomByCode(ctx context.Context, code string) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rooms {
		if r.Code == code {
			return copyRoom(r), nil
		}
	}
	return nil, domain.ErrRoomNotFound
}

func (s *Store) GetRoomByID(ctx context.Context, id int) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return copyRoom(r), nil
}

func (s *Store) UpdateRoom(ctx context.Context, id int, patch domain.RoomPatch) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	if patch.Status != nil {
		r.Status = *patch.Status
	}
	if patch.StartedAt != nil {
		t := *patch.StartedAt
		r.StartedAt = &t
	}
	if patch.EndedAt != nil {
		t := *patch.EndedAt
		r.EndedAt = &t
	}
	return copyRoom(r), nil
}

func (s *Store) DeleteRoom(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[id]; !ok {
		return domain.ErrRoomNotFound
	}
	delete(s.rooms, id)
	for pid, p := range s.players {
		if p.RoomID == id {
			delete(s.players, pid)
		}
	}
	return nil
}

func (s *Store) CreatePlayer(ctx context.Context, player *domain.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.playerSeq++
	player.ID = s.playerSeq

	stored := *player
	stored.Guesses = slices.Clone(player.Guesses)
	s.players[stored.ID] = &stored
	return nil
}

func (s *Store) GetPlayer(ctx context.Context, id int) (*domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return copyPlayer(p), nil
}

func (s *Store) GetPlayersByRoom(ctx context.Context, roomID int) ([]*domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Player
	// playerSeq bounds every assigned id; iterating by id keeps creation order.
	for id := 1; id <= s.playerSeq; id++ {
		if p, ok := s.players[id]; ok && p.RoomID == roomID {
			out = append(out, copyPlayer(p))
		}
	}
	return out, nil
}

func (s *Store) UpdatePlayer(ctx context.Context, id int, patch domain.PlayerPatch) (*domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	if patch.IsHost != nil {
		p.IsHost = *patch.IsHost
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Guesses != nil {
		p.Guesses = datatypes.JSONSlice[string](slices.Clone(*patch.Guesses))
	}
	if patch.CurrentGuess != nil {
		p.CurrentGuess = *patch.CurrentGuess
	}
	if patch.Solved != nil {
		p.Solved = *patch.Solved
	}
	if patch.Attempts != nil {
		p.Attempts = *patch.Attempts
	}
	if patch.TimeElapsed != nil {
		p.TimeElapsed = *patch.TimeElapsed
	}
	return copyPlayer(p), nil
}

func (s *Store) RemovePlayer(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[id]; !ok {
		return domain.ErrPlayerNotFound
	}
	delete(s.players, id)
	return nil
}

func (s *Store) RemovePlayersByRoom(ctx context.Context, roomID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, p := range s.players {
		if p.RoomID == roomID {
			delete(s.players, id)
		}
	}
	return nil
}

func copyRoom(r *domain.Room) *domain.Room {
	out := *r
	if r.StartedAt != nil {
		t := *r.StartedAt
		out.StartedAt = &t
	}
	if r.EndedAt != nil {
		t := *r.EndedAt
		out.EndedAt = &t
	}
	return &out
}

func copyPlayer(p *domain.Player) *domain.Player {
	out := *p
	out.Guesses = slices.Clone(p.Guesses)
	return &out
}
