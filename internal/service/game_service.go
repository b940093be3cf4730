package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/jmorgan/word-royale/internal/clock"
	"github.com/jmorgan/word-royale/internal/domain"
	"github.com/jmorgan/word-royale/internal/game"
	"github.com/jmorgan/word-royale/internal/repository"
	"github.com/jmorgan/word-royale/internal/words"
)

const (
	roomCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxCodeAttempts = 10
)

// GameService is the room lifecycle state machine. It mutates rooms and
// players only through the store, and serializes every operation on a
// room behind a per-room lock.
type GameService struct {
	rooms   repository.RoomRepository
	players repository.PlayerRepository
	words   *words.Source
	clock   clock.Clock
	locks   *roomLocks
}

func NewGameService(repos *repository.Repositories, src *words.Source, clk clock.Clock) *GameService {
	return &GameService{
		rooms:   repos.Rooms,
		players: repos.Players,
		words:   src,
		clock:   clk,
		locks:   newRoomLocks(),
	}
}

// GameState is the polling snapshot returned to clients. Room.Word is
// redacted by the HTTP layer while the game is in progress.
type GameState struct {
	Room          *domain.Room
	Players       []*domain.Player
	TimeRemaining int
}

// GuessResult reports one scored submission.
type GuessResult struct {
	Word    string
	Result  []game.Verdict
	IsValid bool
	IsWin   bool
}

// CreateRoom makes a new waiting room with a fresh unique code and a
// random answer, and joins playerName as its host.
func (s *GameService) CreateRoom(ctx context.Context, playerName string) (*domain.Room, *domain.Player, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, nil, ErrEmptyPlayerName
	}

	code, err := s.uniqueRoomCode(ctx)
	if err != nil {
		return nil, nil, err
	}

	room := &domain.Room{
		Code:       code,
		Word:       s.words.RandomAnswer(),
		Status:     domain.RoomStatusWaiting,
		MaxPlayers: domain.DefaultMaxPlayers,
		TimeLimit:  domain.DefaultTimeLimit,
		CreatedAt:  s.clock.Now(),
	}
	if err := s.rooms.CreateRoom(ctx, room); err != nil {
		return nil, nil, fmt.Errorf("create room: %w", err)
	}

	player, err := s.addPlayer(ctx, room.ID, playerName, true)
	if err != nil {
		return nil, nil, err
	}
	return room, player, nil
}

// JoinRoom adds a non-host player to a waiting room.
func (s *GameService) JoinRoom(ctx context.Context, code, playerName string) (*domain.Room, *domain.Player, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, nil, ErrEmptyPlayerName
	}

	code = strings.ToUpper(code)
	defer s.locks.acquire(code)()

	room, err := s.rooms.GetRoomByCode(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	if room.Status != domain.RoomStatusWaiting {
		return nil, nil, ErrGameAlreadyStarted
	}

	existing, err := s.players.GetPlayersByRoom(ctx, room.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list players: %w", err)
	}
	if len(existing) >= room.MaxPlayers {
		return nil, nil, ErrRoomFull
	}
	for _, p := range existing {
		if p.Name == playerName {
			return nil, nil, ErrNameTaken
		}
	}

	player, err := s.addPlayer(ctx, room.ID, playerName, false)
	if err != nil {
		return nil, nil, err
	}
	return room, player, nil
}

// State returns the current snapshot for polling clients. If the shared
// timer has run out it transitions the room to finished as a side
// effect of the read.
func (s *GameService) State(ctx context.Context, code string) (*GameState, error) {
	code = strings.ToUpper(code)
	defer s.locks.acquire(code)()

	room, err := s.rooms.GetRoomByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	timeRemaining := 0
	if room.Status == domain.RoomStatusPlaying && room.StartedAt != nil {
		elapsed := s.secondsSince(*room.StartedAt)
		timeRemaining = room.TimeLimit - elapsed
		if timeRemaining <= 0 {
			timeRemaining = 0
			room, err = s.finishRoom(ctx, room.ID)
			if err != nil {
				return nil, err
			}
		}
	}

	players, err := s.players.GetPlayersByRoom(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return &GameState{Room: room, Players: players, TimeRemaining: timeRemaining}, nil
}

// StartGame transitions a waiting room to playing. Only the host may
// start; every player moves to playing with the room.
func (s *GameService) StartGame(ctx context.Context, code string, playerID int) error {
	code = strings.ToUpper(code)
	defer s.locks.acquire(code)()

	room, err := s.rooms.GetRoomByCode(ctx, code)
	if err != nil {
		return err
	}

	player, err := s.players.GetPlayer(ctx, playerID)
	if err != nil || player.RoomID != room.ID || !player.IsHost {
		return ErrNotHost
	}

	if room.Status != domain.RoomStatusWaiting {
		return ErrGameAlreadyStarted
	}

	players, err := s.players.GetPlayersByRoom(ctx, room.ID)
	if err != nil {
		return fmt.Errorf("list players: %w", err)
	}
	if len(players) < 1 {
		return ErrNoPlayers
	}

	now := s.clock.Now()
	playing := domain.RoomStatusPlaying
	if _, err := s.rooms.UpdateRoom(ctx, room.ID, domain.RoomPatch{
		Status:    &playing,
		StartedAt: &now,
	}); err != nil {
		return fmt.Errorf("start room: %w", err)
	}

	playerPlaying := domain.PlayerStatusPlaying
	for _, p := range players {
		if _, err := s.players.UpdatePlayer(ctx, p.ID, domain.PlayerPatch{Status: &playerPlaying}); err != nil {
			return fmt.Errorf("start player %d: %w", p.ID, err)
		}
	}
	return nil
}

// SubmitGuess validates and scores one guess. When every player in the
// room has finished, the room itself transitions to finished in the
// same operation.
func (s *GameService) SubmitGuess(ctx context.Context, code string, playerID int, guess string) (*GuessResult, error) {
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if len(guess) != game.WordLength {
		return nil, ErrInvalidGuess
	}
	if !s.words.IsValidGuess(guess) {
		return nil, ErrWordNotAllowed
	}

	code = strings.ToUpper(code)
	defer s.locks.acquire(code)()

	room, err := s.rooms.GetRoomByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.Status != domain.RoomStatusPlaying {
		return nil, ErrGameNotInProgress
	}

	player, err := s.players.GetPlayer(ctx, playerID)
	if err != nil || player.RoomID != room.ID {
		return nil, ErrPlayerNotInRoom
	}
	if player.Solved || player.Attempts >= domain.MaxAttempts {
		return nil, ErrPlayerFinished
	}
	if player.HasGuessed(guess) {
		return nil, ErrDuplicateGuess
	}

	verdicts := game.Evaluate(guess, room.Word)
	isWin := game.IsWin(verdicts)

	guesses := append(append([]string(nil), player.Guesses...), guess)
	attempts := player.Attempts + 1
	emptyCurrent := ""
	patch := domain.PlayerPatch{
		Guesses:      &guesses,
		Attempts:     &attempts,
		Solved:       &isWin,
		CurrentGuess: &emptyCurrent,
	}
	if isWin && room.StartedAt != nil {
		elapsed := s.secondsSince(*room.StartedAt)
		patch.TimeElapsed = &elapsed
	}
	if isWin || attempts >= domain.MaxAttempts {
		finished := domain.PlayerStatusFinished
		patch.Status = &finished
	}
	if _, err := s.players.UpdatePlayer(ctx, player.ID, patch); err != nil {
		return nil, fmt.Errorf("update player: %w", err)
	}

	all, err := s.players.GetPlayersByRoom(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	allFinished := true
	for _, p := range all {
		if !p.Finished() {
			allFinished = false
			break
		}
	}
	if allFinished {
		if _, err := s.finishRoom(ctx, room.ID); err != nil {
			return nil, err
		}
	}

	return &GuessResult{Word: guess, Result: verdicts, IsValid: true, IsWin: isWin}, nil
}

// UpdateCurrentGuess overwrites the player's in-progress typing state.
// No length or status validation: this is transient UI state, not a
// submission.
func (s *GameService) UpdateCurrentGuess(ctx context.Context, code string, playerID int, text string) error {
	code = strings.ToUpper(code)
	defer s.locks.acquire(code)()

	room, err := s.rooms.GetRoomByCode(ctx, code)
	if err != nil {
		return err
	}

	player, err := s.players.GetPlayer(ctx, playerID)
	if err != nil || player.RoomID != room.ID {
		return ErrPlayerNotInRoom
	}

	_, err = s.players.UpdatePlayer(ctx, player.ID, domain.PlayerPatch{CurrentGuess: &text})
	if err != nil {
		return fmt.Errorf("update current guess: %w", err)
	}
	return nil
}

// LeaveRoom removes the player. The last player out deletes the room;
// a departing host hands the flag to the longest-joined survivor.
func (s *GameService) LeaveRoom(ctx context.Context, code string, playerID int) error {
	code = strings.ToUpper(code)
	defer s.locks.acquire(code)()

	room, err := s.rooms.GetRoomByCode(ctx, code)
	if err != nil {
		return err
	}

	player, err := s.players.GetPlayer(ctx, playerID)
	if err != nil || player.RoomID != room.ID {
		return ErrPlayerNotInRoom
	}

	if err := s.players.RemovePlayer(ctx, player.ID); err != nil {
		return fmt.Errorf("remove player: %w", err)
	}

	remaining, err := s.players.GetPlayersByRoom(ctx, room.ID)
	if err != nil {
		return fmt.Errorf("list players: %w", err)
	}
	if len(remaining) == 0 {
		if err := s.rooms.DeleteRoom(ctx, room.ID); err != nil {
			return fmt.Errorf("delete room: %w", err)
		}
		s.locks.forget(code)
		return nil
	}
	if player.IsHost {
		host := true
		if _, err := s.players.UpdatePlayer(ctx, remaining[0].ID, domain.PlayerPatch{IsHost: &host}); err != nil {
			return fmt.Errorf("promote host: %w", err)
		}
	}
	return nil
}

func (s *GameService) addPlayer(ctx context.Context, roomID int, name string, host bool) (*domain.Player, error) {
	player := &domain.Player{
		RoomID:   roomID,
		Name:     name,
		IsHost:   host,
		Status:   domain.PlayerStatusWaiting,
		Guesses:  []string{},
		JoinedAt: s.clock.Now(),
	}
	if err := s.players.CreatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	return player, nil
}

func (s *GameService) finishRoom(ctx context.Context, roomID int) (*domain.Room, error) {
	now := s.clock.Now()
	finished := domain.RoomStatusFinished
	room, err := s.rooms.UpdateRoom(ctx, roomID, domain.RoomPatch{
		Status:  &finished,
		EndedAt: &now,
	})
	if err != nil {
		return nil, fmt.Errorf("finish room: %w", err)
	}
	return room, nil
}

func (s *GameService) secondsSince(t time.Time) int {
	return int(s.clock.Now().Sub(t).Seconds())
}

// uniqueRoomCode keeps generating codes until one is unused; the store
// lookup rules out handing two rooms the same code.
func (s *GameService) uniqueRoomCode(ctx context.Context) (string, error) {
	for range maxCodeAttempts {
		code, err := randomRoomCode()
		if err != nil {
			return "", err
		}
		_, err = s.rooms.GetRoomByCode(ctx, code)
		if errors.Is(err, domain.ErrRoomNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("check room code: %w", err)
		}
	}
	return "", errors.New("could not generate a unique room code")
}

func randomRoomCode() (string, error) {
	var b strings.Builder
	for range domain.RoomCodeLength {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(roomCodeCharset))))
		if err != nil {
			return "", fmt.Errorf("generate room code: %w", err)
		}
		b.WriteByte(roomCodeCharset[n.Int64()])
	}
	return b.String(), nil
}
