package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/jmorgan/word-royale/internal/domain"
	"github.com/jmorgan/word-royale/internal/game"
	"github.com/jmorgan/word-royale/internal/service"
	"github.com/jmorgan/word-royale/internal/ws"
)

type RoomHandler struct {
	games *service.GameService
	hub   *ws.Hub
}

func NewRoomHandler(games *service.GameService, hub *ws.Hub) *RoomHandler {
	return &RoomHandler{games: games, hub: hub}
}

type createRoomRequest struct {
	PlayerName string `json:"playerName"`
}

type joinRoomRequest struct {
	PlayerName string `json:"playerName"`
}

type startGameRequest struct {
	PlayerID int `json:"playerId"`
}

type submitGuessRequest struct {
	PlayerID int    `json:"playerId"`
	Guess    string `json:"guess"`
}

type currentGuessRequest struct {
	PlayerID     int    `json:"playerId"`
	CurrentGuess string `json:"currentGuess"`
}

// RoomView is the wire shape of a room. Word is populated only once the
// game is finished; until then clients must not learn the answer.
type RoomView struct {
	*domain.Room
	Word string `json:"word,omitempty"`
}

func newRoomView(room *domain.Room) RoomView {
	v := RoomView{Room: room}
	if room.Status == domain.RoomStatusFinished {
		v.Word = room.Word
	}
	return v
}

type roomAndPlayerResponse struct {
	Room   RoomView       `json:"room"`
	Player *domain.Player `json:"player"`
}

type gameStateResponse struct {
	Room          RoomView         `json:"room"`
	Players       []*domain.Player `json:"players"`
	TimeRemaining int              `json:"timeRemaining"`
}

type guessResponse struct {
	Word    string         `json:"word"`
	Result  []game.Verdict `json:"result"`
	IsValid bool           `json:"isValid"`
	IsWin   bool           `json:"isWin"`
}

type leaderboardEntryView struct {
	Player *domain.Player `json:"player"`
	Rank   int            `json:"rank"`
	Score  int            `json:"score"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	room, player, err := h.games.CreateRoom(r.Context(), req.PlayerName)
	if err != nil {
		writeServiceError(w, err, "Failed to create room")
		return
	}

	writeJSON(w, http.StatusOK, roomAndPlayerResponse{Room: newRoomView(room), Player: player})
}

func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req joinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	room, player, err := h.games.JoinRoom(r.Context(), code, req.PlayerName)
	if err != nil {
		writeServiceError(w, err, "Failed to join room")
		return
	}

	h.broadcastState(r, room.Code)
	writeJSON(w, http.StatusOK, roomAndPlayerResponse{Room: newRoomView(room), Player: player})
}

func (h *RoomHandler) GetState(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	state, err := h.games.State(r.Context(), code)
	if err != nil {
		writeServiceError(w, err, "Failed to get game state")
		return
	}

	writeJSON(w, http.StatusOK, gameStateResponse{
		Room:          newRoomView(state.Room),
		Players:       state.Players,
		TimeRemaining: state.TimeRemaining,
	})
}

func (h *RoomHandler) Start(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req startGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.games.StartGame(r.Context(), code, req.PlayerID); err != nil {
		writeServiceError(w, err, "Failed to start game")
		return
	}

	h.broadcastState(r, code)
	writeMessage(w, http.StatusOK, "Game started")
}

func (h *RoomHandler) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req submitGuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.games.SubmitGuess(r.Context(), code, req.PlayerID, req.Guess)
	if err != nil {
		writeServiceError(w, err, "Failed to submit guess")
		return
	}

	h.broadcastState(r, code)
	writeJSON(w, http.StatusOK, guessResponse{
		Word:    result.Word,
		Result:  result.Result,
		IsValid: result.IsValid,
		IsWin:   result.IsWin,
	})
}

func (h *RoomHandler) UpdateCurrentGuess(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req currentGuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.games.UpdateCurrentGuess(r.Context(), code, req.PlayerID, req.CurrentGuess); err != nil {
		writeServiceError(w, err, "Failed to update current guess")
		return
	}

	h.broadcastState(r, code)
	writeMessage(w, http.StatusOK, "Current guess updated")
}

func (h *RoomHandler) Leave(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	playerID, err := strconv.Atoi(chi.URLParam(r, "playerID"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid player id")
		return
	}

	if err := h.games.LeaveRoom(r.Context(), code, playerID); err != nil {
		writeServiceError(w, err, "Failed to leave room")
		return
	}

	// The room may be gone; broadcastState is a no-op then, and the
	// close tells any remaining sockets to drop.
	if _, stateErr := h.games.State(r.Context(), code); stateErr != nil {
		h.hub.CloseRoom(normalizeCode(code))
	} else {
		h.broadcastState(r, code)
	}
	writeMessage(w, http.StatusOK, "Left room successfully")
}

func (h *RoomHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	entries, err := h.games.Leaderboard(r.Context(), code)
	if err != nil {
		writeServiceError(w, err, "Failed to get leaderboard")
		return
	}

	views := make([]leaderboardEntryView, len(entries))
	for i, e := range entries {
		views[i] = leaderboardEntryView{Player: e.Player, Rank: e.Rank, Score: e.Score}
	}
	writeJSON(w, http.StatusOK, views)
}

// broadcastState mirrors the latest polling snapshot onto the room's
// websocket feed. Best effort only.
func (h *RoomHandler) broadcastState(r *http.Request, code string) {
	state, err := h.games.State(r.Context(), code)
	if err != nil {
		return
	}
	h.hub.Broadcast(state.Room.Code, gameStateResponse{
		Room:          newRoomView(state.Room),
		Players:       state.Players,
		TimeRemaining: state.TimeRemaining,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// writeServiceError maps engine sentinels onto the API error contract.
// Anything unrecognized is logged and reported as a generic 500.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			writeMessage(w, m.status, m.message)
			return
		}
	}
	log.Error().Err(err).Msg(fallback)
	writeMessage(w, http.StatusInternalServerError, fallback)
}

var errorMappings = []struct {
	err     error
	status  int
	message string
}{
	{domain.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{domain.ErrPlayerNotFound, http.StatusNotFound, "Player not found"},
	{service.ErrNotHost, http.StatusForbidden, "Only the host can start the game"},
	{service.ErrPlayerNotInRoom, http.StatusForbidden, "Player not in this room"},
	{service.ErrEmptyPlayerName, http.StatusBadRequest, "Player name is required"},
	{service.ErrGameAlreadyStarted, http.StatusBadRequest, "Game has already started"},
	{service.ErrRoomFull, http.StatusBadRequest, "Room is full"},
	{service.ErrNameTaken, http.StatusBadRequest, "Player name already taken"},
	{service.ErrNoPlayers, http.StatusBadRequest, "Need at least 1 player to start"},
	{service.ErrGameNotInProgress, http.StatusBadRequest, "Game is not in progress"},
	{service.ErrPlayerFinished, http.StatusBadRequest, "Player has already finished"},
	{service.ErrInvalidGuess, http.StatusBadRequest, "Guess must be a 5-letter word"},
	{service.ErrWordNotAllowed, http.StatusBadRequest, "Not a valid word"},
	{service.ErrDuplicateGuess, http.StatusBadRequest, "Word already guessed"},
}
