package service

import "errors"

// Rule-violation errors surfaced to clients. Handlers map these onto
// HTTP status codes; anything else is an internal error.
var (
	ErrEmptyPlayerName    = errors.New("player name is required")
	ErrGameAlreadyStarted = errors.New("game has already started")
	ErrRoomFull           = errors.New("room is full")
	ErrNameTaken          = errors.New("player name already taken")
	ErrNotHost            = errors.New("only the host can start the game")
	ErrPlayerNotInRoom    = errors.New("player not in this room")
	ErrNoPlayers          = errors.New("need at least 1 player to start")
	ErrGameNotInProgress  = errors.New("game is not in progress")
	ErrPlayerFinished     = errors.New("player has already finished")
	ErrInvalidGuess       = errors.New("guess must be a 5-letter word")
	ErrWordNotAllowed     = errors.New("not a valid word")
	ErrDuplicateGuess     = errors.New("word already guessed")
)
