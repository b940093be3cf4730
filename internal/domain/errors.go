package domain

import "errors"

// Entity lookup errors, returned by every store backend.
var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrPlayerNotFound = errors.New("player not found")
)
