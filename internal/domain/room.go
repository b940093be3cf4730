package domain

import "time"

// RoomStatus represents the lifecycle state of a room.
// Transitions are monotonic: waiting -> playing -> finished.
type RoomStatus string

const (
	RoomStatusWaiting  RoomStatus = "waiting"
	RoomStatusPlaying  RoomStatus = "playing"
	RoomStatusFinished RoomStatus = "finished"
)

const (
	// DefaultMaxPlayers is the room capacity applied at creation.
	DefaultMaxPlayers = 8
	// DefaultTimeLimit is the shared round timer in seconds.
	DefaultTimeLimit = 300
	// RoomCodeLength is the length of the join code.
	RoomCodeLength = 6
)

// Room is a shared game session identified by a short code. It owns its
// players: deleting the room cascades to all players whose RoomID matches.
// Word is never serialized directly; handlers expose it only once the
// room is finished.
type Room struct {
	ID         int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Code       string     `json:"code" gorm:"uniqueIndex;size:10;not null"`
	Word       string     `json:"-" gorm:"not null"`
	Status     RoomStatus `json:"status" gorm:"type:varchar(20);not null;default:'waiting'"`
	MaxPlayers int        `json:"maxPlayers" gorm:"not null;default:8"`
	TimeLimit  int        `json:"timeLimit" gorm:"not null;default:300"`
	CreatedAt  time.Time  `json:"createdAt"`
	StartedAt  *time.Time `json:"startedAt"`
	EndedAt    *time.Time `json:"endedAt"`
}

// RoomPatch is a partial update. Nil fields are left untouched.
type RoomPatch struct {
	Status    *RoomStatus
	StartedAt *time.Time
	EndedAt   *time.Time
}
