package domain

import (
	"time"

	"gorm.io/datatypes"
)

// PlayerStatus represents a player's progress within their room.
type PlayerStatus string

const (
	PlayerStatusWaiting  PlayerStatus = "waiting"
	PlayerStatusPlaying  PlayerStatus = "playing"
	PlayerStatusFinished PlayerStatus = "finished"
	// PlayerStatusDisconnected is reserved; no operation sets it.
	PlayerStatusDisconnected PlayerStatus = "disconnected"
)

// MaxAttempts is the number of guesses a player gets per round.
const MaxAttempts = 6

// Player is a participant in exactly one room. Guesses is append-only;
// CurrentGuess is transient typing state overwritten on every update.
type Player struct {
	ID           int                        `json:"id" gorm:"primaryKey;autoIncrement"`
	RoomID       int                        `json:"roomId" gorm:"not null;index"`
	Name         string                     `json:"name" gorm:"not null"`
	IsHost       bool                       `json:"isHost" gorm:"not null;default:false"`
	Status       PlayerStatus               `json:"status" gorm:"type:varchar(20);not null;default:'waiting'"`
	Guesses      datatypes.JSONSlice[string] `json:"guesses" gorm:"not null"`
	CurrentGuess string                     `json:"currentGuess" gorm:"not null;default:''"`
	Solved       bool                       `json:"solved" gorm:"not null;default:false"`
	Attempts     int                        `json:"attempts" gorm:"not null;default:0"`
	TimeElapsed  int                        `json:"timeElapsed" gorm:"not null;default:0"`
	JoinedAt     time.Time                  `json:"joinedAt"`
}

// HasGuessed reports whether the player already submitted word.
func (p *Player) HasGuessed(word string) bool {
	for _, g := range p.Guesses {
		if g == word {
			return true
		}
	}
	return false
}

// Finished reports whether the player can submit no further guesses.
func (p *Player) Finished() bool {
	return p.Solved || p.Attempts >= MaxAttempts || p.Status == PlayerStatusFinished
}

// PlayerPatch is a partial update. Nil fields are left untouched.
type PlayerPatch struct {
	IsHost       *bool
	Status       *PlayerStatus
	Guesses      *[]string
	CurrentGuess *string
	Solved       *bool
	Attempts     *int
	TimeElapsed  *int
}
