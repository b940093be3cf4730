package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jmorgan/word-royale/internal/domain"
	"github.com/samber/lo"
)

// LeaderboardEntry is one ranked row. Rank is the 1-based position
// after the full ordering; ties get distinct sequential ranks.
type LeaderboardEntry struct {
	Player *domain.Player
	Rank   int
	Score  int
}

// Leaderboard ranks the room's players: solved players above unsolved
// regardless of score, then higher score, then lower solve time.
func (s *GameService) Leaderboard(ctx context.Context, code string) ([]LeaderboardEntry, error) {
	code = strings.ToUpper(code)
	defer s.locks.acquire(code)()

	room, err := s.rooms.GetRoomByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	players, err := s.players.GetPlayersByRoom(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	entries := lo.Map(players, func(p *domain.Player, _ int) LeaderboardEntry {
		return LeaderboardEntry{Player: p, Score: scorePlayer(p)}
	})

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Player.Solved != b.Player.Solved {
			return a.Player.Solved
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Player.TimeElapsed < b.Player.TimeElapsed
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// scorePlayer: solvers earn a base plus bonuses for unused attempts and
// speed (time bonus floors at zero); non-solvers get partial credit per
// attempt; players who never guessed score nothing.
func scorePlayer(p *domain.Player) int {
	if p.Solved {
		timeBonus := domain.DefaultTimeLimit - p.TimeElapsed
		if timeBonus < 0 {
			timeBonus = 0
		}
		return 100 + (domain.MaxAttempts-p.Attempts)*10 + timeBonus
	}
	if p.Attempts > 0 {
		return p.Attempts * 5
	}
	return 0
}
