package postgres

import (
	"context"
	"errors"

	"github.com/jmorgan/word-royale/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *playerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	if player.Guesses == nil {
		player.Guesses = datatypes.JSONSlice[string]{}
	}
	return r.db.WithContext(ctx).Create(player).Error
}

func (r *playerRepository) GetPlayer(ctx context.Context, id int) (*domain.Player, error) {
	var player domain.Player
	err := r.db.WithContext(ctx).First(&player, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) GetPlayersByRoom(ctx context.Context, roomID int) ([]*domain.Player, error) {
	var players []*domain.Player
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("id ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) UpdatePlayer(ctx context.Context, id int, patch domain.PlayerPatch) (*domain.Player, error) {
	updates := map[string]any{}
	if patch.IsHost != nil {
		updates["is_host"] = *patch.IsHost
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Guesses != nil {
		updates["guesses"] = datatypes.JSONSlice[string](*patch.Guesses)
	}
	if patch.CurrentGuess != nil {
		updates["current_guess"] = *patch.CurrentGuess
	}
	if patch.Solved != nil {
		updates["solved"] = *patch.Solved
	}
	if patch.Attempts != nil {
		updates["attempts"] = *patch.Attempts
	}
	if patch.TimeElapsed != nil {
		updates["time_elapsed"] = *patch.TimeElapsed
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&domain.Player{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, domain.ErrPlayerNotFound
		}
	}
	return r.GetPlayer(ctx, id)
}

func (r *playerRepository) RemovePlayer(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&domain.Player{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func (r *playerRepository) RemovePlayersByRoom(ctx context.Context, roomID int) error {
	return r.db.WithContext(ctx).Delete(&domain.Player{}, "room_id = ?", roomID).Error
}
