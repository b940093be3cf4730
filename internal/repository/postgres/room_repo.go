package postgres

import (
	"context"
	"errors"

	"github.com/jmorgan/word-royale/internal/domain"
	"gorm.io/gorm"
)

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *roomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) CreateRoom(ctx context.Context, room *domain.Room) error {
	room.StartedAt = nil
	room.EndedAt = nil
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) GetRoomByCode(ctx context.Context, code string) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).First(&room, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) GetRoomByID(ctx context.Context, id int) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) UpdateRoom(ctx context.Context, id int, patch domain.RoomPatch) (*domain.Room, error) {
	updates := map[string]any{}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.StartedAt != nil {
		updates["started_at"] = *patch.StartedAt
	}
	if patch.EndedAt != nil {
		updates["ended_at"] = *patch.EndedAt
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&domain.Room{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, domain.ErrRoomNotFound
		}
	}
	return r.GetRoomByID(ctx, id)
}

func (r *roomRepository) DeleteRoom(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.Room{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRoomNotFound
		}
		return tx.Delete(&domain.Player{}, "room_id = ?", id).Error
	})
}
