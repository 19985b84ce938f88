package repository

import (
	"context"
	"errors"

	"teamboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

// CreateWithColumns creates the board and its initial columns atomically.
func (r *BoardRepository) CreateWithColumns(ctx context.Context, board *model.Board, columns []model.Column) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(board).Error; err != nil {
			return err
		}
		for i := range columns {
			columns[i].BoardID = board.ID
			if err := tx.Create(&columns[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *BoardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepository) GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) Update(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Save(board).Error
}

func (r *BoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Board{}, "id = ?", id).Error
}
