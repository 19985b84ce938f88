package repository

import (
	"context"
	"errors"

	"teamboard/internal/model"
	"teamboard/internal/workflow"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

// ListByColumn returns the column's cards ordered ascending by position.
func (r *CardRepository) ListByColumn(ctx context.Context, columnID uuid.UUID) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.WithContext(ctx).Where("column_id = ?", columnID).Order("position").Find(&cards).Error
	return cards, err
}

// ListByColumnWithRelations loads the column's cards with assignee and
// team preloaded, for board rendering.
func (r *CardRepository) ListByColumnWithRelations(ctx context.Context, columnID uuid.UUID) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.WithContext(ctx).
		Preload("Assignee").
		Preload("Team").
		Where("column_id = ?", columnID).
		Order("position").
		Find(&cards).Error
	return cards, err
}

func (r *CardRepository) CountByColumn(ctx context.Context, columnID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Card{}).Where("column_id = ?", columnID).Count(&count).Error
	return count, err
}

func (r *CardRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Card{}).Count(&count).Error
	return count, err
}

func (r *CardRepository) Update(ctx context.Context, card *model.Card) error {
	result := r.db.WithContext(ctx).Save(card)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (r *CardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Card{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// ApplyMove commits a move as a single transaction: every placement's
// column and position, plus the optional assignee write on the moved card.
// All rows land or none do, so positions never go sparse mid-move.
func (r *CardRepository) ApplyMove(ctx context.Context, update workflow.MoveUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range update.Placements {
			if err := tx.Model(&model.Card{}).Where("id = ?", p.CardID).
				Updates(map[string]interface{}{
					"column_id": p.ColumnID,
					"position":  p.Position,
				}).Error; err != nil {
				return err
			}
		}

		if update.AssigneeID != nil {
			if err := tx.Model(&model.Card{}).Where("id = ?", update.CardID).
				Update("assignee_id", *update.AssigneeID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SetApproved flips the lead-approval flag without touching position.
func (r *CardRepository) SetApproved(ctx context.Context, cardID uuid.UUID, approved bool) error {
	result := r.db.WithContext(ctx).Model(&model.Card{}).
		Where("id = ?", cardID).
		Update("is_approved", approved)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// ListLegacySubsystem returns cards still carrying the deprecated
// free-text subsystem value without a team association.
func (r *CardRepository) ListLegacySubsystem(ctx context.Context) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.WithContext(ctx).
		Where("team_id IS NULL AND subsystem IS NOT NULL").
		Find(&cards).Error
	return cards, err
}

// SetTeam backfills the team association on a legacy card.
func (r *CardRepository) SetTeam(ctx context.Context, cardID, teamID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Card{}).
		Where("id = ?", cardID).
		Update("team_id", teamID).Error
}
