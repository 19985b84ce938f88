package repository

import (
	"context"
	"errors"

	"teamboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *model.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	var team model.Team
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) GetBySlug(ctx context.Context, slug string) (*model.Team, error) {
	var team model.Team
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

// GetBySlugWithMembers loads the team with its members and their users,
// leads first, then by join date.
func (r *TeamRepository) GetBySlugWithMembers(ctx context.Context, slug string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("role ASC, created_at ASC")
		}).
		Preload("Members.User").
		Where("slug = ?", slug).
		First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) GetAll(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).Order("name ASC").Find(&teams).Error
	return teams, err
}

func (r *TeamRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Team{}).Count(&count).Error
	return count, err
}
