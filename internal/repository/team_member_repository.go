package repository

import (
	"context"
	"errors"

	"teamboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// GetMembership returns the user's membership in the team, or nil when
// the user does not belong to it.
func (r *TeamMemberRepository) GetMembership(ctx context.Context, teamID, userID uuid.UUID) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *model.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *TeamMemberRepository) Delete(ctx context.Context, teamID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&model.TeamMember{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *TeamMemberRepository) UpdateRole(ctx context.Context, teamID, userID uuid.UUID, role string) error {
	result := r.db.WithContext(ctx).Model(&model.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Update("role", role)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *TeamMemberRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]model.TeamMember, error) {
	var members []model.TeamMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("team_id = ?", teamID).
		Order("role ASC, created_at ASC").
		Find(&members).Error
	return members, err
}
