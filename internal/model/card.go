package model

import (
	"time"

	"github.com/google/uuid"
)

// Card priorities.
const (
	PriorityP0 = "P0"
	PriorityP1 = "P1"
	PriorityP2 = "P2"
	PriorityP3 = "P3"
)

type Card struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ColumnID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Title              string    `gorm:"not null"`
	Description        *string
	AcceptanceCriteria *string
	Priority           string `gorm:"not null;default:'P2';check:priority IN ('P0', 'P1', 'P2', 'P3')"`
	TaskType           *string
	// Subsystem is the legacy free-text team field, kept only so old rows
	// can be backfilled into TeamID. New writes should set TeamID.
	Subsystem     *string
	TeamID        *uuid.UUID `gorm:"type:uuid;index"`
	AssigneeID    *uuid.UUID `gorm:"type:uuid"`
	ReviewerID    *uuid.UUID `gorm:"type:uuid"`
	DueDate       *time.Time
	IsOnboarding  bool `gorm:"not null;default:false"`
	IsBlocked     bool `gorm:"not null;default:false"`
	BlockedReason *string
	IsApproved    bool `gorm:"not null;default:false"`
	Position      int  `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Column   Column `gorm:"foreignKey:ColumnID"`
	Team     *Team  `gorm:"foreignKey:TeamID"`
	Assignee *User  `gorm:"foreignKey:AssigneeID"`
	Reviewer *User  `gorm:"foreignKey:ReviewerID"`
}

// HasTeam reports whether the card is gated by team membership rules.
func (c *Card) HasTeam() bool {
	return c.TeamID != nil
}
