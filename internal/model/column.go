package model

import (
	"time"

	"github.com/google/uuid"
)

// Workflow stages. The stage is assigned from the column name at creation
// time and survives renames, so gating never depends on the display name.
const (
	StageReady  = "ready"
	StageDoing  = "doing"
	StageReview = "review"
	StageDone   = "done"
	StageNone   = "none"
)

type Column struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"not null"`
	Stage     string    `gorm:"not null;default:'none';check:stage IN ('ready', 'doing', 'review', 'done', 'none')"`
	Position  int       `gorm:"not null"`
	WIPLimit  *int      `gorm:"column:wip_limit"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Board Board `gorm:"foreignKey:BoardID"`
}

// StageForName maps the well-known column names to their workflow stage.
// Any other name gets StageNone and carries no workflow semantics.
func StageForName(name string) string {
	switch name {
	case "Ready":
		return StageReady
	case "Doing":
		return StageDoing
	case "Review":
		return StageReview
	case "Done":
		return StageDone
	default:
		return StageNone
	}
}
