package model

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name           string    `gorm:"not null"`
	Slug           string    `gorm:"uniqueIndex;not null"`
	DiscordChannel *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Members []TeamMember `gorm:"foreignKey:TeamID"`
}
