package model

import (
	"time"

	"github.com/google/uuid"
)

type Board struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `gorm:"not null"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Owner   User     `gorm:"foreignKey:OwnerID"`
	Columns []Column `gorm:"foreignKey:BoardID"`
}
