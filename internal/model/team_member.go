package model

import (
	"time"

	"github.com/google/uuid"
)

// Team roles.
const (
	RoleLead   = "LEAD"   // can move cards anywhere and approve to Done
	RoleMember = "MEMBER" // limited to the forward Ready→Doing→Review flow
)

// TeamMember links a user to a team. At most one membership exists per
// (team, user) pair.
type TeamMember struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TeamID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_team_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_team_user"`
	Role      string    `gorm:"not null;default:'MEMBER';check:role IN ('LEAD', 'MEMBER')"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Team Team `gorm:"foreignKey:TeamID"`
	User User `gorm:"foreignKey:UserID"`
}

// IsLead reports whether the membership carries the LEAD role.
func (m *TeamMember) IsLead() bool {
	return m.Role == RoleLead
}
