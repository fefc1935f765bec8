package household

import "household-app-go/internal/repo"

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleChild  = "child"
	RoleViewer = "viewer"
)

var validRoles = map[string]bool{
	RoleOwner:  true,
	RoleAdmin:  true,
	RoleMember: true,
	RoleChild:  true,
	RoleViewer: true,
}

func ValidRole(role string) bool {
	return validRoles[role]
}

type Household struct {
	repo.Base
	Name      string `gorm:"not null" json:"name"`
	CreatedBy string `gorm:"not null;index;column:created_by" json:"created_by"`
}

type Member struct {
	repo.Base
	HouseholdID string `gorm:"type:uuid;index;not null;column:household_id" json:"household_id"`
	// UserID is nil for child members, who have no login identity.
	UserID   *string `gorm:"index" json:"user_id"`
	Name     string  `gorm:"not null" json:"name"`
	Role     string  `gorm:"type:varchar(16);not null" json:"role"`
	IsActive bool    `gorm:"not null;default:true;column:is_active" json:"is_active"`
}
