package trip

import (
	"time"

	"household-app-go/internal/repo"
)

type Trip struct {
	repo.Base
	HouseholdID string     `gorm:"type:uuid;index;not null;column:household_id" json:"household_id"`
	Name        string     `gorm:"not null" json:"name"`
	Destination string     `json:"destination"`
	StartsOn    *time.Time `gorm:"column:starts_on" json:"starts_on"`
	EndsOn      *time.Time `gorm:"column:ends_on" json:"ends_on"`
	CreatedBy   string     `gorm:"not null;column:created_by" json:"created_by"`
}

type PackingItem struct {
	repo.Base
	TripID    string `gorm:"type:uuid;index;not null;column:trip_id" json:"trip_id"`
	Name      string `gorm:"not null" json:"name"`
	Quantity  int    `gorm:"not null;default:1" json:"quantity"`
	IsPacked  bool   `gorm:"not null;default:false;column:is_packed" json:"is_packed"`
	CreatedBy string `gorm:"not null;column:created_by" json:"created_by"`
}

type BudgetEntry struct {
	repo.Base
	TripID    string  `gorm:"type:uuid;index;not null;column:trip_id" json:"trip_id"`
	Label     string  `gorm:"not null" json:"label"`
	Amount    float64 `gorm:"not null" json:"amount"`
	Currency  string  `gorm:"type:varchar(8);not null;default:EUR" json:"currency"`
	CreatedBy string  `gorm:"not null;column:created_by" json:"created_by"`
}

type TimelineEvent struct {
	repo.Base
	TripID    string     `gorm:"type:uuid;index;not null;column:trip_id" json:"trip_id"`
	Title     string     `gorm:"not null" json:"title"`
	Notes     string     `json:"notes"`
	StartsAt  *time.Time `gorm:"column:starts_at" json:"starts_at"`
	CreatedBy string     `gorm:"not null;column:created_by" json:"created_by"`
}

type Document struct {
	repo.Base
	TripID    string `gorm:"type:uuid;index;not null;column:trip_id" json:"trip_id"`
	Name      string `gorm:"not null" json:"name"`
	URL       string `gorm:"column:url" json:"url"`
	CreatedBy string `gorm:"not null;column:created_by" json:"created_by"`
}

type TripMember struct {
	repo.Base
	TripID   string `gorm:"type:uuid;index;not null;column:trip_id" json:"trip_id"`
	MemberID string `gorm:"type:uuid;not null;column:member_id" json:"member_id"`
	Role     string `gorm:"type:varchar(16);not null;default:traveler" json:"role"`
}
