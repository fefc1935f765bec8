package shopping

import "household-app-go/internal/repo"

type ShoppingList struct {
	repo.Base
	HouseholdID string `gorm:"type:uuid;index;not null;column:household_id" json:"household_id"`
	Name        string `gorm:"not null" json:"name"`
	CreatedBy   string `gorm:"not null;column:created_by" json:"created_by"`
}

type ShoppingItem struct {
	repo.Base
	ListID    string `gorm:"type:uuid;index;not null;column:list_id" json:"list_id"`
	Name      string `gorm:"not null" json:"name"`
	Quantity  string `json:"quantity"`
	Note      string `json:"note"`
	IsChecked bool   `gorm:"not null;default:false;column:is_checked" json:"is_checked"`
	CreatedBy string `gorm:"not null;column:created_by" json:"created_by"`
}
