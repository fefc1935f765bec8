package wishlist

import (
	"time"

	"household-app-go/internal/repo"
)

const (
	VisibilityPrivate   = "private"
	VisibilityHousehold = "household"
	VisibilityPublic    = "public"
)

func ValidVisibility(v string) bool {
	return v == VisibilityPrivate || v == VisibilityHousehold || v == VisibilityPublic
}

type Wishlist struct {
	repo.Base
	UserID      string  `gorm:"not null;index;column:user_id" json:"user_id"`
	HouseholdID *string `gorm:"type:uuid;index;column:household_id" json:"household_id"`
	// MemberID references an active member of HouseholdID when present.
	// A parent owns several member identities, their own and their
	// children's, so visibility exclusion compares member ids.
	MemberID    *string `gorm:"type:uuid;index;column:member_id" json:"member_id"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description"`
	Visibility  string  `gorm:"type:varchar(16);not null;default:private" json:"visibility"`
	// IsPublic mirrors visibility == public for older consumers.
	IsPublic  bool   `gorm:"not null;default:false;column:is_public" json:"is_public"`
	ShareSlug string `gorm:"uniqueIndex;column:share_slug" json:"share_slug"`
}

// Public reports whether the wishlist is reachable through its share
// slug, honoring the legacy flag.
func (w *Wishlist) Public() bool {
	return w.Visibility == VisibilityPublic || w.IsPublic
}

// WishlistItem carries the reservation sub-state; its four reservation
// fields always transition together.
type WishlistItem struct {
	repo.Base
	WishlistID      string     `gorm:"type:uuid;index;not null;column:wishlist_id" json:"wishlist_id"`
	Name            string     `gorm:"not null" json:"name"`
	Description     string     `json:"description"`
	URL             string     `gorm:"column:url" json:"url"`
	Price           string     `json:"price"`
	Priority        int        `gorm:"not null;default:0" json:"priority"`
	IsReserved      bool       `gorm:"not null;default:false;column:is_reserved" json:"is_reserved"`
	ReservedByEmail *string    `gorm:"column:reserved_by_email" json:"reserved_by_email"`
	ReservedByName  *string    `gorm:"column:reserved_by_name" json:"reserved_by_name"`
	ReservedAt      *time.Time `gorm:"column:reserved_at" json:"reserved_at"`
}
