package household

import (
	"context"

	"household-app-go/internal/repo"
)

// Repository is implemented once against postgres and once against the
// local store engine. Both must produce the same observable results.
type Repository interface {
	// HouseholdsForUser returns households the user created plus
	// households where an active member row links the user, deduplicated,
	// ordered by creation time ascending.
	HouseholdsForUser(ctx context.Context, userID string) ([]Household, error)
	HouseholdByID(ctx context.Context, id string) (*Household, error)
	CreateHousehold(ctx context.Context, h *Household) (*Household, error)
	UpdateHousehold(ctx context.Context, id string, changes repo.Changes) (*Household, error)
	// DeleteHousehold hard-deletes the household and its member rows.
	DeleteHousehold(ctx context.Context, id string) error

	MembersByHousehold(ctx context.Context, householdID string, activeOnly bool) ([]Member, error)
	MemberByID(ctx context.Context, id string) (*Member, error)
	// MemberForUser resolves the member row linking userID to the
	// household, active rows only.
	MemberForUser(ctx context.Context, householdID, userID string) (*Member, error)
	CreateMember(ctx context.Context, m *Member) (*Member, error)
	UpdateMember(ctx context.Context, id string, changes repo.Changes) (*Member, error)
	DeleteMember(ctx context.Context, id string) error
}
