package localstore

import (
	"context"
	"sort"

	"household-app-go/internal/apperr"
	householddomain "household-app-go/internal/domain/household"
	"household-app-go/internal/kvstore"
	"household-app-go/internal/repo"
	"household-app-go/internal/repo/local"
)

// Table names are shared across feature repositories on purpose: every
// repository built on the same store observes the same data.
const (
	tableHouseholds = "households"
	tableMembers    = "members"
)

type HouseholdRepository struct {
	households *local.Engine[householddomain.Household, *householddomain.Household]
	members    *local.Engine[householddomain.Member, *householddomain.Member]
}

func NewHouseholdRepository(store kvstore.Store) *HouseholdRepository {
	return &HouseholdRepository{
		households: local.NewEngine[householddomain.Household, *householddomain.Household](store, tableHouseholds),
		members:    local.NewEngine[householddomain.Member, *householddomain.Member](store, tableMembers),
	}
}

func (r *HouseholdRepository) HouseholdsForUser(ctx context.Context, userID string) ([]householddomain.Household, error) {
	households, err := r.households.FindAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	members, err := r.members.FindAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	linked := make(map[string]bool)
	for _, m := range members {
		if m.IsActive && m.UserID != nil && *m.UserID == userID {
			linked[m.HouseholdID] = true
		}
	}

	result := make([]householddomain.Household, 0)
	for _, h := range households {
		if h.CreatedBy == userID || linked[h.ID] {
			result = append(result, h)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *HouseholdRepository) HouseholdByID(ctx context.Context, id string) (*householddomain.Household, error) {
	h, err := r.households.FindByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, householddomain.ErrHouseholdNotFound
	}
	return h, err
}

func (r *HouseholdRepository) CreateHousehold(ctx context.Context, h *householddomain.Household) (*householddomain.Household, error) {
	return r.households.Create(ctx, h)
}

func (r *HouseholdRepository) UpdateHousehold(ctx context.Context, id string, changes repo.Changes) (*householddomain.Household, error) {
	h, err := r.households.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, householddomain.ErrHouseholdNotFound
	}
	return h, err
}

func (r *HouseholdRepository) DeleteHousehold(ctx context.Context, id string) error {
	if err := r.households.Delete(ctx, id); err != nil {
		if apperr.IsNotFound(err) {
			return householddomain.ErrHouseholdNotFound
		}
		return err
	}

	members, err := r.members.FindAll(ctx, repo.Filter{"household_id": id})
	if err != nil {
		return err
	}
	for _, m := range members {
		if err := r.members.Delete(ctx, m.ID); err != nil && !apperr.IsNotFound(err) {
			return err
		}
	}
	return nil
}

func (r *HouseholdRepository) MembersByHousehold(ctx context.Context, householdID string, activeOnly bool) ([]householddomain.Member, error) {
	filter := repo.Filter{"household_id": householdID}
	if activeOnly {
		filter["is_active"] = true
	}
	members, err := r.members.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].CreatedAt.Before(members[j].CreatedAt)
	})
	return members, nil
}

func (r *HouseholdRepository) MemberByID(ctx context.Context, id string) (*householddomain.Member, error) {
	m, err := r.members.FindByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, householddomain.ErrMemberNotFound
	}
	return m, err
}

func (r *HouseholdRepository) MemberForUser(ctx context.Context, householdID, userID string) (*householddomain.Member, error) {
	members, err := r.members.FindAll(ctx, repo.Filter{
		"household_id": householdID,
		"user_id":      userID,
		"is_active":    true,
	})
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, householddomain.ErrMemberNotFound
	}
	return &members[0], nil
}

func (r *HouseholdRepository) CreateMember(ctx context.Context, m *householddomain.Member) (*householddomain.Member, error) {
	return r.members.Create(ctx, m)
}

func (r *HouseholdRepository) UpdateMember(ctx context.Context, id string, changes repo.Changes) (*householddomain.Member, error) {
	m, err := r.members.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, householddomain.ErrMemberNotFound
	}
	return m, err
}

func (r *HouseholdRepository) DeleteMember(ctx context.Context, id string) error {
	err := r.members.Delete(ctx, id)
	if apperr.IsNotFound(err) {
		return householddomain.ErrMemberNotFound
	}
	return err
}
