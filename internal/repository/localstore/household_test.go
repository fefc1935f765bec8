package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	householddomain "household-app-go/internal/domain/household"
	"household-app-go/internal/kvstore"
	"household-app-go/internal/repo"
)

var _ householddomain.Repository = (*HouseholdRepository)(nil)

func strPtr(s string) *string { return &s }

func TestHouseholdsForUserUnionsCreatedAndMembership(t *testing.T) {
	ctx := context.Background()
	r := NewHouseholdRepository(kvstore.NewMemory())

	created, err := r.CreateHousehold(ctx, &householddomain.Household{Name: "Mine", CreatedBy: "u1"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)

	joined, err := r.CreateHousehold(ctx, &householddomain.Household{Name: "Joined", CreatedBy: "u2"})
	require.NoError(t, err)
	_, err = r.CreateMember(ctx, &householddomain.Member{HouseholdID: joined.ID, UserID: strPtr("u1"), Name: "Me", Role: householddomain.RoleMember, IsActive: true})
	require.NoError(t, err)

	inactive, err := r.CreateHousehold(ctx, &householddomain.Household{Name: "Left", CreatedBy: "u3"})
	require.NoError(t, err)
	_, err = r.CreateMember(ctx, &householddomain.Member{HouseholdID: inactive.ID, UserID: strPtr("u1"), Name: "Me", Role: householddomain.RoleMember, IsActive: false})
	require.NoError(t, err)

	got, err := r.HouseholdsForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, created.ID, got[0].ID, "ordered by creation time ascending")
	assert.Equal(t, joined.ID, got[1].ID)
}

func TestHouseholdsForUserDeduplicatesCreatorMembership(t *testing.T) {
	ctx := context.Background()
	r := NewHouseholdRepository(kvstore.NewMemory())

	h, err := r.CreateHousehold(ctx, &householddomain.Household{Name: "Mine", CreatedBy: "u1"})
	require.NoError(t, err)
	_, err = r.CreateMember(ctx, &householddomain.Member{HouseholdID: h.ID, UserID: strPtr("u1"), Name: "Me", Role: householddomain.RoleOwner, IsActive: true})
	require.NoError(t, err)

	got, err := r.HouseholdsForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDeleteHouseholdCascadesMembers(t *testing.T) {
	ctx := context.Background()
	r := NewHouseholdRepository(kvstore.NewMemory())

	h, err := r.CreateHousehold(ctx, &householddomain.Household{Name: "Mine", CreatedBy: "u1"})
	require.NoError(t, err)
	m, err := r.CreateMember(ctx, &householddomain.Member{HouseholdID: h.ID, UserID: strPtr("u1"), Name: "Me", Role: householddomain.RoleOwner, IsActive: true})
	require.NoError(t, err)

	require.NoError(t, r.DeleteHousehold(ctx, h.ID))

	_, err = r.HouseholdByID(ctx, h.ID)
	assert.ErrorIs(t, err, householddomain.ErrHouseholdNotFound)
	_, err = r.MemberByID(ctx, m.ID)
	assert.ErrorIs(t, err, householddomain.ErrMemberNotFound)
}

func TestMemberForUserSkipsInactiveRows(t *testing.T) {
	ctx := context.Background()
	r := NewHouseholdRepository(kvstore.NewMemory())

	active, err := r.CreateMember(ctx, &householddomain.Member{HouseholdID: "h1", UserID: strPtr("u1"), Name: "Me", Role: householddomain.RoleOwner, IsActive: true})
	require.NoError(t, err)

	_, err = r.UpdateMember(ctx, active.ID, repo.Changes{"is_active": false})
	require.NoError(t, err)

	_, err = r.MemberForUser(ctx, "h1", "u1")
	assert.ErrorIs(t, err, householddomain.ErrMemberNotFound)
}

func TestMembersByHouseholdActiveOnly(t *testing.T) {
	ctx := context.Background()
	r := NewHouseholdRepository(kvstore.NewMemory())

	_, err := r.CreateMember(ctx, &householddomain.Member{HouseholdID: "h1", UserID: strPtr("u1"), Name: "A", Role: householddomain.RoleOwner, IsActive: true})
	require.NoError(t, err)
	_, err = r.CreateMember(ctx, &householddomain.Member{HouseholdID: "h1", Name: "Kid", Role: householddomain.RoleChild, IsActive: false})
	require.NoError(t, err)

	all, err := r.MembersByHousehold(ctx, "h1", false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	activeOnly, err := r.MembersByHousehold(ctx, "h1", true)
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, "A", activeOnly[0].Name)
}
