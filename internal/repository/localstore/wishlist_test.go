package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	householddomain "household-app-go/internal/domain/household"
	wishlistdomain "household-app-go/internal/domain/wishlist"
	"household-app-go/internal/kvstore"
)

var _ wishlistdomain.Repository = (*WishlistRepository)(nil)

type wishlistFixture struct {
	store      kvstore.Store
	households *HouseholdRepository
	wishlists  *WishlistRepository
}

func newWishlistFixture() *wishlistFixture {
	store := kvstore.NewMemory()
	return &wishlistFixture{
		store:      store,
		households: NewHouseholdRepository(store),
		wishlists:  NewWishlistRepository(store),
	}
}

func (f *wishlistFixture) addMember(t *testing.T, householdID string, userID *string, role string) *householddomain.Member {
	t.Helper()
	m, err := f.households.CreateMember(context.Background(), &householddomain.Member{
		HouseholdID: householdID,
		UserID:      userID,
		Name:        "member",
		Role:        role,
		IsActive:    true,
	})
	require.NoError(t, err)
	return m
}

func (f *wishlistFixture) addWishlist(t *testing.T, w *wishlistdomain.Wishlist) *wishlistdomain.Wishlist {
	t.Helper()
	created, err := f.wishlists.CreateWishlist(context.Background(), w)
	require.NoError(t, err)
	return created
}

func TestWishlistsByHouseholdVisibility(t *testing.T) {
	ctx := context.Background()
	f := newWishlistFixture()
	h1 := "h1"

	m1 := f.addMember(t, h1, strPtr("u1"), householddomain.RoleOwner)
	m2 := f.addMember(t, h1, strPtr("u2"), householddomain.RoleMember)

	f.addWishlist(t, &wishlistdomain.Wishlist{UserID: "u1", HouseholdID: &h1, MemberID: &m1.ID, Title: "W1", Visibility: wishlistdomain.VisibilityHousehold})
	w2 := f.addWishlist(t, &wishlistdomain.Wishlist{UserID: "u2", HouseholdID: &h1, MemberID: &m2.ID, Title: "W2", Visibility: wishlistdomain.VisibilityHousehold})
	f.addWishlist(t, &wishlistdomain.Wishlist{UserID: "u2", HouseholdID: &h1, MemberID: &m2.ID, Title: "W3", Visibility: wishlistdomain.VisibilityPrivate})

	got, err := f.wishlists.WishlistsByHousehold(ctx, h1, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, w2.ID, got[0].ID)
}

func TestWishlistsByHouseholdKeepsChildWishlistsForCreator(t *testing.T) {
	ctx := context.Background()
	f := newWishlistFixture()
	h1 := "h1"
	parent := "u-parent"

	self := f.addMember(t, h1, strPtr(parent), householddomain.RoleOwner)
	child := f.addMember(t, h1, nil, householddomain.RoleChild)

	f.addWishlist(t, &wishlistdomain.Wishlist{UserID: parent, HouseholdID: &h1, MemberID: &self.ID, Title: "Own", Visibility: wishlistdomain.VisibilityHousehold})
	childList := f.addWishlist(t, &wishlistdomain.Wishlist{UserID: parent, HouseholdID: &h1, MemberID: &child.ID, Title: "Kid", Visibility: wishlistdomain.VisibilityHousehold})

	got, err := f.wishlists.WishlistsByHousehold(ctx, h1, parent)
	require.NoError(t, err)
	require.Len(t, got, 1, "own wishlist hidden, child wishlist kept")
	assert.Equal(t, childList.ID, got[0].ID)
}

func TestWishlistsByHouseholdFallsBackToUserIDWithoutMember(t *testing.T) {
	ctx := context.Background()
	f := newWishlistFixture()
	h1 := "h1"

	f.addWishlist(t, &wishlistdomain.Wishlist{UserID: "u1", HouseholdID: &h1, Title: "Mine", Visibility: wishlistdomain.VisibilityHousehold})
	other := f.addWishlist(t, &wishlistdomain.Wishlist{UserID: "u2", HouseholdID: &h1, Title: "Other", Visibility: wishlistdomain.VisibilityPublic})

	got, err := f.wishlists.WishlistsByHousehold(ctx, h1, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, other.ID, got[0].ID)
}

func TestWishlistsByHouseholdNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newWishlistFixture()
	h1 := "h1"

	first := f.addWishlist(t, &wishlistdomain.Wishlist{UserID: "u2", HouseholdID: &h1, Title: "older", Visibility: wishlistdomain.VisibilityHousehold})
	time.Sleep(2 * time.Millisecond)
	second := f.addWishlist(t, &wishlistdomain.Wishlist{UserID: "u3", HouseholdID: &h1, Title: "newer", Visibility: wishlistdomain.VisibilityHousehold})

	got, err := f.wishlists.WishlistsByHousehold(ctx, h1, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
}

func TestChildAndPersonalPartitions(t *testing.T) {
	ctx := context.Background()
	f := newWishlistFixture()
	h1 := "h1"
	parent := "u-parent"

	self := f.addMember(t, h1, strPtr(parent), householddomain.RoleOwner)
	child := f.addMember(t, h1, nil, householddomain.RoleChild)

	personal := f.addWishlist(t, &wishlistdomain.Wishlist{UserID: parent, HouseholdID: &h1, MemberID: &self.ID, Title: "Own"})
	kid := f.addWishlist(t, &wishlistdomain.Wishlist{UserID: parent, HouseholdID: &h1, MemberID: &child.ID, Title: "Kid"})
	unscoped := f.addWishlist(t, &wishlistdomain.Wishlist{UserID: parent, HouseholdID: &h1, Title: "Loose"})

	children, err := f.wishlists.ChildWishlists(ctx, h1, parent)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, kid.ID, children[0].ID)

	personals, err := f.wishlists.PersonalWishlists(ctx, h1, parent)
	require.NoError(t, err)
	require.Len(t, personals, 2)
	ids := []string{personals[0].ID, personals[1].ID}
	assert.ElementsMatch(t, []string{personal.ID, unscoped.ID}, ids)
}

func TestWishlistBySlugPrivacyEquivalence(t *testing.T) {
	ctx := context.Background()
	f := newWishlistFixture()

	private := f.addWishlist(t, &wishlistdomain.Wishlist{UserID: "u1", Title: "hidden", Visibility: wishlistdomain.VisibilityPrivate, ShareSlug: "secret-slug"})

	_, missingErr := f.wishlists.WishlistBySlug(ctx, "no-such-slug")
	_, privateErr := f.wishlists.WishlistBySlug(ctx, private.ShareSlug)

	assert.ErrorIs(t, missingErr, wishlistdomain.ErrWishlistNotFound)
	assert.Equal(t, missingErr, privateErr, "missing and private slugs must be indistinguishable")
}

func TestWishlistBySlugHonorsLegacyPublicFlag(t *testing.T) {
	ctx := context.Background()
	f := newWishlistFixture()

	legacy := f.addWishlist(t, &wishlistdomain.Wishlist{UserID: "u1", Title: "old", Visibility: wishlistdomain.VisibilityHousehold, IsPublic: true, ShareSlug: "legacy-slug"})

	got, err := f.wishlists.WishlistBySlug(ctx, "legacy-slug")
	require.NoError(t, err)
	assert.Equal(t, legacy.ID, got.ID)
}

func TestItemsByWishlistOldestFirst(t *testing.T) {
	ctx := context.Background()
	f := newWishlistFixture()

	first, err := f.wishlists.CreateItem(ctx, &wishlistdomain.WishlistItem{WishlistID: "w1", Name: "a"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := f.wishlists.CreateItem(ctx, &wishlistdomain.WishlistItem{WishlistID: "w1", Name: "b"})
	require.NoError(t, err)

	items, err := f.wishlists.ItemsByWishlist(ctx, "w1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
}

func TestDeleteWishlistCascadesItems(t *testing.T) {
	ctx := context.Background()
	f := newWishlistFixture()

	w := f.addWishlist(t, &wishlistdomain.Wishlist{UserID: "u1", Title: "Birthday"})
	item, err := f.wishlists.CreateItem(ctx, &wishlistdomain.WishlistItem{WishlistID: w.ID, Name: "lego"})
	require.NoError(t, err)

	require.NoError(t, f.wishlists.DeleteWishlist(ctx, w.ID))

	_, err = f.wishlists.ItemByID(ctx, item.ID)
	assert.ErrorIs(t, err, wishlistdomain.ErrItemNotFound)
}
