package wishlist

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"household-app-go/internal/repo"
	"household-app-go/pkg/logger"
)

type fakeWishlistRepo struct {
	wishlists map[string]*Wishlist
	items     map[string]*WishlistItem
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{
		wishlists: make(map[string]*Wishlist),
		items:     make(map[string]*WishlistItem),
	}
}

func (r *fakeWishlistRepo) WishlistsForUser(_ context.Context, userID string) ([]Wishlist, error) {
	var result []Wishlist
	for _, w := range r.wishlists {
		if w.UserID == userID {
			result = append(result, *w)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeWishlistRepo) WishlistByID(_ context.Context, id string) (*Wishlist, error) {
	w, ok := r.wishlists[id]
	if !ok {
		return nil, ErrWishlistNotFound
	}
	copied := *w
	return &copied, nil
}

func (r *fakeWishlistRepo) WishlistBySlug(_ context.Context, slug string) (*Wishlist, error) {
	for _, w := range r.wishlists {
		if w.ShareSlug == slug && w.Public() {
			copied := *w
			return &copied, nil
		}
	}
	return nil, ErrWishlistNotFound
}

func (r *fakeWishlistRepo) WishlistsByHousehold(_ context.Context, _, _ string) ([]Wishlist, error) {
	return nil, nil
}

func (r *fakeWishlistRepo) ChildWishlists(_ context.Context, _, _ string) ([]Wishlist, error) {
	return nil, nil
}

func (r *fakeWishlistRepo) PersonalWishlists(_ context.Context, _, _ string) ([]Wishlist, error) {
	return nil, nil
}

func (r *fakeWishlistRepo) CreateWishlist(_ context.Context, w *Wishlist) (*Wishlist, error) {
	w.ID = uuid.NewString()
	w.CreatedAt = time.Now().UTC()
	copied := *w
	r.wishlists[w.ID] = &copied
	return w, nil
}

func (r *fakeWishlistRepo) UpdateWishlist(_ context.Context, id string, changes repo.Changes) (*Wishlist, error) {
	w, ok := r.wishlists[id]
	if !ok {
		return nil, ErrWishlistNotFound
	}
	if title, ok := changes["title"].(string); ok {
		w.Title = title
	}
	if visibility, ok := changes["visibility"].(string); ok {
		w.Visibility = visibility
	}
	if isPublic, ok := changes["is_public"].(bool); ok {
		w.IsPublic = isPublic
	}
	copied := *w
	return &copied, nil
}

func (r *fakeWishlistRepo) DeleteWishlist(_ context.Context, id string) error {
	if _, ok := r.wishlists[id]; !ok {
		return ErrWishlistNotFound
	}
	delete(r.wishlists, id)
	for itemID, item := range r.items {
		if item.WishlistID == id {
			delete(r.items, itemID)
		}
	}
	return nil
}

func (r *fakeWishlistRepo) ItemsByWishlist(_ context.Context, wishlistID string) ([]WishlistItem, error) {
	var result []WishlistItem
	for _, item := range r.items {
		if item.WishlistID == wishlistID {
			result = append(result, *item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeWishlistRepo) ItemByID(_ context.Context, id string) (*WishlistItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeWishlistRepo) CreateItem(_ context.Context, item *WishlistItem) (*WishlistItem, error) {
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now().UTC()
	copied := *item
	r.items[item.ID] = &copied
	return item, nil
}

func (r *fakeWishlistRepo) CreateItems(ctx context.Context, items []*WishlistItem) ([]WishlistItem, error) {
	created := make([]WishlistItem, 0, len(items))
	for _, item := range items {
		saved, err := r.CreateItem(ctx, item)
		if err != nil {
			return nil, err
		}
		created = append(created, *saved)
	}
	return created, nil
}

func (r *fakeWishlistRepo) UpdateItem(_ context.Context, id string, changes repo.Changes) (*WishlistItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	for key, value := range changes {
		switch key {
		case "is_reserved":
			item.IsReserved = value.(bool)
		case "reserved_by_email":
			item.ReservedByEmail = optionalString(value)
		case "reserved_by_name":
			item.ReservedByName = optionalString(value)
		case "reserved_at":
			if value == nil {
				item.ReservedAt = nil
			} else {
				at := value.(time.Time)
				item.ReservedAt = &at
			}
		case "name":
			item.Name = value.(string)
		}
	}
	copied := *item
	return &copied, nil
}

func (r *fakeWishlistRepo) DeleteItem(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func optionalString(value any) *string {
	if value == nil {
		return nil
	}
	s := value.(string)
	return &s
}

func newTestService(repo Repository) *Service {
	return NewService(repo, logger.NewFromEnv())
}

func seedItem(t *testing.T, fake *fakeWishlistRepo) *WishlistItem {
	t.Helper()
	item, err := fake.CreateItem(context.Background(), &WishlistItem{WishlistID: "w1", Name: "lego set"})
	require.NoError(t, err)
	return item
}

func TestToggleReservationRequiresEmail(t *testing.T) {
	ctx := context.Background()
	fake := newFakeWishlistRepo()
	item := seedItem(t, fake)
	svc := newTestService(fake)

	_, err := svc.ToggleReservation(ctx, item.ID, "   ", "")

	assert.ErrorIs(t, err, ErrReservationEmail)
}

func TestToggleReservationCycle(t *testing.T) {
	ctx := context.Background()
	fake := newFakeWishlistRepo()
	item := seedItem(t, fake)
	svc := newTestService(fake)

	reserved, err := svc.ToggleReservation(ctx, item.ID, "a@b.com", "Aunt A")
	require.NoError(t, err)
	assert.True(t, reserved.IsReserved)
	require.NotNil(t, reserved.ReservedByEmail)
	assert.Equal(t, "a@b.com", *reserved.ReservedByEmail)
	require.NotNil(t, reserved.ReservedByName)
	assert.Equal(t, "Aunt A", *reserved.ReservedByName)
	assert.NotNil(t, reserved.ReservedAt)

	released, err := svc.ToggleReservation(ctx, item.ID, "a@b.com", "")
	require.NoError(t, err)
	assert.False(t, released.IsReserved)
	assert.Nil(t, released.ReservedByEmail)
	assert.Nil(t, released.ReservedByName)
	assert.Nil(t, released.ReservedAt)

	again, err := svc.ToggleReservation(ctx, item.ID, "a@b.com", "Aunt A")
	require.NoError(t, err)
	assert.True(t, again.IsReserved)
	assert.Equal(t, "a@b.com", *again.ReservedByEmail)
}

func TestToggleReservationRejectsWrongEmail(t *testing.T) {
	ctx := context.Background()
	fake := newFakeWishlistRepo()
	item := seedItem(t, fake)
	svc := newTestService(fake)

	_, err := svc.ToggleReservation(ctx, item.ID, "a@b.com", "")
	require.NoError(t, err)

	_, err = svc.ToggleReservation(ctx, item.ID, "b@c.com", "")
	assert.ErrorIs(t, err, ErrReservationMismatch)

	kept, err := fake.ItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, kept.IsReserved)
	require.NotNil(t, kept.ReservedByEmail)
	assert.Equal(t, "a@b.com", *kept.ReservedByEmail)
}

func TestToggleReservationRejectsOmittedEmailOnRelease(t *testing.T) {
	ctx := context.Background()
	fake := newFakeWishlistRepo()
	item := seedItem(t, fake)
	svc := newTestService(fake)

	_, err := svc.ToggleReservation(ctx, item.ID, "a@b.com", "")
	require.NoError(t, err)

	_, err = svc.ToggleReservation(ctx, item.ID, "", "")
	assert.ErrorIs(t, err, ErrReservationMismatch)
}

func TestCreateWishlistDefaultsAndSlug(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeWishlistRepo())

	created, err := svc.CreateWishlist(ctx, &Wishlist{UserID: "u1", Title: "Birthday"})
	require.NoError(t, err)
	assert.Equal(t, VisibilityPrivate, created.Visibility)
	assert.False(t, created.IsPublic)
	assert.NotEmpty(t, created.ShareSlug)
}

func TestCreateWishlistSyncsLegacyPublicFlag(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeWishlistRepo())

	created, err := svc.CreateWishlist(ctx, &Wishlist{UserID: "u1", Title: "Open", Visibility: VisibilityPublic})
	require.NoError(t, err)

	assert.True(t, created.IsPublic)
}

func TestCreateWishlistValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeWishlistRepo())

	_, err := svc.CreateWishlist(ctx, &Wishlist{UserID: "u1", Title: " "})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.CreateWishlist(ctx, &Wishlist{UserID: "u1", Title: "x", Visibility: "secret"})
	assert.ErrorIs(t, err, ErrInvalidVisibility)
}

func TestUpdateWishlistVisibilitySyncsLegacyFlag(t *testing.T) {
	ctx := context.Background()
	fake := newFakeWishlistRepo()
	svc := newTestService(fake)

	created, err := svc.CreateWishlist(ctx, &Wishlist{UserID: "u1", Title: "Birthday"})
	require.NoError(t, err)

	updated, err := svc.UpdateWishlist(ctx, created.ID, repo.Changes{"visibility": VisibilityPublic})
	require.NoError(t, err)
	assert.True(t, updated.IsPublic)

	updated, err = svc.UpdateWishlist(ctx, created.ID, repo.Changes{"visibility": VisibilityHousehold})
	require.NoError(t, err)
	assert.False(t, updated.IsPublic)
}
