package localstore

import (
	"context"
	"sort"

	"household-app-go/internal/apperr"
	householddomain "household-app-go/internal/domain/household"
	wishlistdomain "household-app-go/internal/domain/wishlist"
	"household-app-go/internal/kvstore"
	"household-app-go/internal/repo"
	"household-app-go/internal/repo/local"
)

const (
	tableWishlists     = "wishlists"
	tableWishlistItems = "wishlist_items"
)

type WishlistRepository struct {
	wishlists *local.Engine[wishlistdomain.Wishlist, *wishlistdomain.Wishlist]
	items     *local.Engine[wishlistdomain.WishlistItem, *wishlistdomain.WishlistItem]
	// members aliases the household repository's table; visibility rules
	// need member roles and the caller's member identity.
	members *local.Engine[householddomain.Member, *householddomain.Member]
}

func NewWishlistRepository(store kvstore.Store) *WishlistRepository {
	return &WishlistRepository{
		wishlists: local.NewEngine[wishlistdomain.Wishlist, *wishlistdomain.Wishlist](store, tableWishlists),
		items:     local.NewEngine[wishlistdomain.WishlistItem, *wishlistdomain.WishlistItem](store, tableWishlistItems),
		members:   local.NewEngine[householddomain.Member, *householddomain.Member](store, tableMembers),
	}
}

func (r *WishlistRepository) WishlistsForUser(ctx context.Context, userID string) ([]wishlistdomain.Wishlist, error) {
	wishlists, err := r.wishlists.FindAll(ctx, repo.Filter{"user_id": userID})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(wishlists)
	return wishlists, nil
}

func (r *WishlistRepository) WishlistByID(ctx context.Context, id string) (*wishlistdomain.Wishlist, error) {
	w, err := r.wishlists.FindByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, wishlistdomain.ErrWishlistNotFound
	}
	return w, err
}

func (r *WishlistRepository) WishlistBySlug(ctx context.Context, slug string) (*wishlistdomain.Wishlist, error) {
	wishlists, err := r.wishlists.FindAll(ctx, repo.Filter{"share_slug": slug})
	if err != nil {
		return nil, err
	}
	// A private wishlist behind a known slug is indistinguishable from a
	// missing one.
	for i := range wishlists {
		if wishlists[i].Public() {
			return &wishlists[i], nil
		}
	}
	return nil, wishlistdomain.ErrWishlistNotFound
}

func (r *WishlistRepository) WishlistsByHousehold(ctx context.Context, householdID, excludeUserID string) ([]wishlistdomain.Wishlist, error) {
	wishlists, err := r.wishlists.FindAll(ctx, repo.Filter{"household_id": householdID})
	if err != nil {
		return nil, err
	}
	roles, callerMemberID, err := r.memberIndex(ctx, householdID, excludeUserID)
	if err != nil {
		return nil, err
	}

	result := make([]wishlistdomain.Wishlist, 0, len(wishlists))
	for _, w := range wishlists {
		if w.Visibility != wishlistdomain.VisibilityHousehold && w.Visibility != wishlistdomain.VisibilityPublic {
			continue
		}
		// Child-member wishlists surface even to their creator: a parent
		// authors them on the child's behalf.
		if w.MemberID != nil && roles[*w.MemberID] == householddomain.RoleChild {
			result = append(result, w)
			continue
		}
		if ownedByCaller(w, callerMemberID, excludeUserID) {
			continue
		}
		result = append(result, w)
	}
	sortNewestFirst(result)
	return result, nil
}

func (r *WishlistRepository) ChildWishlists(ctx context.Context, householdID, userID string) ([]wishlistdomain.Wishlist, error) {
	return r.partitionByRole(ctx, householdID, userID, true)
}

func (r *WishlistRepository) PersonalWishlists(ctx context.Context, householdID, userID string) ([]wishlistdomain.Wishlist, error) {
	return r.partitionByRole(ctx, householdID, userID, false)
}

func (r *WishlistRepository) partitionByRole(ctx context.Context, householdID, userID string, childOnly bool) ([]wishlistdomain.Wishlist, error) {
	wishlists, err := r.wishlists.FindAll(ctx, repo.Filter{"household_id": householdID, "user_id": userID})
	if err != nil {
		return nil, err
	}
	roles, _, err := r.memberIndex(ctx, householdID, "")
	if err != nil {
		return nil, err
	}

	result := make([]wishlistdomain.Wishlist, 0, len(wishlists))
	for _, w := range wishlists {
		isChild := w.MemberID != nil && roles[*w.MemberID] == householddomain.RoleChild
		if isChild == childOnly {
			result = append(result, w)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func (r *WishlistRepository) CreateWishlist(ctx context.Context, w *wishlistdomain.Wishlist) (*wishlistdomain.Wishlist, error) {
	return r.wishlists.Create(ctx, w)
}

func (r *WishlistRepository) UpdateWishlist(ctx context.Context, id string, changes repo.Changes) (*wishlistdomain.Wishlist, error) {
	w, err := r.wishlists.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, wishlistdomain.ErrWishlistNotFound
	}
	return w, err
}

func (r *WishlistRepository) DeleteWishlist(ctx context.Context, id string) error {
	if err := r.wishlists.Delete(ctx, id); err != nil {
		if apperr.IsNotFound(err) {
			return wishlistdomain.ErrWishlistNotFound
		}
		return err
	}

	items, err := r.items.FindAll(ctx, repo.Filter{"wishlist_id": id})
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := r.items.Delete(ctx, item.ID); err != nil && !apperr.IsNotFound(err) {
			return err
		}
	}
	return nil
}

func (r *WishlistRepository) ItemsByWishlist(ctx context.Context, wishlistID string) ([]wishlistdomain.WishlistItem, error) {
	items, err := r.items.FindAll(ctx, repo.Filter{"wishlist_id": wishlistID})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (r *WishlistRepository) ItemByID(ctx context.Context, id string) (*wishlistdomain.WishlistItem, error) {
	item, err := r.items.FindByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, wishlistdomain.ErrItemNotFound
	}
	return item, err
}

func (r *WishlistRepository) CreateItem(ctx context.Context, item *wishlistdomain.WishlistItem) (*wishlistdomain.WishlistItem, error) {
	return r.items.Create(ctx, item)
}

func (r *WishlistRepository) CreateItems(ctx context.Context, items []*wishlistdomain.WishlistItem) ([]wishlistdomain.WishlistItem, error) {
	return r.items.CreateMany(ctx, items)
}

func (r *WishlistRepository) UpdateItem(ctx context.Context, id string, changes repo.Changes) (*wishlistdomain.WishlistItem, error) {
	item, err := r.items.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, wishlistdomain.ErrItemNotFound
	}
	return item, err
}

func (r *WishlistRepository) DeleteItem(ctx context.Context, id string) error {
	err := r.items.Delete(ctx, id)
	if apperr.IsNotFound(err) {
		return wishlistdomain.ErrItemNotFound
	}
	return err
}

// memberIndex loads the household's member roles and, when userID is
// given, the id of the active member row linking that user.
func (r *WishlistRepository) memberIndex(ctx context.Context, householdID, userID string) (map[string]string, string, error) {
	members, err := r.members.FindAll(ctx, repo.Filter{"household_id": householdID})
	if err != nil {
		return nil, "", err
	}

	roles := make(map[string]string, len(members))
	callerMemberID := ""
	for _, m := range members {
		roles[m.ID] = m.Role
		if userID != "" && m.IsActive && m.UserID != nil && *m.UserID == userID {
			callerMemberID = m.ID
		}
	}
	return roles, callerMemberID, nil
}

// ownedByCaller compares member identities, falling back to the user id
// only for wishlists that carry no member identity at all.
func ownedByCaller(w wishlistdomain.Wishlist, callerMemberID, userID string) bool {
	if w.MemberID != nil {
		return callerMemberID != "" && *w.MemberID == callerMemberID
	}
	return w.UserID == userID
}

func sortNewestFirst(wishlists []wishlistdomain.Wishlist) {
	sort.SliceStable(wishlists, func(i, j int) bool {
		return wishlists[i].CreatedAt.After(wishlists[j].CreatedAt)
	})
}
