package wishlist

import (
	"context"

	"household-app-go/internal/repo"
)

// Repository is implemented once against postgres and once against the
// local store engine; the visibility and membership logic must match
// exactly between the two.
type Repository interface {
	// WishlistsForUser returns the user's own wishlists, newest first.
	WishlistsForUser(ctx context.Context, userID string) ([]Wishlist, error)
	WishlistByID(ctx context.Context, id string) (*Wishlist, error)
	// WishlistBySlug resolves a share slug for public wishlists only.
	// Private or household visibility yields the same not-found error as
	// a slug that does not exist.
	WishlistBySlug(ctx context.Context, slug string) (*Wishlist, error)
	// WishlistsByHousehold lists wishlists visible to other household
	// members: visibility household or public, excluding those whose
	// member identity belongs to the excluded user, except child-member
	// wishlists which stay visible to their creator. Newest first.
	WishlistsByHousehold(ctx context.Context, householdID, excludeUserID string) ([]Wishlist, error)
	// ChildWishlists returns the user's wishlists in a household whose
	// associated member has the child role; PersonalWishlists is the
	// complement. Newest first.
	ChildWishlists(ctx context.Context, householdID, userID string) ([]Wishlist, error)
	PersonalWishlists(ctx context.Context, householdID, userID string) ([]Wishlist, error)
	CreateWishlist(ctx context.Context, w *Wishlist) (*Wishlist, error)
	UpdateWishlist(ctx context.Context, id string, changes repo.Changes) (*Wishlist, error)
	// DeleteWishlist hard-deletes the wishlist and cascades its items.
	DeleteWishlist(ctx context.Context, id string) error

	// ItemsByWishlist lists a wishlist's items oldest first.
	ItemsByWishlist(ctx context.Context, wishlistID string) ([]WishlistItem, error)
	ItemByID(ctx context.Context, id string) (*WishlistItem, error)
	CreateItem(ctx context.Context, item *WishlistItem) (*WishlistItem, error)
	CreateItems(ctx context.Context, items []*WishlistItem) ([]WishlistItem, error)
	UpdateItem(ctx context.Context, id string, changes repo.Changes) (*WishlistItem, error)
	DeleteItem(ctx context.Context, id string) error
}
