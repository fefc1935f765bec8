package wishlist

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"household-app-go/internal/repo"
	"household-app-go/pkg/logger"
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) WishlistsForUser(ctx context.Context, userID string) ([]Wishlist, error) {
	return s.repo.WishlistsForUser(ctx, userID)
}

func (s *Service) GetWishlist(ctx context.Context, id string) (*Wishlist, error) {
	return s.repo.WishlistByID(ctx, id)
}

func (s *Service) GetWishlistBySlug(ctx context.Context, slug string) (*Wishlist, error) {
	return s.repo.WishlistBySlug(ctx, slug)
}

func (s *Service) WishlistsByHousehold(ctx context.Context, householdID, excludeUserID string) ([]Wishlist, error) {
	return s.repo.WishlistsByHousehold(ctx, householdID, excludeUserID)
}

func (s *Service) ChildWishlists(ctx context.Context, householdID, userID string) ([]Wishlist, error) {
	return s.repo.ChildWishlists(ctx, householdID, userID)
}

func (s *Service) PersonalWishlists(ctx context.Context, householdID, userID string) ([]Wishlist, error) {
	return s.repo.PersonalWishlists(ctx, householdID, userID)
}

func (s *Service) CreateWishlist(ctx context.Context, w *Wishlist) (*Wishlist, error) {
	w.Title = strings.TrimSpace(w.Title)
	if w.Title == "" {
		return nil, ErrTitleRequired
	}
	if w.Visibility == "" {
		w.Visibility = VisibilityPrivate
	}
	if !ValidVisibility(w.Visibility) {
		return nil, ErrInvalidVisibility
	}
	w.IsPublic = w.Visibility == VisibilityPublic
	if w.ShareSlug == "" {
		w.ShareSlug = newShareSlug()
	}
	return s.repo.CreateWishlist(ctx, w)
}

func (s *Service) UpdateWishlist(ctx context.Context, id string, changes repo.Changes) (*Wishlist, error) {
	if visibility, ok := changes["visibility"].(string); ok {
		if !ValidVisibility(visibility) {
			return nil, ErrInvalidVisibility
		}
		changes["is_public"] = visibility == VisibilityPublic
	}
	return s.repo.UpdateWishlist(ctx, id, changes)
}

func (s *Service) DeleteWishlist(ctx context.Context, id string) error {
	return s.repo.DeleteWishlist(ctx, id)
}

func (s *Service) ListItems(ctx context.Context, wishlistID string) ([]WishlistItem, error) {
	return s.repo.ItemsByWishlist(ctx, wishlistID)
}

func (s *Service) GetItem(ctx context.Context, id string) (*WishlistItem, error) {
	return s.repo.ItemByID(ctx, id)
}

func (s *Service) AddItem(ctx context.Context, item *WishlistItem) (*WishlistItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return nil, ErrItemNameRequired
	}
	return s.repo.CreateItem(ctx, item)
}

func (s *Service) AddItems(ctx context.Context, items []*WishlistItem) ([]WishlistItem, error) {
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			return nil, ErrItemNameRequired
		}
	}
	return s.repo.CreateItems(ctx, items)
}

func (s *Service) UpdateItem(ctx context.Context, id string, changes repo.Changes) (*WishlistItem, error) {
	return s.repo.UpdateItem(ctx, id, changes)
}

func (s *Service) DeleteItem(ctx context.Context, id string) error {
	return s.repo.DeleteItem(ctx, id)
}

// ToggleReservation flips an item's reservation state. Callers never
// name the target state; the current state decides the transition.
//
// Reserving requires a non-empty email, stored as the release secret.
// Releasing requires the exact stored email; on mismatch nothing
// changes. There is no ownership bypass: the email is the only
// capability token.
func (s *Service) ToggleReservation(ctx context.Context, itemID, email, name string) (*WishlistItem, error) {
	item, err := s.repo.ItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	email = strings.TrimSpace(email)

	if !item.IsReserved {
		if email == "" {
			return nil, ErrReservationEmail
		}
		changes := repo.Changes{
			"is_reserved":       true,
			"reserved_by_email": email,
			"reserved_at":       time.Now().UTC(),
		}
		if name = strings.TrimSpace(name); name != "" {
			changes["reserved_by_name"] = name
		}
		return s.repo.UpdateItem(ctx, itemID, changes)
	}

	if item.ReservedByEmail == nil || email == "" || email != *item.ReservedByEmail {
		return nil, ErrReservationMismatch
	}
	return s.repo.UpdateItem(ctx, itemID, repo.Changes{
		"is_reserved":       false,
		"reserved_by_email": nil,
		"reserved_by_name":  nil,
		"reserved_at":       nil,
	})
}

func newShareSlug() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
