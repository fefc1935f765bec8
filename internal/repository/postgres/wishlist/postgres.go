package wishlist

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"household-app-go/internal/apperr"
	wishlistdomain "household-app-go/internal/domain/wishlist"
	"household-app-go/internal/repo"
	"household-app-go/internal/repo/gormstore"
)

// nilUUID stands in for "caller has no member row" in SQL comparisons,
// where an empty string would not cast to uuid.
const nilUUID = "00000000-0000-0000-0000-000000000000"

type PostgresRepository struct {
	db        *gorm.DB
	wishlists *gormstore.Repository[wishlistdomain.Wishlist, *wishlistdomain.Wishlist]
	items     *gormstore.Repository[wishlistdomain.WishlistItem, *wishlistdomain.WishlistItem]
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{
		db:        db,
		wishlists: gormstore.New[wishlistdomain.Wishlist, *wishlistdomain.Wishlist](db),
		items:     gormstore.New[wishlistdomain.WishlistItem, *wishlistdomain.WishlistItem](db),
	}
}

func (r *PostgresRepository) WishlistsForUser(ctx context.Context, userID string) ([]wishlistdomain.Wishlist, error) {
	var wishlists []wishlistdomain.Wishlist
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&wishlists).Error
	if err != nil {
		return nil, apperr.Normalize(err)
	}
	return wishlists, nil
}

func (r *PostgresRepository) WishlistByID(ctx context.Context, id string) (*wishlistdomain.Wishlist, error) {
	w, err := r.wishlists.FindByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, wishlistdomain.ErrWishlistNotFound
	}
	return w, err
}

func (r *PostgresRepository) WishlistBySlug(ctx context.Context, slug string) (*wishlistdomain.Wishlist, error) {
	var wishlist wishlistdomain.Wishlist
	err := r.db.WithContext(ctx).
		Where("share_slug = ? AND (visibility = ? OR is_public = true)", slug, wishlistdomain.VisibilityPublic).
		First(&wishlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// same answer for "no such slug" and "slug exists but not public"
		return nil, wishlistdomain.ErrWishlistNotFound
	}
	if err != nil {
		return nil, apperr.Normalize(err)
	}
	return &wishlist, nil
}

func (r *PostgresRepository) WishlistsByHousehold(ctx context.Context, householdID, excludeUserID string) ([]wishlistdomain.Wishlist, error) {
	callerMemberID, err := r.callerMemberID(ctx, householdID, excludeUserID)
	if err != nil {
		return nil, err
	}

	var wishlists []wishlistdomain.Wishlist
	err = r.db.WithContext(ctx).
		Table("wishlists").
		Select("wishlists.*").
		Joins("left join members on members.id = wishlists.member_id").
		Where("wishlists.household_id = ?", householdID).
		Where("wishlists.visibility IN ?", []string{wishlistdomain.VisibilityHousehold, wishlistdomain.VisibilityPublic}).
		Where(`coalesce(members.role, '') = 'child'
			OR NOT (
				(wishlists.member_id IS NOT NULL AND wishlists.member_id = ?)
				OR (wishlists.member_id IS NULL AND wishlists.user_id = ?)
			)`, callerMemberID, excludeUserID).
		Order("wishlists.created_at desc").
		Find(&wishlists).Error
	if err != nil {
		return nil, apperr.Normalize(err)
	}
	return wishlists, nil
}

func (r *PostgresRepository) ChildWishlists(ctx context.Context, householdID, userID string) ([]wishlistdomain.Wishlist, error) {
	return r.partitionByRole(ctx, householdID, userID, true)
}

func (r *PostgresRepository) PersonalWishlists(ctx context.Context, householdID, userID string) ([]wishlistdomain.Wishlist, error) {
	return r.partitionByRole(ctx, householdID, userID, false)
}

func (r *PostgresRepository) partitionByRole(ctx context.Context, householdID, userID string, childOnly bool) ([]wishlistdomain.Wishlist, error) {
	query := r.db.WithContext(ctx).
		Table("wishlists").
		Select("wishlists.*").
		Joins("left join members on members.id = wishlists.member_id").
		Where("wishlists.household_id = ? AND wishlists.user_id = ?", householdID, userID).
		Order("wishlists.created_at desc")
	if childOnly {
		query = query.Where("members.role = 'child'")
	} else {
		query = query.Where("wishlists.member_id IS NULL OR coalesce(members.role, '') <> 'child'")
	}

	var wishlists []wishlistdomain.Wishlist
	if err := query.Find(&wishlists).Error; err != nil {
		return nil, apperr.Normalize(err)
	}
	return wishlists, nil
}

func (r *PostgresRepository) CreateWishlist(ctx context.Context, w *wishlistdomain.Wishlist) (*wishlistdomain.Wishlist, error) {
	return r.wishlists.Create(ctx, w)
}

func (r *PostgresRepository) UpdateWishlist(ctx context.Context, id string, changes repo.Changes) (*wishlistdomain.Wishlist, error) {
	w, err := r.wishlists.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, wishlistdomain.ErrWishlistNotFound
	}
	return w, err
}

func (r *PostgresRepository) DeleteWishlist(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wishlist_id = ?", id).Delete(&wishlistdomain.WishlistItem{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&wishlistdomain.Wishlist{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return wishlistdomain.ErrWishlistNotFound
		}
		return nil
	})
	if err != nil {
		return apperr.Normalize(err)
	}
	return nil
}

func (r *PostgresRepository) ItemsByWishlist(ctx context.Context, wishlistID string) ([]wishlistdomain.WishlistItem, error) {
	var items []wishlistdomain.WishlistItem
	err := r.db.WithContext(ctx).
		Where("wishlist_id = ?", wishlistID).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return nil, apperr.Normalize(err)
	}
	return items, nil
}

func (r *PostgresRepository) ItemByID(ctx context.Context, id string) (*wishlistdomain.WishlistItem, error) {
	item, err := r.items.FindByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, wishlistdomain.ErrItemNotFound
	}
	return item, err
}

func (r *PostgresRepository) CreateItem(ctx context.Context, item *wishlistdomain.WishlistItem) (*wishlistdomain.WishlistItem, error) {
	return r.items.Create(ctx, item)
}

func (r *PostgresRepository) CreateItems(ctx context.Context, items []*wishlistdomain.WishlistItem) ([]wishlistdomain.WishlistItem, error) {
	return r.items.CreateMany(ctx, items)
}

func (r *PostgresRepository) UpdateItem(ctx context.Context, id string, changes repo.Changes) (*wishlistdomain.WishlistItem, error) {
	item, err := r.items.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, wishlistdomain.ErrItemNotFound
	}
	return item, err
}

func (r *PostgresRepository) DeleteItem(ctx context.Context, id string) error {
	err := r.items.Delete(ctx, id)
	if apperr.IsNotFound(err) {
		return wishlistdomain.ErrItemNotFound
	}
	return err
}

func (r *PostgresRepository) callerMemberID(ctx context.Context, householdID, userID string) (string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("members").
		Where("household_id = ? AND user_id = ? AND is_active = true", householdID, userID).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return "", apperr.Normalize(err)
	}
	if len(ids) == 0 {
		return nilUUID, nil
	}
	return ids[0], nil
}
