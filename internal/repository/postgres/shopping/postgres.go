package shopping

import (
	"context"

	"gorm.io/gorm"

	"household-app-go/internal/apperr"
	shoppingdomain "household-app-go/internal/domain/shopping"
	"household-app-go/internal/repo"
	"household-app-go/internal/repo/gormstore"
)

type PostgresRepository struct {
	db    *gorm.DB
	lists *gormstore.Repository[shoppingdomain.ShoppingList, *shoppingdomain.ShoppingList]
	items *gormstore.Repository[shoppingdomain.ShoppingItem, *shoppingdomain.ShoppingItem]
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{
		db:    db,
		lists: gormstore.New[shoppingdomain.ShoppingList, *shoppingdomain.ShoppingList](db),
		items: gormstore.New[shoppingdomain.ShoppingItem, *shoppingdomain.ShoppingItem](db),
	}
}

func (r *PostgresRepository) ListsByHousehold(ctx context.Context, householdID string) ([]shoppingdomain.ShoppingList, error) {
	var lists []shoppingdomain.ShoppingList
	err := r.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("created_at desc").
		Find(&lists).Error
	if err != nil {
		return nil, apperr.Normalize(err)
	}
	return lists, nil
}

func (r *PostgresRepository) ListByID(ctx context.Context, id string) (*shoppingdomain.ShoppingList, error) {
	list, err := r.lists.FindByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, shoppingdomain.ErrListNotFound
	}
	return list, err
}

func (r *PostgresRepository) CreateList(ctx context.Context, list *shoppingdomain.ShoppingList) (*shoppingdomain.ShoppingList, error) {
	return r.lists.Create(ctx, list)
}

func (r *PostgresRepository) UpdateList(ctx context.Context, id string, changes repo.Changes) (*shoppingdomain.ShoppingList, error) {
	list, err := r.lists.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, shoppingdomain.ErrListNotFound
	}
	return list, err
}

func (r *PostgresRepository) DeleteList(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&shoppingdomain.ShoppingItem{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&shoppingdomain.ShoppingList{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shoppingdomain.ErrListNotFound
		}
		return nil
	})
	if err != nil {
		return apperr.Normalize(err)
	}
	return nil
}

func (r *PostgresRepository) ItemsByList(ctx context.Context, listID string) ([]shoppingdomain.ShoppingItem, error) {
	var items []shoppingdomain.ShoppingItem
	err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return nil, apperr.Normalize(err)
	}
	return items, nil
}

func (r *PostgresRepository) ItemByID(ctx context.Context, id string) (*shoppingdomain.ShoppingItem, error) {
	item, err := r.items.FindByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, shoppingdomain.ErrItemNotFound
	}
	return item, err
}

func (r *PostgresRepository) CreateItem(ctx context.Context, item *shoppingdomain.ShoppingItem) (*shoppingdomain.ShoppingItem, error) {
	return r.items.Create(ctx, item)
}

func (r *PostgresRepository) CreateItems(ctx context.Context, items []*shoppingdomain.ShoppingItem) ([]shoppingdomain.ShoppingItem, error) {
	return r.items.CreateMany(ctx, items)
}

func (r *PostgresRepository) UpdateItem(ctx context.Context, id string, changes repo.Changes) (*shoppingdomain.ShoppingItem, error) {
	item, err := r.items.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, shoppingdomain.ErrItemNotFound
	}
	return item, err
}

func (r *PostgresRepository) DeleteItem(ctx context.Context, id string) error {
	err := r.items.Delete(ctx, id)
	if apperr.IsNotFound(err) {
		return shoppingdomain.ErrItemNotFound
	}
	return err
}
