package localstore

import (
	"context"
	"sort"

	"household-app-go/internal/apperr"
	shoppingdomain "household-app-go/internal/domain/shopping"
	"household-app-go/internal/kvstore"
	"household-app-go/internal/repo"
	"household-app-go/internal/repo/local"
)

const (
	tableShoppingLists = "shopping_lists"
	tableShoppingItems = "shopping_items"
)

type ShoppingRepository struct {
	lists *local.Engine[shoppingdomain.ShoppingList, *shoppingdomain.ShoppingList]
	items *local.Engine[shoppingdomain.ShoppingItem, *shoppingdomain.ShoppingItem]
}

func NewShoppingRepository(store kvstore.Store) *ShoppingRepository {
	return &ShoppingRepository{
		lists: local.NewEngine[shoppingdomain.ShoppingList, *shoppingdomain.ShoppingList](store, tableShoppingLists),
		items: local.NewEngine[shoppingdomain.ShoppingItem, *shoppingdomain.ShoppingItem](store, tableShoppingItems),
	}
}

func (r *ShoppingRepository) ListsByHousehold(ctx context.Context, householdID string) ([]shoppingdomain.ShoppingList, error) {
	lists, err := r.lists.FindAll(ctx, repo.Filter{"household_id": householdID})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(lists, func(i, j int) bool {
		return lists[i].CreatedAt.After(lists[j].CreatedAt)
	})
	return lists, nil
}

func (r *ShoppingRepository) ListByID(ctx context.Context, id string) (*shoppingdomain.ShoppingList, error) {
	list, err := r.lists.FindByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, shoppingdomain.ErrListNotFound
	}
	return list, err
}

func (r *ShoppingRepository) CreateList(ctx context.Context, list *shoppingdomain.ShoppingList) (*shoppingdomain.ShoppingList, error) {
	return r.lists.Create(ctx, list)
}

func (r *ShoppingRepository) UpdateList(ctx context.Context, id string, changes repo.Changes) (*shoppingdomain.ShoppingList, error) {
	list, err := r.lists.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, shoppingdomain.ErrListNotFound
	}
	return list, err
}

func (r *ShoppingRepository) DeleteList(ctx context.Context, id string) error {
	if err := r.lists.Delete(ctx, id); err != nil {
		if apperr.IsNotFound(err) {
			return shoppingdomain.ErrListNotFound
		}
		return err
	}

	items, err := r.items.FindAll(ctx, repo.Filter{"list_id": id})
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

func (r *ShoppingRepository) ItemsByList(ctx context.Context, listID string) ([]shoppingdomain.ShoppingItem, error) {
	items, err := r.items.FindAll(ctx, repo.Filter{"list_id": listID})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (r *ShoppingRepository) ItemByID(ctx context.Context, id string) (*shoppingdomain.ShoppingItem, error) {
	item, err := r.items.FindByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, shoppingdomain.ErrItemNotFound
	}
	return item, err
}

func (r *ShoppingRepository) CreateItem(ctx context.Context, item *shoppingdomain.ShoppingItem) (*shoppingdomain.ShoppingItem, error) {
	return r.items.Create(ctx, item)
}

func (r *ShoppingRepository) CreateItems(ctx context.Context, items []*shoppingdomain.ShoppingItem) ([]shoppingdomain.ShoppingItem, error) {
	return r.items.CreateMany(ctx, items)
}

func (r *ShoppingRepository) UpdateItem(ctx context.Context, id string, changes repo.Changes) (*shoppingdomain.ShoppingItem, error) {
	item, err := r.items.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, shoppingdomain.ErrItemNotFound
	}
	return item, err
}

func (r *ShoppingRepository) DeleteItem(ctx context.Context, id string) error {
	err := r.items.Delete(ctx, id)
	if apperr.IsNotFound(err) {
		return shoppingdomain.ErrItemNotFound
	}
	return err
}
