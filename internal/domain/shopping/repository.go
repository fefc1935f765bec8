package shopping

import (
	"context"

	"household-app-go/internal/repo"
)

type Repository interface {
	// ListsByHousehold returns the household's lists, newest first.
	ListsByHousehold(ctx context.Context, householdID string) ([]ShoppingList, error)
	ListByID(ctx context.Context, id string) (*ShoppingList, error)
	CreateList(ctx context.Context, list *ShoppingList) (*ShoppingList, error)
	UpdateList(ctx context.Context, id string, changes repo.Changes) (*ShoppingList, error)
	// DeleteList hard-deletes the list and cascades its items.
	DeleteList(ctx context.Context, id string) error

	// ItemsByList returns a list's items oldest first.
	ItemsByList(ctx context.Context, listID string) ([]ShoppingItem, error)
	ItemByID(ctx context.Context, id string) (*ShoppingItem, error)
	CreateItem(ctx context.Context, item *ShoppingItem) (*ShoppingItem, error)
	CreateItems(ctx context.Context, items []*ShoppingItem) ([]ShoppingItem, error)
	UpdateItem(ctx context.Context, id string, changes repo.Changes) (*ShoppingItem, error)
	DeleteItem(ctx context.Context, id string) error
}
