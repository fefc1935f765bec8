package shopping

import (
	"context"
	"strings"

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

func (s *Service) ListsByHousehold(ctx context.Context, householdID string) ([]ShoppingList, error) {
	return s.repo.ListsByHousehold(ctx, householdID)
}

func (s *Service) GetList(ctx context.Context, id string) (*ShoppingList, error) {
	return s.repo.ListByID(ctx, id)
}

func (s *Service) CreateList(ctx context.Context, list *ShoppingList) (*ShoppingList, error) {
	list.Name = strings.TrimSpace(list.Name)
	if list.Name == "" {
		return nil, ErrListNameRequired
	}
	return s.repo.CreateList(ctx, list)
}

func (s *Service) UpdateList(ctx context.Context, id string, changes repo.Changes) (*ShoppingList, error) {
	return s.repo.UpdateList(ctx, id, changes)
}

func (s *Service) DeleteList(ctx context.Context, id string) error {
	return s.repo.DeleteList(ctx, id)
}

func (s *Service) ListItems(ctx context.Context, listID string) ([]ShoppingItem, error) {
	return s.repo.ItemsByList(ctx, listID)
}

func (s *Service) AddItem(ctx context.Context, item *ShoppingItem) (*ShoppingItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return nil, ErrItemNameRequired
	}
	return s.repo.CreateItem(ctx, item)
}

func (s *Service) AddItems(ctx context.Context, items []*ShoppingItem) ([]ShoppingItem, error) {
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			return nil, ErrItemNameRequired
		}
	}
	return s.repo.CreateItems(ctx, items)
}

func (s *Service) ToggleItem(ctx context.Context, id string, checked bool) (*ShoppingItem, error) {
	return s.repo.UpdateItem(ctx, id, repo.Changes{"is_checked": checked})
}

func (s *Service) UpdateItem(ctx context.Context, id string, changes repo.Changes) (*ShoppingItem, error) {
	return s.repo.UpdateItem(ctx, id, changes)
}

func (s *Service) DeleteItem(ctx context.Context, id string) error {
	return s.repo.DeleteItem(ctx, id)
}
