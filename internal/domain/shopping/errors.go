package shopping

import "household-app-go/internal/apperr"

var (
	ErrListNotFound     = apperr.NotFound("shopping list not found")
	ErrItemNotFound     = apperr.NotFound("shopping item not found")
	ErrListNameRequired = apperr.Validation("list name is required")
	ErrItemNameRequired = apperr.Validation("item name is required")
)
