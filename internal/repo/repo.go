package repo

import "context"

// Filter is an equality match on column names. Keys are the snake_case
// column names, which are also the records' JSON field names, so the
// same filter works against both backends.
type Filter map[string]any

// Changes is a merge patch applied by Update. Identity and creation
// timestamp are never touched regardless of what the patch contains.
type Changes map[string]any

// Repository is the uniform CRUD surface implemented by both the
// remote (gorm) and local (key-value) engines. Features are written
// against this interface and its per-feature specializations, never
// against a concrete backend.
type Repository[T any, PT interface {
	*T
	Record
}] interface {
	FindAll(ctx context.Context, filter Filter) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, record *T) (*T, error)
	CreateMany(ctx context.Context, records []*T) ([]T, error)
	Update(ctx context.Context, id string, changes Changes) (*T, error)
	Upsert(ctx context.Context, record *T) (*T, error)
	Delete(ctx context.Context, id string) error
}
