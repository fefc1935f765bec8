package gormstore

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"household-app-go/internal/apperr"
	"household-app-go/internal/repo"
)

// Repository implements the generic repository against the remote
// relational backend via gorm. Backend errors never leave this package
// uncoded; everything is passed through apperr.Normalize.
type Repository[T any, PT interface {
	*T
	repo.Record
}] struct {
	db *gorm.DB
}

func New[T any, PT interface {
	*T
	repo.Record
}](db *gorm.DB) *Repository[T, PT] {
	return &Repository[T, PT]{db: db}
}

// DB exposes the underlying handle for feature repositories that need
// joins the generic surface cannot express.
func (r *Repository[T, PT]) DB() *gorm.DB {
	return r.db
}

func (r *Repository[T, PT]) FindAll(ctx context.Context, filter repo.Filter) ([]T, error) {
	query := r.db.WithContext(ctx)
	if len(filter) > 0 {
		query = query.Where(map[string]any(filter))
	}

	var records []T
	if err := query.Find(&records).Error; err != nil {
		return nil, apperr.Normalize(err)
	}
	return records, nil
}

func (r *Repository[T, PT]) FindByID(ctx context.Context, id string) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, apperr.Normalize(err)
	}
	return &record, nil
}

func (r *Repository[T, PT]) Create(ctx context.Context, record *T) (*T, error) {
	if PT(record).RecordID() == "" {
		PT(record).SetRecordID(uuid.NewString())
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, apperr.Normalize(err)
	}
	return record, nil
}

func (r *Repository[T, PT]) CreateMany(ctx context.Context, records []*T) ([]T, error) {
	if len(records) == 0 {
		return nil, nil
	}
	for _, record := range records {
		if PT(record).RecordID() == "" {
			PT(record).SetRecordID(uuid.NewString())
		}
	}
	if err := r.db.WithContext(ctx).Create(records).Error; err != nil {
		return nil, apperr.Normalize(err)
	}

	created := make([]T, 0, len(records))
	for _, record := range records {
		created = append(created, *record)
	}
	return created, nil
}

func (r *Repository[T, PT]) Update(ctx context.Context, id string, changes repo.Changes) (*T, error) {
	delete(changes, "id")
	delete(changes, "created_at")

	var model T
	result := r.db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(map[string]any(changes))
	if result.Error != nil {
		return nil, apperr.Normalize(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperr.NotFound("record not found")
	}
	return r.FindByID(ctx, id)
}

func (r *Repository[T, PT]) Upsert(ctx context.Context, record *T) (*T, error) {
	id := PT(record).RecordID()
	if id == "" {
		return r.Create(ctx, record)
	}

	if _, err := r.FindByID(ctx, id); apperr.IsNotFound(err) {
		return r.Create(ctx, record)
	} else if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, apperr.Normalize(err)
	}
	return r.FindByID(ctx, id)
}

func (r *Repository[T, PT]) Delete(ctx context.Context, id string) error {
	var model T
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model)
	if result.Error != nil {
		return apperr.Normalize(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("record not found")
	}
	return nil
}
