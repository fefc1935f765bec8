package trip

import (
	"context"

	"gorm.io/gorm"

	"household-app-go/internal/apperr"
	tripdomain "household-app-go/internal/domain/trip"
	"household-app-go/internal/repo"
	"household-app-go/internal/repo/gormstore"
)

type PostgresRepository struct {
	db        *gorm.DB
	trips     *gormstore.Repository[tripdomain.Trip, *tripdomain.Trip]
	packing   *gormstore.Repository[tripdomain.PackingItem, *tripdomain.PackingItem]
	budget    *gormstore.Repository[tripdomain.BudgetEntry, *tripdomain.BudgetEntry]
	timeline  *gormstore.Repository[tripdomain.TimelineEvent, *tripdomain.TimelineEvent]
	documents *gormstore.Repository[tripdomain.Document, *tripdomain.Document]
	members   *gormstore.Repository[tripdomain.TripMember, *tripdomain.TripMember]
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{
		db:        db,
		trips:     gormstore.New[tripdomain.Trip, *tripdomain.Trip](db),
		packing:   gormstore.New[tripdomain.PackingItem, *tripdomain.PackingItem](db),
		budget:    gormstore.New[tripdomain.BudgetEntry, *tripdomain.BudgetEntry](db),
		timeline:  gormstore.New[tripdomain.TimelineEvent, *tripdomain.TimelineEvent](db),
		documents: gormstore.New[tripdomain.Document, *tripdomain.Document](db),
		members:   gormstore.New[tripdomain.TripMember, *tripdomain.TripMember](db),
	}
}

func (r *PostgresRepository) TripsByHousehold(ctx context.Context, householdID string) ([]tripdomain.Trip, error) {
	var trips []tripdomain.Trip
	err := r.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("created_at desc").
		Find(&trips).Error
	if err != nil {
		return nil, apperr.Normalize(err)
	}
	return trips, nil
}

func (r *PostgresRepository) TripByID(ctx context.Context, id string) (*tripdomain.Trip, error) {
	t, err := r.trips.FindByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, tripdomain.ErrTripNotFound
	}
	return t, err
}

func (r *PostgresRepository) CreateTrip(ctx context.Context, t *tripdomain.Trip) (*tripdomain.Trip, error) {
	return r.trips.Create(ctx, t)
}

func (r *PostgresRepository) UpdateTrip(ctx context.Context, id string, changes repo.Changes) (*tripdomain.Trip, error) {
	t, err := r.trips.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, tripdomain.ErrTripNotFound
	}
	return t, err
}

func (r *PostgresRepository) DeleteTrip(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&tripdomain.PackingItem{},
			&tripdomain.BudgetEntry{},
			&tripdomain.TimelineEvent{},
			&tripdomain.Document{},
			&tripdomain.TripMember{},
		} {
			if err := tx.Where("trip_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		result := tx.Where("id = ?", id).Delete(&tripdomain.Trip{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return tripdomain.ErrTripNotFound
		}
		return nil
	})
	if err != nil {
		return apperr.Normalize(err)
	}
	return nil
}

func (r *PostgresRepository) PackingItemsByTrip(ctx context.Context, tripID string) ([]tripdomain.PackingItem, error) {
	return listByTrip[tripdomain.PackingItem](ctx, r.db, tripID)
}

func (r *PostgresRepository) CreatePackingItem(ctx context.Context, item *tripdomain.PackingItem) (*tripdomain.PackingItem, error) {
	return r.packing.Create(ctx, item)
}

func (r *PostgresRepository) UpdatePackingItem(ctx context.Context, id string, changes repo.Changes) (*tripdomain.PackingItem, error) {
	item, err := r.packing.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, tripdomain.ErrRecordNotFound
	}
	return item, err
}

func (r *PostgresRepository) DeletePackingItem(ctx context.Context, id string) error {
	return mapNotFound(r.packing.Delete(ctx, id))
}

func (r *PostgresRepository) BudgetEntriesByTrip(ctx context.Context, tripID string) ([]tripdomain.BudgetEntry, error) {
	return listByTrip[tripdomain.BudgetEntry](ctx, r.db, tripID)
}

func (r *PostgresRepository) CreateBudgetEntry(ctx context.Context, entry *tripdomain.BudgetEntry) (*tripdomain.BudgetEntry, error) {
	return r.budget.Create(ctx, entry)
}

func (r *PostgresRepository) UpdateBudgetEntry(ctx context.Context, id string, changes repo.Changes) (*tripdomain.BudgetEntry, error) {
	entry, err := r.budget.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, tripdomain.ErrRecordNotFound
	}
	return entry, err
}

func (r *PostgresRepository) DeleteBudgetEntry(ctx context.Context, id string) error {
	return mapNotFound(r.budget.Delete(ctx, id))
}

func (r *PostgresRepository) TimelineEventsByTrip(ctx context.Context, tripID string) ([]tripdomain.TimelineEvent, error) {
	return listByTrip[tripdomain.TimelineEvent](ctx, r.db, tripID)
}

func (r *PostgresRepository) CreateTimelineEvent(ctx context.Context, event *tripdomain.TimelineEvent) (*tripdomain.TimelineEvent, error) {
	return r.timeline.Create(ctx, event)
}

func (r *PostgresRepository) UpdateTimelineEvent(ctx context.Context, id string, changes repo.Changes) (*tripdomain.TimelineEvent, error) {
	event, err := r.timeline.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, tripdomain.ErrRecordNotFound
	}
	return event, err
}

func (r *PostgresRepository) DeleteTimelineEvent(ctx context.Context, id string) error {
	return mapNotFound(r.timeline.Delete(ctx, id))
}

func (r *PostgresRepository) DocumentsByTrip(ctx context.Context, tripID string) ([]tripdomain.Document, error) {
	return listByTrip[tripdomain.Document](ctx, r.db, tripID)
}

func (r *PostgresRepository) CreateDocument(ctx context.Context, doc *tripdomain.Document) (*tripdomain.Document, error) {
	return r.documents.Create(ctx, doc)
}

func (r *PostgresRepository) DeleteDocument(ctx context.Context, id string) error {
	return mapNotFound(r.documents.Delete(ctx, id))
}

func (r *PostgresRepository) TripMembersByTrip(ctx context.Context, tripID string) ([]tripdomain.TripMember, error) {
	return listByTrip[tripdomain.TripMember](ctx, r.db, tripID)
}

func (r *PostgresRepository) CreateTripMember(ctx context.Context, member *tripdomain.TripMember) (*tripdomain.TripMember, error) {
	return r.members.Create(ctx, member)
}

func (r *PostgresRepository) DeleteTripMember(ctx context.Context, id string) error {
	return mapNotFound(r.members.Delete(ctx, id))
}

func listByTrip[T any](ctx context.Context, db *gorm.DB, tripID string) ([]T, error) {
	var records []T
	err := db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at asc").
		Find(&records).Error
	if err != nil {
		return nil, apperr.Normalize(err)
	}
	return records, nil
}

func mapNotFound(err error) error {
	if apperr.IsNotFound(err) {
		return tripdomain.ErrRecordNotFound
	}
	return err
}
