package localstore

import (
	"context"
	"sort"
	"time"

	"household-app-go/internal/apperr"
	tripdomain "household-app-go/internal/domain/trip"
	"household-app-go/internal/kvstore"
	"household-app-go/internal/repo"
	"household-app-go/internal/repo/local"
)

const (
	tableTrips          = "trips"
	tablePackingItems   = "packing_items"
	tableBudgetEntries  = "budget_entries"
	tableTimelineEvents = "timeline_events"
	tableTripDocuments  = "trip_documents"
	tableTripMembers    = "trip_members"
)

type TripRepository struct {
	trips     *local.Engine[tripdomain.Trip, *tripdomain.Trip]
	packing   *local.Engine[tripdomain.PackingItem, *tripdomain.PackingItem]
	budget    *local.Engine[tripdomain.BudgetEntry, *tripdomain.BudgetEntry]
	timeline  *local.Engine[tripdomain.TimelineEvent, *tripdomain.TimelineEvent]
	documents *local.Engine[tripdomain.Document, *tripdomain.Document]
	members   *local.Engine[tripdomain.TripMember, *tripdomain.TripMember]
}

func NewTripRepository(store kvstore.Store) *TripRepository {
	return &TripRepository{
		trips:     local.NewEngine[tripdomain.Trip, *tripdomain.Trip](store, tableTrips),
		packing:   local.NewEngine[tripdomain.PackingItem, *tripdomain.PackingItem](store, tablePackingItems),
		budget:    local.NewEngine[tripdomain.BudgetEntry, *tripdomain.BudgetEntry](store, tableBudgetEntries),
		timeline:  local.NewEngine[tripdomain.TimelineEvent, *tripdomain.TimelineEvent](store, tableTimelineEvents),
		documents: local.NewEngine[tripdomain.Document, *tripdomain.Document](store, tableTripDocuments),
		members:   local.NewEngine[tripdomain.TripMember, *tripdomain.TripMember](store, tableTripMembers),
	}
}

func (r *TripRepository) TripsByHousehold(ctx context.Context, householdID string) ([]tripdomain.Trip, error) {
	trips, err := r.trips.FindAll(ctx, repo.Filter{"household_id": householdID})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].CreatedAt.After(trips[j].CreatedAt)
	})
	return trips, nil
}

func (r *TripRepository) TripByID(ctx context.Context, id string) (*tripdomain.Trip, error) {
	t, err := r.trips.FindByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, tripdomain.ErrTripNotFound
	}
	return t, err
}

func (r *TripRepository) CreateTrip(ctx context.Context, t *tripdomain.Trip) (*tripdomain.Trip, error) {
	return r.trips.Create(ctx, t)
}

func (r *TripRepository) UpdateTrip(ctx context.Context, id string, changes repo.Changes) (*tripdomain.Trip, error) {
	t, err := r.trips.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, tripdomain.ErrTripNotFound
	}
	return t, err
}

func (r *TripRepository) DeleteTrip(ctx context.Context, id string) error {
	if err := r.trips.Delete(ctx, id); err != nil {
		if apperr.IsNotFound(err) {
			return tripdomain.ErrTripNotFound
		}
		return err
	}

	if err := cascade(ctx, r.packing, id); err != nil {
		return err
	}
	if err := cascade(ctx, r.budget, id); err != nil {
		return err
	}
	if err := cascade(ctx, r.timeline, id); err != nil {
		return err
	}
	if err := cascade(ctx, r.documents, id); err != nil {
		return err
	}
	return cascade(ctx, r.members, id)
}

func (r *TripRepository) PackingItemsByTrip(ctx context.Context, tripID string) ([]tripdomain.PackingItem, error) {
	return listByTrip(ctx, r.packing, tripID, func(item tripdomain.PackingItem) time.Time { return item.CreatedAt })
}

func (r *TripRepository) CreatePackingItem(ctx context.Context, item *tripdomain.PackingItem) (*tripdomain.PackingItem, error) {
	return r.packing.Create(ctx, item)
}

func (r *TripRepository) UpdatePackingItem(ctx context.Context, id string, changes repo.Changes) (*tripdomain.PackingItem, error) {
	item, err := r.packing.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, tripdomain.ErrRecordNotFound
	}
	return item, err
}

func (r *TripRepository) DeletePackingItem(ctx context.Context, id string) error {
	return mapNotFound(r.packing.Delete(ctx, id))
}

func (r *TripRepository) BudgetEntriesByTrip(ctx context.Context, tripID string) ([]tripdomain.BudgetEntry, error) {
	return listByTrip(ctx, r.budget, tripID, func(entry tripdomain.BudgetEntry) time.Time { return entry.CreatedAt })
}

func (r *TripRepository) CreateBudgetEntry(ctx context.Context, entry *tripdomain.BudgetEntry) (*tripdomain.BudgetEntry, error) {
	return r.budget.Create(ctx, entry)
}

func (r *TripRepository) UpdateBudgetEntry(ctx context.Context, id string, changes repo.Changes) (*tripdomain.BudgetEntry, error) {
	entry, err := r.budget.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, tripdomain.ErrRecordNotFound
	}
	return entry, err
}

func (r *TripRepository) DeleteBudgetEntry(ctx context.Context, id string) error {
	return mapNotFound(r.budget.Delete(ctx, id))
}

func (r *TripRepository) TimelineEventsByTrip(ctx context.Context, tripID string) ([]tripdomain.TimelineEvent, error) {
	return listByTrip(ctx, r.timeline, tripID, func(event tripdomain.TimelineEvent) time.Time { return event.CreatedAt })
}

func (r *TripRepository) CreateTimelineEvent(ctx context.Context, event *tripdomain.TimelineEvent) (*tripdomain.TimelineEvent, error) {
	return r.timeline.Create(ctx, event)
}

func (r *TripRepository) UpdateTimelineEvent(ctx context.Context, id string, changes repo.Changes) (*tripdomain.TimelineEvent, error) {
	event, err := r.timeline.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, tripdomain.ErrRecordNotFound
	}
	return event, err
}

func (r *TripRepository) DeleteTimelineEvent(ctx context.Context, id string) error {
	return mapNotFound(r.timeline.Delete(ctx, id))
}

func (r *TripRepository) DocumentsByTrip(ctx context.Context, tripID string) ([]tripdomain.Document, error) {
	return listByTrip(ctx, r.documents, tripID, func(doc tripdomain.Document) time.Time { return doc.CreatedAt })
}

func (r *TripRepository) CreateDocument(ctx context.Context, doc *tripdomain.Document) (*tripdomain.Document, error) {
	return r.documents.Create(ctx, doc)
}

func (r *TripRepository) DeleteDocument(ctx context.Context, id string) error {
	return mapNotFound(r.documents.Delete(ctx, id))
}

func (r *TripRepository) TripMembersByTrip(ctx context.Context, tripID string) ([]tripdomain.TripMember, error) {
	return listByTrip(ctx, r.members, tripID, func(m tripdomain.TripMember) time.Time { return m.CreatedAt })
}

func (r *TripRepository) CreateTripMember(ctx context.Context, member *tripdomain.TripMember) (*tripdomain.TripMember, error) {
	return r.members.Create(ctx, member)
}

func (r *TripRepository) DeleteTripMember(ctx context.Context, id string) error {
	return mapNotFound(r.members.Delete(ctx, id))
}

func listByTrip[T any, PT interface {
	*T
	repo.Record
}](ctx context.Context, engine *local.Engine[T, PT], tripID string, createdAt func(T) time.Time) ([]T, error) {
	records, err := engine.FindAll(ctx, repo.Filter{"trip_id": tripID})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return createdAt(records[i]).Before(createdAt(records[j]))
	})
	return records, nil
}

func cascade[T any, PT interface {
	*T
	repo.Record
}](ctx context.Context, engine *local.Engine[T, PT], tripID string) error {
	records, err := engine.FindAll(ctx, repo.Filter{"trip_id": tripID})
	if err != nil {
		return err
	}
	for i := range records {
		if err := engine.Delete(ctx, PT(&records[i]).RecordID()); err != nil && !apperr.IsNotFound(err) {
			return err
		}
	}
	return nil
}

func mapNotFound(err error) error {
	if apperr.IsNotFound(err) {
		return tripdomain.ErrRecordNotFound
	}
	return err
}
