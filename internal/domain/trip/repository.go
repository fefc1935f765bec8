package trip

import (
	"context"

	"household-app-go/internal/repo"
)

// Repository covers trips and their parent-scoped collections. Child
// listings are ordered oldest first; trips newest first.
type Repository interface {
	TripsByHousehold(ctx context.Context, householdID string) ([]Trip, error)
	TripByID(ctx context.Context, id string) (*Trip, error)
	CreateTrip(ctx context.Context, t *Trip) (*Trip, error)
	UpdateTrip(ctx context.Context, id string, changes repo.Changes) (*Trip, error)
	// DeleteTrip hard-deletes the trip and cascades every child
	// collection scoped to it.
	DeleteTrip(ctx context.Context, id string) error

	PackingItemsByTrip(ctx context.Context, tripID string) ([]PackingItem, error)
	CreatePackingItem(ctx context.Context, item *PackingItem) (*PackingItem, error)
	UpdatePackingItem(ctx context.Context, id string, changes repo.Changes) (*PackingItem, error)
	DeletePackingItem(ctx context.Context, id string) error

	BudgetEntriesByTrip(ctx context.Context, tripID string) ([]BudgetEntry, error)
	CreateBudgetEntry(ctx context.Context, entry *BudgetEntry) (*BudgetEntry, error)
	UpdateBudgetEntry(ctx context.Context, id string, changes repo.Changes) (*BudgetEntry, error)
	DeleteBudgetEntry(ctx context.Context, id string) error

	TimelineEventsByTrip(ctx context.Context, tripID string) ([]TimelineEvent, error)
	CreateTimelineEvent(ctx context.Context, event *TimelineEvent) (*TimelineEvent, error)
	UpdateTimelineEvent(ctx context.Context, id string, changes repo.Changes) (*TimelineEvent, error)
	DeleteTimelineEvent(ctx context.Context, id string) error

	DocumentsByTrip(ctx context.Context, tripID string) ([]Document, error)
	CreateDocument(ctx context.Context, doc *Document) (*Document, error)
	DeleteDocument(ctx context.Context, id string) error

	TripMembersByTrip(ctx context.Context, tripID string) ([]TripMember, error)
	CreateTripMember(ctx context.Context, member *TripMember) (*TripMember, error)
	DeleteTripMember(ctx context.Context, id string) error
}
