package trip

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

func (s *Service) TripsByHousehold(ctx context.Context, householdID string) ([]Trip, error) {
	return s.repo.TripsByHousehold(ctx, householdID)
}

func (s *Service) GetTrip(ctx context.Context, id string) (*Trip, error) {
	return s.repo.TripByID(ctx, id)
}

func (s *Service) CreateTrip(ctx context.Context, t *Trip) (*Trip, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return nil, ErrNameRequired
	}
	if t.StartsOn != nil && t.EndsOn != nil && t.EndsOn.Before(*t.StartsOn) {
		return nil, ErrInvalidDates
	}
	return s.repo.CreateTrip(ctx, t)
}

func (s *Service) UpdateTrip(ctx context.Context, id string, changes repo.Changes) (*Trip, error) {
	return s.repo.UpdateTrip(ctx, id, changes)
}

func (s *Service) DeleteTrip(ctx context.Context, id string) error {
	return s.repo.DeleteTrip(ctx, id)
}

func (s *Service) PackingItems(ctx context.Context, tripID string) ([]PackingItem, error) {
	return s.repo.PackingItemsByTrip(ctx, tripID)
}

func (s *Service) AddPackingItem(ctx context.Context, item *PackingItem) (*PackingItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return nil, ErrLabelRequired
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	return s.repo.CreatePackingItem(ctx, item)
}

func (s *Service) TogglePacked(ctx context.Context, id string, packed bool) (*PackingItem, error) {
	return s.repo.UpdatePackingItem(ctx, id, repo.Changes{"is_packed": packed})
}

func (s *Service) DeletePackingItem(ctx context.Context, id string) error {
	return s.repo.DeletePackingItem(ctx, id)
}

func (s *Service) BudgetEntries(ctx context.Context, tripID string) ([]BudgetEntry, error) {
	return s.repo.BudgetEntriesByTrip(ctx, tripID)
}

func (s *Service) AddBudgetEntry(ctx context.Context, entry *BudgetEntry) (*BudgetEntry, error) {
	entry.Label = strings.TrimSpace(entry.Label)
	if entry.Label == "" {
		return nil, ErrLabelRequired
	}
	if entry.Currency == "" {
		entry.Currency = "EUR"
	}
	return s.repo.CreateBudgetEntry(ctx, entry)
}

func (s *Service) UpdateBudgetEntry(ctx context.Context, id string, changes repo.Changes) (*BudgetEntry, error) {
	return s.repo.UpdateBudgetEntry(ctx, id, changes)
}

func (s *Service) DeleteBudgetEntry(ctx context.Context, id string) error {
	return s.repo.DeleteBudgetEntry(ctx, id)
}

func (s *Service) TimelineEvents(ctx context.Context, tripID string) ([]TimelineEvent, error) {
	return s.repo.TimelineEventsByTrip(ctx, tripID)
}

func (s *Service) AddTimelineEvent(ctx context.Context, event *TimelineEvent) (*TimelineEvent, error) {
	event.Title = strings.TrimSpace(event.Title)
	if event.Title == "" {
		return nil, ErrLabelRequired
	}
	return s.repo.CreateTimelineEvent(ctx, event)
}

func (s *Service) UpdateTimelineEvent(ctx context.Context, id string, changes repo.Changes) (*TimelineEvent, error) {
	return s.repo.UpdateTimelineEvent(ctx, id, changes)
}

func (s *Service) DeleteTimelineEvent(ctx context.Context, id string) error {
	return s.repo.DeleteTimelineEvent(ctx, id)
}

func (s *Service) Documents(ctx context.Context, tripID string) ([]Document, error) {
	return s.repo.DocumentsByTrip(ctx, tripID)
}

func (s *Service) AddDocument(ctx context.Context, doc *Document) (*Document, error) {
	doc.Name = strings.TrimSpace(doc.Name)
	if doc.Name == "" {
		return nil, ErrLabelRequired
	}
	return s.repo.CreateDocument(ctx, doc)
}

func (s *Service) DeleteDocument(ctx context.Context, id string) error {
	return s.repo.DeleteDocument(ctx, id)
}

func (s *Service) TripMembers(ctx context.Context, tripID string) ([]TripMember, error) {
	return s.repo.TripMembersByTrip(ctx, tripID)
}

func (s *Service) AddTripMember(ctx context.Context, member *TripMember) (*TripMember, error) {
	if member.MemberID == "" {
		return nil, ErrMemberIDMissing
	}
	if member.Role == "" {
		member.Role = "traveler"
	}
	return s.repo.CreateTripMember(ctx, member)
}

func (s *Service) RemoveTripMember(ctx context.Context, id string) error {
	return s.repo.DeleteTripMember(ctx, id)
}
