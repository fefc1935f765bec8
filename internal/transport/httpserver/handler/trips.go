package handler

import (
	"net/http"
	"strings"

	tripdomain "household-app-go/internal/domain/trip"
	"household-app-go/internal/repo"
	"household-app-go/internal/transport/httpserver/middleware"
)

type createTripRequest struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
	StartsOn    string `json:"starts_on"`
	EndsOn      string `json:"ends_on"`
}

type updateTripRequest struct {
	Name        *string `json:"name"`
	Destination *string `json:"destination"`
	StartsOn    *string `json:"starts_on"`
	EndsOn      *string `json:"ends_on"`
}

type packingItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type togglePackedRequest struct {
	IsPacked bool `json:"is_packed"`
}

type budgetEntryRequest struct {
	Label    string  `json:"label"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type updateBudgetEntryRequest struct {
	Label    *string  `json:"label"`
	Amount   *float64 `json:"amount"`
	Currency *string  `json:"currency"`
}

type timelineEventRequest struct {
	Title    string `json:"title"`
	Notes    string `json:"notes"`
	StartsAt string `json:"starts_at"`
}

type updateTimelineEventRequest struct {
	Title    *string `json:"title"`
	Notes    *string `json:"notes"`
	StartsAt *string `json:"starts_at"`
}

type documentRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type tripMemberRequest struct {
	MemberID string `json:"member_id"`
	Role     string `json:"role"`
}

func (h *Handlers) ListTrips(w http.ResponseWriter, r *http.Request) {
	householdID := urlParam(r, "household_id")
	if householdID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "household_id is required")
		return
	}

	trips, err := h.Trips.TripsByHousehold(r.Context(), householdID)
	if err != nil {
		h.writeDomainError(w, "trips.list", err, "household_id", householdID)
		return
	}

	writeJSON(w, http.StatusOK, trips)
}

func (h *Handlers) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	householdID := urlParam(r, "household_id")
	if householdID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "household_id is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	startsOn, err := parseDateParam(req.StartsOn)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid starts_on")
		return
	}
	endsOn, err := parseDateParam(req.EndsOn)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid ends_on")
		return
	}

	trip, err := h.Trips.CreateTrip(r.Context(), &tripdomain.Trip{
		HouseholdID: householdID,
		Name:        req.Name,
		Destination: req.Destination,
		StartsOn:    startsOn,
		EndsOn:      endsOn,
		CreatedBy:   user.ID,
	})
	if err != nil {
		h.writeDomainError(w, "trips.create", err, "household_id", householdID)
		return
	}

	writeJSON(w, http.StatusCreated, trip)
}

func (h *Handlers) GetTrip(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "trip_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "trip_id is required")
		return
	}

	trip, err := h.Trips.GetTrip(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, "trips.get", err, "trip_id", id)
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

func (h *Handlers) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req updateTripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	id := urlParam(r, "trip_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "trip_id is required")
		return
	}

	changes := repo.Changes{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
			return
		}
		changes["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Destination != nil {
		changes["destination"] = *req.Destination
	}
	if req.StartsOn != nil {
		startsOn, err := parseDateParam(*req.StartsOn)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid starts_on")
			return
		}
		changes["starts_on"] = startsOn
	}
	if req.EndsOn != nil {
		endsOn, err := parseDateParam(*req.EndsOn)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid ends_on")
			return
		}
		changes["ends_on"] = endsOn
	}
	if len(changes) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "no fields to update")
		return
	}

	trip, err := h.Trips.UpdateTrip(r.Context(), id, changes)
	if err != nil {
		h.writeDomainError(w, "trips.update", err, "trip_id", id)
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

func (h *Handlers) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "trip_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "trip_id is required")
		return
	}

	if err := h.Trips.DeleteTrip(r.Context(), id); err != nil {
		h.writeDomainError(w, "trips.delete", err, "trip_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListPackingItems(w http.ResponseWriter, r *http.Request) {
	tripID := urlParam(r, "trip_id")
	if tripID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "trip_id is required")
		return
	}

	items, err := h.Trips.PackingItems(r.Context(), tripID)
	if err != nil {
		h.writeDomainError(w, "trips.packing.list", err, "trip_id", tripID)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) AddPackingItem(w http.ResponseWriter, r *http.Request) {
	var req packingItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	tripID := urlParam(r, "trip_id")
	if tripID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "trip_id is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	item, err := h.Trips.AddPackingItem(r.Context(), &tripdomain.PackingItem{
		TripID:    tripID,
		Name:      req.Name,
		Quantity:  req.Quantity,
		CreatedBy: user.ID,
	})
	if err != nil {
		h.writeDomainError(w, "trips.packing.add", err, "trip_id", tripID)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *Handlers) TogglePackingItem(w http.ResponseWriter, r *http.Request) {
	var req togglePackedRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	id := urlParam(r, "item_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "item_id is required")
		return
	}

	item, err := h.Trips.TogglePacked(r.Context(), id, req.IsPacked)
	if err != nil {
		h.writeDomainError(w, "trips.packing.toggle", err, "item_id", id)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) DeletePackingItem(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "item_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "item_id is required")
		return
	}

	if err := h.Trips.DeletePackingItem(r.Context(), id); err != nil {
		h.writeDomainError(w, "trips.packing.delete", err, "item_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListBudgetEntries(w http.ResponseWriter, r *http.Request) {
	tripID := urlParam(r, "trip_id")
	if tripID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "trip_id is required")
		return
	}

	entries, err := h.Trips.BudgetEntries(r.Context(), tripID)
	if err != nil {
		h.writeDomainError(w, "trips.budget.list", err, "trip_id", tripID)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *Handlers) AddBudgetEntry(w http.ResponseWriter, r *http.Request) {
	var req budgetEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	tripID := urlParam(r, "trip_id")
	if tripID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "trip_id is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	entry, err := h.Trips.AddBudgetEntry(r.Context(), &tripdomain.BudgetEntry{
		TripID:    tripID,
		Label:     req.Label,
		Amount:    req.Amount,
		Currency:  req.Currency,
		CreatedBy: user.ID,
	})
	if err != nil {
		h.writeDomainError(w, "trips.budget.add", err, "trip_id", tripID)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handlers) UpdateBudgetEntry(w http.ResponseWriter, r *http.Request) {
	var req updateBudgetEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	id := urlParam(r, "entry_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "entry_id is required")
		return
	}

	changes := repo.Changes{}
	if req.Label != nil {
		if strings.TrimSpace(*req.Label) == "" {
			writeError(w, http.StatusBadRequest, "invalid_request", "label is required")
			return
		}
		changes["label"] = strings.TrimSpace(*req.Label)
	}
	if req.Amount != nil {
		changes["amount"] = *req.Amount
	}
	if req.Currency != nil {
		changes["currency"] = *req.Currency
	}
	if len(changes) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "no fields to update")
		return
	}

	entry, err := h.Trips.UpdateBudgetEntry(r.Context(), id, changes)
	if err != nil {
		h.writeDomainError(w, "trips.budget.update", err, "entry_id", id)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *Handlers) DeleteBudgetEntry(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "entry_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "entry_id is required")
		return
	}

	if err := h.Trips.DeleteBudgetEntry(r.Context(), id); err != nil {
		h.writeDomainError(w, "trips.budget.delete", err, "entry_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListTimelineEvents(w http.ResponseWriter, r *http.Request) {
	tripID := urlParam(r, "trip_id")
	if tripID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "trip_id is required")
		return
	}

	events, err := h.Trips.TimelineEvents(r.Context(), tripID)
	if err != nil {
		h.writeDomainError(w, "trips.timeline.list", err, "trip_id", tripID)
		return
	}

	writeJSON(w, http.StatusOK, events)
}

func (h *Handlers) AddTimelineEvent(w http.ResponseWriter, r *http.Request) {
	var req timelineEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	tripID := urlParam(r, "trip_id")
	if tripID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "trip_id is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	startsAt, err := parseTimeParam(req.StartsAt)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid starts_at")
		return
	}

	event, err := h.Trips.AddTimelineEvent(r.Context(), &tripdomain.TimelineEvent{
		TripID:    tripID,
		Title:     req.Title,
		Notes:     req.Notes,
		StartsAt:  startsAt,
		CreatedBy: user.ID,
	})
	if err != nil {
		h.writeDomainError(w, "trips.timeline.add", err, "trip_id", tripID)
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

func (h *Handlers) UpdateTimelineEvent(w http.ResponseWriter, r *http.Request) {
	var req updateTimelineEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	id := urlParam(r, "event_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "event_id is required")
		return
	}

	changes := repo.Changes{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
			return
		}
		changes["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Notes != nil {
		changes["notes"] = *req.Notes
	}
	if req.StartsAt != nil {
		startsAt, err := parseTimeParam(*req.StartsAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid starts_at")
			return
		}
		changes["starts_at"] = startsAt
	}
	if len(changes) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "no fields to update")
		return
	}

	event, err := h.Trips.UpdateTimelineEvent(r.Context(), id, changes)
	if err != nil {
		h.writeDomainError(w, "trips.timeline.update", err, "event_id", id)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

func (h *Handlers) DeleteTimelineEvent(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "event_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "event_id is required")
		return
	}

	if err := h.Trips.DeleteTimelineEvent(r.Context(), id); err != nil {
		h.writeDomainError(w, "trips.timeline.delete", err, "event_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListDocuments(w http.ResponseWriter, r *http.Request) {
	tripID := urlParam(r, "trip_id")
	if tripID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "trip_id is required")
		return
	}

	docs, err := h.Trips.Documents(r.Context(), tripID)
	if err != nil {
		h.writeDomainError(w, "trips.documents.list", err, "trip_id", tripID)
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

func (h *Handlers) AddDocument(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	tripID := urlParam(r, "trip_id")
	if tripID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "trip_id is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	doc, err := h.Trips.AddDocument(r.Context(), &tripdomain.Document{
		TripID:    tripID,
		Name:      req.Name,
		URL:       req.URL,
		CreatedBy: user.ID,
	})
	if err != nil {
		h.writeDomainError(w, "trips.documents.add", err, "trip_id", tripID)
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

func (h *Handlers) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "document_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "document_id is required")
		return
	}

	if err := h.Trips.DeleteDocument(r.Context(), id); err != nil {
		h.writeDomainError(w, "trips.documents.delete", err, "document_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListTripMembers(w http.ResponseWriter, r *http.Request) {
	tripID := urlParam(r, "trip_id")
	if tripID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "trip_id is required")
		return
	}

	members, err := h.Trips.TripMembers(r.Context(), tripID)
	if err != nil {
		h.writeDomainError(w, "trips.members.list", err, "trip_id", tripID)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

func (h *Handlers) AddTripMember(w http.ResponseWriter, r *http.Request) {
	var req tripMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	tripID := urlParam(r, "trip_id")
	if tripID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "trip_id is required")
		return
	}

	member, err := h.Trips.AddTripMember(r.Context(), &tripdomain.TripMember{
		TripID:   tripID,
		MemberID: req.MemberID,
		Role:     req.Role,
	})
	if err != nil {
		h.writeDomainError(w, "trips.members.add", err, "trip_id", tripID)
		return
	}

	writeJSON(w, http.StatusCreated, member)
}

func (h *Handlers) RemoveTripMember(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "member_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "member_id is required")
		return
	}

	if err := h.Trips.RemoveTripMember(r.Context(), id); err != nil {
		h.writeDomainError(w, "trips.members.remove", err, "member_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
