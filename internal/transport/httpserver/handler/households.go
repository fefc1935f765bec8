package handler

import (
	"net/http"
	"strings"

	householddomain "household-app-go/internal/domain/household"
	"household-app-go/internal/repo"
	"household-app-go/internal/transport/httpserver/middleware"
)

type createHouseholdRequest struct {
	Name      string `json:"name"`
	OwnerName string `json:"owner_name"`
}

type updateHouseholdRequest struct {
	Name *string `json:"name"`
}

type addMemberRequest struct {
	UserID *string `json:"user_id"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
}

type updateMemberRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

func (h *Handlers) ListHouseholds(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	households, err := h.Households.HouseholdsForUser(r.Context(), user.ID)
	if err != nil {
		h.writeDomainError(w, "households.list", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, households)
}

func (h *Handlers) CreateHousehold(w http.ResponseWriter, r *http.Request) {
	var req createHouseholdRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	ownerName := strings.TrimSpace(req.OwnerName)
	if ownerName == "" {
		ownerName = user.Name
	}

	created, err := h.Households.CreateWithOwner(r.Context(), user.ID, req.Name, ownerName)
	if err != nil {
		h.writeDomainError(w, "households.create", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// EnsureDefaultHousehold resolves the caller's household, creating a
// default one on first use.
func (h *Handlers) EnsureDefaultHousehold(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	household, err := h.Households.EnsureDefaultHousehold(r.Context(), user.ID, user.Name)
	if err != nil {
		h.writeDomainError(w, "households.ensure_default", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, household)
}

func (h *Handlers) GetHousehold(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "household_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "household_id is required")
		return
	}

	household, err := h.Households.GetHousehold(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, "households.get", err, "household_id", id)
		return
	}

	writeJSON(w, http.StatusOK, household)
}

func (h *Handlers) UpdateHousehold(w http.ResponseWriter, r *http.Request) {
	var req updateHouseholdRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.Name == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "no fields to update")
		return
	}

	id := urlParam(r, "household_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "household_id is required")
		return
	}

	household, err := h.Households.RenameHousehold(r.Context(), id, *req.Name)
	if err != nil {
		h.writeDomainError(w, "households.update", err, "household_id", id)
		return
	}

	writeJSON(w, http.StatusOK, household)
}

func (h *Handlers) DeleteHousehold(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "household_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "household_id is required")
		return
	}

	if err := h.Households.DeleteHousehold(r.Context(), id); err != nil {
		h.writeDomainError(w, "households.delete", err, "household_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "household_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "household_id is required")
		return
	}

	activeOnly, err := parseBoolParam(r.URL.Query().Get("active_only"), true)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid active_only")
		return
	}

	members, err := h.Households.ListMembers(r.Context(), id, activeOnly)
	if err != nil {
		h.writeDomainError(w, "members.list", err, "household_id", id)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

func (h *Handlers) AddMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	householdID := urlParam(r, "household_id")
	if householdID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "household_id is required")
		return
	}

	member, err := h.Households.AddMember(r.Context(), &householddomain.Member{
		HouseholdID: householdID,
		UserID:      req.UserID,
		Name:        req.Name,
		Role:        req.Role,
	})
	if err != nil {
		h.writeDomainError(w, "members.add", err, "household_id", householdID)
		return
	}

	writeJSON(w, http.StatusCreated, member)
}

func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req updateMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	id := urlParam(r, "member_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "member_id is required")
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
	if req.Role != nil {
		changes["role"] = *req.Role
	}
	if req.IsActive != nil {
		changes["is_active"] = *req.IsActive
	}
	if len(changes) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "no fields to update")
		return
	}

	member, err := h.Households.UpdateMember(r.Context(), id, changes)
	if err != nil {
		h.writeDomainError(w, "members.update", err, "member_id", id)
		return
	}

	writeJSON(w, http.StatusOK, member)
}

func (h *Handlers) RemoveMember(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "member_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "member_id is required")
		return
	}

	if err := h.Households.RemoveMember(r.Context(), id); err != nil {
		h.writeDomainError(w, "members.remove", err, "member_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
