package handler

import (
	"net/http"
	"strings"

	shoppingdomain "household-app-go/internal/domain/shopping"
	"household-app-go/internal/repo"
	"household-app-go/internal/transport/httpserver/middleware"
)

type createShoppingListRequest struct {
	Name string `json:"name"`
}

type updateShoppingListRequest struct {
	Name *string `json:"name"`
}

type shoppingItemRequest struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Note     string `json:"note"`
}

type updateShoppingItemRequest struct {
	Name     *string `json:"name"`
	Quantity *string `json:"quantity"`
	Note     *string `json:"note"`
}

type toggleShoppingItemRequest struct {
	IsChecked bool `json:"is_checked"`
}

func (h *Handlers) ListShoppingLists(w http.ResponseWriter, r *http.Request) {
	householdID := urlParam(r, "household_id")
	if householdID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "household_id is required")
		return
	}

	lists, err := h.Shopping.ListsByHousehold(r.Context(), householdID)
	if err != nil {
		h.writeDomainError(w, "shopping.list_lists", err, "household_id", householdID)
		return
	}

	writeJSON(w, http.StatusOK, lists)
}

func (h *Handlers) CreateShoppingList(w http.ResponseWriter, r *http.Request) {
	var req createShoppingListRequest
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

	list, err := h.Shopping.CreateList(r.Context(), &shoppingdomain.ShoppingList{
		HouseholdID: householdID,
		Name:        req.Name,
		CreatedBy:   user.ID,
	})
	if err != nil {
		h.writeDomainError(w, "shopping.create_list", err, "household_id", householdID)
		return
	}

	writeJSON(w, http.StatusCreated, list)
}

func (h *Handlers) GetShoppingList(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "list_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "list_id is required")
		return
	}

	list, err := h.Shopping.GetList(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, "shopping.get_list", err, "list_id", id)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) UpdateShoppingList(w http.ResponseWriter, r *http.Request) {
	var req updateShoppingListRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	id := urlParam(r, "list_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "list_id is required")
		return
	}

	list, err := h.Shopping.UpdateList(r.Context(), id, repo.Changes{"name": strings.TrimSpace(*req.Name)})
	if err != nil {
		h.writeDomainError(w, "shopping.update_list", err, "list_id", id)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) DeleteShoppingList(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "list_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "list_id is required")
		return
	}

	if err := h.Shopping.DeleteList(r.Context(), id); err != nil {
		h.writeDomainError(w, "shopping.delete_list", err, "list_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListShoppingItems(w http.ResponseWriter, r *http.Request) {
	listID := urlParam(r, "list_id")
	if listID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "list_id is required")
		return
	}

	items, err := h.Shopping.ListItems(r.Context(), listID)
	if err != nil {
		h.writeDomainError(w, "shopping.list_items", err, "list_id", listID)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) AddShoppingItem(w http.ResponseWriter, r *http.Request) {
	var req shoppingItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	listID := urlParam(r, "list_id")
	if listID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "list_id is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	item, err := h.Shopping.AddItem(r.Context(), &shoppingdomain.ShoppingItem{
		ListID:    listID,
		Name:      req.Name,
		Quantity:  req.Quantity,
		Note:      req.Note,
		CreatedBy: user.ID,
	})
	if err != nil {
		h.writeDomainError(w, "shopping.add_item", err, "list_id", listID)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *Handlers) AddShoppingItems(w http.ResponseWriter, r *http.Request) {
	var reqs []shoppingItemRequest
	if err := decodeJSON(r, &reqs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if len(reqs) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "items are required")
		return
	}

	listID := urlParam(r, "list_id")
	if listID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "list_id is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	items := make([]*shoppingdomain.ShoppingItem, 0, len(reqs))
	for _, req := range reqs {
		items = append(items, &shoppingdomain.ShoppingItem{
			ListID:    listID,
			Name:      req.Name,
			Quantity:  req.Quantity,
			Note:      req.Note,
			CreatedBy: user.ID,
		})
	}

	created, err := h.Shopping.AddItems(r.Context(), items)
	if err != nil {
		h.writeDomainError(w, "shopping.add_items", err, "list_id", listID)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateShoppingItem(w http.ResponseWriter, r *http.Request) {
	var req updateShoppingItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	id := urlParam(r, "item_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "item_id is required")
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
	if req.Quantity != nil {
		changes["quantity"] = *req.Quantity
	}
	if req.Note != nil {
		changes["note"] = *req.Note
	}
	if len(changes) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "no fields to update")
		return
	}

	item, err := h.Shopping.UpdateItem(r.Context(), id, changes)
	if err != nil {
		h.writeDomainError(w, "shopping.update_item", err, "item_id", id)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) ToggleShoppingItem(w http.ResponseWriter, r *http.Request) {
	var req toggleShoppingItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	id := urlParam(r, "item_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "item_id is required")
		return
	}

	item, err := h.Shopping.ToggleItem(r.Context(), id, req.IsChecked)
	if err != nil {
		h.writeDomainError(w, "shopping.toggle_item", err, "item_id", id)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) DeleteShoppingItem(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "item_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "item_id is required")
		return
	}

	if err := h.Shopping.DeleteItem(r.Context(), id); err != nil {
		h.writeDomainError(w, "shopping.delete_item", err, "item_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
