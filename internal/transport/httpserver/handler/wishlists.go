package handler

import (
	"net/http"
	"strings"

	wishlistdomain "household-app-go/internal/domain/wishlist"
	"household-app-go/internal/repo"
	"household-app-go/internal/transport/httpserver/middleware"
)

type createWishlistRequest struct {
	HouseholdID *string `json:"household_id"`
	MemberID    *string `json:"member_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Visibility  string  `json:"visibility"`
}

type updateWishlistRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Visibility  *string `json:"visibility"`
}

type wishlistItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Price       string `json:"price"`
	Priority    int    `json:"priority"`
}

type updateWishlistItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	Price       *string `json:"price"`
	Priority    *int    `json:"priority"`
}

type toggleReservationRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type sharedWishlistResponse struct {
	Wishlist *wishlistdomain.Wishlist      `json:"wishlist"`
	Items    []wishlistdomain.WishlistItem `json:"items"`
}

func (h *Handlers) ListWishlists(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	wishlists, err := h.Wishlists.WishlistsForUser(r.Context(), user.ID)
	if err != nil {
		h.writeDomainError(w, "wishlists.list", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, wishlists)
}

func (h *Handlers) CreateWishlist(w http.ResponseWriter, r *http.Request) {
	var req createWishlistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	created, err := h.Wishlists.CreateWishlist(r.Context(), &wishlistdomain.Wishlist{
		UserID:      user.ID,
		HouseholdID: req.HouseholdID,
		MemberID:    req.MemberID,
		Title:       req.Title,
		Description: req.Description,
		Visibility:  req.Visibility,
	})
	if err != nil {
		h.writeDomainError(w, "wishlists.create", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) GetWishlist(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "wishlist_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "wishlist_id is required")
		return
	}

	wishlist, err := h.Wishlists.GetWishlist(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, "wishlists.get", err, "wishlist_id", id)
		return
	}

	writeJSON(w, http.StatusOK, wishlist)
}

func (h *Handlers) UpdateWishlist(w http.ResponseWriter, r *http.Request) {
	var req updateWishlistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	id := urlParam(r, "wishlist_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "wishlist_id is required")
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
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Visibility != nil {
		changes["visibility"] = *req.Visibility
	}
	if len(changes) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "no fields to update")
		return
	}

	wishlist, err := h.Wishlists.UpdateWishlist(r.Context(), id, changes)
	if err != nil {
		h.writeDomainError(w, "wishlists.update", err, "wishlist_id", id)
		return
	}

	writeJSON(w, http.StatusOK, wishlist)
}

func (h *Handlers) DeleteWishlist(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "wishlist_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "wishlist_id is required")
		return
	}

	if err := h.Wishlists.DeleteWishlist(r.Context(), id); err != nil {
		h.writeDomainError(w, "wishlists.delete", err, "wishlist_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HouseholdWishlists lists what the caller may browse inside a
// household: other members' visible wishlists, never the caller's own.
func (h *Handlers) HouseholdWishlists(w http.ResponseWriter, r *http.Request) {
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

	wishlists, err := h.Wishlists.WishlistsByHousehold(r.Context(), householdID, user.ID)
	if err != nil {
		h.writeDomainError(w, "wishlists.by_household", err, "household_id", householdID, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, wishlists)
}

func (h *Handlers) ChildWishlists(w http.ResponseWriter, r *http.Request) {
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

	wishlists, err := h.Wishlists.ChildWishlists(r.Context(), householdID, user.ID)
	if err != nil {
		h.writeDomainError(w, "wishlists.children", err, "household_id", householdID, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, wishlists)
}

func (h *Handlers) PersonalWishlists(w http.ResponseWriter, r *http.Request) {
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

	wishlists, err := h.Wishlists.PersonalWishlists(r.Context(), householdID, user.ID)
	if err != nil {
		h.writeDomainError(w, "wishlists.personal", err, "household_id", householdID, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, wishlists)
}

// SharedWishlist serves the public share-link view. It needs no
// identity; only public wishlists resolve, anything else is a 404.
func (h *Handlers) SharedWishlist(w http.ResponseWriter, r *http.Request) {
	slug := urlParam(r, "slug")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "slug is required")
		return
	}

	wishlist, err := h.Wishlists.GetWishlistBySlug(r.Context(), slug)
	if err != nil {
		h.writeDomainError(w, "wishlists.shared", err, "slug", slug)
		return
	}

	items, err := h.Wishlists.ListItems(r.Context(), wishlist.ID)
	if err != nil {
		h.writeDomainError(w, "wishlists.shared", err, "slug", slug, "wishlist_id", wishlist.ID)
		return
	}

	writeJSON(w, http.StatusOK, sharedWishlistResponse{Wishlist: wishlist, Items: items})
}

func (h *Handlers) ListWishlistItems(w http.ResponseWriter, r *http.Request) {
	wishlistID := urlParam(r, "wishlist_id")
	if wishlistID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "wishlist_id is required")
		return
	}

	items, err := h.Wishlists.ListItems(r.Context(), wishlistID)
	if err != nil {
		h.writeDomainError(w, "wishlist_items.list", err, "wishlist_id", wishlistID)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) AddWishlistItem(w http.ResponseWriter, r *http.Request) {
	var req wishlistItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	wishlistID := urlParam(r, "wishlist_id")
	if wishlistID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "wishlist_id is required")
		return
	}

	item, err := h.Wishlists.AddItem(r.Context(), &wishlistdomain.WishlistItem{
		WishlistID:  wishlistID,
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
		Price:       req.Price,
		Priority:    req.Priority,
	})
	if err != nil {
		h.writeDomainError(w, "wishlist_items.add", err, "wishlist_id", wishlistID)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// AddWishlistItems imports several items in one call, all-or-nothing.
func (h *Handlers) AddWishlistItems(w http.ResponseWriter, r *http.Request) {
	var reqs []wishlistItemRequest
	if err := decodeJSON(r, &reqs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if len(reqs) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "items are required")
		return
	}

	wishlistID := urlParam(r, "wishlist_id")
	if wishlistID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "wishlist_id is required")
		return
	}

	items := make([]*wishlistdomain.WishlistItem, 0, len(reqs))
	for _, req := range reqs {
		items = append(items, &wishlistdomain.WishlistItem{
			WishlistID:  wishlistID,
			Name:        req.Name,
			Description: req.Description,
			URL:         req.URL,
			Price:       req.Price,
			Priority:    req.Priority,
		})
	}

	created, err := h.Wishlists.AddItems(r.Context(), items)
	if err != nil {
		h.writeDomainError(w, "wishlist_items.add_batch", err, "wishlist_id", wishlistID)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateWishlistItem(w http.ResponseWriter, r *http.Request) {
	var req updateWishlistItemRequest
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
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.URL != nil {
		changes["url"] = *req.URL
	}
	if req.Price != nil {
		changes["price"] = *req.Price
	}
	if req.Priority != nil {
		changes["priority"] = *req.Priority
	}
	if len(changes) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "no fields to update")
		return
	}

	item, err := h.Wishlists.UpdateItem(r.Context(), id, changes)
	if err != nil {
		h.writeDomainError(w, "wishlist_items.update", err, "item_id", id)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) DeleteWishlistItem(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "item_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "item_id is required")
		return
	}

	if err := h.Wishlists.DeleteItem(r.Context(), id); err != nil {
		h.writeDomainError(w, "wishlist_items.delete", err, "item_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleReservation is reachable without identity so that share-link
// visitors can reserve; the email in the body is the whole credential.
func (h *Handlers) ToggleReservation(w http.ResponseWriter, r *http.Request) {
	var req toggleReservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	id := urlParam(r, "item_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "item_id is required")
		return
	}

	item, err := h.Wishlists.ToggleReservation(r.Context(), id, req.Email, req.Name)
	if err != nil {
		h.writeDomainError(w, "wishlist_items.toggle_reservation", err, "item_id", id)
		return
	}

	writeJSON(w, http.StatusOK, item)
}
