package handler

import (
	"net/http"

	householddomain "household-app-go/internal/domain/household"
	shoppingdomain "household-app-go/internal/domain/shopping"
	tripdomain "household-app-go/internal/domain/trip"
	wishlistdomain "household-app-go/internal/domain/wishlist"
	"household-app-go/internal/transport/httpserver/middleware"
	"household-app-go/pkg/logger"
)

type Handlers struct {
	Households *householddomain.Service
	Wishlists  *wishlistdomain.Service
	Shopping   *shoppingdomain.Service
	Trips      *tripdomain.Service
	log        logger.Logger
}

func New(households *householddomain.Service, wishlists *wishlistdomain.Service, shopping *shoppingdomain.Service, trips *tripdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Households: households,
		Wishlists:  wishlists,
		Shopping:   shopping,
		Trips:      trips,
		log:        log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type authMeResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *Handlers) AuthMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	writeJSON(w, http.StatusOK, authMeResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	})
}
