package httpserver

import (
	"net/http"
	"time"

	"household-app-go/internal/config"
	"household-app-go/internal/transport/httpserver/handler"
	authmw "household-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS([]string{"http://localhost:5173"}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		// Share-link surface: no identity, the slug (and for
		// reservations the email) is the credential.
		r.Get("/shared/{slug}", handlers.SharedWishlist)
		r.Post("/wishlist-items/{item_id}/reservation", handlers.ToggleReservation)

		auth := authmw.NewHeaderAuth(cfg.Auth)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.AuthMe)

			r.Get("/households", handlers.ListHouseholds)
			r.Post("/households", handlers.CreateHousehold)
			r.Post("/households/ensure-default", handlers.EnsureDefaultHousehold)
			r.Get("/households/{household_id}", handlers.GetHousehold)
			r.Patch("/households/{household_id}", handlers.UpdateHousehold)
			r.Delete("/households/{household_id}", handlers.DeleteHousehold)

			r.Get("/households/{household_id}/members", handlers.ListMembers)
			r.Post("/households/{household_id}/members", handlers.AddMember)
			r.Patch("/members/{member_id}", handlers.UpdateMember)
			r.Delete("/members/{member_id}", handlers.RemoveMember)

			r.Get("/wishlists", handlers.ListWishlists)
			r.Post("/wishlists", handlers.CreateWishlist)
			r.Get("/wishlists/{wishlist_id}", handlers.GetWishlist)
			r.Patch("/wishlists/{wishlist_id}", handlers.UpdateWishlist)
			r.Delete("/wishlists/{wishlist_id}", handlers.DeleteWishlist)
			r.Get("/households/{household_id}/wishlists", handlers.HouseholdWishlists)
			r.Get("/households/{household_id}/wishlists/children", handlers.ChildWishlists)
			r.Get("/households/{household_id}/wishlists/personal", handlers.PersonalWishlists)

			r.Get("/wishlists/{wishlist_id}/items", handlers.ListWishlistItems)
			r.Post("/wishlists/{wishlist_id}/items", handlers.AddWishlistItem)
			r.Post("/wishlists/{wishlist_id}/items/batch", handlers.AddWishlistItems)
			r.Patch("/wishlist-items/{item_id}", handlers.UpdateWishlistItem)
			r.Delete("/wishlist-items/{item_id}", handlers.DeleteWishlistItem)

			r.Get("/households/{household_id}/shopping-lists", handlers.ListShoppingLists)
			r.Post("/households/{household_id}/shopping-lists", handlers.CreateShoppingList)
			r.Get("/shopping-lists/{list_id}", handlers.GetShoppingList)
			r.Patch("/shopping-lists/{list_id}", handlers.UpdateShoppingList)
			r.Delete("/shopping-lists/{list_id}", handlers.DeleteShoppingList)
			r.Get("/shopping-lists/{list_id}/items", handlers.ListShoppingItems)
			r.Post("/shopping-lists/{list_id}/items", handlers.AddShoppingItem)
			r.Post("/shopping-lists/{list_id}/items/batch", handlers.AddShoppingItems)
			r.Patch("/shopping-items/{item_id}", handlers.UpdateShoppingItem)
			r.Post("/shopping-items/{item_id}/toggle", handlers.ToggleShoppingItem)
			r.Delete("/shopping-items/{item_id}", handlers.DeleteShoppingItem)

			r.Get("/households/{household_id}/trips", handlers.ListTrips)
			r.Post("/households/{household_id}/trips", handlers.CreateTrip)
			r.Get("/trips/{trip_id}", handlers.GetTrip)
			r.Patch("/trips/{trip_id}", handlers.UpdateTrip)
			r.Delete("/trips/{trip_id}", handlers.DeleteTrip)

			r.Get("/trips/{trip_id}/packing-items", handlers.ListPackingItems)
			r.Post("/trips/{trip_id}/packing-items", handlers.AddPackingItem)
			r.Post("/packing-items/{item_id}/toggle", handlers.TogglePackingItem)
			r.Delete("/packing-items/{item_id}", handlers.DeletePackingItem)

			r.Get("/trips/{trip_id}/budget-entries", handlers.ListBudgetEntries)
			r.Post("/trips/{trip_id}/budget-entries", handlers.AddBudgetEntry)
			r.Patch("/budget-entries/{entry_id}", handlers.UpdateBudgetEntry)
			r.Delete("/budget-entries/{entry_id}", handlers.DeleteBudgetEntry)

			r.Get("/trips/{trip_id}/timeline-events", handlers.ListTimelineEvents)
			r.Post("/trips/{trip_id}/timeline-events", handlers.AddTimelineEvent)
			r.Patch("/timeline-events/{event_id}", handlers.UpdateTimelineEvent)
			r.Delete("/timeline-events/{event_id}", handlers.DeleteTimelineEvent)

			r.Get("/trips/{trip_id}/documents", handlers.ListDocuments)
			r.Post("/trips/{trip_id}/documents", handlers.AddDocument)
			r.Delete("/documents/{document_id}", handlers.DeleteDocument)

			r.Get("/trips/{trip_id}/members", handlers.ListTripMembers)
			r.Post("/trips/{trip_id}/members", handlers.AddTripMember)
			r.Delete("/trip-members/{member_id}", handlers.RemoveTripMember)
		})
	})

	return r
}
