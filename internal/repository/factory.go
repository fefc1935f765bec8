package repository

import (
	"gorm.io/gorm"

	"household-app-go/internal/config"
	householddomain "household-app-go/internal/domain/household"
	shoppingdomain "household-app-go/internal/domain/shopping"
	tripdomain "household-app-go/internal/domain/trip"
	wishlistdomain "household-app-go/internal/domain/wishlist"
	"household-app-go/internal/kvstore"
	"household-app-go/internal/repository/localstore"
	pghousehold "household-app-go/internal/repository/postgres/household"
	pgshopping "household-app-go/internal/repository/postgres/shopping"
	pgtrip "household-app-go/internal/repository/postgres/trip"
	pgwishlist "household-app-go/internal/repository/postgres/wishlist"
)

// The factories below are the only place that reads the offline flag.
// They return interfaces, so callers cannot tell which backend they
// hold; each is called exactly once at composition time.

func NewHouseholdRepository(cfg config.Config, db *gorm.DB, store kvstore.Store) householddomain.Repository {
	if cfg.OfflineMode {
		return localstore.NewHouseholdRepository(store)
	}
	return pghousehold.NewPostgres(db)
}

func NewWishlistRepository(cfg config.Config, db *gorm.DB, store kvstore.Store) wishlistdomain.Repository {
	if cfg.OfflineMode {
		return localstore.NewWishlistRepository(store)
	}
	return pgwishlist.NewPostgres(db)
}

func NewShoppingRepository(cfg config.Config, db *gorm.DB, store kvstore.Store) shoppingdomain.Repository {
	if cfg.OfflineMode {
		return localstore.NewShoppingRepository(store)
	}
	return pgshopping.NewPostgres(db)
}

func NewTripRepository(cfg config.Config, db *gorm.DB, store kvstore.Store) tripdomain.Repository {
	if cfg.OfflineMode {
		return localstore.NewTripRepository(store)
	}
	return pgtrip.NewPostgres(db)
}
