package app

import (
	"net/http"

	"gorm.io/gorm"

	"household-app-go/internal/config"
	"household-app-go/internal/db"
	householddomain "household-app-go/internal/domain/household"
	shoppingdomain "household-app-go/internal/domain/shopping"
	tripdomain "household-app-go/internal/domain/trip"
	wishlistdomain "household-app-go/internal/domain/wishlist"
	"household-app-go/internal/kvstore"
	"household-app-go/internal/repository"
	"household-app-go/internal/transport/httpserver"
	"household-app-go/internal/transport/httpserver/handler"
	"household-app-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	log        logger.Logger
	httpServer *http.Server
	db         *gorm.DB
	store      kvstore.Store
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	var dbConn *gorm.DB
	var store kvstore.Store
	if cfg.OfflineMode {
		log.Info("app: offline mode, using local store", "path", cfg.LocalStore.Path)
		store = kvstore.Open(kvstore.Config{
			Path:      cfg.LocalStore.Path,
			Namespace: cfg.LocalStore.Namespace,
		}, log)
	} else {
		log.Info("app: initializing database")
		dbConn, err = db.NewPostgres(cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(dbConn); err != nil {
			return nil, err
		}
	}

	households := householddomain.NewService(repository.NewHouseholdRepository(cfg, dbConn, store), log)
	wishlists := wishlistdomain.NewService(repository.NewWishlistRepository(cfg, dbConn, store), log)
	shopping := shoppingdomain.NewService(repository.NewShoppingRepository(cfg, dbConn, store), log)
	trips := tripdomain.NewService(repository.NewTripRepository(cfg, dbConn, store), log)

	handlers := handler.New(households, wishlists, shopping, trips, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers)

	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		log:        log,
		httpServer: srv,
		db:         dbConn,
		store:      store,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if closer, ok := a.store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			a.log.Warn("app: closing local store failed", "err", err)
		}
	}
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
