package app

import (
	"net/http"

	"gorm.io/gorm"
	"progym-go/internal/config"
	"progym-go/internal/db"
	catalogdomain "progym-go/internal/domain/catalog"
	plandomain "progym-go/internal/domain/plan"
	profiledomain "progym-go/internal/domain/profile"
	sessiondomain "progym-go/internal/domain/session"
	"progym-go/internal/repository/inmemory"
	catalogrepo "progym-go/internal/repository/postgres/catalog"
	planrepo "progym-go/internal/repository/postgres/plan"
	profilerepo "progym-go/internal/repository/postgres/profile"
	sessionrepo "progym-go/internal/repository/postgres/session"
	"progym-go/internal/transport/httpserver"
	"progym-go/internal/transport/httpserver/handler"
	"progym-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

type Services struct {
	Catalog  *catalogdomain.Service
	Profiles *profiledomain.Service
	Plans    *plandomain.Service
	Sessions *sessiondomain.Service
}

// NewServices wires the domain services over their Postgres repositories.
func NewServices(cfg config.Config, dbConn *gorm.DB) Services {
	catalog := catalogdomain.NewServiceWithCache(
		catalogrepo.NewPostgres(dbConn),
		inmemory.NewInMemoryCatalogCache(),
		cfg.Catalog.CacheTTL,
	)
	profiles := profiledomain.NewService(profilerepo.NewPostgres(dbConn), catalog)
	plans := plandomain.NewService(planrepo.NewPostgres(dbConn), profiles, catalog)
	sessions := sessiondomain.NewService(sessionrepo.NewPostgres(dbConn))

	return Services{
		Catalog:  catalog,
		Profiles: profiles,
		Plans:    plans,
		Sessions: sessions,
	}
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if cfg.DB.MigrateOnStart {
		if err := db.Migrate(cfg.DB.URL(), log); err != nil {
			_ = db.Close(dbConn)
			return nil, err
		}
	}

	sqlDB, err := dbConn.DB()
	if err != nil {
		_ = db.Close(dbConn)
		return nil, err
	}

	log.Info("app: initializing router")
	services := NewServices(cfg, dbConn)
	handlers := handler.New(services.Catalog, services.Profiles, services.Plans, services.Sessions, sqlDB, log)
	router := httpserver.NewRouter(cfg, handlers, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	return db.Close(a.db)
}
