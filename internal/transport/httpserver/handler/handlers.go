package handler

import (
	"context"

	catalogdomain "progym-go/internal/domain/catalog"
	plandomain "progym-go/internal/domain/plan"
	profiledomain "progym-go/internal/domain/profile"
	sessiondomain "progym-go/internal/domain/session"
	"progym-go/pkg/logger"
)

type CatalogService interface {
	ListMuscleGroups(ctx context.Context) ([]catalogdomain.MuscleGroup, error)
	ListExercises(ctx context.Context) ([]catalogdomain.Exercise, error)
	ListRestrictionRules(ctx context.Context) ([]catalogdomain.RestrictionRule, error)
	ListMuscleFocuses(ctx context.Context) ([]catalogdomain.MuscleFocus, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*profiledomain.Profile, error)
	UpdateProfile(ctx context.Context, input profiledomain.UpdateProfileInput) (*profiledomain.Profile, error)
	GetPreferences(ctx context.Context, userID string) (profiledomain.Preferences, error)
	UpdatePreferences(ctx context.Context, input profiledomain.UpdatePreferencesInput) (profiledomain.Preferences, error)
}

type PlanService interface {
	GeneratePlan(ctx context.Context, userID string) (*plandomain.WorkoutPlan, error)
	GetPlan(ctx context.Context, userID string) (*plandomain.WorkoutPlan, error)
	DeletePlan(ctx context.Context, userID string) error
}

type SessionService interface {
	Start(ctx context.Context, input sessiondomain.StartInput) (*sessiondomain.Tree, error)
	CompleteSet(ctx context.Context, input sessiondomain.CompleteSetInput) (*sessiondomain.SessionSet, error)
	SkipSet(ctx context.Context, userID, setID string) (*sessiondomain.SessionSet, error)
	Finish(ctx context.Context, userID, sessionID string) (*sessiondomain.Tree, error)
	Cancel(ctx context.Context, userID, sessionID string) error
	GetActive(ctx context.Context, userID string) (*sessiondomain.Tree, error)
	Get(ctx context.Context, userID, sessionID string) (*sessiondomain.Tree, error)
}

// DBPinger reports database reachability for the health endpoint.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

type Handlers struct {
	Catalog  CatalogService
	Profiles ProfileService
	Plans    PlanService
	Sessions SessionService
	db       DBPinger
	log      logger.Logger
}

func New(catalog CatalogService, profiles ProfileService, plans PlanService, sessions SessionService, db DBPinger, log logger.Logger) *Handlers {
	return &Handlers{
		Catalog:  catalog,
		Profiles: profiles,
		Plans:    plans,
		Sessions: sessions,
		db:       db,
		log:      log,
	}
}
