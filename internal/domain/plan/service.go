package plan

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"progym-go/internal/domain/catalog"
	"progym-go/internal/domain/profile"
)

const planDateLayout = "2006-01-02"

type ProfileProvider interface {
	GetProfile(ctx context.Context, userID string) (*profile.Profile, error)
	ResolvePreferences(ctx context.Context, userID string) (profile.ResolvedPreferences, error)
}

type CatalogProvider interface {
	ListExercises(ctx context.Context) ([]catalog.Exercise, error)
}

type Service struct {
	repo     Repository
	profiles ProfileProvider
	catalog  CatalogProvider
	now      func() time.Time
}

func NewService(repo Repository, profiles ProfileProvider, catalog CatalogProvider) *Service {
	return &Service{
		repo:     repo,
		profiles: profiles,
		catalog:  catalog,
		now:      time.Now,
	}
}

// GeneratePlan generates a fresh plan and replaces the user's current one in a single transaction.
func (s *Service) GeneratePlan(ctx context.Context, userID string) (*WorkoutPlan, error) {
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs, err := s.profiles.ResolvePreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	exercises, err := s.catalog.ListExercises(ctx)
	if err != nil {
		return nil, err
	}

	data, err := Generate(*p, prefs, exercises)
	if err != nil {
		return nil, err
	}

	days, err := encodeDays(data.Days)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	plan := WorkoutPlan{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        planName(p.Username, now),
		SplitType:   data.SplitType,
		Days:        days,
		GeneratedAt: now,
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.DeletePlanByUser(ctx, userID); err != nil {
			return err
		}
		return tx.CreatePlan(ctx, &plan)
	})
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

func (s *Service) GetPlan(ctx context.Context, userID string) (*WorkoutPlan, error) {
	return s.repo.GetPlanByUser(ctx, userID)
}

func (s *Service) DeletePlan(ctx context.Context, userID string) error {
	deleted, err := s.repo.DeletePlanByUser(ctx, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPlanNotFound
	}
	return nil
}

func planName(username string, at time.Time) string {
	username = strings.TrimSpace(username)
	if username == "" {
		return "Plan from " + at.Format(planDateLayout)
	}
	return "Plan for " + username + " from " + at.Format(planDateLayout)
}
