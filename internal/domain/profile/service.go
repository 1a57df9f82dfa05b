package profile

import (
	"context"
	"fmt"
	"strings"

	"progym-go/internal/domain/catalog"
)

const (
	maxWeightKg        = 500
	maxHeightCm        = 300
	maxAge             = 120
	maxWorkoutsPerWeek = 7
	maxSessionMinutes  = 600
)

// CatalogReader resolves preference ids to catalog rows.
type CatalogReader interface {
	RestrictionRulesByIDs(ctx context.Context, ids []int64) ([]catalog.RestrictionRule, error)
	MuscleFocusesByIDs(ctx context.Context, ids []int64) ([]catalog.MuscleFocus, error)
}

type Service struct {
	repo    Repository
	catalog CatalogReader
}

func NewService(repo Repository, catalog CatalogReader) *Service {
	return &Service{repo: repo, catalog: catalog}
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// UpdateProfile replaces every attribute of the profile, creating it on first use.
// A nil attribute clears the stored value.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*Profile, error) {
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	profile := Profile{
		UserID:          input.UserID,
		Username:        strings.TrimSpace(input.Username),
		Weight:          input.Weight,
		Height:          input.Height,
		Age:             input.Age,
		FitnessGoal:     normalizeEnum(input.FitnessGoal),
		ExperienceLevel: normalizeEnum(input.ExperienceLevel),
		WorkoutsPerWeek: input.WorkoutsPerWeek,
		SessionDuration: input.SessionDuration,
	}

	if err := s.repo.UpsertProfile(ctx, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Service) GetPreferences(ctx context.Context, userID string) (Preferences, error) {
	if _, err := s.repo.GetProfile(ctx, userID); err != nil {
		return Preferences{}, err
	}
	return s.repo.GetPreferences(ctx, userID)
}

func (s *Service) UpdatePreferences(ctx context.Context, input UpdatePreferencesInput) (Preferences, error) {
	rules, err := s.catalog.RestrictionRulesByIDs(ctx, input.RestrictionRuleIDs)
	if err != nil {
		return Preferences{}, err
	}
	focuses, err := s.catalog.MuscleFocusesByIDs(ctx, input.MuscleFocusIDs)
	if err != nil {
		return Preferences{}, err
	}

	prefs := Preferences{
		RestrictionRuleIDs: make([]int64, 0, len(rules)),
		MuscleFocusIDs:     make([]int64, 0, len(focuses)),
	}
	for _, rule := range rules {
		prefs.RestrictionRuleIDs = append(prefs.RestrictionRuleIDs, rule.ID)
	}
	for _, focus := range focuses {
		prefs.MuscleFocusIDs = append(prefs.MuscleFocusIDs, focus.ID)
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetProfile(ctx, input.UserID); err != nil {
			return err
		}
		return tx.ReplacePreferences(ctx, input.UserID, prefs)
	})
	if err != nil {
		return Preferences{}, err
	}
	return prefs, nil
}

// ResolvePreferences loads the user's selected restriction rules and muscle focuses.
// A user who never saved preferences resolves to empty lists.
func (s *Service) ResolvePreferences(ctx context.Context, userID string) (ResolvedPreferences, error) {
	prefs, err := s.repo.GetPreferences(ctx, userID)
	if err != nil {
		return ResolvedPreferences{}, err
	}

	rules, err := s.catalog.RestrictionRulesByIDs(ctx, prefs.RestrictionRuleIDs)
	if err != nil {
		return ResolvedPreferences{}, err
	}
	focuses, err := s.catalog.MuscleFocusesByIDs(ctx, prefs.MuscleFocusIDs)
	if err != nil {
		return ResolvedPreferences{}, err
	}

	return ResolvedPreferences{
		RestrictionRules: rules,
		MuscleFocuses:    focuses,
	}, nil
}

func validateProfileInput(input UpdateProfileInput) error {
	if strings.TrimSpace(input.UserID) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidProfile)
	}
	if input.Weight != nil && (*input.Weight <= 0 || *input.Weight > maxWeightKg) {
		return fmt.Errorf("%w: weight must be in (0, %d]", ErrInvalidProfile, maxWeightKg)
	}
	if input.Height != nil && (*input.Height <= 0 || *input.Height > maxHeightCm) {
		return fmt.Errorf("%w: height must be in (0, %d]", ErrInvalidProfile, maxHeightCm)
	}
	if input.Age != nil && (*input.Age <= 0 || *input.Age > maxAge) {
		return fmt.Errorf("%w: age must be in (0, %d]", ErrInvalidProfile, maxAge)
	}
	if input.WorkoutsPerWeek != nil && (*input.WorkoutsPerWeek <= 0 || *input.WorkoutsPerWeek > maxWorkoutsPerWeek) {
		return fmt.Errorf("%w: workouts per week must be in [1, %d]", ErrInvalidProfile, maxWorkoutsPerWeek)
	}
	if input.SessionDuration != nil && (*input.SessionDuration <= 0 || *input.SessionDuration > maxSessionMinutes) {
		return fmt.Errorf("%w: session duration must be in (0, %d]", ErrInvalidProfile, maxSessionMinutes)
	}
	if goal := normalizeEnum(input.FitnessGoal); goal != nil && !IsValidGoal(*goal) {
		return fmt.Errorf("%w: unknown fitness goal %q", ErrInvalidProfile, *goal)
	}
	if level := normalizeEnum(input.ExperienceLevel); level != nil && !IsValidLevel(*level) {
		return fmt.Errorf("%w: unknown experience level %q", ErrInvalidProfile, *level)
	}
	return nil
}

func IsValidGoal(goal string) bool {
	switch goal {
	case GoalFatLoss, GoalMassGain, GoalStrength:
		return true
	default:
		return false
	}
}

func IsValidLevel(level string) bool {
	switch level {
	case LevelNovice, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

func normalizeEnum(value *string) *string {
	if value == nil {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(*value))
	if normalized == "" {
		return nil
	}
	return &normalized
}
