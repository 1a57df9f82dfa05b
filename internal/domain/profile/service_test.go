package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"progym-go/internal/domain/catalog"
)

type fakeProfileRepo struct {
	profiles    map[string]*Profile
	preferences map[string]Preferences
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles:    make(map[string]*Profile),
		preferences: make(map[string]Preferences),
	}
}

func (r *fakeProfileRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeProfileRepo) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeProfileRepo) UpsertProfile(ctx context.Context, profile *Profile) error {
	stored := *profile
	r.profiles[profile.UserID] = &stored
	return nil
}

func (r *fakeProfileRepo) GetPreferences(ctx context.Context, userID string) (Preferences, error) {
	return r.preferences[userID], nil
}

func (r *fakeProfileRepo) ReplacePreferences(ctx context.Context, userID string, prefs Preferences) error {
	r.preferences[userID] = prefs
	return nil
}

type fakeCatalog struct {
	rules   map[int64]catalog.RestrictionRule
	focuses map[int64]catalog.MuscleFocus
}

func (c fakeCatalog) RestrictionRulesByIDs(ctx context.Context, ids []int64) ([]catalog.RestrictionRule, error) {
	result := []catalog.RestrictionRule{}
	for _, id := range ids {
		rule, ok := c.rules[id]
		if !ok {
			return nil, catalog.ErrRestrictionRuleUnknown
		}
		result = append(result, rule)
	}
	return result, nil
}

func (c fakeCatalog) MuscleFocusesByIDs(ctx context.Context, ids []int64) ([]catalog.MuscleFocus, error) {
	result := []catalog.MuscleFocus{}
	for _, id := range ids {
		focus, ok := c.focuses[id]
		if !ok {
			return nil, catalog.ErrMuscleFocusUnknown
		}
		result = append(result, focus)
	}
	return result, nil
}

func newTestCatalog() fakeCatalog {
	return fakeCatalog{
		rules: map[int64]catalog.RestrictionRule{
			1: {ID: 1, Slug: "sore_knees", ExerciseIDs: []int64{10}},
		},
		focuses: map[int64]catalog.MuscleFocus{
			7: {ID: 7, Slug: "legs_focus_minus", MuscleGroup: catalog.MuscleLegs, PriorityDelta: -1},
		},
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string  { return &v }

func TestUpdateProfileNormalizesEnums(t *testing.T) {
	repo := newFakeProfileRepo()
	service := NewService(repo, newTestCatalog())

	updated, err := service.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID:          "user-1",
		Username:        "  anna ",
		Weight:          floatPtr(62.5),
		Age:             intPtr(29),
		FitnessGoal:     stringPtr(" Mass_Gain "),
		ExperienceLevel: stringPtr(""),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Username != "anna" {
		t.Fatalf("expected trimmed username, got %q", updated.Username)
	}
	if updated.FitnessGoal == nil || *updated.FitnessGoal != GoalMassGain {
		t.Fatalf("expected normalized goal, got %v", updated.FitnessGoal)
	}
	if updated.ExperienceLevel != nil {
		t.Fatalf("expected empty level to be cleared, got %q", *updated.ExperienceLevel)
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	service := NewService(newFakeProfileRepo(), newTestCatalog())

	cases := []UpdateProfileInput{
		{UserID: ""},
		{UserID: "u", Weight: floatPtr(-1)},
		{UserID: "u", Age: intPtr(0)},
		{UserID: "u", WorkoutsPerWeek: intPtr(8)},
		{UserID: "u", FitnessGoal: stringPtr("bulk")},
		{UserID: "u", ExperienceLevel: stringPtr("expert")},
	}
	for i, input := range cases {
		if _, err := service.UpdateProfile(context.Background(), input); !errors.Is(err, ErrInvalidProfile) {
			t.Fatalf("case %d: expected ErrInvalidProfile, got %v", i, err)
		}
	}
}

func TestUpdatePreferencesRequiresProfile(t *testing.T) {
	service := NewService(newFakeProfileRepo(), newTestCatalog())

	_, err := service.UpdatePreferences(context.Background(), UpdatePreferencesInput{UserID: "ghost"})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestUpdatePreferencesRejectsUnknownIDs(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["user-1"] = &Profile{UserID: "user-1"}
	service := NewService(repo, newTestCatalog())

	_, err := service.UpdatePreferences(context.Background(), UpdatePreferencesInput{
		UserID:             "user-1",
		RestrictionRuleIDs: []int64{42},
	})
	if !errors.Is(err, catalog.ErrRestrictionRuleUnknown) {
		t.Fatalf("expected ErrRestrictionRuleUnknown, got %v", err)
	}
	if _, ok := repo.preferences["user-1"]; ok {
		t.Fatalf("expected preferences untouched")
	}
}

func TestResolvePreferences(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["user-1"] = &Profile{UserID: "user-1"}
	service := NewService(repo, newTestCatalog())

	if _, err := service.UpdatePreferences(context.Background(), UpdatePreferencesInput{
		UserID:             "user-1",
		RestrictionRuleIDs: []int64{1},
		MuscleFocusIDs:     []int64{7},
	}); err != nil {
		t.Fatalf("update preferences: %v", err)
	}

	resolved, err := service.ResolvePreferences(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := ResolvedPreferences{
		RestrictionRules: []catalog.RestrictionRule{{ID: 1, Slug: "sore_knees", ExerciseIDs: []int64{10}}},
		MuscleFocuses:    []catalog.MuscleFocus{{ID: 7, Slug: "legs_focus_minus", MuscleGroup: catalog.MuscleLegs, PriorityDelta: -1}},
	}
	if diff := cmp.Diff(want, resolved); diff != "" {
		t.Fatalf("resolved preferences mismatch (-want +got):\n%s", diff)
	}

	empty, err := service.ResolvePreferences(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("expected no error for user without preferences, got %v", err)
	}
	if len(empty.RestrictionRules) != 0 || len(empty.MuscleFocuses) != 0 {
		t.Fatalf("expected empty preferences, got %+v", empty)
	}
}
