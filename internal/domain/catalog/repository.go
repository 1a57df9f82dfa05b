package catalog

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	ListMuscleGroups(ctx context.Context) ([]MuscleGroup, error)
	ListExercises(ctx context.Context) ([]Exercise, error)
	ListRestrictionRules(ctx context.Context) ([]RestrictionRule, error)
	ListMuscleFocuses(ctx context.Context) ([]MuscleFocus, error)
	GetRestrictionRulesByIDs(ctx context.Context, ids []int64) ([]RestrictionRule, error)
	GetMuscleFocusesByIDs(ctx context.Context, ids []int64) ([]MuscleFocus, error)
	UpsertMuscleGroups(ctx context.Context, groups []MuscleGroup) error
	UpsertExercises(ctx context.Context, exercises []Exercise) error
	UpsertRestrictionRule(ctx context.Context, rule *RestrictionRule) error
	ReplaceRuleExercises(ctx context.Context, ruleID int64, exerciseIDs []int64) error
	UpsertMuscleFocuses(ctx context.Context, focuses []MuscleFocus) error
}
