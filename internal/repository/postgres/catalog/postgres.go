package catalog

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	catalogdomain "progym-go/internal/domain/catalog"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(catalogdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) ListMuscleGroups(ctx context.Context) ([]catalogdomain.MuscleGroup, error) {
	var groups []catalogdomain.MuscleGroup
	if err := r.db.WithContext(ctx).Order("slug asc").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *PostgresRepository) ListExercises(ctx context.Context) ([]catalogdomain.Exercise, error) {
	var exercises []catalogdomain.Exercise
	if err := r.db.WithContext(ctx).Order("id asc").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *PostgresRepository) ListRestrictionRules(ctx context.Context) ([]catalogdomain.RestrictionRule, error) {
	var rules []catalogdomain.RestrictionRule
	if err := r.db.WithContext(ctx).Order("id asc").Find(&rules).Error; err != nil {
		return nil, err
	}
	return r.attachRuleExercises(ctx, rules)
}

func (r *PostgresRepository) ListMuscleFocuses(ctx context.Context) ([]catalogdomain.MuscleFocus, error) {
	var focuses []catalogdomain.MuscleFocus
	if err := r.db.WithContext(ctx).Order("id asc").Find(&focuses).Error; err != nil {
		return nil, err
	}
	return focuses, nil
}

func (r *PostgresRepository) GetRestrictionRulesByIDs(ctx context.Context, ids []int64) ([]catalogdomain.RestrictionRule, error) {
	if len(ids) == 0 {
		return []catalogdomain.RestrictionRule{}, nil
	}

	var rules []catalogdomain.RestrictionRule
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id asc").Find(&rules).Error; err != nil {
		return nil, err
	}
	return r.attachRuleExercises(ctx, rules)
}

func (r *PostgresRepository) GetMuscleFocusesByIDs(ctx context.Context, ids []int64) ([]catalogdomain.MuscleFocus, error) {
	if len(ids) == 0 {
		return []catalogdomain.MuscleFocus{}, nil
	}

	var focuses []catalogdomain.MuscleFocus
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id asc").Find(&focuses).Error; err != nil {
		return nil, err
	}
	return focuses, nil
}

func (r *PostgresRepository) attachRuleExercises(ctx context.Context, rules []catalogdomain.RestrictionRule) ([]catalogdomain.RestrictionRule, error) {
	if len(rules) == 0 {
		return rules, nil
	}

	ruleIDs := make([]int64, 0, len(rules))
	for _, rule := range rules {
		ruleIDs = append(ruleIDs, rule.ID)
	}

	var links []catalogdomain.RestrictionRuleExercise
	if err := r.db.WithContext(ctx).
		Where("restriction_rule_id IN ?", ruleIDs).
		Order("restriction_rule_id asc, exercise_id asc").
		Find(&links).Error; err != nil {
		return nil, err
	}

	byRule := make(map[int64][]int64, len(rules))
	for _, link := range links {
		byRule[link.RestrictionRuleID] = append(byRule[link.RestrictionRuleID], link.ExerciseID)
	}
	for i := range rules {
		rules[i].ExerciseIDs = byRule[rules[i].ID]
		if rules[i].ExerciseIDs == nil {
			rules[i].ExerciseIDs = []int64{}
		}
	}
	return rules, nil
}

func (r *PostgresRepository) UpsertMuscleGroups(ctx context.Context, groups []catalogdomain.MuscleGroup) error {
	if len(groups) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).
		Create(&groups).Error
}

// UpsertExercises inserts or updates exercises by name and fills in their ids.
func (r *PostgresRepository) UpsertExercises(ctx context.Context, exercises []catalogdomain.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"muscle_group", "equipment", "is_compound", "difficulty", "description"}),
		}).
		Create(&exercises).Error
}

func (r *PostgresRepository) UpsertRestrictionRule(ctx context.Context, rule *catalogdomain.RestrictionRule) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description"}),
		}).
		Create(rule).Error
}

func (r *PostgresRepository) ReplaceRuleExercises(ctx context.Context, ruleID int64, exerciseIDs []int64) error {
	if err := r.db.WithContext(ctx).
		Where("restriction_rule_id = ?", ruleID).
		Delete(&catalogdomain.RestrictionRuleExercise{}).Error; err != nil {
		return err
	}
	if len(exerciseIDs) == 0 {
		return nil
	}

	links := make([]catalogdomain.RestrictionRuleExercise, 0, len(exerciseIDs))
	for _, id := range exerciseIDs {
		links = append(links, catalogdomain.RestrictionRuleExercise{RestrictionRuleID: ruleID, ExerciseID: id})
	}
	return r.db.WithContext(ctx).Create(&links).Error
}

func (r *PostgresRepository) UpsertMuscleFocuses(ctx context.Context, focuses []catalogdomain.MuscleFocus) error {
	if len(focuses) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "muscle_group", "priority_delta"}),
		}).
		Create(&focuses).Error
}
