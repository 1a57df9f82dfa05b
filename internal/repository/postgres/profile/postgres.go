package profile

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	profiledomain "progym-go/internal/domain/profile"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(profiledomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetProfile(ctx context.Context, userID string) (*profiledomain.Profile, error) {
	var profile profiledomain.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profiledomain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile overwrites every attribute, keeping created_at of an existing row.
func (r *PostgresRepository) UpsertProfile(ctx context.Context, profile *profiledomain.Profile) error {
	now := time.Now().UTC()
	profile.UpdatedAt = now
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}

	return r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"username",
					"weight",
					"height",
					"age",
					"fitness_goal",
					"experience_level",
					"workouts_per_week",
					"session_duration",
					"updated_at",
				}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "created_at"}}},
		).
		Create(profile).Error
}

func (r *PostgresRepository) GetPreferences(ctx context.Context, userID string) (profiledomain.Preferences, error) {
	prefs := profiledomain.Preferences{
		RestrictionRuleIDs: []int64{},
		MuscleFocusIDs:     []int64{},
	}

	if err := r.db.WithContext(ctx).
		Model(&profiledomain.UserRestrictionRule{}).
		Where("user_id = ?", userID).
		Order("restriction_rule_id asc").
		Pluck("restriction_rule_id", &prefs.RestrictionRuleIDs).Error; err != nil {
		return profiledomain.Preferences{}, err
	}

	if err := r.db.WithContext(ctx).
		Model(&profiledomain.UserMuscleFocus{}).
		Where("user_id = ?", userID).
		Order("muscle_focus_id asc").
		Pluck("muscle_focus_id", &prefs.MuscleFocusIDs).Error; err != nil {
		return profiledomain.Preferences{}, err
	}

	return prefs, nil
}

func (r *PostgresRepository) ReplacePreferences(ctx context.Context, userID string, prefs profiledomain.Preferences) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&profiledomain.UserRestrictionRule{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&profiledomain.UserMuscleFocus{}).Error; err != nil {
		return err
	}

	if len(prefs.RestrictionRuleIDs) > 0 {
		rows := make([]profiledomain.UserRestrictionRule, 0, len(prefs.RestrictionRuleIDs))
		for _, id := range prefs.RestrictionRuleIDs {
			rows = append(rows, profiledomain.UserRestrictionRule{UserID: userID, RestrictionRuleID: id})
		}
		if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return err
		}
	}

	if len(prefs.MuscleFocusIDs) > 0 {
		rows := make([]profiledomain.UserMuscleFocus, 0, len(prefs.MuscleFocusIDs))
		for _, id := range prefs.MuscleFocusIDs {
			rows = append(rows, profiledomain.UserMuscleFocus{UserID: userID, MuscleFocusID: id})
		}
		if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return err
		}
	}

	return nil
}
