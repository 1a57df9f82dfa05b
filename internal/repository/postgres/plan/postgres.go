package plan

import (
	"context"
	"errors"

	"gorm.io/gorm"
	plandomain "progym-go/internal/domain/plan"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(plandomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetPlanByUser(ctx context.Context, userID string) (*plandomain.WorkoutPlan, error) {
	var plan plandomain.WorkoutPlan
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plandomain.ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PostgresRepository) CreatePlan(ctx context.Context, plan *plandomain.WorkoutPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// DeletePlanByUser removes the user's plan. Sessions started from it keep their snapshot.
func (r *PostgresRepository) DeletePlanByUser(ctx context.Context, userID string) (bool, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&plandomain.WorkoutPlan{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
