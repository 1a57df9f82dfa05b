package plan

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetPlanByUser(ctx context.Context, userID string) (*WorkoutPlan, error)
	CreatePlan(ctx context.Context, plan *WorkoutPlan) error
	DeletePlanByUser(ctx context.Context, userID string) (bool, error)
}
