package session

import (
	"context"

	"progym-go/internal/domain/plan"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	// LockUser serializes session creation per user until the transaction ends.
	LockUser(ctx context.Context, userID string) error
	// GetPlan returns the user's current plan or plan.ErrPlanNotFound, blocking plan
	// replacement until the transaction ends.
	GetPlan(ctx context.Context, userID string) (*plan.WorkoutPlan, error)
	GetActiveSession(ctx context.Context, userID string) (*WorkoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*WorkoutSession, error)
	// LockSession reads the session row and holds a row lock until the transaction ends.
	LockSession(ctx context.Context, sessionID string) (*WorkoutSession, error)
	GetSetLocation(ctx context.Context, setID string) (*SetLocation, error)
	LoadDays(ctx context.Context, sessionID string) ([]DayWithExercises, error)
	CreateTree(ctx context.Context, tree *Tree) error
	RecordSetResult(ctx context.Context, setID string, repsDone int, weightLifted float64) error
	UpdateStatuses(ctx context.Context, changes []StatusChange) error
	FinishSession(ctx context.Context, session *WorkoutSession) error
	DeleteSession(ctx context.Context, sessionID string) error
}
