package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"progym-go/internal/domain/plan"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Start snapshots one day of the user's plan into a new IN_PROGRESS session.
// The active session check runs first, so a user with a running session always gets
// ErrActiveSessionExists whatever plan or day was requested.
func (s *Service) Start(ctx context.Context, input StartInput) (*Tree, error) {
	var result Tree
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.LockUser(ctx, input.UserID); err != nil {
			return err
		}

		_, err := tx.GetActiveSession(ctx, input.UserID)
		if err == nil {
			return ErrActiveSessionExists
		}
		if !errors.Is(err, ErrNoActiveSession) {
			return err
		}

		workoutPlan, day, err := planDay(ctx, tx, input)
		if err != nil {
			return err
		}

		tree := buildTree(input.UserID, workoutPlan.ID, input.DayIndex, day, s.now().UTC())
		if err := tx.CreateTree(ctx, &tree); err != nil {
			return err
		}

		result = tree
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// planDay reads the plan through the caller's transaction so the snapshot and the new
// session commit together.
func planDay(ctx context.Context, tx Repository, input StartInput) (*plan.WorkoutPlan, plan.Day, error) {
	workoutPlan, err := tx.GetPlan(ctx, input.UserID)
	if err != nil {
		return nil, plan.Day{}, err
	}
	if input.PlanID != "" && input.PlanID != workoutPlan.ID {
		return nil, plan.Day{}, plan.ErrPlanNotFound
	}

	days, err := workoutPlan.DecodeDays()
	if err != nil {
		return nil, plan.Day{}, err
	}
	if input.DayIndex < 0 || input.DayIndex >= len(days) {
		return nil, plan.Day{}, fmt.Errorf("%w: plan has %d days, got index %d", ErrDayIndexOutOfRange, len(days), input.DayIndex)
	}

	return workoutPlan, days[input.DayIndex], nil
}

func buildTree(userID, planID string, dayIndex int, day plan.Day, startedAt time.Time) Tree {
	sessionID := uuid.NewString()
	tree := Tree{
		WorkoutSession: WorkoutSession{
			ID:            sessionID,
			UserID:        userID,
			WorkoutPlanID: &planID,
			Status:        StatusInProgress,
			StartedAt:     startedAt,
		},
	}

	sessionDay := DayWithExercises{
		SessionDay: SessionDay{
			ID:               uuid.NewString(),
			WorkoutSessionID: sessionID,
			PlanDayName:      day.Name,
			Order:            dayIndex,
			Status:           StatusPending,
		},
		Exercises: make([]ExerciseWithSets, 0, len(day.Exercises)),
	}

	for i, planned := range day.Exercises {
		exercise := ExerciseWithSets{
			SessionExercise: SessionExercise{
				ID:               uuid.NewString(),
				SessionDayID:     sessionDay.ID,
				PlanExerciseName: planned.Name,
				MuscleGroup:      planned.MuscleGroup,
				RestSeconds:      planned.RestSeconds,
				Order:            i,
				Status:           StatusPending,
			},
			Sets: make([]SessionSet, 0, planned.Sets),
		}

		for n := 1; n <= planned.Sets; n++ {
			repsMin, repsMax, weight := planned.Reps.Min, planned.Reps.Max, planned.Weight
			exercise.Sets = append(exercise.Sets, SessionSet{
				ID:                uuid.NewString(),
				SessionExerciseID: exercise.ID,
				Order:             n,
				Status:            StatusPending,
				PlanRepsMin:       &repsMin,
				PlanRepsMax:       &repsMax,
				PlanWeight:        &weight,
			})
		}
		sessionDay.Exercises = append(sessionDay.Exercises, exercise)
	}

	tree.Days = []DayWithExercises{sessionDay}
	return tree
}

// CompleteSet records the actual result of a pending set and marks it COMPLETED.
func (s *Service) CompleteSet(ctx context.Context, input CompleteSetInput) (*SessionSet, error) {
	if input.RepsDone < 0 || input.WeightLifted < 0 {
		return nil, fmt.Errorf("%w: reps and weight must not be negative", ErrInvalidSetResult)
	}

	return s.transitionSet(ctx, input.UserID, input.SetID, StatusCompleted, func(tx Repository, set *SessionSet) error {
		repsDone, weightLifted := input.RepsDone, input.WeightLifted
		set.RepsDone = &repsDone
		set.WeightLifted = &weightLifted
		return tx.RecordSetResult(ctx, set.ID, repsDone, weightLifted)
	})
}

// SkipSet marks a pending set SKIPPED.
func (s *Service) SkipSet(ctx context.Context, userID, setID string) (*SessionSet, error) {
	return s.transitionSet(ctx, userID, setID, StatusSkipped, nil)
}

func (s *Service) transitionSet(ctx context.Context, userID, setID string, status Status, record func(Repository, *SessionSet) error) (*SessionSet, error) {
	var result SessionSet
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		location, err := tx.GetSetLocation(ctx, setID)
		if err != nil {
			return err
		}

		session, err := tx.LockSession(ctx, location.SessionID)
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				return ErrSetNotFound
			}
			return err
		}
		if session.UserID != userID {
			return ErrForbidden
		}
		if session.Status != StatusInProgress {
			return ErrSessionNotActive
		}

		tree, err := loadTree(ctx, tx, session)
		if err != nil {
			return err
		}

		pt := newProgressTree(tree)
		idx, ok := pt.setIndex(setID)
		if !ok {
			return ErrSetNotFound
		}
		if pt.status(idx) != StatusPending {
			return ErrSetNotPending
		}

		set := findSet(tree, setID)
		if record != nil {
			if err := record(tx, set); err != nil {
				return err
			}
		}

		pt.apply(idx, status)
		if err := tx.UpdateStatuses(ctx, pt.changes()); err != nil {
			return err
		}

		result = *set
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Finish skips every pending set, stamps completion time and duration and completes the session.
// A session that is missing, owned by someone else or already finished yields ErrNoActiveSession.
func (s *Service) Finish(ctx context.Context, userID, sessionID string) (*Tree, error) {
	var result Tree
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		session, err := tx.LockSession(ctx, sessionID)
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				return ErrNoActiveSession
			}
			return err
		}
		if session.UserID != userID || session.Status != StatusInProgress {
			return ErrNoActiveSession
		}

		tree, err := loadTree(ctx, tx, session)
		if err != nil {
			return err
		}

		pt := newProgressTree(tree)
		for _, idx := range pt.pendingSets() {
			pt.apply(idx, StatusSkipped)
		}
		pt.settle()

		if err := tx.UpdateStatuses(ctx, pt.changes()); err != nil {
			return err
		}

		completedAt := s.now().UTC()
		duration := int(completedAt.Sub(tree.StartedAt) / time.Minute)
		if duration < 0 {
			duration = 0
		}
		tree.Status = StatusCompleted
		tree.CompletedAt = &completedAt
		tree.DurationMinutes = &duration

		if err := tx.FinishSession(ctx, &tree.WorkoutSession); err != nil {
			return err
		}

		result = *tree
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Cancel deletes an in-progress session together with its whole subtree.
func (s *Service) Cancel(ctx context.Context, userID, sessionID string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		session, err := tx.LockSession(ctx, sessionID)
		if err != nil {
			return err
		}
		if session.UserID != userID {
			return ErrForbidden
		}
		if session.Status != StatusInProgress {
			return ErrSessionNotActive
		}
		return tx.DeleteSession(ctx, sessionID)
	})
}

// GetActive returns the user's IN_PROGRESS session or ErrNoActiveSession.
func (s *Service) GetActive(ctx context.Context, userID string) (*Tree, error) {
	session, err := s.repo.GetActiveSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	return loadTree(ctx, s.repo, session)
}

func (s *Service) Get(ctx context.Context, userID, sessionID string) (*Tree, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}
	return loadTree(ctx, s.repo, session)
}

func loadTree(ctx context.Context, repo Repository, session *WorkoutSession) (*Tree, error) {
	days, err := repo.LoadDays(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	if days == nil {
		days = []DayWithExercises{}
	}
	return &Tree{WorkoutSession: *session, Days: days}, nil
}

func findSet(tree *Tree, setID string) *SessionSet {
	for i := range tree.Days {
		for j := range tree.Days[i].Exercises {
			sets := tree.Days[i].Exercises[j].Sets
			for k := range sets {
				if sets[k].ID == setID {
					return &sets[k]
				}
			}
		}
	}
	return nil
}
