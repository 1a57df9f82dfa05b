package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	plandomain "progym-go/internal/domain/plan"
	sessiondomain "progym-go/internal/domain/session"
)

const (
	uniqueViolation        = "23505"
	activeSessionIndexName = "uq_workout_sessions_active_user"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(sessiondomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

// LockUser takes a transaction-scoped advisory lock keyed by the user id.
func (r *PostgresRepository) LockUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", userID).Error
}

func (r *PostgresRepository) GetPlan(ctx context.Context, userID string) (*plandomain.WorkoutPlan, error) {
	var plan plandomain.WorkoutPlan
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("user_id = ?", userID).
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, plandomain.ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PostgresRepository) GetActiveSession(ctx context.Context, userID string) (*sessiondomain.WorkoutSession, error) {
	var session sessiondomain.WorkoutSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, sessiondomain.StatusInProgress).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, sessiondomain.ErrNoActiveSession
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *PostgresRepository) GetSession(ctx context.Context, sessionID string) (*sessiondomain.WorkoutSession, error) {
	return r.findSession(r.db.WithContext(ctx), sessionID)
}

func (r *PostgresRepository) LockSession(ctx context.Context, sessionID string) (*sessiondomain.WorkoutSession, error) {
	return r.findSession(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), sessionID)
}

func (r *PostgresRepository) findSession(db *gorm.DB, sessionID string) (*sessiondomain.WorkoutSession, error) {
	var session sessiondomain.WorkoutSession
	if err := db.Where("id = ?", sessionID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sessiondomain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *PostgresRepository) GetSetLocation(ctx context.Context, setID string) (*sessiondomain.SetLocation, error) {
	var rows []sessiondomain.SetLocation
	if err := r.db.WithContext(ctx).
		Table("session_sets").
		Select("session_sets.id AS set_id, session_exercises.id AS exercise_id, session_days.id AS day_id, session_days.workout_session_id AS session_id").
		Joins("join session_exercises on session_exercises.id = session_sets.session_exercise_id").
		Joins("join session_days on session_days.id = session_exercises.session_day_id").
		Where("session_sets.id = ?", setID).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, sessiondomain.ErrSetNotFound
	}
	return &rows[0], nil
}

// LoadDays returns the days of a session with exercises and sets, all ordered by order_index.
func (r *PostgresRepository) LoadDays(ctx context.Context, sessionID string) ([]sessiondomain.DayWithExercises, error) {
	var days []sessiondomain.SessionDay
	if err := r.db.WithContext(ctx).
		Where("workout_session_id = ?", sessionID).
		Order("order_index asc").
		Find(&days).Error; err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return []sessiondomain.DayWithExercises{}, nil
	}

	dayIDs := make([]string, 0, len(days))
	for _, day := range days {
		dayIDs = append(dayIDs, day.ID)
	}

	var exercises []sessiondomain.SessionExercise
	if err := r.db.WithContext(ctx).
		Where("session_day_id IN ?", dayIDs).
		Order("order_index asc").
		Find(&exercises).Error; err != nil {
		return nil, err
	}

	exerciseIDs := make([]string, 0, len(exercises))
	for _, exercise := range exercises {
		exerciseIDs = append(exerciseIDs, exercise.ID)
	}

	var sets []sessiondomain.SessionSet
	if len(exerciseIDs) > 0 {
		if err := r.db.WithContext(ctx).
			Where("session_exercise_id IN ?", exerciseIDs).
			Order("order_index asc").
			Find(&sets).Error; err != nil {
			return nil, err
		}
	}

	setsByExercise := make(map[string][]sessiondomain.SessionSet, len(exercises))
	for _, set := range sets {
		setsByExercise[set.SessionExerciseID] = append(setsByExercise[set.SessionExerciseID], set)
	}

	exercisesByDay := make(map[string][]sessiondomain.ExerciseWithSets, len(days))
	for _, exercise := range exercises {
		withSets := sessiondomain.ExerciseWithSets{
			SessionExercise: exercise,
			Sets:            setsByExercise[exercise.ID],
		}
		if withSets.Sets == nil {
			withSets.Sets = []sessiondomain.SessionSet{}
		}
		exercisesByDay[exercise.SessionDayID] = append(exercisesByDay[exercise.SessionDayID], withSets)
	}

	result := make([]sessiondomain.DayWithExercises, 0, len(days))
	for _, day := range days {
		withExercises := sessiondomain.DayWithExercises{
			SessionDay: day,
			Exercises:  exercisesByDay[day.ID],
		}
		if withExercises.Exercises == nil {
			withExercises.Exercises = []sessiondomain.ExerciseWithSets{}
		}
		result = append(result, withExercises)
	}
	return result, nil
}

// CreateTree inserts the session and its whole subtree. A concurrent start that slipped past the
// advisory lock is caught by the partial unique index and reported as ErrActiveSessionExists.
func (r *PostgresRepository) CreateTree(ctx context.Context, tree *sessiondomain.Tree) error {
	db := r.db.WithContext(ctx)

	if err := db.Create(&tree.WorkoutSession).Error; err != nil {
		if isActiveSessionConflict(err) {
			return sessiondomain.ErrActiveSessionExists
		}
		return err
	}

	var (
		days      []sessiondomain.SessionDay
		exercises []sessiondomain.SessionExercise
		sets      []sessiondomain.SessionSet
	)
	for _, day := range tree.Days {
		days = append(days, day.SessionDay)
		for _, exercise := range day.Exercises {
			exercises = append(exercises, exercise.SessionExercise)
			sets = append(sets, exercise.Sets...)
		}
	}

	if len(days) > 0 {
		if err := db.Create(&days).Error; err != nil {
			return fmt.Errorf("create session days: %w", err)
		}
	}
	if len(exercises) > 0 {
		if err := db.Create(&exercises).Error; err != nil {
			return fmt.Errorf("create session exercises: %w", err)
		}
	}
	if len(sets) > 0 {
		if err := db.CreateInBatches(&sets, 200).Error; err != nil {
			return fmt.Errorf("create session sets: %w", err)
		}
	}
	return nil
}

func isActiveSessionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolation && pgErr.ConstraintName == activeSessionIndexName
}

func (r *PostgresRepository) RecordSetResult(ctx context.Context, setID string, repsDone int, weightLifted float64) error {
	return r.db.WithContext(ctx).
		Model(&sessiondomain.SessionSet{}).
		Where("id = ?", setID).
		Updates(map[string]interface{}{
			"reps_done":     repsDone,
			"weight_lifted": weightLifted,
		}).Error
}

func (r *PostgresRepository) UpdateStatuses(ctx context.Context, changes []sessiondomain.StatusChange) error {
	for _, change := range changes {
		table, err := statusTable(change.Kind)
		if err != nil {
			return err
		}
		if err := r.db.WithContext(ctx).
			Table(table).
			Where("id = ?", change.ID).
			Update("status", change.Status).Error; err != nil {
			return err
		}
	}
	return nil
}

func statusTable(kind sessiondomain.NodeKind) (string, error) {
	switch kind {
	case sessiondomain.NodeDay:
		return sessiondomain.SessionDay{}.TableName(), nil
	case sessiondomain.NodeExercise:
		return sessiondomain.SessionExercise{}.TableName(), nil
	case sessiondomain.NodeSet:
		return sessiondomain.SessionSet{}.TableName(), nil
	default:
		return "", fmt.Errorf("unknown node kind %q", kind)
	}
}

func (r *PostgresRepository) FinishSession(ctx context.Context, session *sessiondomain.WorkoutSession) error {
	return r.db.WithContext(ctx).
		Model(&sessiondomain.WorkoutSession{}).
		Where("id = ?", session.ID).
		Updates(map[string]interface{}{
			"status":           session.Status,
			"completed_at":     session.CompletedAt,
			"duration_minutes": session.DurationMinutes,
		}).Error
}

// DeleteSession removes the session row; days, exercises and sets go with it by cascade.
func (r *PostgresRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Where("id = ?", sessionID).Delete(&sessiondomain.WorkoutSession{}).Error
}
