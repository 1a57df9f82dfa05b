package session

import "time"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusSkipped    Status = "SKIPPED"
)

// Done reports whether a node no longer blocks its parent from completing.
func (s Status) Done() bool {
	return s == StatusCompleted || s == StatusSkipped
}

type WorkoutSession struct {
	ID              string     `gorm:"type:uuid;primaryKey"`
	UserID          string     `gorm:"type:uuid;not null;index"`
	WorkoutPlanID   *string    `gorm:"type:uuid"`
	Status          Status     `gorm:"type:varchar(16);not null"`
	StartedAt       time.Time  `gorm:"not null"`
	CompletedAt     *time.Time `gorm:"column:completed_at"`
	DurationMinutes *int       `gorm:"column:duration_minutes"`
}

func (WorkoutSession) TableName() string {
	return "workout_sessions"
}

type SessionDay struct {
	ID               string `gorm:"type:uuid;primaryKey"`
	WorkoutSessionID string `gorm:"type:uuid;not null;index"`
	PlanDayName      string `gorm:"not null"`
	Order            int    `gorm:"column:order_index;not null"`
	Status           Status `gorm:"type:varchar(16);not null"`
}

func (SessionDay) TableName() string {
	return "session_days"
}

type SessionExercise struct {
	ID               string `gorm:"type:uuid;primaryKey"`
	SessionDayID     string `gorm:"type:uuid;not null;index"`
	PlanExerciseName string `gorm:"not null"`
	MuscleGroup      string `gorm:"not null;default:''"`
	RestSeconds      int    `gorm:"not null;default:0"`
	Order            int    `gorm:"column:order_index;not null"`
	Status           Status `gorm:"type:varchar(16);not null"`
}

func (SessionExercise) TableName() string {
	return "session_exercises"
}

type SessionSet struct {
	ID                string   `gorm:"type:uuid;primaryKey"`
	SessionExerciseID string   `gorm:"type:uuid;not null;index"`
	Order             int      `gorm:"column:order_index;not null"`
	Status            Status   `gorm:"type:varchar(16);not null"`
	PlanRepsMin       *int     `gorm:"column:plan_reps_min"`
	PlanRepsMax       *int     `gorm:"column:plan_reps_max"`
	PlanWeight        *float64 `gorm:"type:numeric(7,2)"`
	RepsDone          *int     `gorm:"column:reps_done"`
	WeightLifted      *float64 `gorm:"type:numeric(7,2)"`
}

func (SessionSet) TableName() string {
	return "session_sets"
}

type ExerciseWithSets struct {
	SessionExercise
	Sets []SessionSet
}

type DayWithExercises struct {
	SessionDay
	Exercises []ExerciseWithSets
}

// Tree is a session with its whole subtree, children ordered by Order.
type Tree struct {
	WorkoutSession
	Days []DayWithExercises
}

// SetLocation identifies the ancestors of a set.
type SetLocation struct {
	SetID      string
	ExerciseID string
	DayID      string
	SessionID  string
}

type NodeKind string

const (
	NodeDay      NodeKind = "day"
	NodeExercise NodeKind = "exercise"
	NodeSet      NodeKind = "set"
)

// StatusChange is one node whose status differs from what was loaded.
type StatusChange struct {
	Kind   NodeKind
	ID     string
	Status Status
}

type StartInput struct {
	UserID string
	// PlanID is optional. When set it must be the user's current plan.
	PlanID   string
	DayIndex int
}

type CompleteSetInput struct {
	UserID       string
	SetID        string
	RepsDone     int
	WeightLifted float64
}
