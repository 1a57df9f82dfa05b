package plan

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const (
	SplitFullBody     = "full_body"
	SplitUpperLower   = "upper_lower"
	SplitPushPullLegs = "push_pull_legs"
)

type RepRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type WorkoutExercise struct {
	Name        string   `json:"name"`
	MuscleGroup string   `json:"muscle_group"`
	Sets        int      `json:"sets"`
	Reps        RepRange `json:"reps"`
	Weight      float64  `json:"weight"`
	Equipment   string   `json:"equipment"`
	RestSeconds int      `json:"rest_seconds"`
}

type Day struct {
	Name      string            `json:"day_name"`
	Exercises []WorkoutExercise `json:"exercises"`
}

// PlanData is the generator output.
type PlanData struct {
	SplitType string
	Days      []Day
}

// WorkoutPlan is the persisted plan. A user owns at most one.
type WorkoutPlan struct {
	ID          string         `gorm:"type:uuid;primaryKey"`
	UserID      string         `gorm:"type:uuid;not null;uniqueIndex"`
	Name        string         `gorm:"not null"`
	SplitType   string         `gorm:"type:varchar(32);not null"`
	Days        datatypes.JSON `gorm:"type:jsonb;not null"`
	GeneratedAt time.Time      `gorm:"not null"`
}

func (WorkoutPlan) TableName() string {
	return "workout_plans"
}

// DecodeDays returns the stored plan days.
func (p WorkoutPlan) DecodeDays() ([]Day, error) {
	if len(p.Days) == 0 {
		return []Day{}, nil
	}

	var days []Day
	if err := json.Unmarshal(p.Days, &days); err != nil {
		return nil, fmt.Errorf("decode plan days: %w", err)
	}
	return days, nil
}

func encodeDays(days []Day) (datatypes.JSON, error) {
	if days == nil {
		days = []Day{}
	}
	raw, err := json.Marshal(days)
	if err != nil {
		return nil, fmt.Errorf("encode plan days: %w", err)
	}
	return datatypes.JSON(raw), nil
}
