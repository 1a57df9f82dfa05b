package profile

import (
	"time"

	"progym-go/internal/domain/catalog"
)

const (
	GoalFatLoss  = "fat_loss"
	GoalMassGain = "mass_gain"
	GoalStrength = "strength"

	LevelNovice       = "novice"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Profile holds the physical and training attributes of one user. Every attribute is optional
// until a plan is generated.
type Profile struct {
	UserID          string    `gorm:"type:uuid;primaryKey"`
	Username        string    `gorm:"not null;default:''"`
	Weight          *float64  `gorm:"type:numeric(6,2)"`
	Height          *int      `gorm:"column:height"`
	Age             *int      `gorm:"column:age"`
	FitnessGoal     *string   `gorm:"type:varchar(32)"`
	ExperienceLevel *string   `gorm:"type:varchar(32)"`
	WorkoutsPerWeek *int      `gorm:"column:workouts_per_week"`
	SessionDuration *int      `gorm:"column:session_duration"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "user_profiles"
}

type UserRestrictionRule struct {
	UserID            string `gorm:"type:uuid;primaryKey"`
	RestrictionRuleID int64  `gorm:"primaryKey"`
}

func (UserRestrictionRule) TableName() string {
	return "user_restriction_rules"
}

type UserMuscleFocus struct {
	UserID        string `gorm:"type:uuid;primaryKey"`
	MuscleFocusID int64  `gorm:"primaryKey"`
}

func (UserMuscleFocus) TableName() string {
	return "user_muscle_focuses"
}

// Preferences is the user's selection by id.
type Preferences struct {
	RestrictionRuleIDs []int64
	MuscleFocusIDs     []int64
}

// ResolvedPreferences is Preferences with the catalog rows loaded.
type ResolvedPreferences struct {
	RestrictionRules []catalog.RestrictionRule
	MuscleFocuses    []catalog.MuscleFocus
}

type UpdateProfileInput struct {
	UserID          string
	Username        string
	Weight          *float64
	Height          *int
	Age             *int
	FitnessGoal     *string
	ExperienceLevel *string
	WorkoutsPerWeek *int
	SessionDuration *int
}

type UpdatePreferencesInput struct {
	UserID             string
	RestrictionRuleIDs []int64
	MuscleFocusIDs     []int64
}
