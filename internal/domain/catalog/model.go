package catalog

const (
	MuscleChest     = "chest"
	MuscleBack      = "back"
	MuscleLegs      = "legs"
	MuscleShoulders = "shoulders"
	MuscleArms      = "arms"
	MuscleCore      = "core"
)

type MuscleGroup struct {
	Slug string `gorm:"primaryKey;size:32" yaml:"slug"`
	Name string `gorm:"not null" yaml:"name"`
}

func (MuscleGroup) TableName() string {
	return "muscle_groups"
}

// Exercise is a catalog entry. Catalog order is ascending ID, which the plan generator relies on.
type Exercise struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"not null;uniqueIndex"`
	MuscleGroup string `gorm:"column:muscle_group;not null;index"`
	Equipment   string `gorm:"not null;default:''"`
	IsCompound  bool   `gorm:"not null;default:false"`
	Difficulty  string `gorm:"not null;default:''"`
	Description string `gorm:"not null;default:''"`
}

func (Exercise) TableName() string {
	return "exercises"
}

type RestrictionRule struct {
	ID          int64  `gorm:"primaryKey"`
	Slug        string `gorm:"not null;uniqueIndex"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null;default:''"`

	ExerciseIDs []int64 `gorm:"-"`
}

func (RestrictionRule) TableName() string {
	return "restriction_rules"
}

type RestrictionRuleExercise struct {
	RestrictionRuleID int64 `gorm:"primaryKey"`
	ExerciseID        int64 `gorm:"primaryKey"`
}

func (RestrictionRuleExercise) TableName() string {
	return "restriction_rule_exercises"
}

// MuscleFocus shifts the number of exercises picked for one muscle group by PriorityDelta.
type MuscleFocus struct {
	ID            int64  `gorm:"primaryKey"`
	Slug          string `gorm:"not null;uniqueIndex"`
	Name          string `gorm:"not null"`
	MuscleGroup   string `gorm:"column:muscle_group;not null"`
	PriorityDelta int    `gorm:"not null;default:0"`
}

func (MuscleFocus) TableName() string {
	return "muscle_focuses"
}

type ImportResult struct {
	MuscleGroups     int
	Exercises        int
	RestrictionRules int
	MuscleFocuses    int
}
