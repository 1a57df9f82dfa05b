package plan

import (
	"fmt"
	"sort"
	"strings"

	"progym-go/internal/domain/catalog"
	"progym-go/internal/domain/profile"
)

type athlete struct {
	weight          float64
	age             int
	goal            string
	level           string
	workoutsPerWeek int
}

// Generate builds a plan from the profile, the resolved preferences and the catalog.
// It is pure: the same inputs always produce the same plan, day order and exercise order included.
// Catalog order is the order of the exercises slice.
func Generate(p profile.Profile, prefs profile.ResolvedPreferences, exercises []catalog.Exercise) (PlanData, error) {
	a, err := athleteFromProfile(p)
	if err != nil {
		return PlanData{}, err
	}

	split := chooseSplit(a.workoutsPerWeek, a.level)
	reps := repRangeFor(a.goal, a.level, a.age)
	rest := restSecondsFor(a.goal, a.age)
	available := filterExercises(exercises, prefs.RestrictionRules, a.age)
	deltas := focusDeltas(prefs.MuscleFocuses)

	schedule := splitSchedule(split, a.workoutsPerWeek)
	days := make([]Day, 0, len(schedule))
	for _, template := range schedule {
		day := Day{Name: template.name, Exercises: []WorkoutExercise{}}
		for _, muscle := range template.muscles {
			count := exerciseCountFor(a.level, a.age, deltas[muscle])
			for _, exercise := range pickForMuscle(available, muscle, count) {
				day.Exercises = append(day.Exercises, WorkoutExercise{
					Name:        exercise.Name,
					MuscleGroup: exercise.MuscleGroup,
					Sets:        setCountFor(a.goal, a.level, exercise.IsCompound, a.age),
					Reps:        reps,
					Weight:      startingWeight(a.weight, exercise.Name, reps, a.age),
					Equipment:   exercise.Equipment,
					RestSeconds: rest,
				})
			}
		}
		days = append(days, day)
	}

	return PlanData{SplitType: split, Days: days}, nil
}

func athleteFromProfile(p profile.Profile) (athlete, error) {
	var missing []string
	if p.Weight == nil || *p.Weight <= 0 {
		missing = append(missing, "weight")
	}
	if p.Height == nil || *p.Height <= 0 {
		missing = append(missing, "height")
	}
	if p.Age == nil || *p.Age <= 0 {
		missing = append(missing, "age")
	}
	if p.FitnessGoal == nil || *p.FitnessGoal == "" {
		missing = append(missing, "fitness_goal")
	}
	if p.ExperienceLevel == nil || *p.ExperienceLevel == "" {
		missing = append(missing, "experience_level")
	}
	if p.WorkoutsPerWeek == nil || *p.WorkoutsPerWeek <= 0 {
		missing = append(missing, "workouts_per_week")
	}
	if len(missing) > 0 {
		return athlete{}, fmt.Errorf("%w: missing %s", ErrIncompleteProfile, strings.Join(missing, ", "))
	}

	return athlete{
		weight:          *p.Weight,
		age:             *p.Age,
		goal:            *p.FitnessGoal,
		level:           *p.ExperienceLevel,
		workoutsPerWeek: *p.WorkoutsPerWeek,
	}, nil
}

// filterExercises drops every exercise forbidden by an active rule, plus the senior list past 55.
func filterExercises(exercises []catalog.Exercise, rules []catalog.RestrictionRule, age int) []catalog.Exercise {
	forbidden := make(map[int64]struct{})
	for _, rule := range rules {
		for _, id := range rule.ExerciseIDs {
			forbidden[id] = struct{}{}
		}
	}

	result := make([]catalog.Exercise, 0, len(exercises))
	for _, exercise := range exercises {
		if _, ok := forbidden[exercise.ID]; ok {
			continue
		}
		if isSenior(age) {
			if _, ok := seniorRestricted[exercise.Name]; ok {
				continue
			}
		}
		result = append(result, exercise)
	}
	return result
}

func focusDeltas(focuses []catalog.MuscleFocus) map[string]int {
	deltas := make(map[string]int, len(focuses))
	for _, focus := range focuses {
		deltas[focus.MuscleGroup] += focus.PriorityDelta
	}
	return deltas
}

// pickForMuscle keeps catalog order within compound and isolation exercises, compound first.
func pickForMuscle(exercises []catalog.Exercise, muscle string, count int) []catalog.Exercise {
	if count <= 0 {
		return nil
	}

	matching := make([]catalog.Exercise, 0)
	for _, exercise := range exercises {
		if exercise.MuscleGroup == muscle {
			matching = append(matching, exercise)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].IsCompound && !matching[j].IsCompound
	})

	if count < len(matching) {
		return matching[:count]
	}
	return matching
}
