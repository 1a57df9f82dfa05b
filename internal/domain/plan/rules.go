package plan

import (
	"math"

	"progym-go/internal/domain/catalog"
	"progym-go/internal/domain/profile"
)

const (
	baseExerciseCount  = 2
	defaultCoefficient = 0.2
	minStartingWeight  = 5.0
	weightIncrement    = 2.5
)

type splitDay struct {
	name    string
	muscles []string
}

var splitTemplates = map[string][]splitDay{
	SplitFullBody: {
		{name: "Day 1", muscles: []string{catalog.MuscleChest, catalog.MuscleBack, catalog.MuscleLegs}},
		{name: "Day 2", muscles: []string{catalog.MuscleChest, catalog.MuscleBack, catalog.MuscleLegs}},
		{name: "Day 3", muscles: []string{catalog.MuscleChest, catalog.MuscleBack, catalog.MuscleLegs}},
	},
	SplitUpperLower: {
		{name: "Day 1 (Upper)", muscles: []string{catalog.MuscleChest, catalog.MuscleBack, catalog.MuscleShoulders, catalog.MuscleArms}},
		{name: "Day 2 (Lower)", muscles: []string{catalog.MuscleLegs}},
		{name: "Day 3 (Upper)", muscles: []string{catalog.MuscleChest, catalog.MuscleBack, catalog.MuscleShoulders}},
	},
	SplitPushPullLegs: {
		{name: "Day 1 (Push)", muscles: []string{catalog.MuscleChest, catalog.MuscleShoulders}},
		{name: "Day 2 (Pull)", muscles: []string{catalog.MuscleBack, catalog.MuscleArms}},
		{name: "Day 3 (Legs)", muscles: []string{catalog.MuscleLegs}},
	},
}

var repRanges = map[string]map[string]RepRange{
	profile.GoalFatLoss: {
		profile.LevelNovice:       {Min: 12, Max: 15},
		profile.LevelIntermediate: {Min: 15, Max: 20},
		profile.LevelAdvanced:     {Min: 12, Max: 15},
	},
	profile.GoalMassGain: {
		profile.LevelNovice:       {Min: 8, Max: 12},
		profile.LevelIntermediate: {Min: 6, Max: 10},
		profile.LevelAdvanced:     {Min: 6, Max: 8},
	},
	profile.GoalStrength: {
		profile.LevelNovice:       {Min: 5, Max: 8},
		profile.LevelIntermediate: {Min: 3, Max: 6},
		profile.LevelAdvanced:     {Min: 1, Max: 5},
	},
}

var defaultRepRange = RepRange{Min: 8, Max: 12}

// baseSets is indexed by goal, then [isolation, compound].
var baseSets = map[string][2]int{
	profile.GoalFatLoss:  {2, 3},
	profile.GoalMassGain: {3, 4},
	profile.GoalStrength: {3, 5},
}

const defaultSets = 3

var baseRest = map[string]int{
	profile.GoalFatLoss:  45,
	profile.GoalMassGain: 60,
	profile.GoalStrength: 90,
}

const defaultRest = 60

var weightCoefficients = map[string]float64{
	"Barbell Bench Press": 0.4,
	"Barbell Back Squat":  0.5,
	"Deadlift":            0.6,
}

// Excluded for athletes over 55 regardless of restriction rules.
var seniorRestricted = map[string]struct{}{
	"Deadlift":           {},
	"Barbell Back Squat": {},
}

func isSenior(age int) bool {
	return age > 55
}

func isYouth(age int) bool {
	return age < 18
}

func chooseSplit(workoutsPerWeek int, level string) string {
	switch {
	case workoutsPerWeek <= 2:
		return SplitFullBody
	case workoutsPerWeek == 3:
		if level == profile.LevelNovice {
			return SplitFullBody
		}
		return SplitUpperLower
	default:
		return SplitPushPullLegs
	}
}

// splitSchedule returns the first workoutsPerWeek template days of the split.
func splitSchedule(split string, workoutsPerWeek int) []splitDay {
	template := splitTemplates[split]
	if workoutsPerWeek < len(template) {
		return template[:workoutsPerWeek]
	}
	return template
}

func repRangeFor(goal, level string, age int) RepRange {
	base := defaultRepRange
	if byLevel, ok := repRanges[goal]; ok {
		if r, ok := byLevel[level]; ok {
			base = r
		}
	}

	switch {
	case isSenior(age):
		return RepRange{Min: 12, Max: 15}
	case age > 40:
		return RepRange{Min: max(8, base.Min), Max: min(15, base.Max)}
	case isYouth(age):
		return RepRange{Min: max(12, base.Min), Max: max(15, base.Max)}
	default:
		return base
	}
}

func setCountFor(goal, level string, compound bool, age int) int {
	sets := defaultSets
	if byType, ok := baseSets[goal]; ok {
		if compound {
			sets = byType[1]
		} else {
			sets = byType[0]
		}
	}

	if level == profile.LevelNovice {
		sets = max(2, sets-1)
	}
	if level == profile.LevelAdvanced {
		sets++
	}
	if isYouth(age) || isSenior(age) {
		sets = max(2, sets-1)
	}
	return sets
}

func restSecondsFor(goal string, age int) int {
	rest, ok := baseRest[goal]
	if !ok {
		rest = defaultRest
	}

	switch {
	case isSenior(age):
		rest += 30
	case age > 40:
		rest += 15
	}
	return rest
}

// startingWeight rounds to the nearest 2.5 kg with ties to even and never goes below 5 kg.
func startingWeight(bodyweight float64, exerciseName string, reps RepRange, age int) float64 {
	coefficient, ok := weightCoefficients[exerciseName]
	if !ok {
		coefficient = defaultCoefficient
	}
	weight := bodyweight * coefficient

	avgReps := float64(reps.Min+reps.Max) / 2
	switch {
	case avgReps > 15:
		weight *= 0.7
	case avgReps < 6:
		weight *= 1.3
	}

	switch {
	case isSenior(age):
		weight *= 0.7
	case age > 40:
		weight *= 0.8
	case isYouth(age):
		weight *= 0.6
	}

	rounded := math.RoundToEven(weight/weightIncrement) * weightIncrement
	return math.Max(minStartingWeight, rounded)
}

func exerciseCountFor(level string, age int, focusDelta int) int {
	count := baseExerciseCount
	if level == profile.LevelNovice {
		count = max(1, count-1)
	}
	if isYouth(age) || isSenior(age) {
		count = max(1, count-1)
	}
	return max(0, count+focusDelta)
}
