package plan

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"progym-go/internal/domain/catalog"
	"progym-go/internal/domain/profile"
)

func athleteProfile(weight float64, age int, goal, level string, perWeek int) profile.Profile {
	height := 180
	return profile.Profile{
		UserID:          "user-1",
		Username:        "anna",
		Weight:          &weight,
		Height:          &height,
		Age:             &age,
		FitnessGoal:     &goal,
		ExperienceLevel: &level,
		WorkoutsPerWeek: &perWeek,
	}
}

// Two compound exercises per muscle group for chest, back and legs.
func sixExerciseCatalog() []catalog.Exercise {
	return []catalog.Exercise{
		{ID: 1, Name: "Barbell Bench Press", MuscleGroup: catalog.MuscleChest, Equipment: "barbell", IsCompound: true},
		{ID: 2, Name: "Push-up", MuscleGroup: catalog.MuscleChest, Equipment: "bodyweight", IsCompound: true},
		{ID: 3, Name: "Deadlift", MuscleGroup: catalog.MuscleBack, Equipment: "barbell", IsCompound: true},
		{ID: 4, Name: "Pull-up", MuscleGroup: catalog.MuscleBack, Equipment: "pull-up bar", IsCompound: true},
		{ID: 5, Name: "Barbell Back Squat", MuscleGroup: catalog.MuscleLegs, Equipment: "barbell", IsCompound: true},
		{ID: 6, Name: "Leg Press", MuscleGroup: catalog.MuscleLegs, Equipment: "machine", IsCompound: true},
	}
}

func planExercise(name, muscle, equipment string, sets int, reps RepRange, weight float64, rest int) WorkoutExercise {
	return WorkoutExercise{
		Name:        name,
		MuscleGroup: muscle,
		Sets:        sets,
		Reps:        reps,
		Weight:      weight,
		Equipment:   equipment,
		RestSeconds: rest,
	}
}

func exerciseNames(data PlanData) []string {
	var names []string
	for _, day := range data.Days {
		for _, exercise := range day.Exercises {
			names = append(names, exercise.Name)
		}
	}
	return names
}

// Three sessions a week for an intermediate lifter follow the upper/lower split.
func TestGenerateIntermediateMassGainThreeDays(t *testing.T) {
	data, err := Generate(athleteProfile(80, 30, profile.GoalMassGain, profile.LevelIntermediate, 3), profile.ResolvedPreferences{}, sixExerciseCatalog())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	reps := RepRange{Min: 6, Max: 10}
	bench := planExercise("Barbell Bench Press", catalog.MuscleChest, "barbell", 4, reps, 32.5, 60)
	pushUp := planExercise("Push-up", catalog.MuscleChest, "bodyweight", 4, reps, 15, 60)
	deadlift := planExercise("Deadlift", catalog.MuscleBack, "barbell", 4, reps, 47.5, 60)
	pullUp := planExercise("Pull-up", catalog.MuscleBack, "pull-up bar", 4, reps, 15, 60)
	squat := planExercise("Barbell Back Squat", catalog.MuscleLegs, "barbell", 4, reps, 40, 60)
	legPress := planExercise("Leg Press", catalog.MuscleLegs, "machine", 4, reps, 15, 60)

	want := PlanData{
		SplitType: SplitUpperLower,
		Days: []Day{
			{Name: "Day 1 (Upper)", Exercises: []WorkoutExercise{bench, pushUp, deadlift, pullUp}},
			{Name: "Day 2 (Lower)", Exercises: []WorkoutExercise{squat, legPress}},
			{Name: "Day 3 (Upper)", Exercises: []WorkoutExercise{bench, pushUp, deadlift, pullUp}},
		},
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Fatalf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateNoviceFullBody(t *testing.T) {
	data, err := Generate(athleteProfile(80, 30, profile.GoalMassGain, profile.LevelNovice, 3), profile.ResolvedPreferences{}, sixExerciseCatalog())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if data.SplitType != SplitFullBody {
		t.Fatalf("expected full body split, got %s", data.SplitType)
	}
	if len(data.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(data.Days))
	}

	reps := RepRange{Min: 8, Max: 12}
	wantDay := []WorkoutExercise{
		planExercise("Barbell Bench Press", catalog.MuscleChest, "barbell", 3, reps, 32.5, 60),
		planExercise("Deadlift", catalog.MuscleBack, "barbell", 3, reps, 47.5, 60),
		planExercise("Barbell Back Squat", catalog.MuscleLegs, "barbell", 3, reps, 40, 60),
	}
	for i, day := range data.Days {
		if want := "Day " + string(rune('1'+i)); day.Name != want {
			t.Fatalf("expected day name %q, got %q", want, day.Name)
		}
		if diff := cmp.Diff(wantDay, day.Exercises); diff != "" {
			t.Fatalf("day %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestGenerateTruncatesToWorkoutsPerWeek(t *testing.T) {
	cases := []struct {
		perWeek   int
		level     string
		wantSplit string
		wantDays  []string
	}{
		{1, profile.LevelAdvanced, SplitFullBody, []string{"Day 1"}},
		{2, profile.LevelIntermediate, SplitFullBody, []string{"Day 1", "Day 2"}},
		{4, profile.LevelNovice, SplitPushPullLegs, []string{"Day 1 (Push)", "Day 2 (Pull)", "Day 3 (Legs)"}},
		{6, profile.LevelAdvanced, SplitPushPullLegs, []string{"Day 1 (Push)", "Day 2 (Pull)", "Day 3 (Legs)"}},
	}

	for _, tc := range cases {
		data, err := Generate(athleteProfile(80, 30, profile.GoalStrength, tc.level, tc.perWeek), profile.ResolvedPreferences{}, sixExerciseCatalog())
		if err != nil {
			t.Fatalf("per week %d: expected no error, got %v", tc.perWeek, err)
		}
		if data.SplitType != tc.wantSplit {
			t.Fatalf("per week %d: expected split %s, got %s", tc.perWeek, tc.wantSplit, data.SplitType)
		}
		var names []string
		for _, day := range data.Days {
			names = append(names, day.Name)
		}
		if diff := cmp.Diff(tc.wantDays, names); diff != "" {
			t.Fatalf("per week %d: day names mismatch (-want +got):\n%s", tc.perWeek, diff)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	p := athleteProfile(92.5, 44, profile.GoalFatLoss, profile.LevelAdvanced, 5)
	prefs := profile.ResolvedPreferences{
		RestrictionRules: []catalog.RestrictionRule{{ID: 1, ExerciseIDs: []int64{2}}},
		MuscleFocuses: []catalog.MuscleFocus{
			{ID: 1, MuscleGroup: catalog.MuscleChest, PriorityDelta: 1},
			{ID: 2, MuscleGroup: catalog.MuscleLegs, PriorityDelta: -1},
		},
	}

	first, err := Generate(p, prefs, sixExerciseCatalog())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Generate(p, prefs, sixExerciseCatalog())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestGenerateEnforcesRestrictions(t *testing.T) {
	prefs := profile.ResolvedPreferences{
		RestrictionRules: []catalog.RestrictionRule{
			{ID: 1, Slug: "sore_shoulders", ExerciseIDs: []int64{1}},
			{ID: 2, Slug: "sore_knees", ExerciseIDs: []int64{5, 6}},
		},
	}

	for _, level := range []string{profile.LevelNovice, profile.LevelIntermediate, profile.LevelAdvanced} {
		for perWeek := 1; perWeek <= 5; perWeek++ {
			data, err := Generate(athleteProfile(80, 30, profile.GoalMassGain, level, perWeek), prefs, sixExerciseCatalog())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			for _, name := range exerciseNames(data) {
				switch name {
				case "Barbell Bench Press", "Barbell Back Squat", "Leg Press":
					t.Fatalf("%s/%d: restricted exercise %q in plan", level, perWeek, name)
				}
			}
		}
	}
}

func TestGenerateSeniorOverrides(t *testing.T) {
	goals := []string{profile.GoalFatLoss, profile.GoalMassGain, profile.GoalStrength}
	levels := []string{profile.LevelNovice, profile.LevelIntermediate, profile.LevelAdvanced}

	for _, goal := range goals {
		for _, level := range levels {
			data, err := Generate(athleteProfile(80, 60, goal, level, 3), profile.ResolvedPreferences{}, sixExerciseCatalog())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			for _, day := range data.Days {
				for _, exercise := range day.Exercises {
					if exercise.Reps != (RepRange{Min: 12, Max: 15}) {
						t.Fatalf("%s/%s: expected reps 12-15, got %+v", goal, level, exercise.Reps)
					}
					if exercise.Name == "Deadlift" || exercise.Name == "Barbell Back Squat" {
						t.Fatalf("%s/%s: senior restricted exercise %q in plan", goal, level, exercise.Name)
					}
				}
			}
		}
	}
}

func TestGenerateAppliesMuscleFocuses(t *testing.T) {
	prefs := profile.ResolvedPreferences{
		MuscleFocuses: []catalog.MuscleFocus{
			{ID: 1, MuscleGroup: catalog.MuscleLegs, PriorityDelta: -1},
			{ID: 2, MuscleGroup: catalog.MuscleLegs, PriorityDelta: -1},
			{ID: 3, MuscleGroup: catalog.MuscleChest, PriorityDelta: 1},
		},
	}

	data, err := Generate(athleteProfile(80, 30, profile.GoalMassGain, profile.LevelNovice, 1), prefs, sixExerciseCatalog())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"Barbell Bench Press", "Push-up", "Deadlift"}
	if diff := cmp.Diff(want, exerciseNames(data)); diff != "" {
		t.Fatalf("exercise names mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneratePicksCompoundFirstInCatalogOrder(t *testing.T) {
	exercises := []catalog.Exercise{
		{ID: 1, Name: "Dumbbell Fly", MuscleGroup: catalog.MuscleChest},
		{ID: 2, Name: "Incline Bench Press", MuscleGroup: catalog.MuscleChest, IsCompound: true},
		{ID: 3, Name: "Cable Crossover", MuscleGroup: catalog.MuscleChest},
		{ID: 4, Name: "Push-up", MuscleGroup: catalog.MuscleChest, IsCompound: true},
	}

	data, err := Generate(athleteProfile(80, 30, profile.GoalFatLoss, profile.LevelIntermediate, 4), profile.ResolvedPreferences{}, exercises)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	push := data.Days[0].Exercises
	if len(push) != 2 || push[0].Name != "Incline Bench Press" || push[1].Name != "Push-up" {
		t.Fatalf("unexpected push day %+v", push)
	}
	if push[0].Sets != 3 {
		t.Fatalf("expected 3 sets for a compound fat loss exercise, got %d", push[0].Sets)
	}
	if len(data.Days[1].Exercises) != 0 {
		t.Fatalf("expected empty pull day, got %+v", data.Days[1].Exercises)
	}
}

func TestGenerateIncompleteProfile(t *testing.T) {
	_, err := Generate(profile.Profile{UserID: "user-1"}, profile.ResolvedPreferences{}, sixExerciseCatalog())
	if !errors.Is(err, ErrIncompleteProfile) {
		t.Fatalf("expected ErrIncompleteProfile, got %v", err)
	}
	for _, field := range []string{"weight", "height", "age", "fitness_goal", "experience_level", "workouts_per_week"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected %s in error, got %q", field, err.Error())
		}
	}

	p := athleteProfile(80, 30, profile.GoalStrength, profile.LevelNovice, 3)
	zero := 0
	p.WorkoutsPerWeek = &zero
	_, err = Generate(p, profile.ResolvedPreferences{}, sixExerciseCatalog())
	if !errors.Is(err, ErrIncompleteProfile) || !strings.Contains(err.Error(), "workouts_per_week") {
		t.Fatalf("expected zero workouts to count as missing, got %v", err)
	}
}
