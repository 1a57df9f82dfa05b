package plan

import (
	"testing"

	"progym-go/internal/domain/profile"
)

func TestChooseSplit(t *testing.T) {
	cases := []struct {
		perWeek int
		level   string
		want    string
	}{
		{1, profile.LevelNovice, SplitFullBody},
		{2, profile.LevelAdvanced, SplitFullBody},
		{3, profile.LevelNovice, SplitFullBody},
		{3, profile.LevelIntermediate, SplitUpperLower},
		{3, profile.LevelAdvanced, SplitUpperLower},
		{4, profile.LevelNovice, SplitPushPullLegs},
		{7, profile.LevelAdvanced, SplitPushPullLegs},
	}

	for _, tc := range cases {
		if got := chooseSplit(tc.perWeek, tc.level); got != tc.want {
			t.Fatalf("chooseSplit(%d, %s) = %s, want %s", tc.perWeek, tc.level, got, tc.want)
		}
	}
}

func TestRepRangeFor(t *testing.T) {
	cases := []struct {
		goal  string
		level string
		age   int
		want  RepRange
	}{
		{profile.GoalMassGain, profile.LevelIntermediate, 30, RepRange{6, 10}},
		{profile.GoalFatLoss, profile.LevelIntermediate, 30, RepRange{15, 20}},
		{profile.GoalStrength, profile.LevelAdvanced, 30, RepRange{1, 5}},
		{"endurance", profile.LevelNovice, 30, RepRange{8, 12}},
		{profile.GoalMassGain, profile.LevelAdvanced, 45, RepRange{8, 8}},
		{profile.GoalFatLoss, profile.LevelIntermediate, 45, RepRange{15, 15}},
		{profile.GoalStrength, profile.LevelNovice, 16, RepRange{12, 15}},
		{profile.GoalFatLoss, profile.LevelIntermediate, 16, RepRange{15, 20}},
		{profile.GoalStrength, profile.LevelAdvanced, 70, RepRange{12, 15}},
		{profile.GoalMassGain, profile.LevelNovice, 56, RepRange{12, 15}},
		{profile.GoalMassGain, profile.LevelNovice, 55, RepRange{8, 12}},
	}

	for _, tc := range cases {
		if got := repRangeFor(tc.goal, tc.level, tc.age); got != tc.want {
			t.Fatalf("repRangeFor(%s, %s, %d) = %+v, want %+v", tc.goal, tc.level, tc.age, got, tc.want)
		}
	}
}

func TestSetCountFor(t *testing.T) {
	cases := []struct {
		goal     string
		level    string
		compound bool
		age      int
		want     int
	}{
		{profile.GoalMassGain, profile.LevelIntermediate, true, 30, 4},
		{profile.GoalMassGain, profile.LevelIntermediate, false, 30, 3},
		{profile.GoalMassGain, profile.LevelNovice, true, 30, 3},
		{profile.GoalFatLoss, profile.LevelNovice, false, 30, 2},
		{profile.GoalStrength, profile.LevelAdvanced, true, 30, 6},
		{profile.GoalStrength, profile.LevelAdvanced, true, 60, 5},
		{"endurance", profile.LevelIntermediate, true, 30, 3},
		{"endurance", profile.LevelNovice, false, 16, 2},
	}

	for _, tc := range cases {
		if got := setCountFor(tc.goal, tc.level, tc.compound, tc.age); got != tc.want {
			t.Fatalf("setCountFor(%s, %s, %v, %d) = %d, want %d", tc.goal, tc.level, tc.compound, tc.age, got, tc.want)
		}
	}
}

func TestRestSecondsFor(t *testing.T) {
	cases := []struct {
		goal string
		age  int
		want int
	}{
		{profile.GoalFatLoss, 30, 45},
		{profile.GoalMassGain, 30, 60},
		{profile.GoalStrength, 45, 105},
		{profile.GoalMassGain, 60, 90},
		{"endurance", 30, 60},
		{profile.GoalStrength, 16, 90},
	}

	for _, tc := range cases {
		if got := restSecondsFor(tc.goal, tc.age); got != tc.want {
			t.Fatalf("restSecondsFor(%s, %d) = %d, want %d", tc.goal, tc.age, got, tc.want)
		}
	}
}

func TestStartingWeight(t *testing.T) {
	normal := RepRange{8, 12}
	cases := []struct {
		name       string
		bodyweight float64
		exercise   string
		reps       RepRange
		age        int
		want       float64
	}{
		{"default coefficient", 80, "Push-up", normal, 30, 15},
		{"bench coefficient", 80, "Barbell Bench Press", normal, 30, 32.5},
		{"deadlift coefficient", 80, "Deadlift", normal, 30, 47.5},
		{"tie rounds up to even", 27.5, "Barbell Back Squat", normal, 30, 15},
		{"tie rounds down to even", 22.5, "Barbell Back Squat", normal, 30, 10},
		{"floor", 10, "Push-up", normal, 30, 5},
		{"high reps", 100, "Barbell Back Squat", RepRange{15, 20}, 30, 35},
		{"low reps", 100, "Barbell Bench Press", RepRange{1, 5}, 30, 52.5},
		{"over 40", 100, "Barbell Back Squat", normal, 45, 40},
		{"over 55", 100, "Barbell Back Squat", normal, 60, 35},
		{"under 18", 100, "Barbell Back Squat", normal, 16, 30},
	}

	for _, tc := range cases {
		if got := startingWeight(tc.bodyweight, tc.exercise, tc.reps, tc.age); got != tc.want {
			t.Fatalf("%s: startingWeight = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestExerciseCountFor(t *testing.T) {
	cases := []struct {
		level string
		age   int
		delta int
		want  int
	}{
		{profile.LevelIntermediate, 30, 0, 2},
		{profile.LevelNovice, 30, 0, 1},
		{profile.LevelNovice, 60, 0, 1},
		{profile.LevelAdvanced, 16, 0, 1},
		{profile.LevelIntermediate, 30, -3, 0},
		{profile.LevelNovice, 30, 2, 3},
	}

	for _, tc := range cases {
		if got := exerciseCountFor(tc.level, tc.age, tc.delta); got != tc.want {
			t.Fatalf("exerciseCountFor(%s, %d, %d) = %d, want %d", tc.level, tc.age, tc.delta, got, tc.want)
		}
	}
}
