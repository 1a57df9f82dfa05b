package session

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testTree has one day with exercise e1 (sets s1, s2) and exercise e2 (set s3).
func testTree() *Tree {
	return &Tree{
		WorkoutSession: WorkoutSession{ID: "session", UserID: "user-1", Status: StatusInProgress},
		Days: []DayWithExercises{{
			SessionDay: SessionDay{ID: "d1", Status: StatusPending},
			Exercises: []ExerciseWithSets{
				{
					SessionExercise: SessionExercise{ID: "e1", Order: 0, Status: StatusPending},
					Sets: []SessionSet{
						{ID: "s1", Order: 1, Status: StatusPending},
						{ID: "s2", Order: 2, Status: StatusPending},
					},
				},
				{
					SessionExercise: SessionExercise{ID: "e2", Order: 1, Status: StatusPending},
					Sets: []SessionSet{
						{ID: "s3", Order: 1, Status: StatusPending},
					},
				},
			},
		}},
	}
}

func consistent(pt *progressTree) bool {
	for idx := rootIndex + 1; idx < len(pt.nodes); idx++ {
		node := pt.nodes[idx]
		if node.kind == NodeSet || len(node.children) == 0 {
			continue
		}
		if (*node.status == StatusCompleted) != pt.childrenDone(idx) {
			return false
		}
	}
	return true
}

func permutations(items []string) [][]string {
	if len(items) <= 1 {
		return [][]string{append([]string(nil), items...)}
	}
	var result [][]string
	for i := range items {
		rest := make([]string, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		for _, tail := range permutations(rest) {
			result = append(result, append([]string{items[i]}, tail...))
		}
	}
	return result
}

func TestPropagationHoldsForEverySequence(t *testing.T) {
	actions := []Status{StatusCompleted, StatusSkipped}

	for _, order := range permutations([]string{"s1", "s2", "s3"}) {
		for mask := 0; mask < 1<<len(order); mask++ {
			tree := testTree()
			pt := newProgressTree(tree)

			for step, setID := range order {
				idx, ok := pt.setIndex(setID)
				if !ok {
					t.Fatalf("set %s not indexed", setID)
				}
				pt.apply(idx, actions[(mask>>step)&1])
				if !consistent(pt) {
					t.Fatalf("order %v mask %b: inconsistent after step %d", order, mask, step)
				}
			}

			if tree.Days[0].Status != StatusCompleted {
				t.Fatalf("order %v mask %b: expected day completed, got %s", order, mask, tree.Days[0].Status)
			}
			if tree.Status != StatusInProgress {
				t.Fatalf("order %v mask %b: root must not be changed by propagation, got %s", order, mask, tree.Status)
			}
		}
	}
}

func TestPropagationStopsAtUnchangedParent(t *testing.T) {
	tree := testTree()
	pt := newProgressTree(tree)

	idx, _ := pt.setIndex("s1")
	pt.apply(idx, StatusCompleted)

	if tree.Days[0].Exercises[0].Status != StatusPending {
		t.Fatalf("expected e1 to stay pending with one set left, got %s", tree.Days[0].Exercises[0].Status)
	}
	want := []StatusChange{{Kind: NodeSet, ID: "s1", Status: StatusCompleted}}
	if diff := cmp.Diff(want, pt.changes()); diff != "" {
		t.Fatalf("changes mismatch (-want +got):\n%s", diff)
	}

	idx, _ = pt.setIndex("s2")
	pt.apply(idx, StatusSkipped)
	want = []StatusChange{
		{Kind: NodeExercise, ID: "e1", Status: StatusCompleted},
		{Kind: NodeSet, ID: "s1", Status: StatusCompleted},
		{Kind: NodeSet, ID: "s2", Status: StatusSkipped},
	}
	if diff := cmp.Diff(want, pt.changes()); diff != "" {
		t.Fatalf("changes mismatch (-want +got):\n%s", diff)
	}
	if tree.Days[0].Status != StatusPending {
		t.Fatalf("expected day pending while e2 is open, got %s", tree.Days[0].Status)
	}
}

func TestPropagationRevertsCompletedParents(t *testing.T) {
	tree := testTree()
	pt := newProgressTree(tree)
	for _, setID := range []string{"s1", "s2", "s3"} {
		idx, _ := pt.setIndex(setID)
		pt.apply(idx, StatusCompleted)
	}
	if tree.Days[0].Status != StatusCompleted {
		t.Fatalf("expected day completed, got %s", tree.Days[0].Status)
	}

	idx, _ := pt.setIndex("s2")
	pt.apply(idx, StatusPending)

	if got := tree.Days[0].Exercises[0].Status; got != StatusInProgress {
		t.Fatalf("expected e1 reverted to in progress, got %s", got)
	}
	if got := tree.Days[0].Status; got != StatusInProgress {
		t.Fatalf("expected day reverted to in progress, got %s", got)
	}
	if got := tree.Days[0].Exercises[1].Status; got != StatusCompleted {
		t.Fatalf("expected e2 untouched, got %s", got)
	}
	if !consistent(pt) {
		t.Fatalf("expected consistent tree after revert")
	}
}

func TestSettleCompletesEmptyNodes(t *testing.T) {
	tree := testTree()
	tree.Days[0].Exercises = append(tree.Days[0].Exercises, ExerciseWithSets{
		SessionExercise: SessionExercise{ID: "e3", Order: 2, Status: StatusPending},
	})
	tree.Days = append(tree.Days, DayWithExercises{SessionDay: SessionDay{ID: "d2", Order: 1, Status: StatusPending}})
	pt := newProgressTree(tree)

	for _, idx := range pt.pendingSets() {
		pt.apply(idx, StatusSkipped)
	}
	pt.settle()

	for _, day := range tree.Days {
		if day.Status != StatusCompleted {
			t.Fatalf("expected day %s completed, got %s", day.ID, day.Status)
		}
		for _, exercise := range day.Exercises {
			if exercise.Status != StatusCompleted {
				t.Fatalf("expected exercise %s completed, got %s", exercise.ID, exercise.Status)
			}
		}
	}
	if tree.Status != StatusInProgress {
		t.Fatalf("settle must not touch the root, got %s", tree.Status)
	}
}
