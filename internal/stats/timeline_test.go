package stats

import (
	"testing"
	"time"

	"github.com/hitchly/planner-api/internal/models"
)

func TestCompletionFraction(t *testing.T) {
	tasks := []models.Task{
		{Status: "Complete"},
		{Status: "Not started"},
		{Status: "Complete"},
	}

	got := Completion(tasks)
	want := 2.0 / 3.0
	if got < want-0.0001 || got > want+0.0001 {
		t.Errorf("expected completion %v, got %v", want, got)
	}
}

func TestCompletionEmptyIsZero(t *testing.T) {
	if got := Completion(nil); got != 0 {
		t.Errorf("expected 0 for empty task list, got %v", got)
	}
}

func TestOverdue(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		task models.Task
		want bool
	}{
		{"past deadline, not complete", models.Task{Deadline: "2026-08-01", Status: "In progress"}, true},
		{"past deadline, complete", models.Task{Deadline: "2026-08-01", Status: "Complete"}, false},
		{"future deadline", models.Task{Deadline: "2026-12-01", Status: "Not started"}, false},
		{"no deadline", models.Task{Status: "Not started"}, false},
		{"garbage deadline", models.Task{Deadline: "whenever", Status: "Not started"}, false},
	}

	for _, tc := range cases {
		if got := Overdue(tc.task, now); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTasksByPhaseDropsUnknownPhases(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Phase: "1 month"},
		{ID: 2, Phase: "1 month"},
		{ID: 3, Phase: "someday"},
	}

	byPhase := TasksByPhase(tasks)
	if len(byPhase) != len(models.Phases) {
		t.Fatalf("expected %d phase groups, got %d", len(models.Phases), len(byPhase))
	}
	if len(byPhase["1 month"]) != 2 {
		t.Errorf("expected 2 tasks in '1 month', got %d", len(byPhase["1 month"]))
	}
	if _, ok := byPhase["someday"]; ok {
		t.Error("unknown phase should not create a group")
	}
}

func TestOwnerCountsSkipsBlankAndSorts(t *testing.T) {
	tasks := []models.Task{
		{Owner: "Sam"},
		{Owner: "Alex"},
		{Owner: "Sam"},
		{Owner: ""},
	}

	got := OwnerCounts(tasks)
	if len(got) != 2 {
		t.Fatalf("expected 2 owners, got %d", len(got))
	}
	if got[0] != (Bucket{Label: "Alex", Count: 1}) || got[1] != (Bucket{Label: "Sam", Count: 2}) {
		t.Errorf("unexpected owner counts: %v", got)
	}
}
