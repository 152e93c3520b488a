package stats

import (
	"sort"
	"time"

	"github.com/hitchly/planner-api/internal/models"
)

// CompletedTasks counts tasks marked complete.
func CompletedTasks(tasks []models.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Status == models.TaskStatusComplete {
			n++
		}
	}
	return n
}

// Completion is the completed fraction of all tasks, 0 for an empty list.
func Completion(tasks []models.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	return float64(CompletedTasks(tasks)) / float64(len(tasks))
}

// Overdue reports whether a task's deadline has passed without the task
// being complete. Unset or unparseable deadlines never flag.
func Overdue(t models.Task, now time.Time) bool {
	if t.Deadline == "" || t.Status == models.TaskStatusComplete {
		return false
	}
	deadline, err := time.ParseInLocation("2006-01-02", t.Deadline, now.Location())
	if err != nil {
		return false
	}
	return deadline.Before(now)
}

// TasksByPhase groups tasks under the fixed phase list. Tasks with an
// unknown phase fall in no group.
func TasksByPhase(tasks []models.Task) map[string][]models.Task {
	out := make(map[string][]models.Task, len(models.Phases))
	for _, phase := range models.Phases {
		group := []models.Task{}
		for _, t := range tasks {
			if t.Phase == phase {
				group = append(group, t)
			}
		}
		out[phase] = group
	}
	return out
}

// OwnerCounts tallies tasks per owner, skipping blank owners. Buckets
// are sorted by owner name for a stable chart order.
func OwnerCounts(tasks []models.Task) []Bucket {
	counts := map[string]int{}
	for _, t := range tasks {
		if t.Owner != "" {
			counts[t.Owner]++
		}
	}
	out := make([]Bucket, 0, len(counts))
	for owner, n := range counts {
		out = append(out, Bucket{Label: owner, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// PriorityCounts buckets tasks over the fixed priority levels.
func PriorityCounts(tasks []models.Task) []Bucket {
	return Breakdown(models.Priorities, tasks, func(t models.Task) string { return t.Priority })
}
