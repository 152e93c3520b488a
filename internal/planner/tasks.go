package planner

import (
	"slices"

	"github.com/hitchly/planner-api/internal/models"
)

// Tasks returns a copy of the task list.
func (s *Session) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

// AddTask appends a blank task in the given phase and returns it.
func (s *Session) AddTask(phase string) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.NewTask(nextID(s.tasks, func(t models.Task) int64 { return t.ID }), phase)
	s.tasks = append(slices.Clone(s.tasks), t)
	s.put(slotTasks, s.tasks)
	return t
}

// UpdateTask shallow-merges patch into the task with the given id.
func (s *Session) UpdateTask(id int64, patch models.TaskPatch) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
	if idx < 0 {
		return models.Task{}, false
	}

	out := slices.Clone(s.tasks)
	out[idx] = patch.Apply(out[idx])
	s.tasks = out
	s.put(slotTasks, s.tasks)
	return out[idx], true
}

// RemoveTask drops the task with the given id; unknown ids are a no-op.
func (s *Session) RemoveTask(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := slices.DeleteFunc(slices.Clone(s.tasks), func(t models.Task) bool { return t.ID == id })
	if len(out) == len(s.tasks) {
		return false
	}
	s.tasks = out
	s.put(slotTasks, s.tasks)
	return true
}
