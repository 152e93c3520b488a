package handlers

import (
	"context"
	"time"

	"github.com/hitchly/planner-api/internal/models"
	"github.com/hitchly/planner-api/internal/planner"
	"github.com/hitchly/planner-api/internal/stats"
)

type TaskHandler struct {
	session *planner.Session
}

func NewTaskHandler(session *planner.Session) *TaskHandler {
	return &TaskHandler{session: session}
}

// TaskView is a task plus its recomputed overdue flag.
type TaskView struct {
	models.Task
	Overdue bool `json:"overdue"`
}

type ListTasksResponse struct {
	Body struct {
		Tasks []TaskView `json:"tasks"`
	}
}

func (h *TaskHandler) HandleList(ctx context.Context, input *struct{}) (*ListTasksResponse, error) {
	now := time.Now()
	tasks := h.session.Tasks()

	res := &ListTasksResponse{}
	res.Body.Tasks = make([]TaskView, len(tasks))
	for i, t := range tasks {
		res.Body.Tasks[i] = TaskView{Task: t, Overdue: stats.Overdue(t, now)}
	}
	return res, nil
}

type AddTaskRequest struct {
	Body struct {
		Phase string `json:"phase" doc:"Planning phase the task belongs to"`
	}
}

type AddTaskResponse struct {
	Body struct {
		Task models.Task `json:"task"`
	}
}

func (h *TaskHandler) HandleAdd(ctx context.Context, input *AddTaskRequest) (*AddTaskResponse, error) {
	res := &AddTaskResponse{}
	res.Body.Task = h.session.AddTask(input.Body.Phase)
	return res, nil
}

type UpdateTaskRequest struct {
	ID   int64 `path:"id" doc:"Task id"`
	Body models.TaskPatch
}

type UpdateTaskResponse struct {
	Body struct {
		Changed bool        `json:"changed"`
		Task    models.Task `json:"task"`
	}
}

func (h *TaskHandler) HandleUpdate(ctx context.Context, input *UpdateTaskRequest) (*UpdateTaskResponse, error) {
	task, changed := h.session.UpdateTask(input.ID, input.Body)
	res := &UpdateTaskResponse{}
	res.Body.Changed = changed
	res.Body.Task = task
	return res, nil
}

type RemoveTaskRequest struct {
	ID int64 `path:"id" doc:"Task id"`
}

type RemoveTaskResponse struct {
	Body struct {
		Changed bool `json:"changed"`
	}
}

func (h *TaskHandler) HandleRemove(ctx context.Context, input *RemoveTaskRequest) (*RemoveTaskResponse, error) {
	res := &RemoveTaskResponse{}
	res.Body.Changed = h.session.RemoveTask(input.ID)
	return res, nil
}

type TimelineStatsResponse struct {
	Body struct {
		Total          int                      `json:"total"`
		Completed      int                      `json:"completed"`
		Completion     float64                  `json:"completion"`
		ByPhase        map[string][]models.Task `json:"byPhase"`
		OwnerCounts    []stats.Bucket           `json:"ownerCounts"`
		PriorityCounts []stats.Bucket           `json:"priorityCounts"`
	}
}

func (h *TaskHandler) HandleStats(ctx context.Context, input *struct{}) (*TimelineStatsResponse, error) {
	tasks := h.session.Tasks()

	res := &TimelineStatsResponse{}
	res.Body.Total = len(tasks)
	res.Body.Completed = stats.CompletedTasks(tasks)
	res.Body.Completion = stats.Completion(tasks)
	res.Body.ByPhase = stats.TasksByPhase(tasks)
	res.Body.OwnerCounts = stats.OwnerCounts(tasks)
	res.Body.PriorityCounts = stats.PriorityCounts(tasks)
	return res, nil
}
