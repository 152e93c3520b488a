package models

// Planning phases, ordered from furthest out to the wedding week.
var Phases = []string{
	"12+ months", "6–12 months", "3–6 months", "2–3 months",
	"1 month", "2–3 weeks", "Week of",
}

var TaskStatuses = []string{"Not started", "In progress", "Complete"}

var Priorities = []string{"High", "Medium", "Low"}

const TaskStatusComplete = "Complete"

// Task is one timeline item, bucketed by phase.
type Task struct {
	ID            int64  `json:"id"`
	Task          string `json:"task"`
	Phase         string `json:"phase"`
	Owner         string `json:"owner"`
	Priority      string `json:"priority"`
	Deadline      string `json:"deadline"` // YYYY-MM-DD, empty when unset
	Status        string `json:"status"`
	CompletedDate string `json:"completedDate"`
	Description   string `json:"description"`
}

type TaskPatch struct {
	Task          *string `json:"task,omitempty"`
	Phase         *string `json:"phase,omitempty"`
	Owner         *string `json:"owner,omitempty"`
	Priority      *string `json:"priority,omitempty"`
	Deadline      *string `json:"deadline,omitempty"`
	Status        *string `json:"status,omitempty"`
	CompletedDate *string `json:"completedDate,omitempty"`
	Description   *string `json:"description,omitempty"`
}

func (p TaskPatch) Apply(t Task) Task {
	assign(&t.Task, p.Task)
	assign(&t.Phase, p.Phase)
	assign(&t.Owner, p.Owner)
	assign(&t.Priority, p.Priority)
	assign(&t.Deadline, p.Deadline)
	assign(&t.Status, p.Status)
	assign(&t.CompletedDate, p.CompletedDate)
	assign(&t.Description, p.Description)
	return t
}

// NewTask returns a blank task in the given phase.
func NewTask(id int64, phase string) Task {
	return Task{
		ID:       id,
		Phase:    phase,
		Priority: "Medium",
		Status:   "Not started",
	}
}
