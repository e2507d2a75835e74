package tick

import (
	"context"
	"fmt"
	"net/http"
)

// Task is a project task. Its id is a string, unlike User, Client and
// Project ids. The remote API is inconsistent here and the client mirrors it
// verbatim; do not coerce.
type Task struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Budget     *float64 `json:"budget"`
	Position   int      `json:"position"`
	ProjectID  int      `json:"project_id"`
	DateClosed *string  `json:"date_closed"`
	Billable   bool     `json:"billable"`
	URL        string   `json:"url"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

// Open reports whether the task has not been closed.
func (k Task) Open() bool { return k.DateClosed == nil }

func (k Task) problems() []string {
	var ps []string
	if k.ID == "" {
		ps = append(ps, "id is required")
	}
	if k.Name == "" {
		ps = append(ps, "name is required")
	}
	return ps
}

// TaskDetails is the single-task shape: the base fields plus total hours,
// the entries summary and an embedded project snapshot.
type TaskDetails struct {
	Task
	TotalHours float64 `json:"total_hours"`
	Entries    Summary `json:"entries"`
	Project    Project `json:"project"`
}

// TaskParams is the input shape for task creation and update.
type TaskParams struct {
	Name      string   `json:"name,omitempty"`
	Budget    *float64 `json:"budget,omitempty"`
	ProjectID int      `json:"project_id,omitempty"`
	Billable  *bool    `json:"billable,omitempty"`
}

func (p TaskParams) validateCreate() error {
	ps := requireFields(
		fieldPair{"name", p.Name != ""},
		fieldPair{"project_id", p.ProjectID != 0},
	)
	if len(ps) > 0 {
		return &ValidationError{Op: "createTask", Problems: ps}
	}
	return nil
}

// ListTasks returns all open tasks across all projects.
func (t *Tick) ListTasks(ctx context.Context) ([]Task, error) {
	return t.listTasks(ctx, "listTasks", "tasks.json")
}

// ListClosedTasks returns all closed tasks across all projects.
func (t *Tick) ListClosedTasks(ctx context.Context) ([]Task, error) {
	return t.listTasks(ctx, "listClosedTasks", "tasks/closed.json")
}

// ListProjectTasks returns the open tasks of one project.
func (t *Tick) ListProjectTasks(ctx context.Context, projectID int) ([]Task, error) {
	return t.listTasks(ctx, "listProjectTasks", fmt.Sprintf("projects/%d/tasks.json", projectID))
}

// ListClosedProjectTasks returns the closed tasks of one project.
func (t *Tick) ListClosedProjectTasks(ctx context.Context, projectID int) ([]Task, error) {
	return t.listTasks(ctx, "listClosedProjectTasks", fmt.Sprintf("projects/%d/tasks/closed.json", projectID))
}

func (t *Tick) listTasks(ctx context.Context, op, path string) ([]Task, error) {
	var tasks []Task
	spec := callSpec{
		resource: "tasks",
		op:       op,
		method:   http.MethodGet,
		path:     path,
	}
	if err := t.call(ctx, spec, &tasks); err != nil {
		return nil, err
	}
	if err := checkList(op, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask returns one task with its entries summary and project snapshot.
// The id is a string; "42" stays "42".
func (t *Tick) GetTask(ctx context.Context, id string) (*TaskDetails, error) {
	var task TaskDetails
	spec := callSpec{
		resource: "tasks",
		op:       "getTask",
		method:   http.MethodGet,
		path:     fmt.Sprintf("tasks/%s.json", id),
	}
	if err := t.call(ctx, spec, &task); err != nil {
		return nil, err
	}
	if err := checkRecord(spec.op, task.Task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a task. The payload is sent bare, not wrapped.
func (t *Tick) CreateTask(ctx context.Context, params TaskParams) (*Task, error) {
	if err := params.validateCreate(); err != nil {
		return nil, err
	}
	var task Task
	spec := callSpec{
		resource:  "tasks",
		op:        "createTask",
		method:    http.MethodPost,
		path:      "tasks.json",
		body:      params,
		forbidden: "Only administrators can create tasks",
	}
	if err := t.call(ctx, spec, &task); err != nil {
		return nil, err
	}
	if err := checkRecord(spec.op, task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update to a task.
func (t *Tick) UpdateTask(ctx context.Context, id string, params TaskParams) (*Task, error) {
	var task Task
	spec := callSpec{
		resource:  "tasks",
		op:        "updateTask",
		method:    http.MethodPut,
		path:      fmt.Sprintf("tasks/%s.json", id),
		body:      params,
		forbidden: "Only administrators can update tasks",
	}
	if err := t.call(ctx, spec, &task); err != nil {
		return nil, err
	}
	if err := checkRecord(spec.op, task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task. The remote refuses with 406 while the task still
// has associated entries.
func (t *Tick) DeleteTask(ctx context.Context, id string) error {
	spec := callSpec{
		resource:  "tasks",
		op:        "deleteTask",
		method:    http.MethodDelete,
		path:      fmt.Sprintf("tasks/%s.json", id),
		forbidden: "Only administrators can delete tasks",
		conflict:  "task has associated entries and cannot be deleted",
	}
	return t.call(ctx, spec, nil)
}
