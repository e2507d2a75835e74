package tick

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Project is a client project. A nil DateClosed means the project is open;
// no separate status field exists.
type Project struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Budget        *float64 `json:"budget"`
	DateClosed    *string  `json:"date_closed"`
	Notifications bool     `json:"notifications"`
	Billable      bool     `json:"billable"`
	Recurring     bool     `json:"recurring"`
	ClientID      int      `json:"client_id"`
	OwnerID       int      `json:"owner_id"`
	URL           string   `json:"url"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// Open reports whether the project has not been closed.
func (p Project) Open() bool { return p.DateClosed == nil }

func (p Project) problems() []string {
	var ps []string
	if p.ID == 0 {
		ps = append(ps, "id is required")
	}
	if p.Name == "" {
		ps = append(ps, "name is required")
	}
	return ps
}

// ProjectDetails is the single-project shape: the base fields plus total
// hours, the tasks summary and an embedded client snapshot.
type ProjectDetails struct {
	Project
	TotalHours float64 `json:"total_hours"`
	Tasks      Summary `json:"tasks"`
	Client     Client  `json:"client"`
}

// ProjectParams is the input shape for project creation and update.
type ProjectParams struct {
	Name          string   `json:"name,omitempty"`
	Budget        *float64 `json:"budget,omitempty"`
	Notifications *bool    `json:"notifications,omitempty"`
	Billable      *bool    `json:"billable,omitempty"`
	Recurring     *bool    `json:"recurring,omitempty"`
	ClientID      int      `json:"client_id,omitempty"`
	OwnerID       int      `json:"owner_id,omitempty"`
}

func (p ProjectParams) validateCreate() error {
	ps := requireFields(
		fieldPair{"name", p.Name != ""},
		fieldPair{"client_id", p.ClientID != 0},
		fieldPair{"owner_id", p.OwnerID != 0},
	)
	if len(ps) > 0 {
		return &ValidationError{Op: "createProject", Problems: ps}
	}
	return nil
}

// ListProjects returns open projects, 100 per page. Pass page 0 for the
// first page.
func (t *Tick) ListProjects(ctx context.Context, page int) ([]Project, error) {
	return t.listProjects(ctx, "listProjects", "projects.json", page)
}

// ListClosedProjects returns closed projects, paginated like ListProjects.
func (t *Tick) ListClosedProjects(ctx context.Context, page int) ([]Project, error) {
	return t.listProjects(ctx, "listClosedProjects", "projects/closed.json", page)
}

func (t *Tick) listProjects(ctx context.Context, op, path string, page int) ([]Project, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	var projects []Project
	spec := callSpec{
		resource: "projects",
		op:       op,
		method:   http.MethodGet,
		path:     path,
		query:    query,
	}
	if err := t.call(ctx, spec, &projects); err != nil {
		return nil, err
	}
	if err := checkList(op, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject returns one project with its task summary and client snapshot.
func (t *Tick) GetProject(ctx context.Context, id int) (*ProjectDetails, error) {
	var project ProjectDetails
	spec := callSpec{
		resource: "projects",
		op:       "getProject",
		method:   http.MethodGet,
		path:     fmt.Sprintf("projects/%d.json", id),
	}
	if err := t.call(ctx, spec, &project); err != nil {
		return nil, err
	}
	if err := checkRecord(spec.op, project.Project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a project. The payload is wrapped under a "project"
// key per the remote contract.
func (t *Tick) CreateProject(ctx context.Context, params ProjectParams) (*Project, error) {
	if err := params.validateCreate(); err != nil {
		return nil, err
	}
	var project Project
	spec := callSpec{
		resource:  "projects",
		op:        "createProject",
		method:    http.MethodPost,
		path:      "projects.json",
		body:      map[string]ProjectParams{"project": params},
		forbidden: "Only administrators can create projects",
	}
	if err := t.call(ctx, spec, &project); err != nil {
		return nil, err
	}
	if err := checkRecord(spec.op, project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject applies a partial update, wrapped under "project" like
// creation.
func (t *Tick) UpdateProject(ctx context.Context, id int, params ProjectParams) (*Project, error) {
	var project Project
	spec := callSpec{
		resource:  "projects",
		op:        "updateProject",
		method:    http.MethodPut,
		path:      fmt.Sprintf("projects/%d.json", id),
		body:      map[string]ProjectParams{"project": params},
		forbidden: "Only administrators can update projects",
	}
	if err := t.call(ctx, spec, &project); err != nil {
		return nil, err
	}
	if err := checkRecord(spec.op, project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject deletes a project and everything underneath it.
func (t *Tick) DeleteProject(ctx context.Context, id int) error {
	spec := callSpec{
		resource:  "projects",
		op:        "deleteProject",
		method:    http.MethodDelete,
		path:      fmt.Sprintf("projects/%d.json", id),
		forbidden: "Only administrators can delete projects",
	}
	return t.call(ctx, spec, nil)
}
