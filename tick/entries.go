package tick

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-querystring/query"
)

// Entry is a time entry. Like Task, its id is a string; its task_id and
// user_id references are numeric.
type Entry struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Hours     float64 `json:"hours"`
	Notes     string  `json:"notes"`
	TaskID    int     `json:"task_id"`
	UserID    int     `json:"user_id"`
	URL       string  `json:"url"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func (e Entry) problems() []string {
	var ps []string
	if e.ID == "" {
		ps = append(ps, "id is required")
	}
	if e.Date == "" {
		ps = append(ps, "date is required")
	}
	return ps
}

// EntryDetails is the single-entry shape; the base fields plus the full task.
type EntryDetails struct {
	Entry
	Task Task `json:"task"`
}

// EntryParams is the input shape for entry creation and update.
type EntryParams struct {
	Date   string   `json:"date,omitempty"`
	Hours  *float64 `json:"hours,omitempty"`
	Notes  string   `json:"notes,omitempty"`
	TaskID int      `json:"task_id,omitempty"`
	UserID *int     `json:"user_id,omitempty"`
}

func (p EntryParams) validateCreate() error {
	ps := requireFields(
		fieldPair{"hours", p.Hours != nil},
		fieldPair{"task_id", p.TaskID != 0},
	)
	if len(ps) > 0 {
		return &ValidationError{Op: "createEntry", Problems: ps}
	}
	return nil
}

// EntryFilter narrows entry listings. Either StartDate and EndDate together,
// or UpdatedAt alone, must be set; dates use YYYY-MM-DD form.
type EntryFilter struct {
	StartDate       string `url:"start_date,omitempty"`
	EndDate         string `url:"end_date,omitempty"`
	UpdatedAt       string `url:"updated_at,omitempty"`
	Billable        *bool  `url:"billable,omitempty"`
	ProjectBillable *bool  `url:"project_billable,omitempty"`
	Page            int    `url:"page,omitempty"`
}

func (f EntryFilter) validate(op string) error {
	if f.UpdatedAt == "" && (f.StartDate == "" || f.EndDate == "") {
		return &ValidationError{
			Op:       op,
			Problems: []string{"Either start_date and end_date OR updated_at must be provided"},
		}
	}
	return nil
}

// ListEntries returns time entries matching the filter.
func (t *Tick) ListEntries(ctx context.Context, filter EntryFilter) ([]Entry, error) {
	return t.listEntries(ctx, "listEntries", "entries.json", filter)
}

// ListUserEntries returns one user's entries matching the filter.
func (t *Tick) ListUserEntries(ctx context.Context, userID int, filter EntryFilter) ([]Entry, error) {
	return t.listEntries(ctx, "listUserEntries", fmt.Sprintf("users/%d/entries.json", userID), filter)
}

// ListProjectEntries returns one project's entries matching the filter.
func (t *Tick) ListProjectEntries(ctx context.Context, projectID int, filter EntryFilter) ([]Entry, error) {
	return t.listEntries(ctx, "listProjectEntries", fmt.Sprintf("projects/%d/entries.json", projectID), filter)
}

// ListTaskEntries returns one task's entries matching the filter. The path
// takes a numeric task id even though the Task entity's own id is a string;
// the mismatch is the remote API's and is preserved on purpose.
func (t *Tick) ListTaskEntries(ctx context.Context, taskID int, filter EntryFilter) ([]Entry, error) {
	return t.listEntries(ctx, "listTaskEntries", fmt.Sprintf("tasks/%d/entries.json", taskID), filter)
}

func (t *Tick) listEntries(ctx context.Context, op, path string, filter EntryFilter) ([]Entry, error) {
	if err := filter.validate(op); err != nil {
		return nil, err
	}
	values, err := query.Values(filter)
	if err != nil {
		return nil, fmt.Errorf("%s: encoding filter: %w", op, err)
	}
	var entries []Entry
	spec := callSpec{
		resource: "entries",
		op:       op,
		method:   http.MethodGet,
		path:     path,
		query:    values,
	}
	if err := t.call(ctx, spec, &entries); err != nil {
		return nil, err
	}
	if err := checkList(op, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetEntry returns one entry with its full task embedded.
func (t *Tick) GetEntry(ctx context.Context, id string) (*EntryDetails, error) {
	var entry EntryDetails
	spec := callSpec{
		resource: "entries",
		op:       "getEntry",
		method:   http.MethodGet,
		path:     fmt.Sprintf("entries/%s.json", id),
	}
	if err := t.call(ctx, spec, &entry); err != nil {
		return nil, err
	}
	if err := checkRecord(spec.op, entry.Entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateEntry creates an entry. The payload is sent bare; date defaults to
// today on the remote side when omitted.
func (t *Tick) CreateEntry(ctx context.Context, params EntryParams) (*Entry, error) {
	if err := params.validateCreate(); err != nil {
		return nil, err
	}
	var entry Entry
	spec := callSpec{
		resource: "entries",
		op:       "createEntry",
		method:   http.MethodPost,
		path:     "entries.json",
		body:     params,
	}
	if err := t.call(ctx, spec, &entry); err != nil {
		return nil, err
	}
	if err := checkRecord(spec.op, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry applies a partial update to an entry.
func (t *Tick) UpdateEntry(ctx context.Context, id string, params EntryParams) (*Entry, error) {
	var entry Entry
	spec := callSpec{
		resource:  "entries",
		op:        "updateEntry",
		method:    http.MethodPut,
		path:      fmt.Sprintf("entries/%s.json", id),
		body:      params,
		forbidden: "You are not authorized to update this entry",
	}
	if err := t.call(ctx, spec, &entry); err != nil {
		return nil, err
	}
	if err := checkRecord(spec.op, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteEntry deletes an entry.
func (t *Tick) DeleteEntry(ctx context.Context, id string) error {
	spec := callSpec{
		resource:  "entries",
		op:        "deleteEntry",
		method:    http.MethodDelete,
		path:      fmt.Sprintf("entries/%s.json", id),
		forbidden: "You are not authorized to delete this entry",
	}
	return t.call(ctx, spec, nil)
}
