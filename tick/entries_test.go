package tick

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEntries_FilterPrecondition(t *testing.T) {
	tests := []struct {
		name    string
		filter  EntryFilter
		wantErr bool
	}{
		{name: "empty filter", filter: EntryFilter{}, wantErr: true},
		{name: "start date only", filter: EntryFilter{StartDate: "2024-05-01"}, wantErr: true},
		{name: "end date only", filter: EntryFilter{EndDate: "2024-05-31"}, wantErr: true},
		{name: "start and end", filter: EntryFilter{StartDate: "2024-05-01", EndDate: "2024-05-31"}},
		{name: "updated_at alone", filter: EntryFilter{UpdatedAt: "2024-05-01T00:00:00Z"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			tk, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				json.NewEncoder(w).Encode([]Entry{})
			})

			_, err := tk.ListEntries(context.Background(), tc.filter)
			if tc.wantErr {
				var valErr *ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Contains(t, valErr.Error(), "Either start_date and end_date OR updated_at must be provided")
				assert.Zero(t, calls, "no transport call may happen on invalid filter")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, calls)
		})
	}
}

func TestListEntries_QueryEncoding(t *testing.T) {
	tk, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2024-05-01", q.Get("start_date"))
		assert.Equal(t, "2024-05-31", q.Get("end_date"))
		assert.Equal(t, "true", q.Get("billable"))
		assert.Equal(t, "3", q.Get("page"))
		assert.False(t, q.Has("updated_at"))
		json.NewEncoder(w).Encode([]Entry{})
	})

	billable := true
	_, err := tk.ListEntries(context.Background(), EntryFilter{
		StartDate: "2024-05-01",
		EndDate:   "2024-05-31",
		Billable:  &billable,
		Page:      3,
	})
	require.NoError(t, err)
}

func TestListEntries_ScopedPaths(t *testing.T) {
	filter := EntryFilter{UpdatedAt: "2024-05-01T00:00:00Z"}
	tests := []struct {
		name string
		call func(tk *Tick) error
		path string
	}{
		{
			name: "by user",
			call: func(tk *Tick) error { _, err := tk.ListUserEntries(context.Background(), 4, filter); return err },
			path: "/acme/api/v2/users/4/entries.json",
		},
		{
			name: "by project",
			call: func(tk *Tick) error { _, err := tk.ListProjectEntries(context.Background(), 16, filter); return err },
			path: "/acme/api/v2/projects/16/entries.json",
		},
		{
			// The path takes the numeric task id even though Task.ID is a string.
			name: "by task",
			call: func(tk *Tick) error { _, err := tk.ListTaskEntries(context.Background(), 42, filter); return err },
			path: "/acme/api/v2/tasks/42/entries.json",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tc.path, r.URL.Path)
				json.NewEncoder(w).Encode([]Entry{})
			})
			require.NoError(t, tc.call(tk))
		})
	}
}

func TestListEntries_ScopedPathsEnforcePrecondition(t *testing.T) {
	calls := 0
	tk, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { calls++ })

	_, err := tk.ListUserEntries(context.Background(), 4, EntryFilter{})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Zero(t, calls)
}

func TestGetEntry_EmbedsTask(t *testing.T) {
	tk, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acme/api/v2/entries/abc123.json", r.URL.Path)
		w.Write([]byte(`{
			"id":"abc123","date":"2024-05-02","hours":1.5,"notes":"install",
			"task_id":42,"user_id":4,"url":"u","created_at":"c","updated_at":"u",
			"task":{"id":"42","name":"Install","budget":null,"position":1,"project_id":16,"date_closed":null,"billable":true,"url":"tu","created_at":"c","updated_at":"u"}
		}`))
	})

	entry, err := tk.GetEntry(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", entry.ID)
	assert.Equal(t, 42, entry.TaskID)
	assert.Equal(t, "42", entry.Task.ID)
	assert.Equal(t, 1.5, entry.Hours)
}

func TestCreateEntry_RequiredFields(t *testing.T) {
	calls := 0
	tk, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { calls++ })

	_, err := tk.CreateEntry(context.Background(), EntryParams{Notes: "n"})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, []string{"hours is required", "task_id is required"}, valErr.Problems)
	assert.Zero(t, calls)
}

func TestCreateEntry(t *testing.T) {
	tk, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/acme/api/v2/entries.json", r.URL.Path)
		var params EntryParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		require.NotNil(t, params.Hours)
		assert.Equal(t, 1.5, *params.Hours)
		assert.Equal(t, 42, params.TaskID)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Entry{ID: "e1", Date: "2024-05-02", Hours: 1.5, TaskID: 42})
	})

	hours := 1.5
	entry, err := tk.CreateEntry(context.Background(), EntryParams{Hours: &hours, TaskID: 42})
	require.NoError(t, err)
	assert.Equal(t, "e1", entry.ID)
}

func TestUpdateEntry_Forbidden(t *testing.T) {
	tk, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := tk.UpdateEntry(context.Background(), "e1", EntryParams{Notes: "late edit"})
	var fe *ForbiddenError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Message, "not authorized")
}

func TestDeleteEntry(t *testing.T) {
	tk, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/acme/api/v2/entries/e1.json", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	require.NoError(t, tk.DeleteEntry(context.Background(), "e1"))
}
