package tick

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers(t *testing.T) {
	tk, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acme/api/v2/users.json", r.URL.Path)
		json.NewEncoder(w).Encode([]User{
			{ID: 4, FirstName: "Anna", LastName: "Smith", Email: "anna@example.com", Timezone: "Eastern Time (US & Canada)", UpdatedAt: "2014-09-01T09:00:00.000-04:00"},
		})
	})

	users, err := tk.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 4, users[0].ID)
	assert.Equal(t, "anna@example.com", users[0].Email)
}

func TestListDeletedUsers_Path(t *testing.T) {
	tk, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acme/api/v2/users/deleted.json", r.URL.Path)
		json.NewEncoder(w).Encode([]User{})
	})

	users, err := tk.ListDeletedUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestListUsers_ShapeViolationReported(t *testing.T) {
	tk, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":4,"email":"ok@example.com"},{"id":0,"email":""}]`))
	})

	_, err := tk.ListUsers(context.Background())
	var respErr *ResponseValidationError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, []string{
		"items[1]: id is required",
		"items[1]: email is required",
	}, respErr.Problems)
}

func TestCreateUser_WrapsUnderUserKey(t *testing.T) {
	tk, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		raw, _ := io.ReadAll(r.Body)
		var body map[string]map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		require.Contains(t, body, "user")
		assert.Equal(t, "anna@example.com", body["user"]["email"])
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(User{ID: 5, FirstName: "Anna", LastName: "Smith", Email: "anna@example.com"})
	})

	user, err := tk.CreateUser(context.Background(), UserParams{
		FirstName: "Anna",
		LastName:  "Smith",
		Email:     "anna@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, user.ID)
}

func TestCreateUser_Forbidden(t *testing.T) {
	tk, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := tk.CreateUser(context.Background(), UserParams{
		FirstName: "Anna", LastName: "Smith", Email: "anna@example.com",
	})
	var fe *ForbiddenError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Message, "administrators")
}

func TestCreateUser_MissingFieldsCollected(t *testing.T) {
	calls := 0
	tk, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { calls++ })

	_, err := tk.CreateUser(context.Background(), UserParams{LastName: "Smith"})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, []string{"first_name is required", "email is required"}, valErr.Problems)
	assert.Zero(t, calls)
}
