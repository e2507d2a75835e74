package tick

import (
	"context"
	"net/http"
)

// User is a subscription member.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Timezone  string `json:"timezone"`
	UpdatedAt string `json:"updated_at"`
}

func (u User) problems() []string {
	var ps []string
	if u.ID == 0 {
		ps = append(ps, "id is required")
	}
	if u.Email == "" {
		ps = append(ps, "email is required")
	}
	return ps
}

// UserParams is the input shape for user creation. Server-generated fields
// are never accepted.
type UserParams struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

func (p UserParams) validateCreate() error {
	ps := requireFields(
		fieldPair{"first_name", p.FirstName != ""},
		fieldPair{"last_name", p.LastName != ""},
		fieldPair{"email", p.Email != ""},
	)
	if len(ps) > 0 {
		return &ValidationError{Op: "createUser", Problems: ps}
	}
	return nil
}

// ListUsers returns all users on the subscription. Non-admin tokens see only
// themselves; that filtering happens remotely.
func (t *Tick) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	spec := callSpec{
		resource: "users",
		op:       "listUsers",
		method:   http.MethodGet,
		path:     "users.json",
	}
	if err := t.call(ctx, spec, &users); err != nil {
		return nil, err
	}
	if err := checkList(spec.op, users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListDeletedUsers returns users removed from the subscription.
func (t *Tick) ListDeletedUsers(ctx context.Context) ([]User, error) {
	var users []User
	spec := callSpec{
		resource:  "users",
		op:        "listDeletedUsers",
		method:    http.MethodGet,
		path:      "users/deleted.json",
		forbidden: "Only administrators can list deleted users",
	}
	if err := t.call(ctx, spec, &users); err != nil {
		return nil, err
	}
	if err := checkList(spec.op, users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a user. The payload is wrapped under a "user" key; that
// is the remote contract for this endpoint.
func (t *Tick) CreateUser(ctx context.Context, params UserParams) (*User, error) {
	if err := params.validateCreate(); err != nil {
		return nil, err
	}
	var user User
	spec := callSpec{
		resource:  "users",
		op:        "createUser",
		method:    http.MethodPost,
		path:      "users.json",
		body:      map[string]UserParams{"user": params},
		forbidden: "Only administrators can create users",
	}
	if err := t.call(ctx, spec, &user); err != nil {
		return nil, err
	}
	if err := checkRecord(spec.op, user); err != nil {
		return nil, err
	}
	return &user, nil
}
