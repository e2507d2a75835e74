package tick

import (
	"context"
	"fmt"
	"net/http"
)

// Client is a billing client. Its id is numeric, unlike Task and Entry ids.
type Client struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Archive   bool   `json:"archive"`
	URL       string `json:"url"`
	UpdatedAt string `json:"updated_at"`
}

func (c Client) problems() []string {
	var ps []string
	if c.ID == 0 {
		ps = append(ps, "id is required")
	}
	if c.Name == "" {
		ps = append(ps, "name is required")
	}
	return ps
}

// ClientDetails is the single-client shape; a superset of Client with the
// projects summary appended.
type ClientDetails struct {
	Client
	Projects Summary `json:"projects"`
}

// ClientParams is the input shape for client creation and update.
type ClientParams struct {
	Name    string `json:"name,omitempty"`
	Archive *bool  `json:"archive,omitempty"`
}

func (p ClientParams) validateCreate() error {
	ps := requireFields(fieldPair{"name", p.Name != ""})
	if len(ps) > 0 {
		return &ValidationError{Op: "createClient", Problems: ps}
	}
	return nil
}

// ListClients returns all non-archived clients with at least one open project.
func (t *Tick) ListClients(ctx context.Context) ([]Client, error) {
	return t.listClients(ctx, "listClients", "clients.json")
}

// ListAllClients returns every client, archived ones included.
func (t *Tick) ListAllClients(ctx context.Context) ([]Client, error) {
	return t.listClients(ctx, "listAllClients", "clients/all.json")
}

func (t *Tick) listClients(ctx context.Context, op, path string) ([]Client, error) {
	var clients []Client
	spec := callSpec{
		resource: "clients",
		op:       op,
		method:   http.MethodGet,
		path:     path,
	}
	if err := t.call(ctx, spec, &clients); err != nil {
		return nil, err
	}
	if err := checkList(op, clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// GetClient returns one client with its projects summary.
func (t *Tick) GetClient(ctx context.Context, id int) (*ClientDetails, error) {
	var client ClientDetails
	spec := callSpec{
		resource: "clients",
		op:       "getClient",
		method:   http.MethodGet,
		path:     fmt.Sprintf("clients/%d.json", id),
	}
	if err := t.call(ctx, spec, &client); err != nil {
		return nil, err
	}
	if err := checkRecord(spec.op, client.Client); err != nil {
		return nil, err
	}
	return &client, nil
}

// CreateClient creates a client. The payload is sent bare, not wrapped under
// a named key; that asymmetry with projects and users is the remote contract.
func (t *Tick) CreateClient(ctx context.Context, params ClientParams) (*Client, error) {
	if err := params.validateCreate(); err != nil {
		return nil, err
	}
	var client Client
	spec := callSpec{
		resource:  "clients",
		op:        "createClient",
		method:    http.MethodPost,
		path:      "clients.json",
		body:      params,
		forbidden: "Only administrators can create clients",
	}
	if err := t.call(ctx, spec, &client); err != nil {
		return nil, err
	}
	if err := checkRecord(spec.op, client); err != nil {
		return nil, err
	}
	return &client, nil
}

// UpdateClient applies a partial update to a client.
func (t *Tick) UpdateClient(ctx context.Context, id int, params ClientParams) (*Client, error) {
	var client Client
	spec := callSpec{
		resource:  "clients",
		op:        "updateClient",
		method:    http.MethodPut,
		path:      fmt.Sprintf("clients/%d.json", id),
		body:      params,
		forbidden: "Only administrators can update clients",
	}
	if err := t.call(ctx, spec, &client); err != nil {
		return nil, err
	}
	if err := checkRecord(spec.op, client); err != nil {
		return nil, err
	}
	return &client, nil
}

// DeleteClient deletes a client. The remote refuses with 406 while the client
// still has associated projects.
func (t *Tick) DeleteClient(ctx context.Context, id int) error {
	spec := callSpec{
		resource:  "clients",
		op:        "deleteClient",
		method:    http.MethodDelete,
		path:      fmt.Sprintf("clients/%d.json", id),
		forbidden: "Only administrators can delete clients",
		conflict:  "client has associated projects and cannot be deleted",
	}
	return t.call(ctx, spec, nil)
}
