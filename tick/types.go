package tick

// Summary is the embedded count/url/updated_at block the API attaches to
// detailed records (a client's projects, a project's tasks, a task's entries).
type Summary struct {
	Count     int     `json:"count"`
	URL       string  `json:"url"`
	UpdatedAt *string `json:"updated_at"`
}
