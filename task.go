package todoist

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Task partially describes a task in Todoist. It only includes a subset of the fields. It is used to deserialize
// API responses and should be treated as read-only. Use AddTaskRequest for creating tasks.
type Task struct {
	ID          string   `json:"id"`
	ProjectID   string   `json:"project_id"`
	Content     string   `json:"content"`
	Description string   `json:"description"`
	Labels      []string `json:"labels"`

	// Priority on the API scale, where 4 is the most urgent. (The user-facing scale is reversed; see
	// AddTaskRequest.)
	Priority int `json:"priority"`

	Completed bool   `json:"is_completed"`
	URL       string `json:"url"`
	Due       *Due   `json:"due"`
}

// Due describes a task's due date as returned by the API.
type Due struct {
	// Due date in the format YYYY-MM-DD, in the user's timezone.
	Date string `json:"date"`

	// Specific due time in RFC 3339 format in UTC, or empty.
	Datetime string `json:"datetime"`

	// Human-readable representation of the due date, e.g., "every friday". This is the form the server's
	// date parser accepts back.
	String string `json:"string"`

	IsRecurring bool `json:"is_recurring"`

	// This will be lazily populated by parsing the Datetime or Date property.
	time time.Time
}

// Time returns the due instant. Dates without a time of day count as due at the end of that day. The parsed
// time is cached on first call, which needs the pointer receiver.
func (due *Due) Time() time.Time {
	if !due.time.IsZero() {
		return due.time
	}
	date := due.Datetime
	if date == "" {
		date = due.Date
	}
	if !strings.Contains(date, "T") {
		date += "T23:59:59Z"
	}
	var err error
	due.time, err = time.Parse(time.RFC3339, date)
	if err != nil {
		log.WithFields(log.Fields{
			"cause": err,
			"date":  date,
		}).Warning("Could not parse time, has Todoist changed format?")
	}
	return due.time
}

// AddTaskRequest holds the attributes for a new task. Content is the only required field. Priority is on the
// user-facing scale, where 1 is the most urgent and 4 the least; it is translated to the reversed API scale when
// marshalled. Zero values are omitted from the request so the server applies its own defaults.
type AddTaskRequest struct {
	Content     string
	Description string
	ProjectID   string
	Labels      []string
	Priority    int
	DueString   string
	Deadline    string
}

// MarshalJSON implements json.Marshaler.
func (r *AddTaskRequest) MarshalJSON() ([]byte, error) {
	body := struct {
		Content     string   `json:"content"`
		Description string   `json:"description,omitempty"`
		ProjectID   string   `json:"project_id,omitempty"`
		Labels      []string `json:"labels,omitempty"`
		Priority    int      `json:"priority,omitempty"`
		DueString   string   `json:"due_string,omitempty"`
		Deadline    string   `json:"deadline_date,omitempty"`
	}{
		Content:     r.Content,
		Description: r.Description,
		ProjectID:   r.ProjectID,
		Labels:      r.Labels,
		DueString:   r.DueString,
		Deadline:    r.Deadline,
	}
	if r.Priority >= 1 && r.Priority <= 4 {
		body.Priority = 5 - r.Priority
	}
	return json.Marshal(body)
}

// Tasks returns the user's open tasks, optionally narrowed down by a query built with NewTaskQuery. Tasks come
// back in API order; callers that want a different order have to sort themselves.
func (c *Client) Tasks(ctx context.Context, query *TaskQuery) ([]*Task, error) {
	var tasks []*Task
	if err := c.do(ctx, http.MethodGet, "/tasks", query.values(), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a new task and returns the server's copy of it.
func (c *Client) CreateTask(ctx context.Context, req *AddTaskRequest) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CloseTask marks the task as done. Recurring tasks are moved to their next occurrence rather than completed,
// which is the server's behavior, not this client's.
func (c *Client) CloseTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/tasks/"+id+"/close", nil, nil, nil)
}
