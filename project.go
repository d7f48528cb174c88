package todoist

import (
	"context"
	"net/http"
)

// Project partially describes a project. It only includes a subset of the fields available in Todoist. It must
// only be used to parse API responses.
type Project struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsInbox    bool   `json:"is_inbox_project"`
	IsArchived bool   `json:"is_archived"`
	URL        string `json:"url"`
}

// Projects returns all active projects, in API order.
func (c *Client) Projects(ctx context.Context) ([]*Project, error) {
	var projects []*Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}
