package todoist

import "net/url"

// TaskQuery narrows down the tasks returned by Tasks. Conditions are ANDed together by the server. The zero
// value (and a nil pointer) means no filtering at all.
type TaskQuery struct {
	params url.Values
}

func NewTaskQuery() *TaskQuery {
	return &TaskQuery{params: make(url.Values)}
}

// WithProjectID looks for tasks in the given project.
func (q *TaskQuery) WithProjectID(id string) *TaskQuery {
	q.params.Set("project_id", id)
	return q
}

// WithLabel looks for tasks carrying the given label name.
func (q *TaskQuery) WithLabel(name string) *TaskQuery {
	q.params.Set("label", name)
	return q
}

// WithFilter applies a Todoist filter expression, e.g., "today" or "overdue". The expression is interpreted by
// the server; see https://todoist.com/help/articles/introduction-to-filters for the syntax.
func (q *TaskQuery) WithFilter(expr string) *TaskQuery {
	q.params.Set("filter", expr)
	return q
}

func (q *TaskQuery) values() url.Values {
	if q == nil {
		return nil
	}
	return q.params
}
