package plugin

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	todoist "github.com/nicolagi/todoist-launcher"
)

// DisplayItem is one renderable result row for the launcher, with the actions the user can invoke on it. Items
// are built fresh for every query and never persisted.
type DisplayItem struct {
	Title    string
	Subtitle string
	Actions  []Action
}

// Action is a user-invokable effect attached to a display item. The ID round-trips through the host: it is
// handed out here and comes back via HandleAction when the user picks the action.
type Action struct {
	ID    string
	Label string
}

func openAction(label, url string) Action {
	return Action{ID: "open " + url, Label: label}
}

func closeAction(taskID string) Action {
	return Action{ID: "close " + taskID, Label: "Set as done"}
}

func addAction(content string) Action {
	return Action{ID: "add " + content, Label: "Add task"}
}

// TaskItems maps tasks to display items, in the given order. Every task gets a "Show details" action opening its
// web URL; tasks not yet done additionally get a "Set as done" action.
func TaskItems(tasks []*todoist.Task) []DisplayItem {
	items := make([]DisplayItem, 0, len(tasks))
	for _, t := range tasks {
		item := DisplayItem{
			Title:    t.Content,
			Subtitle: taskSubtitle(t),
			Actions:  []Action{openAction("Show details", t.URL)},
		}
		if !t.Completed {
			item.Actions = append(item.Actions, closeAction(t.ID))
		}
		items = append(items, item)
	}
	return items
}

// FilterTasks keeps the tasks whose content contains the term, case-insensitive, preserving the given order. No
// re-sorting, no deduplication.
func FilterTasks(tasks []*todoist.Task, term string) []*todoist.Task {
	term = strings.ToLower(term)
	var matches []*todoist.Task
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Content), term) {
			matches = append(matches, t)
		}
	}
	return matches
}

// ProjectItems maps the projects whose name contains the given name, case-insensitive, to display items.
func ProjectItems(projects []*todoist.Project, name string) []DisplayItem {
	needle := strings.ToLower(name)
	var items []DisplayItem
	for _, p := range projects {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		items = append(items, DisplayItem{
			Title:    p.Name,
			Subtitle: "Project",
			Actions:  []Action{openAction("Open project", p.URL)},
		})
	}
	return items
}

// ErrorItem communicates a failed query as a single display item. It is the only item the user sees for that
// query; partial results are never mixed with errors.
func ErrorItem(err error) DisplayItem {
	switch {
	case errors.Is(err, ErrMissingToken):
		return DisplayItem{
			Title:    "No API token configured",
			Subtitle: "Set api_token in the plugin settings to connect your Todoist account",
		}
	case errors.Is(err, todoist.ErrUnauthorized):
		return DisplayItem{
			Title:    "Todoist rejected the API token",
			Subtitle: "Check api_token in the plugin settings",
		}
	case errors.Is(err, ErrEmptyContent):
		return DisplayItem{
			Title:    "Nothing to add",
			Subtitle: "Type the task content after add",
		}
	case errors.Is(err, todoist.ErrStatusCode):
		// Todoist did answer, e.g., with a 429 or a 5xx; don't misreport that as a network failure.
		return DisplayItem{
			Title:    "Todoist returned an error",
			Subtitle: "The request failed remotely, try again later",
		}
	default:
		return DisplayItem{
			Title:    "Todoist is unreachable",
			Subtitle: "Check your network connection and try again",
		}
	}
}

func noticeItem(title, subtitle string) DisplayItem {
	return DisplayItem{Title: title, Subtitle: subtitle}
}

func taskSubtitle(t *todoist.Task) string {
	if t.Due == nil {
		return ""
	}
	label := t.Due.String
	if label == "" {
		label = t.Due.Date
	}
	if d := time.Until(t.Due.Time()); d > time.Minute {
		return fmt.Sprintf("Due %s, in %s", label, relativeDurationFormat(d))
	}
	return "Due " + label
}

func relativeDurationFormat(d time.Duration) string {
	var buf bytes.Buffer
	t := d / (24 * time.Hour)
	if t != 0 {
		fmt.Fprintf(&buf, "%dd", t)
	}
	d -= t * 24 * time.Hour
	t = d / time.Hour
	if t != 0 {
		fmt.Fprintf(&buf, "%dh", t)
	}
	d -= t * time.Hour
	if buf.Len() == 0 {
		t = d / time.Minute
		if t != 0 {
			fmt.Fprintf(&buf, "%dm", t)
		}
	}
	return buf.String()
}
