package plugin_test

import (
	"errors"
	"fmt"
	"testing"

	todoist "github.com/nicolagi/todoist-launcher"
	"github.com/nicolagi/todoist-launcher/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskItemsActions(t *testing.T) {
	items := plugin.TaskItems([]*todoist.Task{
		{ID: "1", Content: "open task", URL: "https://app.todoist.com/task/1"},
		{ID: "2", Content: "done task", URL: "https://app.todoist.com/task/2", Completed: true},
	})
	require.Len(t, items, 2)

	require.Len(t, items[0].Actions, 2)
	assert.Equal(t, "Show details", items[0].Actions[0].Label)
	assert.Equal(t, "open https://app.todoist.com/task/1", items[0].Actions[0].ID)
	assert.Equal(t, "Set as done", items[0].Actions[1].Label)
	assert.Equal(t, "close 1", items[0].Actions[1].ID)

	// A task already done never offers "Set as done".
	require.Len(t, items[1].Actions, 1)
	assert.Equal(t, "Show details", items[1].Actions[0].Label)
}

func TestFilterTasks(t *testing.T) {
	tasks := []*todoist.Task{
		{ID: "1", Content: "Buy milk"},
		{ID: "2", Content: "Write report"},
		{ID: "3", Content: "buy MILK and eggs"},
	}
	matches := plugin.FilterTasks(tasks, "buy milk")
	require.Len(t, matches, 2)
	// API order is preserved among matches.
	assert.Equal(t, "1", matches[0].ID)
	assert.Equal(t, "3", matches[1].ID)
}

func TestProjectItems(t *testing.T) {
	projects := []*todoist.Project{
		{ID: "1", Name: "Work", URL: "https://app.todoist.com/project/1"},
		{ID: "2", Name: "Homework", URL: "https://app.todoist.com/project/2"},
		{ID: "3", Name: "Garden", URL: "https://app.todoist.com/project/3"},
	}
	items := plugin.ProjectItems(projects, "work")
	require.Len(t, items, 2)
	assert.Equal(t, "Work", items[0].Title)
	assert.Equal(t, "Homework", items[1].Title)
	require.Len(t, items[0].Actions, 1)
	assert.Equal(t, "open https://app.todoist.com/project/1", items[0].Actions[0].ID)
}

func TestErrorItemWording(t *testing.T) {
	missing := plugin.ErrorItem(plugin.ErrMissingToken)
	auth := plugin.ErrorItem(todoist.ErrUnauthorized)
	remote := plugin.ErrorItem(fmt.Errorf("502: %w", todoist.ErrStatusCode))
	network := plugin.ErrorItem(errors.New("dial tcp: connection refused"))

	// The failure modes read differently, and none of them offers actions.
	titles := map[string]bool{}
	for _, item := range []plugin.DisplayItem{missing, auth, remote, network} {
		titles[item.Title] = true
		assert.Empty(t, item.Actions)
	}
	assert.Len(t, titles, 4)

	// A remote error is Todoist answering badly, not an unreachable Todoist.
	assert.Equal(t, "Todoist returned an error", remote.Title)
	assert.Equal(t, "Todoist is unreachable", network.Title)
}
