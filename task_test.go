package todoist_test

import (
	"encoding/json"
	"testing"

	todoist "github.com/nicolagi/todoist-launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTaskRequestMarshal(t *testing.T) {
	testCases := []struct {
		req      *todoist.AddTaskRequest // request to serialize
		expected string                  // expected JSON output
	}{
		{
			req:      &todoist.AddTaskRequest{Content: "something"},
			expected: `{"content":"something"}`,
		},
		{
			req:      &todoist.AddTaskRequest{Content: `it "quoted" the quote`},
			expected: `{"content":"it \"quoted\" the quote"}`,
		},
		{
			req:      &todoist.AddTaskRequest{Content: "call mom", Description: "about the trip"},
			expected: `{"content":"call mom","description":"about the trip"}`,
		},
		{
			req:      &todoist.AddTaskRequest{Content: "ship it", ProjectID: "6XGgm2Fh2vv39cv7"},
			expected: `{"content":"ship it","project_id":"6XGgm2Fh2vv39cv7"}`,
		},
		{
			req:      &todoist.AddTaskRequest{Content: "buy milk", Labels: []string{"errand", "home"}},
			expected: `{"content":"buy milk","labels":["errand","home"]}`,
		},
		{
			// Priority 1 is the most urgent on the user scale, 4 on the API scale.
			req:      &todoist.AddTaskRequest{Content: "pay rent", Priority: 1},
			expected: `{"content":"pay rent","priority":4}`,
		},
		{
			req:      &todoist.AddTaskRequest{Content: "water plants", Priority: 4},
			expected: `{"content":"water plants","priority":1}`,
		},
		{
			// Out-of-range priorities are dropped so the server default applies.
			req:      &todoist.AddTaskRequest{Content: "whatever", Priority: 9},
			expected: `{"content":"whatever"}`,
		},
		{
			req:      &todoist.AddTaskRequest{Content: "pay rent", DueString: "next friday"},
			expected: `{"content":"pay rent","due_string":"next friday"}`,
		},
		{
			req:      &todoist.AddTaskRequest{Content: "file taxes", Deadline: "2026-04-15"},
			expected: `{"content":"file taxes","deadline_date":"2026-04-15"}`,
		},
	}
	for _, tc := range testCases {
		t.Run("", func(t *testing.T) {
			b, err := json.Marshal(tc.req)
			require.Nil(t, err)
			assert.Equal(t, tc.expected, string(b))
		})
	}
}

func TestDueTime(t *testing.T) {
	due := todoist.Due{Date: "2026-08-07"}
	assert.Equal(t, "2026-08-07T23:59:59Z", due.Time().Format("2006-01-02T15:04:05Z"))

	due = todoist.Due{Date: "2026-08-07", Datetime: "2026-08-07T21:20:34Z"}
	assert.Equal(t, "2026-08-07T21:20:34Z", due.Time().Format("2006-01-02T15:04:05Z"))
}

func TestDueTimeCached(t *testing.T) {
	due := todoist.Due{Date: "2026-08-07"}
	first := due.Time()
	// The first call parses and caches; later calls return the cached instant rather than re-parsing.
	due.Date = "2027-01-01"
	assert.Equal(t, first, due.Time())
}
