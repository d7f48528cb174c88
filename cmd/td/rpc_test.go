package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nicolagi/todoist-launcher/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe(t *testing.T) {
	// No token configured: every query degrades to the instructive item, and the loop survives garbage.
	p := plugin.New(plugin.NewMemoryStore())
	in := strings.NewReader(`{"method":"query","params":[""]}
this is not json
{"method":"action","params":["frobnicate 42"]}
{"method":"ping"}
`)
	var out bytes.Buffer
	require.Nil(t, serve(context.Background(), p, in, &out))

	dec := json.NewDecoder(&out)
	var responses []response
	for dec.More() {
		var resp response
		require.Nil(t, dec.Decode(&resp))
		responses = append(responses, resp)
	}
	require.Len(t, responses, 4)

	require.Len(t, responses[0].Items, 1)
	assert.Equal(t, "No API token configured", responses[0].Items[0].Title)
	assert.Empty(t, responses[0].Error)

	assert.Equal(t, "malformed request", responses[1].Error)
	assert.Contains(t, responses[2].Error, "unknown action")
	assert.Contains(t, responses[3].Error, "unknown method")
}

func TestEncodeItems(t *testing.T) {
	encoded := encodeItems([]plugin.DisplayItem{
		{
			Title:    "Buy milk",
			Subtitle: "Due today",
			Actions: []plugin.Action{
				{ID: "open https://app.todoist.com/task/1", Label: "Show details"},
				{ID: "close 1", Label: "Set as done"},
			},
		},
	})
	require.Len(t, encoded, 1)
	assert.Equal(t, "Buy milk", encoded[0].Title)
	require.Len(t, encoded[0].Actions, 2)
	assert.Equal(t, "close 1", encoded[0].Actions[1].ID)
}
