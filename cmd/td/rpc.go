package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/nicolagi/todoist-launcher/plugin"
)

type request struct {
	Method string   `json:"method"`
	Params []string `json:"params"`
}

type response struct {
	Items []item `json:"items"`
	Error string `json:"error,omitempty"`
}

type item struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Actions  []action `json:"actions,omitempty"`
}

type action struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// serve runs the request-response loop until the host closes its end. A malformed or failed request gets an
// error response; nothing here terminates the process.
func serve(ctx context.Context, p *plugin.Plugin, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	enc := json.NewEncoder(out)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			log.WithField("cause", err).Warning("Malformed request from host")
			_ = enc.Encode(response{Error: "malformed request"})
			continue
		}
		_ = enc.Encode(handle(ctx, p, req))
	}
	return scanner.Err()
}

func handle(ctx context.Context, p *plugin.Plugin, req request) response {
	var param string
	if len(req.Params) > 0 {
		param = req.Params[0]
	}
	switch req.Method {
	case "query":
		return response{Items: encodeItems(p.HandleQuery(ctx, param))}
	case "action":
		if err := p.HandleAction(ctx, param); err != nil {
			log.WithFields(log.Fields{
				"action": param,
				"cause":  err,
			}).Warning("Action failed")
			return response{Items: []item{}, Error: err.Error()}
		}
		return response{Items: []item{}}
	default:
		return response{Items: []item{}, Error: "unknown method: " + req.Method}
	}
}

func encodeItems(items []plugin.DisplayItem) []item {
	encoded := make([]item, len(items))
	for i, di := range items {
		encoded[i] = item{Title: di.Title, Subtitle: di.Subtitle}
		for _, a := range di.Actions {
			encoded[i].Actions = append(encoded[i].Actions, action{ID: a.ID, Label: a.Label})
		}
	}
	return encoded
}
