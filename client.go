package todoist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	uuid "github.com/nu7hatch/gouuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ErrUnauthorized is returned when the API rejects the token.
var ErrUnauthorized = errors.New("token rejected")

// ErrStatusCode is returned in case the response from the API contains a status code that the client can't handle.
var ErrStatusCode = errors.New("unhandled status code")

type clientOption func(*Client) error

// WithEndpoint is a client option to set the endpoint when building a client with NewClient. This is meant to be
// used in tests only.
func WithEndpoint(endpoint string) clientOption {
	return func(c *Client) error {
		c.endpoint = endpoint
		return nil
	}
}

// WithHTTPClient is a client option to replace the HTTP client used for API calls, e.g., to set a different
// timeout than the default one.
func WithHTTPClient(httpc *http.Client) clientOption {
	return func(c *Client) error {
		c.httpc = httpc
		return nil
	}
}

// WithWireLog is a client option to be passed to NewClient in order to log all requests and responses to the
// specified log file. Useful for debugging the client itself, shouldn't be needed in normal operation.
func WithWireLog(pathname string) clientOption {
	return func(c *Client) error {
		f, err := os.OpenFile(pathname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err == nil {
			c.wlog = f
		}
		return err
	}
}

// Client is a Todoist REST API client, for the v2 API version. For more documentation on the API see
// https://developer.todoist.com/rest/v2/. The client keeps no local copy of the remote data; every method is a
// single round trip to the API.
type Client struct {
	endpoint string

	// The secret token to authenticate and authorize API calls.
	token string

	httpc *http.Client

	// If non-nil, log all requests and responses to this file, one per line, in JSON format.
	wlog io.Writer

	// Gates every API call. Todoist allows roughly 450 requests per 15 minutes; staying well within that
	// budget also keeps a fast-typing launcher user from hammering the API.
	limiter *rate.Limiter
}

// NewClient creates a new client authenticated and authorized by the given token.
func NewClient(token string, opts ...clientOption) (*Client, error) {
	c := &Client{
		endpoint: "https://api.todoist.com/rest/v2",
		token:    token,
		httpc:    &http.Client{Timeout: 10 * time.Second},
		wlog:     io.Discard,
		limiter:  rate.NewLimiter(rate.Every(2*time.Second), 5),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// do performs one API call. The out argument, if non-nil, receives the decoded response body. Mutating calls
// carry a client-generated UUID in the X-Request-Id header so that a retried request can't create duplicates.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s, marshal: %w", method, path, err)
		}
		_, _ = c.wlog.Write([]byte(`{"type": "request", "request": `))
		_, _ = c.wlog.Write(b)
		_, _ = c.wlog.Write([]byte("}\n"))
		reqBody = bytes.NewReader(b)
	}
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		if id, err := uuid.NewV4(); err == nil {
			req.Header.Set("X-Request-Id", id.String())
		}
	}
	r, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.WithFields(log.Fields{
				"op":    method + " " + path,
				"cause": err,
			}).Warning("Could not close response body")
		}
	}()
	switch r.StatusCode {
	case http.StatusOK:
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return fmt.Errorf("%s %s, read body: %w", method, path, err)
		}
		_, _ = c.wlog.Write([]byte(`{"type": "response", "response": `))
		_, _ = c.wlog.Write(b)
		_, _ = c.wlog.Write([]byte("}\n"))
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(b, out); err != nil {
			return fmt.Errorf("%s %s, unmarshal: %w", method, path, err)
		}
		return nil
	case http.StatusNoContent:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%d: %w", r.StatusCode, ErrUnauthorized)
	default:
		var responseText string
		b, err := io.ReadAll(r.Body)
		if err != nil {
			responseText = fmt.Sprintf("unknown, because of error reading body: %v", err)
		} else {
			responseText = string(b)
		}
		log.WithFields(log.Fields{
			"op":   method + " " + path,
			"code": r.StatusCode,
			"text": responseText,
		}).Error("Unhandled response status code")
		return fmt.Errorf("%d: %w", r.StatusCode, ErrStatusCode)
	}
}
