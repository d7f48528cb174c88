package plugin

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	todoist "github.com/nicolagi/todoist-launcher"
)

// ErrMissingToken means no API token is configured in the settings store.
var ErrMissingToken = errors.New("api token not configured")

// ErrUnknownAction is returned by HandleAction for an action ID this plugin never handed out.
var ErrUnknownAction = errors.New("unknown action")

// ClientFactory builds an API client for the given token. The plugin builds a client on first use and keeps it
// until the stored token changes, so token edits in the settings take effect on the next keystroke while the
// client's rate-limiter state survives across queries.
type ClientFactory func(token string) (*todoist.Client, error)

type pluginOption func(*Plugin)

// WithClientFactory replaces how API clients are built, e.g., to point them at a test server.
func WithClientFactory(factory ClientFactory) pluginOption {
	return func(p *Plugin) {
		p.factory = factory
	}
}

// WithOpenURL provides the effect behind "Show details" and "Open project" actions. Hosts typically pass a
// function opening the system browser; without one those actions do nothing.
func WithOpenURL(open func(url string) error) pluginOption {
	return func(p *Plugin) {
		p.openURL = open
	}
}

// Plugin answers launcher queries about Todoist tasks. It holds no task state of its own: every query is one
// synchronous round trip to the API, and every task shown maps 1:1 to a remote task at the time of the query.
type Plugin struct {
	settings Store
	factory  ClientFactory
	openURL  func(url string) error

	// The client is cached across queries, keyed by the token that built it. Rebuilding per query would
	// reset the client's rate limiter exactly under the per-keystroke load it is there to gate.
	mu          sync.Mutex
	cached      *todoist.Client
	cachedToken string
}

// New creates a plugin reading its configuration, including the API token, from the given store.
func New(settings Store, opts ...pluginOption) *Plugin {
	p := &Plugin{
		settings: settings,
		factory: func(token string) (*todoist.Client, error) {
			return todoist.NewClient(token)
		},
		openURL: func(string) error { return nil },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// HandleQuery turns the raw query text, already stripped of the trigger keyword, into display items. Failures
// degrade to a single user-visible item; this method never fails the host.
func (p *Plugin) HandleQuery(ctx context.Context, text string) []DisplayItem {
	client, err := p.client()
	if err != nil {
		return []DisplayItem{ErrorItem(err)}
	}
	intent := ParseQuery(text)
	switch intent.Kind {
	case AddTask:
		return p.addItems(intent.Raw)
	case ShowProject:
		return p.showProject(ctx, client, intent.Raw)
	case Search:
		return p.search(ctx, client, intent.Raw)
	default:
		return p.showMain(ctx, client)
	}
}

// HandleAction performs the effect of the action the user picked. The action ID is one previously handed out in
// a DisplayItem. Each effect is a single fire-and-forget call; there is no retry.
func (p *Plugin) HandleAction(ctx context.Context, actionID string) error {
	verb, arg, _ := strings.Cut(actionID, " ")
	switch verb {
	case "open":
		return p.openURL(arg)
	case "close":
		client, err := p.client()
		if err != nil {
			return err
		}
		return client.CloseTask(ctx, arg)
	case "add":
		client, err := p.client()
		if err != nil {
			return err
		}
		return p.createTask(ctx, client, arg)
	default:
		return fmt.Errorf("%q: %w", actionID, ErrUnknownAction)
	}
}

func (p *Plugin) client() (*todoist.Client, error) {
	token, ok := p.settings.Get(KeyAPIToken)
	if !ok || strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	token = strings.TrimSpace(token)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cached != nil && p.cachedToken == token {
		return p.cached, nil
	}
	client, err := p.factory(token)
	if err != nil {
		return nil, err
	}
	p.cached = client
	p.cachedToken = token
	return client, nil
}

func (p *Plugin) showMain(ctx context.Context, client *todoist.Client) []DisplayItem {
	tasks, err := client.Tasks(ctx, p.mainQuery(ctx, client))
	if err != nil {
		return []DisplayItem{ErrorItem(err)}
	}
	if max := p.maxTasks(); len(tasks) > max {
		tasks = tasks[:max]
	}
	items := []DisplayItem{{
		Title:    "Add new task",
		Subtitle: "td add <task content>",
		Actions:  []Action{openAction("Open Todoist", "https://todoist.com/app/today")},
	}}
	if len(tasks) == 0 {
		return append(items, noticeItem("No tasks", "No tasks matched the filters"))
	}
	return append(items, TaskItems(tasks)...)
}

// mainQuery builds the task query for the main view from the settings: tasks due today when show_today_only is
// set, narrowed to the configured project unless that is the inbox.
func (p *Plugin) mainQuery(ctx context.Context, client *todoist.Client) *todoist.TaskQuery {
	query := todoist.NewTaskQuery()
	if p.showTodayOnly() {
		query.WithFilter("today")
	}
	if name := p.projectSetting(); name != "" {
		if id := resolveProject(ctx, client, name); id != "" {
			query.WithProjectID(id)
		}
	}
	return query
}

func (p *Plugin) addItems(content string) []DisplayItem {
	draft, err := EncodeQuickAdd(content)
	if err != nil {
		return []DisplayItem{ErrorItem(err)}
	}
	return []DisplayItem{{
		Title:    "Add task: " + draft.Title,
		Subtitle: "Press Enter to add this task to Todoist",
		Actions:  []Action{addAction(content)},
	}}
}

func (p *Plugin) search(ctx context.Context, client *todoist.Client, term string) []DisplayItem {
	tasks, err := client.Tasks(ctx, nil)
	if err != nil {
		return []DisplayItem{ErrorItem(err)}
	}
	items := TaskItems(FilterTasks(tasks, term))
	if len(items) == 0 {
		return []DisplayItem{noticeItem("No matching tasks", "Try a different query")}
	}
	return items
}

func (p *Plugin) showProject(ctx context.Context, client *todoist.Client, name string) []DisplayItem {
	projects, err := client.Projects(ctx)
	if err != nil {
		return []DisplayItem{ErrorItem(err)}
	}
	items := ProjectItems(projects, name)
	if len(items) == 0 {
		return []DisplayItem{noticeItem("No matching projects", "Try a different name")}
	}
	return items
}

// createTask re-encodes the quick-add content and performs the creation call. The content is re-encoded rather
// than carried as a structured payload so that action IDs stay plain strings for the host.
func (p *Plugin) createTask(ctx context.Context, client *todoist.Client, content string) error {
	draft, err := EncodeQuickAdd(content)
	if err != nil {
		return err
	}
	req := &todoist.AddTaskRequest{
		Content:     draft.Title,
		Description: draft.Description,
		Labels:      draft.Labels,
		Priority:    draft.Priority,
		DueString:   draft.Due,
		Deadline:    draft.Deadline,
	}
	if draft.Project != "" {
		req.ProjectID = resolveProject(ctx, client, draft.Project)
	}
	if _, err := client.CreateTask(ctx, req); err != nil {
		return fmt.Errorf("add task: %w", err)
	}
	return nil
}

// resolveProject finds the id of the project with the given name, case-insensitive. An unknown name resolves to
// the empty id, which the creation call treats as the inbox.
func resolveProject(ctx context.Context, client *todoist.Client, name string) string {
	projects, err := client.Projects(ctx)
	if err != nil {
		log.WithFields(log.Fields{
			"project": name,
			"cause":   err,
		}).Warning("Could not list projects to resolve name")
		return ""
	}
	for _, p := range projects {
		if strings.EqualFold(p.Name, name) {
			return p.ID
		}
	}
	log.WithField("project", name).Warning("No project with this name, falling back to inbox")
	return ""
}

func (p *Plugin) maxTasks() int {
	if value, ok := p.settings.Get(KeyMaxTasks); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
			return n
		}
	}
	return 10
}

func (p *Plugin) showTodayOnly() bool {
	if value, ok := p.settings.Get(KeyShowTodayOnly); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return true
}

// projectSetting returns the configured project name for the main view, or empty for the inbox.
func (p *Plugin) projectSetting() string {
	value, ok := p.settings.Get(KeyProject)
	if !ok {
		return ""
	}
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "inbox") {
		return ""
	}
	return value
}
