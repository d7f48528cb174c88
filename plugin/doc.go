// The plugin package implements the launcher-facing logic for managing Todoist tasks from a desktop launcher's
// query line. It classifies the raw query into an intent (show the main view, add a task, show projects, search
// tasks), encodes the quick-add syntax of task creation queries, and maps API responses to display items with
// user-invokable actions.
//
// The package is host-agnostic. A host embeds it by providing a settings Store (the only persistent state, which
// holds the API token among a few preferences) and calls HandleQuery for every query and HandleAction for the
// action the user picked. The stdio bridge in cmd/td is one such host.
//
// Quick-add syntax for "add" queries: #project assigns the task to a project, @label attaches a label (repeatable),
// p1..p4 sets the priority (p1 most urgent), {...} sets a deadline passed through verbatim, // starts the
// description, and a trailing "today"/"tomorrow"/weekday phrase becomes the due date, interpreted by the server.
// For example: add Buy book #Books @shopping p2 {next friday} // remember ISBN.
package plugin
