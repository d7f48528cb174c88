// The todoist package contains a Todoist client that uses a subset of the Todoist REST API v2 documented at
// https://developer.todoist.com/rest/v2. The client will be extended to support more functionality as required
// by consumers; at the time of writing the only consumer is the launcher plugin in the plugin subdirectory and
// its host bridge in cmd/td.
//
// The client is deliberately stateless: there is no local cache of tasks or projects and no sync token. Each
// method performs exactly one authenticated round trip, and a rate limiter makes sure a burst of calls (one per
// launcher keystroke, in the worst case) stays within the API's request budget.
package todoist
