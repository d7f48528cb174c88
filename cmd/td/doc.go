// The td program bridges the Todoist launcher plugin to a launcher host over stdin/stdout. The host writes one
// JSON request per line and reads one JSON response per line:
//
//	{"method":"query","params":["add Buy book #Books p2"]}
//	{"items":[{"title":"Add task: Buy book","subtitle":"Press Enter to add this task to Todoist","actions":[...]}]}
//
// The "query" method takes the query text with the trigger keyword (conventionally "td") already stripped by the
// host. Each returned item carries zero or more actions; when the user picks one, the host sends its id back with
// the "action" method. Every failure is reported either as a single display item or as an {"error":...} response;
// the program never exits because of a failed query.
//
// Settings, including the Todoist API token, live in a YAML file, by default settings.yaml in $XDG_CONFIG_HOME/td
// (or ~/.config/td). Set api_token there to get started; max_tasks, project and show_today_only tune the main
// view. Diagnostics go to stderr, since stdout belongs to the protocol.
//
// Example queries: the empty query shows a quick-add hint and the tasks due today; "add Buy book #Books @shopping
// p2 {next friday} // remember ISBN" offers to create a task; "project Work" lists matching projects; any other
// text searches task content.
package main
