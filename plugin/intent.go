package plugin

import "strings"

// IntentKind enumerates what a single query asks for.
type IntentKind int

const (
	// ShowMain is the default view: a quick-add hint followed by the current task list.
	ShowMain IntentKind = iota

	// AddTask creates a task from the query's quick-add content.
	AddTask

	// ShowProject lists projects matching a name.
	ShowProject

	// Search looks for tasks whose content contains the query text.
	Search
)

// Intent is the classified purpose of one incoming query. It is derived once per query and never mutated.
type Intent struct {
	Kind IntentKind

	// Raw carries the intent's payload: the quick-add content for AddTask, the project name for ShowProject,
	// the search term for Search. Empty for ShowMain.
	Raw string
}

// ParseQuery classifies the query text, already stripped of the launcher's trigger keyword. Outer whitespace is
// irrelevant, but whitespace inside a search term is preserved verbatim since it is used for matching.
func ParseQuery(text string) Intent {
	text = strings.TrimSpace(text)
	if text == "" {
		return Intent{Kind: ShowMain}
	}
	if rest, ok := cutPrefixFold(text, "add "); ok && strings.TrimSpace(rest) != "" {
		return Intent{Kind: AddTask, Raw: rest}
	}
	if rest, ok := cutPrefixFold(text, "project "); ok {
		if name := strings.TrimSpace(rest); name != "" {
			return Intent{Kind: ShowProject, Raw: name}
		}
		return Intent{Kind: ShowMain}
	}
	return Intent{Kind: Search, Raw: text}
}

func cutPrefixFold(s, prefix string) (rest string, ok bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
