package plugin

import (
	"errors"
	"strings"
)

// ErrEmptyContent is returned by EncodeQuickAdd when nothing is left for the task title once all recognized
// tokens have been stripped.
var ErrEmptyContent = errors.New("no task content")

// TaskDraft is the structured creation request produced by EncodeQuickAdd. Project is a name, not an id; it is
// resolved against the account's projects at creation time. Priority is on the user-facing scale, 1 most urgent,
// 0 meaning the server default. Due is a natural-language phrase interpreted by the server's date parser.
type TaskDraft struct {
	Title       string
	Description string
	Project     string
	Labels      []string
	Priority    int
	Due         string
	Deadline    string
}

// EncodeQuickAdd extracts the quick-add tokens from the content of an add query. It applies a fixed sequence of
// extraction rules, each consuming its match from a working string and passing the remainder on: description
// (first "//"), deadline (first braced phrase, contents taken verbatim), project (first "#" token), labels (all
// "@" tokens), priority (first standalone p1..p4), and finally the due phrase (first "today"/"tomorrow"/weekday
// style token through the end). It is a pure function; it performs no API calls.
func EncodeQuickAdd(content string) (*TaskDraft, error) {
	var draft TaskDraft
	rest := content
	rest, draft.Description = splitDescription(rest)
	rest, draft.Deadline = extractBraced(rest)
	tokens := strings.Fields(rest)
	tokens, draft.Project = extractProject(tokens)
	tokens, draft.Labels = extractLabels(tokens)
	tokens, draft.Priority = extractPriority(tokens)
	draft.Title, draft.Due = splitDue(tokens)
	if draft.Title == "" {
		return nil, ErrEmptyContent
	}
	return &draft, nil
}

// splitDescription splits on the first "//". Everything after it belongs to the description, even further "//"
// occurrences.
func splitDescription(s string) (rest, description string) {
	i := strings.Index(s, "//")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+2:])
}

// extractBraced removes the first {...} phrase. The braces' contents are opaque: they are not subject to the
// project/label/priority token rules, so a "#friday" inside braces stays part of the deadline phrase.
func extractBraced(s string) (rest, phrase string) {
	open := strings.Index(s, "{")
	if open < 0 {
		return s, ""
	}
	length := strings.Index(s[open+1:], "}")
	if length < 0 {
		return s, ""
	}
	phrase = strings.TrimSpace(s[open+1 : open+1+length])
	return s[:open] + s[open+2+length:], phrase
}

// extractProject takes the first "#" token as the project name. Later "#" tokens are left alone and end up in
// the title.
func extractProject(tokens []string) (rest []string, project string) {
	for i, tok := range tokens {
		if len(tok) > 1 && tok[0] == '#' {
			return append(tokens[:i:i], tokens[i+1:]...), tok[1:]
		}
	}
	return tokens, ""
}

// extractLabels collects all "@" tokens as a label set, deduplicated, in order of first mention.
func extractLabels(tokens []string) (rest []string, labels []string) {
	seen := make(map[string]bool)
	for _, tok := range tokens {
		if len(tok) > 1 && tok[0] == '@' {
			if name := tok[1:]; !seen[name] {
				seen[name] = true
				labels = append(labels, name)
			}
			continue
		}
		rest = append(rest, tok)
	}
	return rest, labels
}

// extractPriority takes the first standalone p1..p4 token, case-insensitive. p1 is the most urgent.
func extractPriority(tokens []string) (rest []string, priority int) {
	for i, tok := range tokens {
		if len(tok) == 2 && (tok[0] == 'p' || tok[0] == 'P') && tok[1] >= '1' && tok[1] <= '4' {
			return append(tokens[:i:i], tokens[i+1:]...), int(tok[1] - '0')
		}
	}
	return tokens, 0
}

var dueKeywords = map[string]bool{
	"today":     true,
	"tomorrow":  true,
	"tonight":   true,
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// splitDue looks for the first date-like token ("today", "tomorrow", "tonight", a weekday name, or "next"
// followed by a weekday). Everything from that token on is forwarded unchanged as the due phrase for the server's
// date parser; everything before it is the title.
func splitDue(tokens []string) (title, due string) {
	for i, tok := range tokens {
		lower := strings.ToLower(tok)
		if dueKeywords[lower] || (lower == "next" && i+1 < len(tokens) && dueKeywords[strings.ToLower(tokens[i+1])]) {
			return strings.Join(tokens[:i], " "), strings.Join(tokens[i:], " ")
		}
	}
	return strings.Join(tokens, " "), ""
}
