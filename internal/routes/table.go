package routes

import (
	"path"
	"strings"

	"sortd/internal/config"
)

// Phase identifies which matching phase produced a decision.
type Phase int

const (
	// PhaseGlob is a wildcard match against the filename.
	PhaseGlob Phase = iota
	// PhaseFilename is a keyword match within the filename.
	PhaseFilename
	// PhaseContent is a keyword match within extracted content.
	PhaseContent
)

// String returns the phase label used in logs and the journal.
func (p Phase) String() string {
	switch p {
	case PhaseGlob:
		return "glob"
	case PhaseFilename:
		return "filename"
	case PhaseContent:
		return "content"
	default:
		return "unknown"
	}
}

// Decision records a successful route match.
type Decision struct {
	Folder  string
	Pattern string
	Phase   Phase
}

type route struct {
	pattern string
	lowered string
	folder  string
	isGlob  bool
}

// Table is an immutable, ordered route table.
type Table struct {
	routes []route
}

// New builds a Table from configured rules, preserving declaration order.
func New(rules []config.Route) *Table {
	table := &Table{routes: make([]route, 0, len(rules))}
	for _, rule := range rules {
		pattern := strings.TrimSpace(rule.Pattern)
		folder := strings.TrimSpace(rule.Folder)
		if pattern == "" || folder == "" {
			continue
		}
		table.routes = append(table.routes, route{
			pattern: pattern,
			lowered: strings.ToLower(pattern),
			folder:  folder,
			isGlob:  strings.ContainsAny(pattern, "*?[]"),
		})
	}
	return table
}

// Len returns the number of usable routes.
func (t *Table) Len() int { return len(t.routes) }

// Rules returns the routes in declaration order for display purposes.
func (t *Table) Rules() []config.Route {
	out := make([]config.Route, len(t.routes))
	for i, r := range t.routes {
		out[i] = config.Route{Pattern: r.pattern, Folder: r.folder}
	}
	return out
}

// Match decides the destination folder for a filename and optional extracted
// content. Phases run in strict order and the first hit wins: glob patterns
// against the filename, then keywords within the filename, then keywords
// within content (only when content is non-empty). All comparisons are
// case-insensitive. A false result means the file stays where it is.
func (t *Table) Match(filename, content string) (Decision, bool) {
	lowerName := strings.ToLower(filename)

	for _, r := range t.routes {
		if !r.isGlob {
			continue
		}
		// Malformed globs never match rather than failing the pipeline.
		if ok, err := path.Match(r.lowered, lowerName); err == nil && ok {
			return Decision{Folder: r.folder, Pattern: r.pattern, Phase: PhaseGlob}, true
		}
	}

	for _, r := range t.routes {
		if r.isGlob {
			continue
		}
		if strings.Contains(lowerName, r.lowered) {
			return Decision{Folder: r.folder, Pattern: r.pattern, Phase: PhaseFilename}, true
		}
	}

	// The content phase reuses the same keyword list as the filename phase;
	// a keyword route can therefore hit on either signal.
	if lowerContent := strings.ToLower(content); lowerContent != "" {
		for _, r := range t.routes {
			if r.isGlob {
				continue
			}
			if strings.Contains(lowerContent, r.lowered) {
				return Decision{Folder: r.folder, Pattern: r.pattern, Phase: PhaseContent}, true
			}
		}
	}

	return Decision{}, false
}
