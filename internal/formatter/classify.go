package formatter

import (
	"regexp"
	"strings"
)

// LineKind is the result of classifying one trimmed input line.
type LineKind int

const (
	KindPlain LineKind = iota
	KindDateHeader
	KindNamedEntry
)

func (k LineKind) String() string {
	switch k {
	case KindDateHeader:
		return "date_header"
	case KindNamedEntry:
		return "named_entry"
	default:
		return "plain"
	}
}

var (
	datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	// name, optional draw number, ':' or '-', rest
	namedEntryPattern = regexp.MustCompile(`^(.+?)(\s*\d*)?[:\-]\s*(.*)$`)
	// parenthetical single word; letters include combining marks so Sinhala words match
	parentheticalPattern = regexp.MustCompile(`\(([\p{L}\p{M}\p{Nd}_]+)\)`)
)

// Line is a classified, trimmed input line.
type Line struct {
	Kind LineKind
	Text string

	// Set only for KindNamedEntry.
	Name      string
	Qualifier string
	Rest      string
}

// Label is the entry label: the name, followed by the qualifier when present.
func (l Line) Label() string {
	if l.Qualifier == "" {
		return l.Name
	}
	return l.Name + " " + l.Qualifier
}

// Classify assigns a kind to a line. Date headers take priority over named
// entries because a header such as "Jayamalla 2025-09-10" also contains a
// hyphen after a name.
func Classify(line string) Line {
	text := strings.TrimSpace(line)
	if datePattern.MatchString(text) {
		return Line{Kind: KindDateHeader, Text: text}
	}
	if groups := namedEntryPattern.FindStringSubmatch(text); groups != nil {
		return Line{
			Kind:      KindNamedEntry,
			Text:      text,
			Name:      strings.TrimSpace(groups[1]),
			Qualifier: strings.TrimSpace(groups[2]),
			Rest:      strings.TrimSpace(groups[3]),
		}
	}
	return Line{Kind: KindPlain, Text: text}
}

// isFiltered reports whether a line is noise to be dropped before classification.
func isFiltered(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "Rs.") || trimmed == "-"
}

// EmphasizeParentheticals wraps the word of every "(word)" in bold markers,
// keeping the parentheses.
func EmphasizeParentheticals(text string) string {
	return parentheticalPattern.ReplaceAllString(text, "(**${1}**)")
}
