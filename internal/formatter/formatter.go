// Package formatter groups substituted lottery-result lines into Discord
// markdown entries separated by blank lines, with calendar-marked date headers.
package formatter

import (
	"strings"
)

const calendarMarker = "📅"

// Options toggles parenthetical emphasis outside of named-entry lines.
type Options struct {
	EmphasizeHeaderParentheses       bool
	EmphasizeContinuationParentheses bool
}

// Formatter is a line-oriented state machine. It is either idle or
// accumulating the body of one entry.
type Formatter struct {
	options Options
}

func New(options Options) *Formatter {
	return &Formatter{options: options}
}

// Format renders text. Formatting already formatted text again is not
// idempotent: headers and bold labels are not recognised on a second pass.
func Format(text string) string {
	return New(Options{}).Format(text)
}

func (f *Formatter) Format(text string) string {
	run := &formatRun{options: f.options}
	for _, raw := range strings.Split(text, "\n") {
		if isFiltered(raw) {
			continue
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}
		run.consume(Classify(raw))
	}
	run.flush()
	return run.output.String()
}

// formatRun holds the state of a single Format call.
type formatRun struct {
	options Options
	output  strings.Builder
	// body of the entry being accumulated; empty means idle
	body string
}

func (r *formatRun) accumulating() bool {
	return r.body != ""
}

func (r *formatRun) consume(line Line) {
	switch line.Kind {
	case KindDateHeader:
		r.flush()
		header := line.Text
		if r.options.EmphasizeHeaderParentheses {
			header = EmphasizeParentheticals(header)
		}
		r.output.WriteString("\n")
		r.output.WriteString(calendarMarker + " **" + header + "**\n\n")
	case KindNamedEntry:
		r.flush()
		r.body = "**" + line.Label() + "**: " + EmphasizeParentheticals(line.Rest)
	default:
		text := line.Text
		if r.options.EmphasizeContinuationParentheses {
			text = EmphasizeParentheticals(text)
		}
		if r.accumulating() {
			r.body += " " + text
			return
		}
		r.output.WriteString(text)
		r.output.WriteString("\n\n")
	}
}

// flush emits the accumulated entry followed by a blank line and returns to idle.
func (r *formatRun) flush() {
	if !r.accumulating() {
		return
	}
	r.output.WriteString(r.body)
	r.output.WriteString("\n\n")
	r.body = ""
}
