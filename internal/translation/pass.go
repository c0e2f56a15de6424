// Package translation substitutes lottery names, unit words and parenthetical
// terms in raw result text before it is formatted.
package translation

import (
	"regexp"
	"strings"
)

// Translator resolves a single term. Implementations may learn unknown terms.
type Translator interface {
	Translate(term string) string
}

// Pass rewrites the whole text.
type Pass interface {
	Apply(text string) string
}

var (
	// line-leading name, optional draw number, then ':' or '-'
	namePrefixPattern  = regexp.MustCompile(`(?m)^([A-Za-z .]+?)(?:\s+\d+)?\s*([-:])`)
	parenthesisPattern = regexp.MustCompile(`\(([\p{L}\p{M}\p{Nd}_]+)\)`)
)

// NamePass translates the lottery name at the start of each line.
type NamePass struct {
	names Translator
}

func NewNamePass(names Translator) *NamePass {
	return &NamePass{names: names}
}

// Apply replaces only the first occurrence of the name inside the matched
// line prefix; the draw number, separator and the rest of the line are kept.
func (p *NamePass) Apply(text string) string {
	matches := namePrefixPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		prefix := text[m[0]:m[1]]
		name := text[m[2]:m[3]]
		b.WriteString(text[last:m[0]])
		b.WriteString(strings.Replace(prefix, name, p.names.Translate(name), 1))
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// StaticTokenPass replaces one whole word with a fixed localized word.
type StaticTokenPass struct {
	pattern     *regexp.Regexp
	replacement string
}

const (
	LakhsToken   = "lakhs"
	LakhsSinhala = "ලක්ෂ"
)

// NewStaticTokenPass matches token case-insensitively on word boundaries.
func NewStaticTokenPass(token, replacement string) *StaticTokenPass {
	return &StaticTokenPass{
		pattern:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`),
		replacement: replacement,
	}
}

func (p *StaticTokenPass) Apply(text string) string {
	return p.pattern.ReplaceAllLiteralString(text, p.replacement)
}

// ParentheticalPass translates every "(word)" anywhere in the text.
type ParentheticalPass struct {
	terms Translator
}

func NewParentheticalPass(terms Translator) *ParentheticalPass {
	return &ParentheticalPass{terms: terms}
}

func (p *ParentheticalPass) Apply(text string) string {
	return parenthesisPattern.ReplaceAllStringFunc(text, func(match string) string {
		word := match[1 : len(match)-1]
		return "(" + p.terms.Translate(word) + ")"
	})
}
