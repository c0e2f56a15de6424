package translation

import (
	"golang.org/x/text/unicode/norm"

	"github.com/at-ishikawa/lottery-translator/internal/formatter"
)

// Pipeline runs the substitution passes in order and then formats the result.
type Pipeline struct {
	passes    []Pass
	formatter *formatter.Formatter
}

// NewPipeline builds the name, unit and parenthetical passes. Both translators
// are expected to learn unknown terms as a side effect.
func NewPipeline(names, parentheticals Translator, options formatter.Options) *Pipeline {
	return &Pipeline{
		passes: []Pass{
			NewNamePass(names),
			NewStaticTokenPass(LakhsToken, LakhsSinhala),
			NewParentheticalPass(parentheticals),
		},
		formatter: formatter.New(options),
	}
}

// Substitute applies every pass to raw text composed into NFC.
func (p *Pipeline) Substitute(raw string) string {
	text := norm.NFC.String(raw)
	for _, pass := range p.passes {
		text = pass.Apply(text)
	}
	return text
}

// Format renders substituted text as the final message.
func (p *Pipeline) Format(substituted string) string {
	return p.formatter.Format(substituted)
}

// Run substitutes and formats raw text in one call.
func (p *Pipeline) Run(raw string) string {
	return p.Format(p.Substitute(raw))
}
