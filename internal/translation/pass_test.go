package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/lottery-translator/internal/dictionary"
)

// recordingTranslator answers from table and remembers every term it was asked.
type recordingTranslator struct {
	terms []string
	table map[string]string
}

func (r *recordingTranslator) Translate(term string) string {
	r.terms = append(r.terms, term)
	if translated, ok := r.table[term]; ok {
		return translated
	}
	return term
}

func TestNamePass_Apply(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		table     map[string]string
		want      string
		wantTerms []string
	}{
		{
			name:      "name with draw number and colon",
			input:     "Govisetha 1234: Govisetha wins",
			table:     map[string]string{"Govisetha": "ගොවිසෙත"},
			want:      "ගොවිසෙත 1234: Govisetha wins",
			wantTerms: []string{"Govisetha"},
		},
		{
			name:      "multi word name with hyphen",
			input:     "Mahajana Sampatha - 1 2 3",
			table:     map[string]string{"Mahajana Sampatha": "මහජන සම්පත"},
			want:      "මහජන සම්පත - 1 2 3",
			wantTerms: []string{"Mahajana Sampatha"},
		},
		{
			name:      "date header line is a name line too",
			input:     "Jayamalla 2025-09-10",
			table:     map[string]string{"Jayamalla": "ජය මල්ල"},
			want:      "ජය මල්ල 2025-09-10",
			wantTerms: []string{"Jayamalla"},
		},
		{
			name:      "every line is scanned",
			input:     "Govisetha: 1\n12 34\nShanida - 2\n",
			table:     map[string]string{"Govisetha": "G", "Shanida": "S"},
			want:      "G: 1\n12 34\nS - 2\n",
			wantTerms: []string{"Govisetha", "Shanida"},
		},
		{
			name:  "lines without a leading name are untouched",
			input: "12 34 56\nRs.500000\n(agro)\n",
			want:  "12 34 56\nRs.500000\n(agro)\n",
		},
		{
			name:      "unknown name keeps the original text",
			input:     "Ada Kotipathi: 9",
			want:      "Ada Kotipathi: 9",
			wantTerms: []string{"Ada Kotipathi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translator := &recordingTranslator{table: tt.table}
			got := NewNamePass(translator).Apply(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantTerms, translator.terms)
		})
	}
}

func TestNamePass_LearnsUnknownNames(t *testing.T) {
	names := dictionary.New()
	pass := NewNamePass(names)

	got := pass.Apply("Govisetha: 1\nGovisetha: 2\n")

	assert.Equal(t, "Govisetha: 1\nGovisetha: 2\n", got)
	assert.Equal(t, 1, names.Len())
	assert.Equal(t, []string{"Govisetha"}, names.Unresolved())
}

func TestStaticTokenPass_Apply(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "whole word",
			input: "Rs.1000000 lakhs",
			want:  "Rs.1000000 ලක්ෂ",
		},
		{
			name:  "case insensitive",
			input: "10 Lakhs and 20 LAKHS",
			want:  "10 ලක්ෂ and 20 ලක්ෂ",
		},
		{
			name:  "part of a longer word is kept",
			input: "lakhsmore",
			want:  "lakhsmore",
		},
		{
			name:  "every line",
			input: "1 lakhs\n2 lakhs\n",
			want:  "1 ලක්ෂ\n2 ලක්ෂ\n",
		},
	}

	pass := NewStaticTokenPass(LakhsToken, LakhsSinhala)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pass.Apply(tt.input))
		})
	}
}

func TestParentheticalPass_Apply(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		table     map[string]string
		want      string
		wantTerms []string
	}{
		{
			name:      "known term",
			input:     "500000 (agro) ලක්ෂ",
			table:     map[string]string{"agro": "කෘෂි"},
			want:      "500000 (කෘෂි) ලක්ෂ",
			wantTerms: []string{"agro"},
		},
		{
			name:      "several terms left to right",
			input:     "(wed) x (agro)\n(wed)",
			table:     map[string]string{"wed": "බදාදා"},
			want:      "(බදාදා) x (agro)\n(බදාදා)",
			wantTerms: []string{"wed", "agro", "wed"},
		},
		{
			name:  "phrases are not terms",
			input: "(two words) ()",
			want:  "(two words) ()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translator := &recordingTranslator{table: tt.table}
			got := NewParentheticalPass(translator).Apply(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantTerms, translator.terms)
		})
	}
}

func TestParentheticalPass_UnknownTermRoundTrip(t *testing.T) {
	terms := dictionary.New()

	got := NewParentheticalPass(terms).Apply("Govisetha: 5 (wonder)")

	assert.Contains(t, got, "(wonder)")
	assert.Equal(t, []string{"wonder"}, terms.Unresolved())
	value, ok := terms.Lookup("wonder")
	assert.True(t, ok)
	assert.Equal(t, dictionary.Placeholder("wonder"), value)
}
