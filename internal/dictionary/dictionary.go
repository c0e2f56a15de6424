package dictionary

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	unresolvedPrefix = "<<<"
	unresolvedSuffix = ">>>"
)

// Dictionary maps a normalized term to its translation.
// A lookup miss inserts a placeholder translation so that an operator can
// fill in the real one later.
type Dictionary struct {
	entries map[string]string
	learned []string
}

// New returns an empty Dictionary.
func New() *Dictionary {
	return &Dictionary{
		entries: make(map[string]string),
	}
}

// NewFromMap builds a Dictionary from raw entries, normalizing every key.
// When two raw keys normalize to the same term, the entry whose key was
// already normalized wins.
func NewFromMap(entries map[string]string) *Dictionary {
	d := New()
	for key, value := range entries {
		term := NormalizeTerm(key)
		if _, ok := d.entries[term]; ok && key != term {
			continue
		}
		d.entries[term] = value
	}
	return d
}

// NormalizeTerm trims surrounding whitespace and composes the term into NFC
// so that visually identical keys share one entry.
func NormalizeTerm(term string) string {
	return norm.NFC.String(strings.TrimSpace(term))
}

// Placeholder returns the marker value stored for a term that has no known translation.
func Placeholder(term string) string {
	return unresolvedPrefix + term + unresolvedSuffix
}

// IsUnresolved reports whether the translation is still a placeholder.
func IsUnresolved(translation string) bool {
	return strings.HasPrefix(translation, unresolvedPrefix)
}

// Translate returns the stored translation of term.
// On a miss it records a placeholder for the normalized term and returns the
// normalized term itself, so the caller's text stays usable.
func (d *Dictionary) Translate(term string) string {
	key := NormalizeTerm(term)
	if translated, ok := d.entries[key]; ok {
		if IsUnresolved(translated) {
			return key
		}
		return translated
	}
	d.insertIfAbsent(key, Placeholder(key))
	return key
}

// insertIfAbsent adds the entry only when the key is unknown; it never overwrites.
func (d *Dictionary) insertIfAbsent(key, translation string) bool {
	if _, ok := d.entries[key]; ok {
		return false
	}
	d.entries[key] = translation
	d.learned = append(d.learned, key)
	return true
}

// add inserts a persisted entry, keeping the first value seen for a normalized term.
func (d *Dictionary) add(term, translation string) bool {
	key := NormalizeTerm(term)
	if _, ok := d.entries[key]; ok {
		return false
	}
	d.entries[key] = translation
	return true
}

// Lookup returns the stored value for term without learning it.
func (d *Dictionary) Lookup(term string) (string, bool) {
	translated, ok := d.entries[NormalizeTerm(term)]
	return translated, ok
}

// Set stores a translation for term, replacing any existing value.
func (d *Dictionary) Set(term, translation string) {
	d.entries[NormalizeTerm(term)] = translation
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns a copy of the underlying mapping.
func (d *Dictionary) Entries() map[string]string {
	entries := make(map[string]string, len(d.entries))
	for key, value := range d.entries {
		entries[key] = value
	}
	return entries
}

// Terms returns all keys in ascending order.
func (d *Dictionary) Terms() []string {
	terms := make([]string, 0, len(d.entries))
	for term := range d.entries {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Unresolved returns every term whose value is still a placeholder, sorted.
func (d *Dictionary) Unresolved() []string {
	var terms []string
	for term, translation := range d.entries {
		if IsUnresolved(translation) {
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)
	return terms
}

// Learned returns the terms inserted as placeholders by this Dictionary value,
// in the order they were first seen.
func (d *Dictionary) Learned() []string {
	return append([]string(nil), d.learned...)
}
