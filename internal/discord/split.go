package discord

import (
	"strings"
	"unicode/utf8"
)

// SplitMessage breaks message into parts of at most limit characters.
// It cuts at blank lines first, then at line breaks, and only cuts inside a
// line when a single line is longer than limit. Whitespace-only parts are dropped.
func SplitMessage(message string, limit int) []string {
	if limit <= 0 || utf8.RuneCountInString(message) <= limit {
		return []string{message}
	}

	chunks := pack(strings.SplitAfter(message, "\n\n"), limit, func(block string) []string {
		return pack(strings.SplitAfter(block, "\n"), limit, func(line string) []string {
			return cutRunes(line, limit)
		})
	})

	parts := chunks[:0]
	for _, chunk := range chunks {
		if strings.TrimSpace(chunk) != "" {
			parts = append(parts, chunk)
		}
	}
	return parts
}

// pack concatenates pieces greedily into chunks of at most limit characters.
func pack(pieces []string, limit int, oversize func(string) []string) []string {
	var chunks []string
	var current strings.Builder
	currentLen := 0
	flush := func() {
		if currentLen == 0 {
			return
		}
		chunks = append(chunks, current.String())
		current.Reset()
		currentLen = 0
	}

	for _, piece := range pieces {
		n := utf8.RuneCountInString(piece)
		if n == 0 {
			continue
		}
		if n > limit {
			flush()
			chunks = append(chunks, oversize(piece)...)
			continue
		}
		if currentLen+n > limit {
			flush()
		}
		current.WriteString(piece)
		currentLen += n
	}
	flush()
	return chunks
}

func cutRunes(text string, limit int) []string {
	runes := []rune(text)
	var parts []string
	for start := 0; start < len(runes); start += limit {
		end := min(start+limit, len(runes))
		parts = append(parts, string(runes[start:end]))
	}
	return parts
}
