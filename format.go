package persona

import (
	"strings"
	"unicode"
)

// FormatChunks formats chunks for display or LLM context.
// Each chunk is headed by its source URL and separated by blank lines.
func FormatChunks(chunks []*Chunk) string {
	if len(chunks) == 0 {
		return ""
	}

	parts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		parts = append(parts, "## Source: "+c.SourceURL+"\n"+c.Text)
	}

	return strings.Join(parts, "\n\n")
}

// DisplayName renders a normalized persona name for humans:
// "ada_lovelace" becomes "Ada Lovelace".
func DisplayName(normalized string) string {
	words := strings.Split(normalized, "_")
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			r[0] = unicode.ToUpper(r[0])
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
