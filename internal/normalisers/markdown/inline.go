package markdown

import (
	"strings"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
)

// ParseInline splits a single line into styled runs.
//
// Recognised, in priority order at each position: **strong**, *em* or _em_,
// and `code`. The shortest enclosed run wins and enclosed text is taken
// verbatim, so marks never nest. A marker without a closing partner on the
// line is kept as literal text. Every input character ends up in exactly
// one run.
func ParseInline(line string) []domain.Inline {
	runs := []domain.Inline{}
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			runs = append(runs, domain.Inline{Text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(line); {
		if text, width, mark, ok := matchDelimited(line, i); ok {
			flush()
			runs = append(runs, domain.Inline{Text: text, Marks: []domain.Mark{mark}})
			i += width
			continue
		}
		plain.WriteByte(line[i])
		i++
	}
	flush()

	return runs
}

// matchDelimited tries each delimited form at position i. It returns the
// enclosed text, the number of bytes consumed including delimiters, and
// the mark to apply.
func matchDelimited(line string, i int) (string, int, domain.Mark, bool) {
	switch line[i] {
	case '*':
		if strings.HasPrefix(line[i:], "**") {
			if text, ok := enclosed(line, i, "**"); ok {
				return text, len(text) + 4, domain.MarkStrong, true
			}
		}
		if text, ok := enclosed(line, i, "*"); ok {
			return text, len(text) + 2, domain.MarkEmphasis, true
		}
	case '_':
		if text, ok := enclosed(line, i, "_"); ok {
			return text, len(text) + 2, domain.MarkEmphasis, true
		}
	case '`':
		if text, ok := enclosed(line, i, "`"); ok {
			return text, len(text) + 2, domain.MarkCode, true
		}
	}
	return "", 0, "", false
}

// enclosed returns the shortest non-empty text between an opening delim at
// position i and the next occurrence of the same delim.
func enclosed(line string, i int, delim string) (string, bool) {
	start := i + len(delim)
	if start+1 > len(line) {
		return "", false
	}
	// Content is at least one byte, so the closing search skips one.
	end := strings.Index(line[start+1:], delim)
	if end < 0 {
		return "", false
	}
	end += start + 1
	return line[start:end], true
}
