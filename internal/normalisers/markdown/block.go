package markdown

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
)

const fence = "```"

var (
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)`)
	bulletPattern  = regexp.MustCompile(`^[-*]\s+`)
	orderedPattern = regexp.MustCompile(`^\d+\.\s+`)
)

// scanner is a cursor over the input lines.
type scanner struct {
	lines []string
	pos   int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.lines)
}

func (s *scanner) peek() string {
	return s.lines[s.pos]
}

func (s *scanner) advance() {
	s.pos++
}

// blockHandler inspects the line under the cursor. When the line opens the
// handler's block kind it consumes the whole block and returns ok; the block
// may be nil for consumed lines that emit nothing.
type blockHandler func(s *scanner) (block domain.Block, ok bool)

// handlers are tried in precedence order; paragraph always matches.
var handlers = []blockHandler{
	scanCodeBlock,
	scanHeading,
	scanBulletList,
	scanOrderedList,
	scanTable,
	scanBlank,
	scanParagraph,
}

// ParseBlocks converts markup text into a block sequence in source order.
// It never fails: lines matching no construct become one-line paragraphs.
func ParseBlocks(text string) []domain.Block {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	s := &scanner{lines: strings.Split(text, "\n")}

	blocks := []domain.Block{}
	for !s.done() {
		for _, handle := range handlers {
			block, ok := handle(s)
			if !ok {
				continue
			}
			if block != nil {
				blocks = append(blocks, block)
			}
			break
		}
	}
	return blocks
}

func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), fence)
}

// scanCodeBlock consumes a fenced block up to the closing fence or end of
// input. Inner lines are kept verbatim.
func scanCodeBlock(s *scanner) (domain.Block, bool) {
	if !isFence(s.peek()) {
		return nil, false
	}
	opening := strings.TrimLeftFunc(s.peek(), unicode.IsSpace)
	language := strings.TrimSpace(strings.TrimPrefix(opening, fence))
	s.advance()

	var body []string
	for !s.done() && !isFence(s.peek()) {
		body = append(body, s.peek())
		s.advance()
	}
	if !s.done() {
		s.advance()
	}

	return domain.CodeBlock{Language: language, Text: strings.Join(body, "\n")}, true
}

func scanHeading(s *scanner) (domain.Block, bool) {
	m := headingPattern.FindStringSubmatch(s.peek())
	if m == nil {
		return nil, false
	}
	s.advance()
	return domain.Heading{Level: len(m[1]), Content: ParseInline(m[2])}, true
}

func scanBulletList(s *scanner) (domain.Block, bool) {
	items, ok := scanList(s, bulletPattern)
	if !ok {
		return nil, false
	}
	return domain.BulletList{Items: items}, true
}

func scanOrderedList(s *scanner) (domain.Block, bool) {
	items, ok := scanList(s, orderedPattern)
	if !ok {
		return nil, false
	}
	return domain.OrderedList{Items: items}, true
}

// scanList consumes the maximal run of lines whose prefix matches marker.
func scanList(s *scanner, marker *regexp.Regexp) ([]domain.ListItem, bool) {
	var b listBuilder
	for !s.done() {
		loc := marker.FindStringIndex(s.peek())
		if loc == nil {
			break
		}
		b.add(s.peek()[loc[1]:])
		s.advance()
	}
	return b.items, len(b.items) > 0
}

func scanBlank(s *scanner) (domain.Block, bool) {
	if strings.TrimSpace(s.peek()) != "" {
		return nil, false
	}
	s.advance()
	return nil, true
}

// scanParagraph turns the current line into a paragraph of its own.
// Consecutive lines are not joined.
func scanParagraph(s *scanner) (domain.Block, bool) {
	line := s.peek()
	s.advance()
	return paragraph(line), true
}

func paragraph(text string) domain.Paragraph {
	return domain.Paragraph{Content: ParseInline(text)}
}

// listBuilder accumulates list items until the run ends.
type listBuilder struct {
	items []domain.ListItem
}

func (b *listBuilder) add(text string) {
	b.items = append(b.items, domain.ListItem{
		Content: []domain.Block{paragraph(text)},
	})
}
