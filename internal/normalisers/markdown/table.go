package markdown

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
)

var separatorPattern = regexp.MustCompile(`^\|[\s|:-]+\|$`)

func isTableRow(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "|")
}

func isSeparatorRow(line string) bool {
	return separatorPattern.MatchString(strings.TrimSpace(line))
}

// splitCells strips one outer pipe from each end and splits on the rest.
func splitCells(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	cells := strings.Split(line, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// scanTable consumes the maximal run of pipe-prefixed lines.
func scanTable(s *scanner) (domain.Block, bool) {
	if !isTableRow(s.peek()) {
		return nil, false
	}

	var b tableBuilder
	for !s.done() && isTableRow(s.peek()) {
		b.add(s.peek())
		s.advance()
	}
	return b.build(), true
}

// tableBuilder collects rows of one table run. Only the run's first line
// produces header cells; separator rows are counted but never emitted.
type tableBuilder struct {
	lines int
	rows  []domain.TableRow
}

func (b *tableBuilder) add(line string) {
	header := b.lines == 0
	b.lines++
	if isSeparatorRow(line) {
		return
	}

	texts := splitCells(line)
	row := domain.TableRow{Cells: make([]domain.TableCell, 0, len(texts))}
	for _, text := range texts {
		row.Cells = append(row.Cells, domain.TableCell{
			Header:  header,
			Content: []domain.Block{paragraph(text)},
		})
	}
	b.rows = append(b.rows, row)
}

func (b *tableBuilder) build() domain.Table {
	rows := b.rows
	if rows == nil {
		rows = []domain.TableRow{}
	}
	return domain.Table{Rows: rows}
}
