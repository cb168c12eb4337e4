package markdown

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
)

func para(text string) domain.Paragraph {
	return domain.Paragraph{Content: ParseInline(text)}
}

func TestParseBlocks_Headings(t *testing.T) {
	for level := 1; level <= 6; level++ {
		t.Run(fmt.Sprintf("level %d", level), func(t *testing.T) {
			input := strings.Repeat("#", level) + " Title"
			blocks := ParseBlocks(input)

			require.Len(t, blocks, 1)
			heading, ok := blocks[0].(domain.Heading)
			require.True(t, ok)
			assert.Equal(t, level, heading.Level)
			assert.Equal(t, []domain.Inline{plain("Title")}, heading.Content)
		})
	}

	t.Run("seven markers is a paragraph", func(t *testing.T) {
		blocks := ParseBlocks("####### Title")
		require.Len(t, blocks, 1)
		assert.Equal(t, para("####### Title"), blocks[0])
	})

	t.Run("marker without space is a paragraph", func(t *testing.T) {
		blocks := ParseBlocks("#hashtag")
		require.Len(t, blocks, 1)
		assert.IsType(t, domain.Paragraph{}, blocks[0])
	})

	t.Run("inline marks in heading", func(t *testing.T) {
		blocks := ParseBlocks("## The **plan**")
		require.Len(t, blocks, 1)
		heading := blocks[0].(domain.Heading)
		assert.Equal(t, []domain.Inline{plain("The "), marked("plan", domain.MarkStrong)}, heading.Content)
	})
}

func TestParseBlocks_BulletList(t *testing.T) {
	for k := 1; k <= 4; k++ {
		t.Run(fmt.Sprintf("%d items", k), func(t *testing.T) {
			lines := make([]string, k)
			for i := range lines {
				lines[i] = fmt.Sprintf("- item %d", i)
			}
			blocks := ParseBlocks(strings.Join(lines, "\n"))

			require.Len(t, blocks, 1)
			list, ok := blocks[0].(domain.BulletList)
			require.True(t, ok)
			require.Len(t, list.Items, k)
			for i, item := range list.Items {
				assert.Equal(t, []domain.Block{para(fmt.Sprintf("item %d", i))}, item.Content)
			}
		})
	}

	t.Run("both markers in one run", func(t *testing.T) {
		blocks := ParseBlocks("- one\n* two")
		require.Len(t, blocks, 1)
		assert.Len(t, blocks[0].(domain.BulletList).Items, 2)
	})

	t.Run("blank line splits lists", func(t *testing.T) {
		blocks := ParseBlocks("- one\n\n- two")
		require.Len(t, blocks, 2)
		assert.IsType(t, domain.BulletList{}, blocks[0])
		assert.IsType(t, domain.BulletList{}, blocks[1])
	})
}

func TestParseBlocks_OrderedList(t *testing.T) {
	blocks := ParseBlocks("1. first\n2. second\n10. tenth")

	require.Len(t, blocks, 1)
	list, ok := blocks[0].(domain.OrderedList)
	require.True(t, ok)
	require.Len(t, list.Items, 3)
	assert.Equal(t, []domain.Block{para("tenth")}, list.Items[2].Content)
}

func TestParseBlocks_SwitchingMarkerStartsNewList(t *testing.T) {
	blocks := ParseBlocks("- a\n- b\n1. c\n2. d\n- e")

	require.Len(t, blocks, 3)
	assert.Len(t, blocks[0].(domain.BulletList).Items, 2)
	assert.Len(t, blocks[1].(domain.OrderedList).Items, 2)
	assert.Len(t, blocks[2].(domain.BulletList).Items, 1)
}

func TestParseBlocks_CodeBlock(t *testing.T) {
	t.Run("preserves inner lines verbatim", func(t *testing.T) {
		input := "```go\nfunc main() {\n\n    **not bold**\n}\n```\nafter"
		blocks := ParseBlocks(input)

		require.Len(t, blocks, 2)
		code, ok := blocks[0].(domain.CodeBlock)
		require.True(t, ok)
		assert.Equal(t, "go", code.Language)
		assert.Equal(t, "func main() {\n\n    **not bold**\n}", code.Text)
		assert.Equal(t, para("after"), blocks[1])
	})

	t.Run("no language", func(t *testing.T) {
		blocks := ParseBlocks("```\nx\n```")
		require.Len(t, blocks, 1)
		assert.Equal(t, domain.CodeBlock{Text: "x"}, blocks[0])
	})

	t.Run("indented fence", func(t *testing.T) {
		blocks := ParseBlocks("  ``` sh \necho hi\n  ```")
		require.Len(t, blocks, 1)
		assert.Equal(t, domain.CodeBlock{Language: "sh", Text: "echo hi"}, blocks[0])
	})

	t.Run("unterminated fence absorbs the rest", func(t *testing.T) {
		blocks := ParseBlocks("intro\n```\n# not a heading\n- not a list")
		require.Len(t, blocks, 2)
		assert.Equal(t, domain.CodeBlock{Text: "# not a heading\n- not a list"}, blocks[1])
	})

	t.Run("empty block", func(t *testing.T) {
		blocks := ParseBlocks("```\n```")
		require.Len(t, blocks, 1)
		assert.Equal(t, domain.CodeBlock{}, blocks[0])
	})
}

func TestParseBlocks_Table(t *testing.T) {
	t.Run("header then separator then body", func(t *testing.T) {
		input := "| Name | Age |\n|------|:---:|\n| Ann | 31 |\n| Bob | 42 |"
		blocks := ParseBlocks(input)

		require.Len(t, blocks, 1)
		table, ok := blocks[0].(domain.Table)
		require.True(t, ok)
		require.Len(t, table.Rows, 3)

		for _, cell := range table.Rows[0].Cells {
			assert.True(t, cell.Header)
		}
		for _, row := range table.Rows[1:] {
			for _, cell := range row.Cells {
				assert.False(t, cell.Header)
			}
		}
		assert.Equal(t, []domain.Block{para("Ann")}, table.Rows[1].Cells[0].Content)
		assert.Equal(t, []domain.Block{para("42")}, table.Rows[2].Cells[1].Content)
	})

	t.Run("row after leading separator is body", func(t *testing.T) {
		blocks := ParseBlocks("|---|---|\n| a | b |\n| c | d |")

		require.Len(t, blocks, 1)
		table := blocks[0].(domain.Table)
		require.Len(t, table.Rows, 2)
		for _, row := range table.Rows {
			for _, cell := range row.Cells {
				assert.False(t, cell.Header)
			}
		}
	})

	t.Run("no separator marks only first row as header", func(t *testing.T) {
		blocks := ParseBlocks("| a |\n| b |")

		table := blocks[0].(domain.Table)
		require.Len(t, table.Rows, 2)
		assert.True(t, table.Rows[0].Cells[0].Header)
		assert.False(t, table.Rows[1].Cells[0].Header)
	})

	t.Run("inline marks in cells", func(t *testing.T) {
		blocks := ParseBlocks("| **x** | `y` |")

		table := blocks[0].(domain.Table)
		assert.Equal(t,
			[]domain.Block{domain.Paragraph{Content: []domain.Inline{marked("x", domain.MarkStrong)}}},
			table.Rows[0].Cells[0].Content)
		assert.Equal(t,
			[]domain.Block{domain.Paragraph{Content: []domain.Inline{marked("y", domain.MarkCode)}}},
			table.Rows[0].Cells[1].Content)
	})

	t.Run("indented rows stay in the run", func(t *testing.T) {
		blocks := ParseBlocks("| a |\n  | b |\ntext")
		require.Len(t, blocks, 2)
		assert.Len(t, blocks[0].(domain.Table).Rows, 2)
	})
}

func TestParseBlocks_Paragraphs(t *testing.T) {
	t.Run("each line is its own paragraph", func(t *testing.T) {
		blocks := ParseBlocks("first line\nsecond line")
		assert.Equal(t, []domain.Block{para("first line"), para("second line")}, blocks)
	})

	t.Run("blank lines emit nothing", func(t *testing.T) {
		blocks := ParseBlocks("a\n\n   \n\nb\n")
		assert.Equal(t, []domain.Block{para("a"), para("b")}, blocks)
	})

	t.Run("crlf line endings", func(t *testing.T) {
		blocks := ParseBlocks("# T\r\nbody\r\n")
		require.Len(t, blocks, 2)
		assert.Equal(t, 1, blocks[0].(domain.Heading).Level)
		assert.Equal(t, para("body"), blocks[1])
	})

	t.Run("indented list marker is plain text", func(t *testing.T) {
		blocks := ParseBlocks("  - nested")
		assert.Equal(t, []domain.Block{para("  - nested")}, blocks)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ParseBlocks(""))
	})
}

func TestParseBlocks_SourceOrder(t *testing.T) {
	input := strings.Join([]string{
		"# Overview",
		"Intro text",
		"",
		"- a",
		"- b",
		"",
		"1. one",
		"",
		"| h |",
		"|---|",
		"| v |",
		"",
		"```",
		"code",
		"```",
		"Outro",
	}, "\n")

	blocks := ParseBlocks(input)

	kinds := make([]string, len(blocks))
	for i, b := range blocks {
		kinds[i] = b.Kind()
	}
	assert.Equal(t, []string{
		"heading", "paragraph", "bulletList", "orderedList", "table", "codeBlock", "paragraph",
	}, kinds)
}
