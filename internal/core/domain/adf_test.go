package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, doc *Document) string {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(data)
}

func TestNewDocument_Empty(t *testing.T) {
	doc := NewDocument(nil)

	assert.Equal(t, DocumentVersion, doc.Version)
	assert.Equal(t, "doc", doc.Type)
	assert.NotNil(t, doc.Content)
	assert.JSONEq(t, `{"version":1,"type":"doc","content":[]}`, marshal(t, doc))
}

func TestInline_HasMark(t *testing.T) {
	run := Inline{Text: "x", Marks: []Mark{MarkStrong, MarkEmphasis}}

	assert.True(t, run.HasMark(MarkStrong))
	assert.True(t, run.HasMark(MarkEmphasis))
	assert.False(t, run.HasMark(MarkCode))
}

func TestDocument_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		block    Block
		expected string
	}{
		{
			name:  "paragraph with marks",
			block: Paragraph{Content: []Inline{{Text: "a "}, {Text: "b", Marks: []Mark{MarkStrong}}}},
			expected: `{"type":"paragraph","content":[
				{"type":"text","text":"a "},
				{"type":"text","text":"b","marks":[{"type":"strong"}]}]}`,
		},
		{
			name:     "empty paragraph keeps content",
			block:    Paragraph{},
			expected: `{"type":"paragraph","content":[]}`,
		},
		{
			name:     "heading",
			block:    Heading{Level: 3, Content: []Inline{{Text: "T"}}},
			expected: `{"type":"heading","attrs":{"level":3},"content":[{"type":"text","text":"T"}]}`,
		},
		{
			name:     "code block with language",
			block:    CodeBlock{Language: "go", Text: "x := 1\ny := 2"},
			expected: `{"type":"codeBlock","attrs":{"language":"go"},"content":[{"type":"text","text":"x := 1\ny := 2"}]}`,
		},
		{
			name:     "empty code block",
			block:    CodeBlock{},
			expected: `{"type":"codeBlock","attrs":{},"content":[]}`,
		},
		{
			name: "bullet list",
			block: BulletList{Items: []ListItem{
				{Content: []Block{Paragraph{Content: []Inline{{Text: "one"}}}}},
			}},
			expected: `{"type":"bulletList","content":[{"type":"listItem","content":[
				{"type":"paragraph","content":[{"type":"text","text":"one"}]}]}]}`,
		},
		{
			name:     "ordered list",
			block:    OrderedList{Items: []ListItem{{Content: []Block{Paragraph{}}}}},
			expected: `{"type":"orderedList","content":[{"type":"listItem","content":[{"type":"paragraph","content":[]}]}]}`,
		},
		{
			name: "table",
			block: Table{Rows: []TableRow{
				{Cells: []TableCell{{Header: true, Content: []Block{Paragraph{Content: []Inline{{Text: "H"}}}}}}},
				{Cells: []TableCell{{Content: []Block{Paragraph{Content: []Inline{{Text: "v"}}}}}}},
			}},
			expected: `{"type":"table","attrs":{"isNumberColumnEnabled":false,"layout":"default"},"content":[
				{"type":"tableRow","content":[{"type":"tableHeader","attrs":{},"content":[
					{"type":"paragraph","content":[{"type":"text","text":"H"}]}]}]},
				{"type":"tableRow","content":[{"type":"tableCell","attrs":{},"content":[
					{"type":"paragraph","content":[{"type":"text","text":"v"}]}]}]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument([]Block{tt.block})
			assert.JSONEq(t, `{"version":1,"type":"doc","content":[`+tt.expected+`]}`, marshal(t, doc))
		})
	}
}

func TestBlock_Kind(t *testing.T) {
	assert.Equal(t, "paragraph", Paragraph{}.Kind())
	assert.Equal(t, "heading", Heading{}.Kind())
	assert.Equal(t, "codeBlock", CodeBlock{}.Kind())
	assert.Equal(t, "bulletList", BulletList{}.Kind())
	assert.Equal(t, "orderedList", OrderedList{}.Kind())
	assert.Equal(t, "table", Table{}.Kind())
}
