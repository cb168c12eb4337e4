package domain

import "encoding/json"

// DocumentVersion is the only ADF version Jira accepts.
const DocumentVersion = 1

// Mark is an inline text style.
type Mark string

// Supported inline marks. The values are the ADF mark type names.
const (
	MarkStrong   Mark = "strong"
	MarkEmphasis Mark = "em"
	MarkCode     Mark = "code"
)

// Document is the root of an Atlassian Document Format tree.
// It is built once per conversion and not modified afterwards.
type Document struct {
	Version int
	Type    string
	Content []Block
}

// NewDocument wraps a block sequence into a version 1 document.
func NewDocument(blocks []Block) *Document {
	if blocks == nil {
		blocks = []Block{}
	}
	return &Document{
		Version: DocumentVersion,
		Type:    "doc",
		Content: blocks,
	}
}

// MarshalJSON encodes the document in ADF wire form.
func (d *Document) MarshalJSON() ([]byte, error) {
	content := make([]node, 0, len(d.Content))
	for _, b := range d.Content {
		content = append(content, b.adf())
	}
	return json.Marshal(struct {
		Version int    `json:"version"`
		Type    string `json:"type"`
		Content []node `json:"content"`
	}{
		Version: d.Version,
		Type:    d.Type,
		Content: content,
	})
}

// Block is a top-level content unit of a document.
// The set of implementations is closed to this package.
type Block interface {
	// Kind returns the ADF node type name.
	Kind() string

	adf() node
}

// Inline is a styled run of text inside a block.
type Inline struct {
	Text  string
	Marks []Mark
}

// HasMark reports whether the run carries the given mark.
func (i Inline) HasMark(m Mark) bool {
	for _, mark := range i.Marks {
		if mark == m {
			return true
		}
	}
	return false
}

// Paragraph is a single line of inline content.
type Paragraph struct {
	Content []Inline
}

// Heading is a section title with level 1 to 6.
type Heading struct {
	Level   int
	Content []Inline
}

// CodeBlock holds raw text, newlines included. Language is optional.
type CodeBlock struct {
	Language string
	Text     string
}

// BulletList is an unordered list.
type BulletList struct {
	Items []ListItem
}

// OrderedList is a numbered list.
type OrderedList struct {
	Items []ListItem
}

// ListItem is one entry of a list.
type ListItem struct {
	Content []Block
}

// Table is a grid of rows.
type Table struct {
	Rows []TableRow
}

// TableRow is one row of a table.
type TableRow struct {
	Cells []TableCell
}

// TableCell is a header or body cell.
type TableCell struct {
	Header  bool
	Content []Block
}

// Kind implements Block.
func (Paragraph) Kind() string { return "paragraph" }

// Kind implements Block.
func (Heading) Kind() string { return "heading" }

// Kind implements Block.
func (CodeBlock) Kind() string { return "codeBlock" }

// Kind implements Block.
func (BulletList) Kind() string { return "bulletList" }

// Kind implements Block.
func (OrderedList) Kind() string { return "orderedList" }

// Kind implements Block.
func (Table) Kind() string { return "table" }

// node is the generic ADF wire node.
// Text is set only on text nodes.
type node struct {
	Type    string
	Text    *string
	Attrs   map[string]any
	Marks   []markNode
	Content []node
}

type markNode struct {
	Type string `json:"type"`
}

// MarshalJSON encodes the node, keeping empty content arrays and empty
// attrs objects where ADF expects them.
func (n node) MarshalJSON() ([]byte, error) {
	out := map[string]any{"type": n.Type}
	if n.Text != nil {
		out["text"] = *n.Text
		if len(n.Marks) > 0 {
			out["marks"] = n.Marks
		}
		return json.Marshal(out)
	}
	if n.Attrs != nil {
		out["attrs"] = n.Attrs
	}
	content := n.Content
	if content == nil {
		content = []node{}
	}
	out["content"] = content
	return json.Marshal(out)
}

func inlineNodes(runs []Inline) []node {
	nodes := make([]node, 0, len(runs))
	for _, r := range runs {
		text := r.Text
		n := node{Type: "text", Text: &text}
		for _, m := range r.Marks {
			n.Marks = append(n.Marks, markNode{Type: string(m)})
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func blockNodes(blocks []Block) []node {
	nodes := make([]node, 0, len(blocks))
	for _, b := range blocks {
		nodes = append(nodes, b.adf())
	}
	return nodes
}

func (p Paragraph) adf() node {
	return node{Type: p.Kind(), Content: inlineNodes(p.Content)}
}

func (h Heading) adf() node {
	return node{
		Type:    h.Kind(),
		Attrs:   map[string]any{"level": h.Level},
		Content: inlineNodes(h.Content),
	}
}

func (c CodeBlock) adf() node {
	attrs := map[string]any{}
	if c.Language != "" {
		attrs["language"] = c.Language
	}
	n := node{Type: c.Kind(), Attrs: attrs}
	// ADF rejects empty text nodes.
	if c.Text != "" {
		text := c.Text
		n.Content = []node{{Type: "text", Text: &text}}
	}
	return n
}

func listNodes(items []ListItem) []node {
	nodes := make([]node, 0, len(items))
	for _, item := range items {
		nodes = append(nodes, node{Type: "listItem", Content: blockNodes(item.Content)})
	}
	return nodes
}

func (l BulletList) adf() node {
	return node{Type: l.Kind(), Content: listNodes(l.Items)}
}

func (l OrderedList) adf() node {
	return node{Type: l.Kind(), Content: listNodes(l.Items)}
}

func (t Table) adf() node {
	rows := make([]node, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]node, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cellType := "tableCell"
			if cell.Header {
				cellType = "tableHeader"
			}
			cells = append(cells, node{
				Type:    cellType,
				Attrs:   map[string]any{},
				Content: blockNodes(cell.Content),
			})
		}
		rows = append(rows, node{Type: "tableRow", Content: cells})
	}
	return node{
		Type:    t.Kind(),
		Attrs:   map[string]any{"isNumberColumnEnabled": false, "layout": "default"},
		Content: rows,
	}
}
