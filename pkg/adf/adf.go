// Package adf builds rich-text documents in the Atlassian Document Format used
// by Jira issue descriptions.
package adf

// Node types.
const (
	TypeDoc       = "doc"
	TypeParagraph = "paragraph"
	TypeText      = "text"
	TypeCodeBlock = "codeBlock"
)

// Mark types.
const (
	MarkStrong = "strong"
	MarkEm     = "em"
	MarkCode   = "code"
)

// docVersion is the only ADF version the tracker accepts.
const docVersion = 1

// Mark decorates a text node.
type Mark struct {
	Type string `json:"type"`
}

// Node is a single node of a document tree.
type Node struct {
	Type    string         `json:"type"`
	Version int            `json:"version,omitempty"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []Node         `json:"content,omitempty"`
	Text    string         `json:"text,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
}

// Doc returns the root node of a document.
func Doc(content ...Node) Node {
	return Node{
		Type:    TypeDoc,
		Version: docVersion,
		Content: content,
	}
}

// Paragraph returns a paragraph holding the given inline nodes.
// Text nodes with no text are dropped: the tracker rejects them.
func Paragraph(inline ...Node) Node {
	return Node{
		Type:    TypeParagraph,
		Content: dropEmptyText(inline),
	}
}

// Text returns a plain text node.
func Text(text string, marks ...Mark) Node {
	node := Node{
		Type: TypeText,
		Text: text,
	}
	if len(marks) > 0 {
		node.Marks = marks
	}
	return node
}

// Strong returns a bold text node.
func Strong(text string) Node {
	return Text(text, Mark{Type: MarkStrong})
}

// CodeBlock returns a code block containing code verbatim.
// An empty language leaves the block without attributes.
func CodeBlock(code, language string) Node {
	node := Node{Type: TypeCodeBlock}
	if language != "" {
		node.Attrs = map[string]any{"language": language}
	}
	if code != "" {
		node.Content = []Node{Text(code)}
	}
	return node
}

// HasMark reports whether the node carries a mark of the given type.
func (n Node) HasMark(markType string) bool {
	for _, m := range n.Marks {
		if m.Type == markType {
			return true
		}
	}
	return false
}

func dropEmptyText(nodes []Node) []Node {
	var kept []Node
	for _, n := range nodes {
		if n.Type == TypeText && n.Text == "" {
			continue
		}
		kept = append(kept, n)
	}
	return kept
}
