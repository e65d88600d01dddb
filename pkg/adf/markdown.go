package adf

import (
	"strings"
)

// ToMarkdown renders a document tree as Markdown.
// Block nodes are separated by a blank line.
func ToMarkdown(node Node) string {
	var b strings.Builder
	renderBlock(&b, node)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func renderBlock(b *strings.Builder, node Node) {
	switch node.Type {
	case TypeDoc:
		for i, child := range node.Content {
			if i > 0 {
				b.WriteString("\n")
			}
			renderBlock(b, child)
		}
	case TypeParagraph:
		for _, child := range node.Content {
			b.WriteString(renderInline(child))
		}
		b.WriteString("\n")
	case TypeCodeBlock:
		renderCodeBlock(b, node)
	default:
		b.WriteString(renderInline(node))
		b.WriteString("\n")
	}
}

func renderInline(node Node) string {
	if node.Type != TypeText {
		return ""
	}
	text := node.Text
	if node.HasMark(MarkCode) {
		text = "`" + text + "`"
	}
	if node.HasMark(MarkEm) {
		text = "_" + text + "_"
	}
	if node.HasMark(MarkStrong) {
		text = "**" + text + "**"
	}
	return text
}

func renderCodeBlock(b *strings.Builder, node Node) {
	var code strings.Builder
	for _, child := range node.Content {
		code.WriteString(child.Text)
	}

	fence := strings.Repeat("`", max(3, longestBacktickRun(code.String())+1))
	language, _ := node.Attrs["language"].(string)

	b.WriteString(fence)
	b.WriteString(language)
	b.WriteString("\n")
	if code.Len() > 0 {
		b.WriteString(code.String())
		if !strings.HasSuffix(code.String(), "\n") {
			b.WriteString("\n")
		}
	}
	b.WriteString(fence)
	b.WriteString("\n")
}

// longestBacktickRun returns the length of the longest run of backticks in s.
func longestBacktickRun(s string) int {
	longest, current := 0, 0
	for _, r := range s {
		if r != '`' {
			current = 0
			continue
		}
		current++
		if current > longest {
			longest = current
		}
	}
	return longest
}
