package report

import (
	"path/filepath"
	"strings"

	"github.com/lerenn/cherrybomb/pkg/adf"
)

// Field labels of the issue description.
const (
	LabelDescription  = "Description:"
	LabelFileLocation = "File Location:"
	LabelLinespan     = "Linespan:"
	LabelTaggedCode   = "Tagged Code:"
)

// languages maps file extensions to code block languages understood by the tracker.
var languages = map[string]string{
	".c":     "c",
	".cpp":   "cpp",
	".cs":    "csharp",
	".go":    "go",
	".java":  "java",
	".js":    "javascript",
	".json":  "json",
	".jsx":   "javascript",
	".kt":    "kotlin",
	".php":   "php",
	".py":    "python",
	".rb":    "ruby",
	".rs":    "rust",
	".sh":    "bash",
	".sql":   "sql",
	".swift": "swift",
	".ts":    "typescript",
	".tsx":   "typescript",
	".yaml":  "yaml",
	".yml":   "yaml",
}

// BuildDescription maps a report onto the fixed issue description template.
func BuildDescription(r DebtReport) adf.Node {
	return adf.Doc(
		labeled(LabelDescription, r.Description),
		labeled(LabelFileLocation, r.FilePath),
		labeled(LabelLinespan, r.LineSpan),
		adf.Paragraph(adf.Strong(LabelTaggedCode)),
		adf.CodeBlock(r.Code, LanguageFor(r.FilePath)),
	)
}

// LanguageFor guesses the code block language from a file path.
func LanguageFor(path string) string {
	return languages[strings.ToLower(filepath.Ext(path))]
}

// labeled builds a paragraph of a bold label followed by its value.
func labeled(label, value string) adf.Node {
	if value == "" {
		return adf.Paragraph(adf.Strong(label))
	}
	return adf.Paragraph(adf.Strong(label), adf.Text(" "), adf.Text(value))
}
