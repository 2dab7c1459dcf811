package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders generated code as a
// syntax-highlighted block using glamour.
func NewRenderer() func(lines []string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(lines []string) (string, error) {
		if err != nil {
			return "", err
		}
		return r.Render(CodeBlock(lines))
	}
}

// CodeBlock wraps lines in a fenced markdown block tagged as C.
func CodeBlock(lines []string) string {
	var sb strings.Builder
	sb.WriteString("```c\n")
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("```\n")
	return sb.String()
}
