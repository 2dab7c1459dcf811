package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeBlock(t *testing.T) {
	got := CodeBlock([]string{"int current_state = 0;", "current_state = 1"})
	assert.Equal(t, "```c\nint current_state = 0;\ncurrent_state = 1\n```\n", got)
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer()

	out, err := render([]string{"getWidth() < 5"})
	require.NoError(t, err)
	assert.Contains(t, out, "getWidth")
}

func TestStatusMessages(t *testing.T) {
	assert.Contains(t, Success("program is valid"), "program is valid")
	assert.Contains(t, Failure("2 problems"), "2 problems")
}
