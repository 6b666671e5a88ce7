package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyles_RenderPlainWhenNotATerminal(t *testing.T) {
	// Test processes never have a TTY on stdout, so Render must pass the
	// text through untouched.
	s := DefaultStyles()
	assert.Equal(t, "hello", s.Render(s.Notice, "hello"))
	assert.Equal(t, "hello", s.Render(s.Warning, "hello"))
}
