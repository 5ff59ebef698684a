package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitArg(t *testing.T) {
	sel, rest, ok := splitArg("id=q текст для ввода")
	assert.True(t, ok)
	assert.Equal(t, "id=q", sel)
	assert.Equal(t, "текст для ввода", rest)

	_, _, ok = splitArg("id=q")
	assert.False(t, ok)

	_, _, ok = splitArg("id=q   ")
	assert.False(t, ok)

	_, _, ok = splitArg("")
	assert.False(t, ok)
}
