package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tokens, err := Split(`--copy "hello world" -x 'single quoted'`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"--copy", "hello world", "-x", "single quoted"}, tokens)
}

func TestSplit_Unbalanced(t *testing.T) {
	_, err := Split(`--copy "unterminated`)
	assert.Error(t, err)
}
