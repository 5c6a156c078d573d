package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Walk(t *testing.T) {
	s := NewState([]string{"a", "b", "c"})
	assert.Equal(t, -1, s.Pos())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "", s.CurrentArg())

	assert.True(t, s.Advance())
	assert.Equal(t, "a", s.CurrentArg())
	assert.Equal(t, "b", s.Peek())

	s.Skip()
	assert.Equal(t, "b", s.CurrentArg())

	assert.True(t, s.Advance())
	assert.Equal(t, "c", s.CurrentArg())
	assert.Equal(t, "", s.Peek())
	assert.False(t, s.Advance())
}

func TestState_ArgAt(t *testing.T) {
	s := NewState([]string{"a", "b"})

	value, err := s.ArgAt(1)
	assert.NoError(t, err)
	assert.Equal(t, "b", value)

	_, err = s.ArgAt(2)
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = s.ArgAt(-1)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestState_Empty(t *testing.T) {
	s := NewState(nil)
	assert.False(t, s.Advance())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Args())
}
