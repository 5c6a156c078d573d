// Package parse provides the token-stream primitives the scanner walks
// during argument processing.
package parse

import "errors"

var ErrInvalidPosition = errors.New("invalid position")

// State describes a cursor over the argument vector. The cursor starts
// before the first token; Advance moves it forward and reports whether a
// token is available.
type State interface {
	// CurrentArg returns the token under the cursor
	CurrentArg() string
	// Peek returns the token after the cursor without moving it, or an
	// empty string at the end of the stream
	Peek() string
	// Advance moves the cursor forward and returns true while tokens remain
	Advance() bool
	// Skip moves the cursor forward without the availability check
	Skip()
	// Pos returns the current cursor position
	Pos() int
	// Len returns the number of tokens
	Len() int
	// Args returns the underlying tokens
	Args() []string
	// ArgAt returns the token at the given position
	ArgAt(pos int) (string, error)
}

type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a cursor over the given tokens, positioned before the
// first one.
func NewState(args []string) *DefaultState {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}

	return s.args[s.pos]
}

func (s *DefaultState) Peek() string {
	if s.pos+1 >= len(s.args) {
		return ""
	}

	return s.args[s.pos+1]
}

func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}

	return false
}

func (s *DefaultState) Skip() {
	s.pos++
}

func (s *DefaultState) Pos() int {
	return s.pos
}

func (s *DefaultState) Len() int {
	return len(s.args)
}

func (s *DefaultState) Args() []string {
	return s.args
}

func (s *DefaultState) ArgAt(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}

	return s.args[pos], nil
}
