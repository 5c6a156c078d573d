package goarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParserWith(t *testing.T) {
	parser, err := NewParserWith(
		WithProgramName("transfer"),
		WithDescription("moves things around"),
		WithVersion("0.1.0"),
		WithArgument("-c", "--copy", WithHelp("copy mode")),
		WithArgument("", "src", WithHelp("transfer source")),
	)
	assert.NoError(t, err)

	arg, err := parser.GetArgument("--copy")
	assert.NoError(t, err)
	assert.Equal(t, "copy mode", arg.Help)
	assert.Equal(t, "0.1.0", parser.Version())

	assert.True(t, parser.Parse([]string{"-c", "x", "here"}))
	src, _ := parser.Get("src")
	assert.Equal(t, "here", src)
}

func TestNewParserWith_PropagatesArgumentErrors(t *testing.T) {
	_, err := NewParserWith(
		WithArgument("-c", "--copy", WithNArgs("bogus")),
	)
	assert.ErrorIs(t, err, ErrInvalidNArgs)
}

func TestNewParserWith_PropagatesRegistrationErrors(t *testing.T) {
	_, err := NewParserWith(
		WithArgument("-c", "--copy"),
		WithArgument("-c", "--clone"),
	)
	assert.ErrorIs(t, err, ErrDuplicateArgument)
}

func TestNewParserWith_PropagatesMetadataErrors(t *testing.T) {
	_, err := NewParserWith(WithProgramName(""))
	assert.ErrorIs(t, err, ErrEmptyProperty)
}

func TestWithAbbreviationsAndAddHelp(t *testing.T) {
	parser, err := NewParserWith(
		WithAbbreviations(false),
		WithAddHelp(false),
		WithArgument("", "--copy"),
	)
	assert.NoError(t, err)

	assert.False(t, parser.Parse([]string{"--cop", "v", "-h"}))
	assert.Equal(t, []string{"--cop", "v", "-h"}, parser.GetUnrecognized())
}

func TestWithListDelimiterFunc(t *testing.T) {
	parser, err := NewParserWith(
		WithListDelimiterFunc(func(r rune) bool { return r == ';' }),
		WithArgument("-E", "--extend", WithAction(ActionExtend)),
	)
	assert.NoError(t, err)

	assert.True(t, parser.Parse([]string{"-E", "a;b,c"}))
	values, err := parser.GetList("-E")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b,c"}, values)
}
