package goarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgument_DisplayName(t *testing.T) {
	assert.Equal(t, "-c/--copy", (&Argument{Short: "-c", Long: "--copy"}).DisplayName())
	assert.Equal(t, "-c", (&Argument{Short: "-c"}).DisplayName())
	assert.Equal(t, "--copy", (&Argument{Long: "--copy"}).DisplayName())
	assert.Equal(t, "src", (&Argument{Long: "src", positional: true}).DisplayName())
}

func TestArgument_Dest(t *testing.T) {
	assert.Equal(t, "log_level", (&Argument{Long: "--log-level"}).Dest())
	assert.Equal(t, "c", (&Argument{Short: "-c"}).Dest())
	assert.Equal(t, "src", (&Argument{Long: "src", positional: true}).Dest())
	assert.Equal(t, "explicit", (&Argument{Long: "--copy", DestName: "explicit"}).Dest())
}

func TestArgument_Set(t *testing.T) {
	arg := &Argument{}
	err := arg.Set(
		WithHelp("example argument"),
		WithType(TypeInt),
		SetRequired(true),
		WithNArgs("2"),
	)
	assert.NoError(t, err)
	assert.Equal(t, "example argument", arg.Help)
	assert.Equal(t, TypeInt, arg.TypeOf)
	assert.True(t, arg.Required)
	assert.Equal(t, NArgs{Kind: NArgsFixed, Count: 2}, arg.NArgs)
}

func TestArgument_SetInvalidNArgs(t *testing.T) {
	arg := &Argument{}
	err := arg.Set(WithNArgs("bogus"))
	assert.ErrorIs(t, err, ErrInvalidNArgs)
}

func TestArgument_Value(t *testing.T) {
	arg := &Argument{}
	_, found := arg.Value()
	assert.False(t, found)

	arg.bind("v")
	value, found := arg.Value()
	assert.True(t, found)
	assert.Equal(t, "v", value)
}

func TestArgument_BindAccumulates(t *testing.T) {
	arg := &Argument{Action: ActionAppend}
	arg.bind("a")
	arg.bind("b")
	value, _ := arg.Value()
	assert.Equal(t, []any{"a", "b"}, value)
}

func TestArgument_String(t *testing.T) {
	arg := NewArg(WithHelp("copy mode"))
	arg.Short = "-c"
	arg.Long = "--copy"
	assert.Equal(t, `-c/--copy "copy mode" (optional)`, arg.String())

	arg.Required = true
	arg.DefaultValue = "fast"
	assert.Equal(t, `-c/--copy "copy mode" (defaults to: fast) (required)`, arg.String())
}
