package goarg

import (
	"fmt"
	"strings"
)

// Argument defines a single command-line argument specification. An Argument
// is exactly one of positional or optional: a positional argument carries a
// bare name in Long and binds by registration order, an optional argument
// carries a prefixed Short ("-c") and/or Long ("--copy") alias. When both
// aliases are registered they resolve to the *same* Argument instance -
// mutations through one alias are visible through the other.
type Argument struct {
	Action       Action
	TypeOf       ArgType
	Help         string
	Required     bool
	Deprecated   bool
	DestName     string
	NArgs        NArgs
	Metavar      string
	DefaultValue string
	ConstValue   string
	Choices      []string
	Short        string
	Long         string

	positional bool
	position   int
	value      any
	seen       bool
	count      int
}

// NewArg convenience initialization method to configure arguments
func NewArg(configs ...ConfigureArgumentFunc) *Argument {
	argument := &Argument{}
	for _, config := range configs {
		config(argument, nil)
	}

	return argument
}

// Set configures the Argument instance with the provided ConfigureArgumentFunc(s),
// and returns an error if a configuration results in an error.
//
// Usage example:
//
//	arg := &Argument{}
//	err := arg.Set(
//	    WithHelp("example argument"),
//	    WithType(TypeInt),
//	    SetRequired(true),
//	)
//	if err != nil {
//	    // handle error
//	}
func (a *Argument) Set(configs ...ConfigureArgumentFunc) error {
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// DisplayName returns the form used to reference the argument in
// diagnostics: "short/long" for optionals carrying both aliases, the single
// alias otherwise, and the bare name for positionals.
func (a *Argument) DisplayName() string {
	if a.Short != "" && a.Long != "" {
		return a.Short + "/" + a.Long
	}
	if a.Short != "" {
		return a.Short
	}

	return a.Long
}

// Dest returns the destination name under which the bound value is exposed.
// When not set explicitly it is derived from the primary alias with
// DefaultDestConverter ("--log-level" becomes "log_level").
func (a *Argument) Dest() string {
	if a.DestName != "" {
		return a.DestName
	}

	name := a.Long
	if name == "" {
		name = a.Short
	}

	return DefaultDestConverter(strings.TrimLeft(name, "-"))
}

// IsPositional returns true when the argument binds by position rather than
// by alias.
func (a *Argument) IsPositional() bool {
	return a.positional
}

// Value returns the bound value and true once the argument has been bound
// during Parse (or received its default), and nil and false before then.
func (a *Argument) Value() (any, bool) {
	if !a.seen {
		return nil, false
	}

	return a.value, true
}

// String returns a string representation of the Argument instance
func (a *Argument) String() string {
	return strings.TrimLeft(fmt.Sprintf("%s %s %s", a.DisplayName(), a.description(), a.required()), " ")
}

// takesValue reports whether the action consumes value tokens from the stream.
func (a *Argument) takesValue() bool {
	switch a.Action {
	case ActionStore, ActionAppend, ActionExtend:
		return true
	}

	return false
}

// accumulates reports whether successive bindings build up a list.
func (a *Argument) accumulates() bool {
	switch a.Action {
	case ActionAppend, ActionAppendConst, ActionExtend:
		return true
	}

	return false
}

func (a *Argument) inChoices(raw string) bool {
	if len(a.Choices) == 0 {
		return true
	}
	for _, choice := range a.Choices {
		if choice == raw {
			return true
		}
	}

	return false
}

// bind replaces the bound-value slot, or appends for accumulating actions.
// The previous value is only ever replaced on success - coercion failures
// never reach bind.
func (a *Argument) bind(value any) {
	if a.accumulates() {
		list, _ := a.value.([]any)
		a.value = append(list, value)
	} else {
		a.value = value
	}
	a.seen = true
}

func (a *Argument) required() string {
	requiredOrOptional := "optional"
	if a.Required {
		requiredOrOptional = "required"
	}

	return "(" + requiredOrOptional + ")"
}

func (a *Argument) description() string {
	if a.DefaultValue != "" {
		return fmt.Sprintf("\"%s\" (defaults to: %s)", a.Help, a.DefaultValue)
	}

	return fmt.Sprintf("\"%s\"", a.Help)
}
