package goarg

import (
	"errors"
	"strings"

	"github.com/iancoleman/strcase"
)

// Action describes how the scanner handles an argument when it is seen on
// the command line.
type Action int

const (
	// ActionStore consumes one value (or as many as NArgs dictates) and binds it
	ActionStore Action = iota
	// ActionStoreConst binds the configured const value without consuming a token
	ActionStoreConst
	// ActionStoreTrue binds boolean true without consuming a token
	ActionStoreTrue
	// ActionStoreFalse binds boolean false without consuming a token
	ActionStoreFalse
	// ActionAppend consumes one value per occurrence and accumulates a list
	ActionAppend
	// ActionAppendConst accumulates the configured const value per occurrence
	ActionAppendConst
	// ActionExtend consumes a delimited value and accumulates its elements
	ActionExtend
	// ActionCount increments a counter per occurrence, no value consumed
	ActionCount
	// ActionVersion marks the version early-exit condition, no value consumed
	ActionVersion
)

// ArgType is the declared type a raw value is coerced to on binding.
type ArgType int

const (
	// TypeString stores the raw value verbatim
	TypeString ArgType = iota
	// TypeInt coerces via base-10 integer parsing
	TypeInt
	// TypeFloat coerces via decimal/scientific float parsing
	TypeFloat
	// TypeBool is never coerced from a raw value - booleans are only bound
	// through ActionStoreTrue/ActionStoreFalse
	TypeBool
	// TypeTime coerces via permissive date/time parsing
	TypeTime
)

// NArgsKind describes the cardinality class of values an argument consumes.
type NArgsKind int

const (
	// NArgsDefault leaves value consumption to the action (one value for
	// the store family, none for presence actions)
	NArgsDefault NArgsKind = iota
	// NArgsFixed consumes exactly Count values
	NArgsFixed
	// NArgsOptional consumes a single value when one is available ('?')
	NArgsOptional
	// NArgsZeroOrMore consumes values until the next option token ('*')
	NArgsZeroOrMore
	// NArgsOneOrMore is NArgsZeroOrMore requiring at least one value ('+')
	NArgsOneOrMore
	// NArgsRemainder consumes every remaining token unconditionally
	NArgsRemainder
)

// NArgs is the declared cardinality of an argument. Count is only
// meaningful when Kind is NArgsFixed.
type NArgs struct {
	Kind  NArgsKind
	Count int
}

// ConfigureParserFunc is used when defining parser-level options
type ConfigureParserFunc func(parser *Parser, err *error)

// ConfigureArgumentFunc is used when defining Argument options
type ConfigureArgumentFunc func(argument *Argument, err *error)

// ListDelimiterFunc signature to match when supplying a user-defined function to check for the runes which form list delimiters.
// Defaults to ',' || r == '|' || r == ' '.
type ListDelimiterFunc func(matchOn rune) bool

// NameConversionFunc converts an argument name to a destination name
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToSnakeCase converts a string to snake case "my_arg_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToKebabCase converts a string to kebab case "my-arg-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToScreamingSnake converts a string to screaming snake case "MY_ARG_NAME"
	ToScreamingSnake = func(s string) string {
		return strcase.ToScreamingSnake(s)
	}

	// ToLowerCase converts a string to lower case "myargname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}

	DefaultDestConverter = ToSnakeCase
)

var (
	ErrMalformedArgument         = errors.New("malformed argument")
	ErrDuplicateArgument         = errors.New("argument already exists")
	ErrArgumentNotFound          = errors.New("argument not found")
	ErrAlreadyParsed             = errors.New("parse may only be called once per parser")
	ErrInvalidNArgs              = errors.New("invalid nargs specification")
	ErrEmptyProperty             = errors.New("property can't be empty")
	ErrUnsupportedTypeConversion = errors.New("unsupported type conversion")
)

const (
	FmtErrorWithString = "%w: %s"
)

// parseState tracks the lifecycle of a Parser. Transitions are
// stateIdle -> stateScanning -> stateValidating -> stateReported|stateBound.
// A parser never leaves stateReported or stateBound: bound-value slots are
// mutated destructively during the single Parse call and are not reset.
type parseState int

const (
	stateIdle parseState = iota
	stateScanning
	stateValidating
	stateReported
	stateBound
)

// matchListDelimiters is the default ListDelimiterFunc used to split
// extend-action values into list elements.
func matchListDelimiters(r rune) bool {
	return r == ',' || r == '|' || r == ' '
}
