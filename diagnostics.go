package goarg

import (
	"fmt"
	"strings"
)

// DiagnosticKind classifies a parse-time finding.
type DiagnosticKind int

const (
	// DiagMissingValue - a value-bearing argument was seen without a usable value
	DiagMissingValue DiagnosticKind = iota
	// DiagInvalidInt - value could not be parsed as a base-10 integer
	DiagInvalidInt
	// DiagInvalidFloat - value could not be parsed as a float
	DiagInvalidFloat
	// DiagInvalidBool - a store-family action was declared with TypeBool
	DiagInvalidBool
	// DiagInvalidTime - value could not be parsed as a date/time
	DiagInvalidTime
	// DiagOutOfRange - numeric value outside the representable range
	DiagOutOfRange
	// DiagInvalidChoice - value not in the argument's choice set
	DiagInvalidChoice
	// DiagAmbiguousOption - abbreviated long name matched more than one argument
	DiagAmbiguousOption
	// DiagMissingRequired - a required argument was never bound
	DiagMissingRequired
	// DiagReparse - Parse was invoked on a parser which already ran
	DiagReparse
)

// Diagnostic is a structured parse-time finding: the kind of problem, the
// display form of the argument it concerns and, when relevant, the
// offending raw value. Text rendering belongs to DefaultRenderer - the
// Error form here is a terse fallback so diagnostics satisfy error.
type Diagnostic struct {
	Kind       DiagnosticKind
	Arg        string
	Value      string
	Candidates []string
}

func (d Diagnostic) Error() string {
	switch d.Kind {
	case DiagMissingValue:
		return fmt.Sprintf("argument %s: expected one argument", d.Arg)
	case DiagInvalidInt:
		return fmt.Sprintf("argument %s: invalid int value: '%s'", d.Arg, d.Value)
	case DiagInvalidFloat:
		return fmt.Sprintf("argument %s: invalid float value: '%s'", d.Arg, d.Value)
	case DiagInvalidBool:
		return fmt.Sprintf("argument %s: bool values are bound by store_true/store_false", d.Arg)
	case DiagInvalidTime:
		return fmt.Sprintf("argument %s: invalid time value: '%s'", d.Arg, d.Value)
	case DiagOutOfRange:
		return fmt.Sprintf("argument %s: numerical result is out of range", d.Arg)
	case DiagInvalidChoice:
		return fmt.Sprintf("argument %s: invalid choice: '%s'", d.Arg, d.Value)
	case DiagAmbiguousOption:
		return fmt.Sprintf("ambiguous option: %s could match %s", d.Arg, strings.Join(d.Candidates, ", "))
	case DiagMissingRequired:
		return fmt.Sprintf("argument %s: is required", d.Arg)
	case DiagReparse:
		return ErrAlreadyParsed.Error()
	}

	return fmt.Sprintf("argument %s: unknown error", d.Arg)
}

// GetDiagnostics returns every structured diagnostic accumulated during
// Parse, in encounter order. The unrecognized-token list is kept separate -
// see GetUnrecognized.
func (p *Parser) GetDiagnostics() []Diagnostic {
	return p.diags
}

// GetUnrecognized returns the tokens which could not be matched against any
// registered argument, in encounter order.
func (p *Parser) GetUnrecognized() []string {
	return p.unrecognized
}

// GetErrors returns the diagnostics encountered during Parse as errors
func (p *Parser) GetErrors() []error {
	errs := make([]error, 0, len(p.diags))
	for _, d := range p.diags {
		errs = append(errs, d)
	}

	return errs
}

// GetErrorCount is greater than zero when errors were encountered during Parse.
func (p *Parser) GetErrorCount() int {
	return len(p.diags)
}

// GetWarnings returns a string slice of all warnings (non-fatal findings) -
// a warning is set when a deprecated argument is supplied on the command line
func (p *Parser) GetWarnings() []string {
	return p.warnings
}

func (p *Parser) addDiagnostic(d Diagnostic) {
	p.diags = append(p.diags, d)
}

func (p *Parser) addUnrecognized(token string) {
	p.unrecognized = append(p.unrecognized, token)
}

func (p *Parser) addWarning(warning string) {
	p.warnings = append(p.warnings, warning)
}
