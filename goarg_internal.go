package goarg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/ef-ds/deque"

	"github.com/fherran/goarg/parse"
)

// ensureInit registers the automatic help argument just before scanning
// starts, so a caller claiming -h or --help for itself always wins.
func (p *Parser) ensureInit() {
	if !p.addHelp {
		return
	}
	if _, claimed := p.lookup[p.longPrefix()+"help"]; claimed {
		return
	}
	short := string(p.prefix) + "h"
	if _, claimed := p.lookup[short]; claimed {
		short = ""
	}
	if err := p.AddArgument(short, p.longPrefix()+"help"); err != nil {
		return
	}
	arg, _ := p.argument(p.longPrefix() + "help")
	arg.Action = ActionStoreTrue
	arg.Help = "show this help message and exit"
	p.helpArg = arg
}

func (p *Parser) longPrefix() string {
	return strings.Repeat(string(p.prefix), 2)
}

func (p *Parser) isLongToken(token string) bool {
	longPrefix := p.longPrefix()

	return strings.HasPrefix(token, longPrefix) && len(token) > len(longPrefix)
}

func (p *Parser) isShortToken(token string) bool {
	return strings.HasPrefix(token, string(p.prefix)) && len(token) > 1 && !p.isLongToken(token)
}

// evalLongOption resolves the current token against the registered long
// aliases: an exact match first, then a unique-prefix match when
// abbreviations are enabled. An abbreviation matching several aliases is an
// error; a token matching nothing is recorded as unrecognized.
func (p *Parser) evalLongOption(state parse.State) {
	token := state.CurrentArg()
	arg, candidates := p.resolveLong(token)
	if arg == nil {
		if len(candidates) > 1 {
			p.addDiagnostic(Diagnostic{Kind: DiagAmbiguousOption, Arg: token, Candidates: candidates})
		} else {
			p.addUnrecognized(token)
		}
		return
	}
	p.applyArgument(state, arg)
}

func (p *Parser) resolveLong(token string) (*Argument, []string) {
	if key, found := p.lookup[token]; found {
		arg, _ := p.arguments.Get(key)
		return arg, []string{token}
	}
	if !p.allowAbbrev {
		return nil, nil
	}

	var candidates []string
	for pair := p.arguments.Oldest(); pair != nil; pair = pair.Next() {
		long := pair.Value.Long
		if !pair.Value.positional && long != "" && strings.HasPrefix(long, token) {
			candidates = append(candidates, long)
		}
	}
	if len(candidates) == 1 {
		arg, _ := p.arguments.Get(p.lookup[candidates[0]])
		return arg, candidates
	}

	return nil, candidates
}

// evalShortGroup walks a short-option token character by character
// ("-abc" behaves as "-a -b -c"). The first value-bearing flag ends the
// walk: any remaining characters are its attached value ("-xVALUE"), or the
// next token is consumed when nothing is attached. Unknown characters are
// recorded as unrecognized without stopping the walk.
func (p *Parser) evalShortGroup(state parse.State) {
	runes := []rune(state.CurrentArg())
	for i := 1; i < len(runes); i++ {
		alias := string(p.prefix) + string(runes[i])
		arg, found := p.Lookup(alias)
		if !found {
			p.addUnrecognized(alias)
			continue
		}
		if arg.takesValue() {
			rest := string(runes[i+1:])
			if rest == "" {
				p.consumeAndBind(state, arg)
			} else if p.isRecognizedOption(rest) {
				p.addDiagnostic(Diagnostic{Kind: DiagMissingValue, Arg: arg.DisplayName()})
			} else {
				p.bindValues(arg, []string{rest})
			}
			return
		}
		p.applyPresence(arg)
	}
}

// evalPositional binds the token to the next unfilled positional slot, in
// registration order. Tokens beyond the declared positionals are
// unrecognized.
func (p *Parser) evalPositional(token string, pending *deque.Deque) {
	front, ok := pending.PopFront()
	if !ok {
		p.addUnrecognized(token)
		return
	}
	arg, _ := p.arguments.Get(front.(string))
	p.bindValues(arg, []string{token})
}

func (p *Parser) applyArgument(state parse.State, arg *Argument) {
	if arg.takesValue() {
		p.consumeAndBind(state, arg)
	} else {
		p.applyPresence(arg)
	}
}

// applyPresence handles the actions which bind without consuming a value
// token.
func (p *Parser) applyPresence(arg *Argument) {
	p.noteUse(arg)

	switch arg.Action {
	case ActionStoreTrue:
		arg.bind(true)
	case ActionStoreFalse:
		arg.bind(false)
	case ActionStoreConst, ActionAppendConst:
		value, diag := p.coerce(arg, arg.ConstValue)
		if diag != nil {
			p.addDiagnostic(*diag)
			return
		}
		arg.bind(value)
	case ActionCount:
		arg.count++
		arg.bind(arg.count)
	case ActionVersion:
		p.versionRequested = true
		arg.seen = true
	}
}

func (p *Parser) consumeAndBind(state parse.State, arg *Argument) {
	values, ok := p.consumeValues(state, arg)
	if !ok {
		p.addDiagnostic(Diagnostic{Kind: DiagMissingValue, Arg: arg.DisplayName()})
		return
	}
	p.bindValues(arg, values)
}

// consumeValues collects raw value tokens for a value-bearing argument
// according to its declared cardinality. It returns false when the stream
// could not satisfy the cardinality; in that case no token was consumed
// beyond those already taken.
func (p *Parser) consumeValues(state parse.State, arg *Argument) ([]string, bool) {
	switch arg.NArgs.Kind {
	case NArgsDefault:
		value, ok := p.nextValue(state)
		if !ok {
			return nil, false
		}
		return []string{value}, true
	case NArgsFixed:
		values := make([]string, 0, arg.NArgs.Count)
		for i := 0; i < arg.NArgs.Count; i++ {
			value, ok := p.nextValue(state)
			if !ok {
				return nil, false
			}
			values = append(values, value)
		}
		return values, true
	case NArgsOptional:
		if value, ok := p.nextValue(state); ok {
			return []string{value}, true
		}
		if arg.ConstValue != "" {
			return []string{arg.ConstValue}, true
		}
		if arg.DefaultValue != "" {
			return []string{arg.DefaultValue}, true
		}
		return nil, false
	case NArgsZeroOrMore, NArgsOneOrMore:
		var values []string
		for {
			value, ok := p.nextValue(state)
			if !ok {
				break
			}
			values = append(values, value)
		}
		if arg.NArgs.Kind == NArgsOneOrMore && len(values) == 0 {
			return nil, false
		}
		return values, true
	case NArgsRemainder:
		var values []string
		for state.Advance() {
			values = append(values, state.CurrentArg())
		}
		return values, true
	}

	return nil, false
}

// nextValue takes the next token from the stream as a raw value. A missing
// token, an empty token, or a token which resolves to a registered option
// all mean "no value available" and consume nothing - a flag-shaped token
// which matches no registered argument is a legitimate value (so "-5" can be
// a negative number).
func (p *Parser) nextValue(state parse.State) (string, bool) {
	next, err := state.ArgAt(state.Pos() + 1)
	if err != nil || next == "" {
		return "", false
	}
	if p.isRecognizedOption(next) {
		return "", false
	}
	state.Skip()

	return state.CurrentArg(), true
}

// isRecognizedOption reports whether the token would be claimed by the
// scanner as an option: an exact alias, an unambiguous long abbreviation, or
// a short group whose first character is registered.
func (p *Parser) isRecognizedOption(token string) bool {
	if !strings.HasPrefix(token, string(p.prefix)) || len(token) < 2 {
		return false
	}
	if _, found := p.lookup[token]; found {
		return true
	}
	if p.isLongToken(token) {
		arg, candidates := p.resolveLong(token)
		return arg != nil || len(candidates) > 1
	}
	runes := []rune(token)
	_, found := p.lookup[string(runes[:2])]

	return found
}

// bindValues validates raw values against the choice set, coerces them to
// the declared type and binds. The first failing value aborts the binding -
// the slot keeps its previous state.
func (p *Parser) bindValues(arg *Argument, raws []string) {
	if arg.Action == ActionExtend {
		var elements []string
		for _, raw := range raws {
			elements = append(elements, strings.FieldsFunc(raw, p.listFunc)...)
		}
		raws = elements
	}

	coerced := make([]any, 0, len(raws))
	for _, raw := range raws {
		if !arg.inChoices(raw) {
			p.addDiagnostic(Diagnostic{Kind: DiagInvalidChoice, Arg: arg.DisplayName(), Value: raw})
			return
		}
		value, diag := p.coerce(arg, raw)
		if diag != nil {
			p.addDiagnostic(*diag)
			return
		}
		coerced = append(coerced, value)
	}

	p.noteUse(arg)
	switch {
	case arg.accumulates():
		for _, value := range coerced {
			arg.bind(value)
		}
	case arg.NArgs.Kind == NArgsDefault || arg.NArgs.Kind == NArgsOptional:
		arg.bind(coerced[0])
	default:
		arg.bind(coerced)
	}
}

// coerce converts a raw token to the argument's declared type. TypeBool is
// never coerced from a raw value - booleans only come from the
// store_true/store_false actions.
func (p *Parser) coerce(arg *Argument, raw string) (any, *Diagnostic) {
	display := arg.DisplayName()
	switch arg.TypeOf {
	case TypeString:
		return raw, nil
	case TypeInt:
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			if isRangeError(err) {
				return nil, &Diagnostic{Kind: DiagOutOfRange, Arg: display, Value: raw}
			}
			return nil, &Diagnostic{Kind: DiagInvalidInt, Arg: display, Value: raw}
		}
		return value, nil
	case TypeFloat:
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			if isRangeError(err) {
				return nil, &Diagnostic{Kind: DiagOutOfRange, Arg: display, Value: raw}
			}
			return nil, &Diagnostic{Kind: DiagInvalidFloat, Arg: display, Value: raw}
		}
		return value, nil
	case TypeBool:
		return nil, &Diagnostic{Kind: DiagInvalidBool, Arg: display, Value: raw}
	case TypeTime:
		value, err := dateparse.ParseAny(raw)
		if err != nil {
			return nil, &Diagnostic{Kind: DiagInvalidTime, Arg: display, Value: raw}
		}
		return value, nil
	}

	return raw, nil
}

func isRangeError(err error) bool {
	var numErr *strconv.NumError

	return errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange)
}

func (p *Parser) noteUse(arg *Argument) {
	if arg == p.helpArg && p.helpArg != nil {
		p.helpRequested = true
	}
	if arg.Deprecated {
		p.addWarning(fmt.Sprintf("argument %s is deprecated", arg.DisplayName()))
	}
}

// validateRequired records one diagnostic per required argument that never
// bound: optionals first in registration order, then the positional slots
// still pending.
func (p *Parser) validateRequired(pending *deque.Deque) {
	for pair := p.arguments.Oldest(); pair != nil; pair = pair.Next() {
		arg := pair.Value
		if !arg.positional && arg.Required && !arg.seen {
			p.addDiagnostic(Diagnostic{Kind: DiagMissingRequired, Arg: arg.DisplayName()})
		}
	}
	for {
		front, ok := pending.PopFront()
		if !ok {
			break
		}
		arg, _ := p.arguments.Get(front.(string))
		if p.positionalOptional(arg) {
			continue
		}
		p.addDiagnostic(Diagnostic{Kind: DiagMissingRequired, Arg: arg.DisplayName()})
	}
}

// positionalOptional reports whether an unfilled positional slot is
// acceptable: positionals are required by default but an optional
// cardinality or a configured default relaxes that.
func (p *Parser) positionalOptional(arg *Argument) bool {
	if arg.DefaultValue != "" {
		return true
	}

	return arg.NArgs.Kind == NArgsOptional || arg.NArgs.Kind == NArgsZeroOrMore
}

// applyDefaults binds configured defaults to the non-required arguments the
// scan left unbound. Required arguments never receive defaults - their
// absence was already reported.
func (p *Parser) applyDefaults() {
	for pair := p.arguments.Oldest(); pair != nil; pair = pair.Next() {
		arg := pair.Value
		if arg.seen || arg.Required || arg.DefaultValue == "" {
			continue
		}
		value, diag := p.coerce(arg, arg.DefaultValue)
		if diag != nil {
			p.addDiagnostic(*diag)
			continue
		}
		arg.bind(value)
	}
}
