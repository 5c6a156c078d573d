// Package goarg provides declarative command-line argument processing in the
// argparse tradition.
//
// A caller registers positional and optional argument specifications
// (AddArgument plus property setters or functional configuration), then hands
// the process's argument vector to Parse. Parse never fails fast: the whole
// token stream is scanned, every problem is recorded as a structured
// Diagnostic, and the caller receives the bound, typed values together with
// the complete set of findings.
package goarg

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/ef-ds/deque"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/fherran/goarg/parse"
)

// Parser owns the argument registry and, after Parse, the bound values and
// accumulated diagnostics. A Parser supports at most one Parse call:
// bound-value slots are mutated destructively and are not reset, so a second
// call is reported as a diagnostic instead of silently re-parsing.
type Parser struct {
	program     string
	usage       string
	description string
	epilogue    string
	version     string
	prefix      rune
	allowAbbrev bool
	addHelp     bool
	listFunc    ListDelimiterFunc

	arguments   *orderedmap.OrderedMap[string, *Argument]
	lookup      map[string]string
	positionals []string

	diags        []Diagnostic
	unrecognized []string
	warnings     []string

	state            parseState
	helpArg          *Argument
	helpRequested    bool
	versionRequested bool
}

// NewParser convenience initialization method. Use NewParserWith to
// configure a Parser using option functions.
func NewParser() *Parser {
	return &Parser{
		arguments:   orderedmap.New[string, *Argument](),
		lookup:      map[string]string{},
		positionals: []string{},
		diags:       []Diagnostic{},
		listFunc:    matchListDelimiters,
		prefix:      '-',
		allowAbbrev: true,
		addHelp:     true,
	}
}

// AddArgument registers an argument specification under its alias(es).
// Classification follows from the shape of the aliases:
//
//	("", "src")      positional, bound by registration order
//	("", "--copy")   optional, long alias only
//	("-c", "")       optional, short alias only
//	("-c", "--copy") optional, both aliases resolving to one shared spec
//
// A short alias must be the prefix rune followed by a single letter. A
// positional name may not start with the prefix rune, and a valid short
// alias may not be combined with an unprefixed long name. Violations return
// ErrMalformedArgument; an alias which is already claimed returns
// ErrDuplicateArgument and leaves the registry untouched.
func (p *Parser) AddArgument(short, long string) error {
	if err := p.mutable(); err != nil {
		return err
	}

	positional, err := p.classify(short, long)
	if err != nil {
		return err
	}

	if short != "" {
		if _, claimed := p.lookup[short]; claimed {
			return fmt.Errorf(FmtErrorWithString, ErrDuplicateArgument, short)
		}
	}
	if long != "" {
		if _, claimed := p.lookup[long]; claimed {
			return fmt.Errorf(FmtErrorWithString, ErrDuplicateArgument, long)
		}
	}

	arg := &Argument{
		Action:     ActionStore,
		TypeOf:     TypeString,
		Short:      short,
		Long:       long,
		positional: positional,
	}

	key := long
	if key == "" {
		key = short
	}

	p.arguments.Set(key, arg)
	p.lookup[key] = key
	if short != "" && long != "" {
		p.lookup[short] = key
	}

	if positional {
		arg.position = len(p.positionals)
		p.positionals = append(p.positionals, key)
	}

	return nil
}

// classify applies the registration rules in order; the first matching rule
// wins. It returns whether the argument is positional.
func (p *Parser) classify(short, long string) (bool, error) {
	shortPrefix := string(p.prefix)
	longPrefix := p.longPrefix()

	if short == "" {
		switch {
		case long == "":
			return false, fmt.Errorf(FmtErrorWithString, ErrMalformedArgument, "either a short or a long name is required")
		case strings.HasPrefix(long, longPrefix):
			return false, nil
		case strings.HasPrefix(long, shortPrefix):
			return false, fmt.Errorf(FmtErrorWithString, ErrMalformedArgument,
				fmt.Sprintf("positional name %q can't start with %q", long, shortPrefix))
		default:
			return true, nil
		}
	}

	if !p.isValidShort(short) {
		return false, fmt.Errorf(FmtErrorWithString, ErrMalformedArgument,
			fmt.Sprintf("short name %q must be %q followed by one letter", short, shortPrefix))
	}

	switch {
	case long == "":
		return false, nil
	case strings.HasPrefix(long, longPrefix):
		return false, nil
	default:
		return false, fmt.Errorf(FmtErrorWithString, ErrMalformedArgument,
			fmt.Sprintf("can't mix positional name %q with short name %q", long, short))
	}
}

func (p *Parser) isValidShort(short string) bool {
	runes := []rune(short)

	return len(runes) == 2 && runes[0] == p.prefix && unicode.IsLetter(runes[1])
}

// GetArgument returns the Argument registered under the given alias or an
// error when not found. Both aliases of an optional argument resolve to the
// same instance.
func (p *Parser) GetArgument(identifier string) (*Argument, error) {
	return p.argument(identifier)
}

// Lookup resolves an alias to its Argument.
func (p *Parser) Lookup(alias string) (*Argument, bool) {
	key, found := p.lookup[alias]
	if !found {
		return nil, false
	}
	arg, _ := p.arguments.Get(key)

	return arg, true
}

// SetAction sets how the argument is handled when seen on the command line
func (p *Parser) SetAction(identifier string, action Action) error {
	if action < ActionStore || action > ActionVersion {
		return fmt.Errorf(FmtErrorWithString, ErrMalformedArgument, "unknown action")
	}

	return p.setProperty(identifier, func(arg *Argument) { arg.Action = action })
}

// SetType sets the declared type raw values are coerced to on binding
func (p *Parser) SetType(identifier string, typeOf ArgType) error {
	if typeOf < TypeString || typeOf > TypeTime {
		return fmt.Errorf(FmtErrorWithString, ErrMalformedArgument, "unknown type")
	}

	return p.setProperty(identifier, func(arg *Argument) { arg.TypeOf = typeOf })
}

// SetHelp sets the help text shown for the argument in usage output
func (p *Parser) SetHelp(identifier, help string) error {
	return p.setProperty(identifier, func(arg *Argument) { arg.Help = help })
}

// SetRequired when true, the argument must be supplied on the command line
func (p *Parser) SetRequired(identifier string, required bool) error {
	return p.setProperty(identifier, func(arg *Argument) { arg.Required = required })
}

// SetDeprecated when true, supplying the argument emits a warning on Parse
func (p *Parser) SetDeprecated(identifier string, deprecated bool) error {
	return p.setProperty(identifier, func(arg *Argument) { arg.Deprecated = deprecated })
}

// SetDest overrides the destination name under which the bound value is
// exposed by BoundValues
func (p *Parser) SetDest(identifier, dest string) error {
	if dest == "" {
		return fmt.Errorf(FmtErrorWithString, ErrEmptyProperty, "dest")
	}

	return p.setProperty(identifier, func(arg *Argument) { arg.DestName = dest })
}

// SetNArgs sets the argument cardinality from its textual form: a positive
// number, "?", "*", "+" or "..." (remainder)
func (p *Parser) SetNArgs(identifier, spec string) error {
	nargs, err := parseNArgs(spec)
	if err != nil {
		return err
	}

	return p.setProperty(identifier, func(arg *Argument) { arg.NArgs = nargs })
}

// SetMetavar changes the value name used for the argument in usage output
func (p *Parser) SetMetavar(identifier, metavar string) error {
	return p.setProperty(identifier, func(arg *Argument) { arg.Metavar = metavar })
}

// SetDefault sets the value bound after validation when the argument was not
// supplied on the command line
func (p *Parser) SetDefault(identifier, defaultValue string) error {
	return p.setProperty(identifier, func(arg *Argument) { arg.DefaultValue = defaultValue })
}

// SetConst sets the value bound by the store_const and append_const actions
func (p *Parser) SetConst(identifier, constValue string) error {
	return p.setProperty(identifier, func(arg *Argument) { arg.ConstValue = constValue })
}

// SetChoices restricts the argument to the given set of acceptable values
func (p *Parser) SetChoices(identifier string, choices ...string) error {
	return p.setProperty(identifier, func(arg *Argument) { arg.Choices = choices })
}

// SetProgramName sets the program name used in usage output
func (p *Parser) SetProgramName(name string) error {
	return p.setMeta(&p.program, name, "program name")
}

// SetUsage overrides the generated usage line
func (p *Parser) SetUsage(usage string) error {
	return p.setMeta(&p.usage, usage, "usage")
}

// SetDescription sets the text displayed before the argument help
func (p *Parser) SetDescription(description string) error {
	return p.setMeta(&p.description, description, "description")
}

// SetEpilogue sets the text displayed after the argument help
func (p *Parser) SetEpilogue(epilogue string) error {
	return p.setMeta(&p.epilogue, epilogue, "epilogue")
}

// SetVersion sets the text reported when an ActionVersion argument is seen
func (p *Parser) SetVersion(version string) error {
	return p.setMeta(&p.version, version, "version")
}

// SetAllowAbbreviations toggles unique-prefix matching of long names
// (enabled by default)
func (p *Parser) SetAllowAbbreviations(allow bool) {
	p.allowAbbrev = allow
}

// SetAddHelp toggles automatic registration of -h/--help (enabled by default)
func (p *Parser) SetAddHelp(addHelp bool) {
	p.addHelp = addHelp
}

// SetListDelimiterFunc allows providing a custom function for splitting
// extend-action values into lists.
func (p *Parser) SetListDelimiterFunc(delimiterFunc ListDelimiterFunc) error {
	if delimiterFunc == nil {
		return fmt.Errorf(FmtErrorWithString, ErrEmptyProperty, "list delimiter func")
	}
	p.listFunc = delimiterFunc

	return nil
}

// Parse walks the given argument vector (without the program name), binding
// values to the registered specifications. It returns true when no
// diagnostics were recorded. Problems never abort the scan - every token is
// classified and the complete set of findings is available through
// GetDiagnostics, GetUnrecognized and GetWarnings afterwards.
func (p *Parser) Parse(args []string) bool {
	if p.state != stateIdle {
		p.addDiagnostic(Diagnostic{Kind: DiagReparse})
		return false
	}

	p.ensureInit()
	p.state = stateScanning

	pending := deque.New()
	for _, key := range p.positionals {
		pending.PushBack(key)
	}

	state := parse.NewState(args)
	for state.Advance() {
		cur := state.CurrentArg()
		switch {
		case p.isLongToken(cur):
			p.evalLongOption(state)
		case p.isShortToken(cur):
			p.evalShortGroup(state)
		default:
			p.evalPositional(cur, pending)
		}
	}

	p.state = stateValidating
	p.validateRequired(pending)
	p.applyDefaults()

	if len(p.diags) == 0 && len(p.unrecognized) == 0 {
		p.state = stateBound
		return true
	}
	p.state = stateReported

	return false
}

// ParseString splits a command string into tokens and calls Parse
func (p *Parser) ParseString(argString string) bool {
	args, err := parse.Split(argString)
	if err != nil {
		return false
	}

	return p.Parse(args)
}

// HelpRequested returns true when the auto-registered help argument was seen
// on the command line. Like version, help is reported as an early-exit
// condition rather than terminating the process.
func (p *Parser) HelpRequested() bool {
	return p.helpRequested
}

// VersionRequested returns true when an ActionVersion argument was seen on
// the command line.
func (p *Parser) VersionRequested() bool {
	return p.versionRequested
}

// Version returns the text configured with SetVersion.
func (p *Parser) Version() string {
	return p.version
}

// Seen returns true once the argument has been bound, either from the
// command line or from its default.
func (p *Parser) Seen(identifier string) bool {
	arg, err := p.argument(identifier)
	if err != nil {
		return false
	}

	return arg.seen
}

// Get returns the string form of an argument's bound value and true when the
// argument has been bound. Returns an empty string and false otherwise.
func (p *Parser) Get(identifier string) (string, bool) {
	arg, err := p.argument(identifier)
	if err != nil {
		return "", false
	}
	value, ok := arg.Value()
	if !ok {
		return "", false
	}

	return stringify(value), true
}

// GetOrDefault returns the string form of an argument's bound value or
// defaultValue when no value is bound
func (p *Parser) GetOrDefault(identifier string, defaultValue string) string {
	value, found := p.Get(identifier)
	if found {
		return value
	}

	return defaultValue
}

// GetValue returns an argument's bound value with its coerced type.
func (p *Parser) GetValue(identifier string) (any, bool) {
	arg, err := p.argument(identifier)
	if err != nil {
		return nil, false
	}

	return arg.Value()
}

// GetInt returns the bound value of a TypeInt argument.
func (p *Parser) GetInt(identifier string) (int64, error) {
	value, err := p.boundValue(identifier)
	if err != nil {
		return 0, err
	}
	v, ok := value.(int64)
	if !ok {
		return 0, fmt.Errorf(FmtErrorWithString, ErrUnsupportedTypeConversion, identifier)
	}

	return v, nil
}

// GetFloat returns the bound value of a TypeFloat argument.
func (p *Parser) GetFloat(identifier string) (float64, error) {
	value, err := p.boundValue(identifier)
	if err != nil {
		return 0, err
	}
	v, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf(FmtErrorWithString, ErrUnsupportedTypeConversion, identifier)
	}

	return v, nil
}

// GetBool returns the bound value of a store_true/store_false argument.
func (p *Parser) GetBool(identifier string) (bool, error) {
	value, err := p.boundValue(identifier)
	if err != nil {
		return false, err
	}
	v, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf(FmtErrorWithString, ErrUnsupportedTypeConversion, identifier)
	}

	return v, nil
}

// GetTime returns the bound value of a TypeTime argument.
func (p *Parser) GetTime(identifier string) (time.Time, error) {
	value, err := p.boundValue(identifier)
	if err != nil {
		return time.Time{}, err
	}
	v, ok := value.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf(FmtErrorWithString, ErrUnsupportedTypeConversion, identifier)
	}

	return v, nil
}

// GetCount returns the number of occurrences of an ActionCount argument.
func (p *Parser) GetCount(identifier string) (int, error) {
	arg, err := p.argument(identifier)
	if err != nil {
		return 0, err
	}

	return arg.count, nil
}

// GetList returns the elements accumulated by an append, append_const or
// extend argument (or bound by a multi-value nargs), each in string form.
func (p *Parser) GetList(identifier string) ([]string, error) {
	value, err := p.boundValue(identifier)
	if err != nil {
		return nil, err
	}
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf(FmtErrorWithString, ErrUnsupportedTypeConversion, identifier)
	}

	elements := make([]string, len(list))
	for i, element := range list {
		elements[i] = stringify(element)
	}

	return elements, nil
}

// BoundValues returns every bound value keyed by destination name.
func (p *Parser) BoundValues() map[string]any {
	values := make(map[string]any, p.arguments.Len())
	for pair := p.arguments.Oldest(); pair != nil; pair = pair.Next() {
		if value, ok := pair.Value.Value(); ok {
			values[pair.Value.Dest()] = value
		}
	}

	return values
}

func (p *Parser) boundValue(identifier string) (any, error) {
	arg, err := p.argument(identifier)
	if err != nil {
		return nil, err
	}
	value, ok := arg.Value()
	if !ok {
		return nil, fmt.Errorf(FmtErrorWithString, ErrArgumentNotFound, "no value bound for "+identifier)
	}

	return value, nil
}

func (p *Parser) argument(identifier string) (*Argument, error) {
	key, found := p.lookup[identifier]
	if !found {
		return nil, fmt.Errorf(FmtErrorWithString, ErrArgumentNotFound, identifier)
	}
	arg, _ := p.arguments.Get(key)

	return arg, nil
}

func (p *Parser) setProperty(identifier string, apply func(*Argument)) error {
	if err := p.mutable(); err != nil {
		return err
	}
	arg, err := p.argument(identifier)
	if err != nil {
		return err
	}
	apply(arg)

	return nil
}

func (p *Parser) setMeta(target *string, value, name string) error {
	if value == "" {
		return fmt.Errorf(FmtErrorWithString, ErrEmptyProperty, name)
	}
	*target = value

	return nil
}

// mutable guards registration and property mutation: specs are frozen once
// Parse has started.
func (p *Parser) mutable() error {
	if p.state != stateIdle {
		return ErrAlreadyParsed
	}

	return nil
}

func parseNArgs(spec string) (NArgs, error) {
	switch spec {
	case "?":
		return NArgs{Kind: NArgsOptional}, nil
	case "*":
		return NArgs{Kind: NArgsZeroOrMore}, nil
	case "+":
		return NArgs{Kind: NArgsOneOrMore}, nil
	case "...":
		return NArgs{Kind: NArgsRemainder}, nil
	}

	count, err := strconv.Atoi(spec)
	if err != nil || count <= 0 {
		return NArgs{}, fmt.Errorf(FmtErrorWithString, ErrInvalidNArgs, spec)
	}

	return NArgs{Kind: NArgsFixed, Count: count}, nil
}

func stringify(value any) string {
	switch t := value.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format(time.RFC3339)
	case []any:
		parts := make([]string, len(t))
		for i, element := range t {
			parts[i] = stringify(element)
		}
		return strings.Join(parts, " ")
	}

	return fmt.Sprintf("%v", value)
}
