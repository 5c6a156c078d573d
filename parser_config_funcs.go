package goarg

// NewParserWith allows initialization of a Parser via option functions.
//
// Usage example:
//
//	parser, err := NewParserWith(
//	    WithProgramName("transfer"),
//	    WithArgument("-c", "--copy", WithHelp("copy mode")),
//	    WithArgument("", "src", WithHelp("transfer source")),
//	)
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()
	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, nil
}

// WithArgument registers an argument specification and applies the given
// configuration to it. The aliases follow the AddArgument classification
// rules.
func WithArgument(short, long string, configs ...ConfigureArgumentFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if *err = parser.AddArgument(short, long); *err != nil {
			return
		}
		identifier := long
		if identifier == "" {
			identifier = short
		}
		arg, lookupErr := parser.GetArgument(identifier)
		if lookupErr != nil {
			*err = lookupErr
			return
		}
		*err = arg.Set(configs...)
	}
}

// WithProgramName sets the program name used in usage output
func WithProgramName(name string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetProgramName(name)
	}
}

// WithUsage overrides the generated usage line
func WithUsage(usage string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetUsage(usage)
	}
}

// WithDescription sets the text displayed before the argument help
func WithDescription(description string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetDescription(description)
	}
}

// WithEpilogue sets the text displayed after the argument help
func WithEpilogue(epilogue string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetEpilogue(epilogue)
	}
}

// WithVersion sets the text reported when an ActionVersion argument is seen
func WithVersion(version string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetVersion(version)
	}
}

// WithAbbreviations toggles unique-prefix matching of long names
// (enabled by default)
func WithAbbreviations(allow bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetAllowAbbreviations(allow)
	}
}

// WithAddHelp toggles automatic registration of -h/--help
// (enabled by default)
func WithAddHelp(addHelp bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetAddHelp(addHelp)
	}
}

// WithListDelimiterFunc sets the rune matcher used to split extend-action
// values into list elements
func WithListDelimiterFunc(delimiterFunc ListDelimiterFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetListDelimiterFunc(delimiterFunc)
	}
}
