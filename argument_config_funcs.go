package goarg

// WithAction sets how the argument is handled when seen on the command line
func WithAction(action Action) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Action = action
	}
}

// WithType sets the declared type raw values are coerced to on binding
func WithType(typeOf ArgType) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.TypeOf = typeOf
	}
}

// WithHelp the help text will be used in usage output presented to the user
func WithHelp(help string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Help = help
	}
}

// SetRequired when true, the argument must be supplied on the command line
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Required = required
	}
}

// SetDeprecated when true, supplying the argument emits a warning on Parse
func SetDeprecated(deprecated bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Deprecated = deprecated
	}
}

// WithDest overrides the destination name under which the bound value is
// exposed (defaults to the snake_case form of the long name)
func WithDest(dest string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DestName = dest
	}
}

// WithNArgs sets the argument cardinality from its textual form: a positive
// number, "?", "*", "+" or "..." (remainder)
func WithNArgs(spec string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		nargs, e := parseNArgs(spec)
		if e != nil {
			*err = e
			return
		}
		argument.NArgs = nargs
	}
}

// WithMetavar changes the value name used for the argument in usage output
func WithMetavar(metavar string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Metavar = metavar
	}
}

// WithDefaultValue sets the default value for the argument
func WithDefaultValue(defaultValue string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DefaultValue = defaultValue
	}
}

// WithConstValue sets the const value bound by the store_const and
// append_const actions
func WithConstValue(constValue string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.ConstValue = constValue
	}
}

// WithChoices restricts the argument to the given set of acceptable values
func WithChoices(choices ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Choices = choices
	}
}
