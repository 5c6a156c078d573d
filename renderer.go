package goarg

import (
	"fmt"
	"io"
	"strings"
)

// DefaultRenderer turns a parser's state into user-facing text: usage
// output and the diagnostic report. Keeping presentation here means the
// structured diagnostics stay free of message formatting.
type DefaultRenderer struct {
	parser *Parser
}

func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// ArgumentUsage returns the help line for a single argument.
func (r *DefaultRenderer) ArgumentUsage(arg *Argument) string {
	name := arg.DisplayName()
	if arg.Metavar != "" {
		name = name + " " + arg.Metavar
	}
	if arg.IsPositional() {
		return strings.TrimRight(fmt.Sprintf("  %-24s %s", name, arg.Help), " ")
	}

	return strings.TrimRight(fmt.Sprintf("  %-24s %s %s", name, arg.Help, arg.required()), " ")
}

// DiagnosticMessage returns the message for a single diagnostic. The
// grouped kinds (missing required, unrecognized tokens) are summarized by
// RenderDiagnostics instead.
func (r *DefaultRenderer) DiagnosticMessage(d Diagnostic) string {
	return d.Error()
}

// RenderDiagnostics writes the full report of a failed Parse: one line per
// diagnostic in encounter order, then the unrecognized tokens on a single
// line, then the missing required arguments on a single line.
func (r *DefaultRenderer) RenderDiagnostics(w io.Writer) {
	var required []string
	for _, d := range r.parser.GetDiagnostics() {
		if d.Kind == DiagMissingRequired {
			required = append(required, d.Arg)
			continue
		}
		fmt.Fprintln(w, r.DiagnosticMessage(d))
	}
	if unrecognized := r.parser.GetUnrecognized(); len(unrecognized) > 0 {
		fmt.Fprintf(w, "unrecognized argument(s): %s\n", strings.Join(unrecognized, " "))
	}
	if len(required) > 0 {
		fmt.Fprintf(w, "the following argument(s) are required: %s\n", strings.Join(required, " "))
	}
}

// RenderWarnings writes the non-fatal findings, one per line.
func (r *DefaultRenderer) RenderWarnings(w io.Writer) {
	for _, warning := range r.parser.GetWarnings() {
		fmt.Fprintln(w, warning)
	}
}

// PrintUsage writes the full help output: the usage line, the description,
// one line per argument grouped into positionals and options, and the
// epilogue.
func (r *DefaultRenderer) PrintUsage(w io.Writer) {
	fmt.Fprintln(w, r.usageLine())
	if r.parser.description != "" {
		fmt.Fprintf(w, "\n%s\n", r.parser.description)
	}

	var positionals, options []string
	for pair := r.parser.arguments.Oldest(); pair != nil; pair = pair.Next() {
		line := r.ArgumentUsage(pair.Value)
		if pair.Value.IsPositional() {
			positionals = append(positionals, line)
		} else {
			options = append(options, line)
		}
	}
	if len(positionals) > 0 {
		fmt.Fprintln(w, "\npositional arguments:")
		for _, line := range positionals {
			fmt.Fprintln(w, line)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\noptions:")
		for _, line := range options {
			fmt.Fprintln(w, line)
		}
	}
	if r.parser.epilogue != "" {
		fmt.Fprintf(w, "\n%s\n", r.parser.epilogue)
	}
}

func (r *DefaultRenderer) usageLine() string {
	if r.parser.usage != "" {
		return "usage: " + r.parser.usage
	}

	var sb strings.Builder
	sb.WriteString("usage: ")
	if r.parser.program != "" {
		sb.WriteString(r.parser.program)
	} else {
		sb.WriteString("program")
	}
	sb.WriteString(" [options]")
	for _, key := range r.parser.positionals {
		arg, _ := r.parser.arguments.Get(key)
		name := arg.Metavar
		if name == "" {
			name = arg.Long
		}
		sb.WriteString(" " + name)
	}

	return sb.String()
}
