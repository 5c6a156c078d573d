package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fherran/goarg"
	"github.com/fherran/goarg/util"
)

// goarg-inspect parses its command line against a representative grammar and
// prints what was bound, or the full diagnostic report when parsing failed.
func main() {
	parser, err := goarg.NewParserWith(
		goarg.WithProgramName("goarg-inspect"),
		goarg.WithDescription("parses the given arguments and reports the bound values"),
		goarg.WithVersion("goarg-inspect 1.0.0"),
		goarg.WithArgument("", "--force",
			goarg.WithType(goarg.TypeInt),
			goarg.WithHelp("an integer option")),
		goarg.WithArgument("-c", "--copy",
			goarg.WithHelp("a string option which expects a value")),
		goarg.WithArgument("-E", "--extend",
			goarg.WithAction(goarg.ActionExtend),
			goarg.WithHelp("a delimited list, may be repeated")),
		goarg.WithArgument("-v", "--verbose",
			goarg.WithAction(goarg.ActionCount),
			goarg.WithHelp("increases verbosity, may be repeated")),
		goarg.WithArgument("-V", "--version",
			goarg.WithAction(goarg.ActionVersion),
			goarg.WithHelp("prints the version and exits")),
		goarg.WithArgument("", "send",
			goarg.WithHelp("what to send")),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ok := parser.Parse(os.Args[1:])
	renderer := goarg.NewRenderer(parser)

	if parser.HelpRequested() {
		renderer.PrintUsage(os.Stdout)
		os.Exit(0)
	}
	if parser.VersionRequested() {
		fmt.Println(parser.Version())
		os.Exit(0)
	}

	renderer.RenderWarnings(os.Stderr)
	if !ok {
		renderer.RenderDiagnostics(os.Stderr)
		if util.IsTerminal(os.Stderr) {
			renderer.PrintUsage(os.Stderr)
		}
		os.Exit(2)
	}

	bound := parser.BoundValues()
	dests := make([]string, 0, len(bound))
	for dest := range bound {
		dests = append(dests, dest)
	}
	sort.Strings(dests)
	for _, dest := range dests {
		fmt.Printf("%s=%v\n", dest, bound[dest])
	}
}
