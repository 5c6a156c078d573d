package parse

import "github.com/google/shlex"

// Split turns a command string into tokens using shell-style quoting rules.
func Split(input string) ([]string, error) {
	return shlex.Split(input)
}
