package goarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostic_Error(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "missing value",
			diag: Diagnostic{Kind: DiagMissingValue, Arg: "-c/--copy"},
			want: "argument -c/--copy: expected one argument",
		},
		{
			name: "invalid int",
			diag: Diagnostic{Kind: DiagInvalidInt, Arg: "--force", Value: "abc"},
			want: "argument --force: invalid int value: 'abc'",
		},
		{
			name: "out of range",
			diag: Diagnostic{Kind: DiagOutOfRange, Arg: "--force", Value: "9e99"},
			want: "argument --force: numerical result is out of range",
		},
		{
			name: "invalid choice",
			diag: Diagnostic{Kind: DiagInvalidChoice, Arg: "--color", Value: "blue"},
			want: "argument --color: invalid choice: 'blue'",
		},
		{
			name: "ambiguous option",
			diag: Diagnostic{Kind: DiagAmbiguousOption, Arg: "--co", Candidates: []string{"--copy", "--count"}},
			want: "ambiguous option: --co could match --copy, --count",
		},
		{
			name: "missing required",
			diag: Diagnostic{Kind: DiagMissingRequired, Arg: "src"},
			want: "argument src: is required",
		},
		{
			name: "reparse",
			diag: Diagnostic{Kind: DiagReparse},
			want: "parse may only be called once per parser",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.Error())
		})
	}
}
