/*
File    : go-lyra/cli/cli_test.go
Author  : Lyra Maintainers
*/
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRunSource_ExitCodes verifies the pipeline exit-code mapping:
// 0 clean, 2 for front-end diagnostics, 3 for runtime errors.
// Sources are chosen to produce no stdout output.
func TestRunSource_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected int
	}{
		{"clean run", "var x = 1;", 0},
		{"lexical error", "var x = @;", 2},
		{"syntax error", "var x = ;", 2},
		{"static error", "return 1;", 2},
		{"resolver error", "{ var a = a; }", 2},
		{"runtime error", `var x = "a" - 1;`, 3},
		{"runtime after statements", "var x = 1; var y = x(); var z = 2;", 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RunSource(tt.source), tt.name)
	}
}

// TestRunSource_SyntaxBeatsRuntime verifies the pipeline halts before
// interpretation when the front end reported anything, so a broken file
// never half-runs.
func TestRunSource_SyntaxBeatsRuntime(t *testing.T) {
	// The first statement would be a runtime error, the second is a
	// syntax error; the syntax error wins and nothing executes.
	code := RunSource(`var x = "a" - 1; var y = ;`)
	assert.Equal(t, 2, code)
}
