/*
File    : go-lyra/std/io.go
Author  : Lyra Maintainers
*/

// Package std - io.go
// This file defines the input natives of the Lyra language. Both read
// from the runtime's shared buffered stdin reader, so interleaved calls
// never lose buffered data.
package std

import (
	"io"
	"strings"

	"github.com/lyra-lang/go-lyra/objects"
)

var ioNatives = []*Builtin{
	{Name: "readline", Arity: 0, Callback: readline}, // Reads one line from stdin
	{Name: "readchar", Arity: 0, Callback: readchar}, // Reads one character from stdin
}

// init registers the input natives in the global registry.
func init() {
	Builtins = append(Builtins, ioNatives...)
}

// readline reads and returns one line from standard input, without the
// trailing newline. Returns null once the input stream is exhausted.
//
// Syntax: readline()
//
// Example:
//
//	var name = readline();
//	print "Hello, " + name;
func readline(rt Runtime, writer io.Writer, args ...objects.Object) objects.Object {
	text, err := rt.GetInputReader().ReadString('\n')
	if err != nil && text == "" {
		// EOF with nothing buffered
		return &objects.Nil{}
	}
	return &objects.String{Value: strings.TrimRight(text, "\r\n")}
}

// readchar reads one character from standard input and returns it as a
// single-character string. Returns null once the input stream is
// exhausted.
//
// Syntax: readchar()
func readchar(rt Runtime, writer io.Writer, args ...objects.Object) objects.Object {
	ch, _, err := rt.GetInputReader().ReadRune()
	if err != nil {
		return &objects.Nil{}
	}
	return &objects.String{Value: string(ch)}
}
