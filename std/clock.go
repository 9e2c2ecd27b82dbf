/*
File    : go-lyra/std/clock.go
Author  : Lyra Maintainers
*/

// Package std - clock.go
// This file defines the wall-clock native of the Lyra language.
package std

import (
	"io"
	"time"

	"github.com/lyra-lang/go-lyra/objects"
)

var clockNatives = []*Builtin{
	{Name: "__SysClockSeconds", Arity: 0, Callback: sysClockSeconds}, // Wall-clock time in seconds
}

// init registers the clock native in the global registry.
func init() {
	Builtins = append(Builtins, clockNatives...)
}

// sysClockSeconds returns the current wall-clock time as fractional
// seconds since the Unix epoch.
//
// Syntax: __SysClockSeconds()
//
// Example:
//
//	var start = __SysClockSeconds();
//	work();
//	print __SysClockSeconds() - start;
func sysClockSeconds(rt Runtime, writer io.Writer, args ...objects.Object) objects.Object {
	return &objects.Number{Value: float64(time.Now().UnixNano()) / 1e9}
}
