/*
File    : go-lyra/main.go
Author  : Lyra Maintainers
*/

// The lyra command is the entry point of the Lyra interpreter.
// All behavior lives in the cli package.
package main

import "github.com/lyra-lang/go-lyra/cli"

func main() {
	cli.Execute()
}
