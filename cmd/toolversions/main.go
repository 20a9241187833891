// Package main is the entry point for the tool version reporter.
package main

import "toolversions/cmd/toolversions/cmd"

func main() {
	cmd.Execute()
}
