package main

import "github.com/rescom/rescom/cmd"

// main is the entry point of the rescom CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
