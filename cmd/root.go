package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rescom",
	Short: "A resource compiler that embeds files into generated C++ headers",
	Long: `rescom is a build-time resource compiler: it embeds the raw bytes of
input files into a single generated C++ header and exposes a compile-time
binary-search lookup API over them, removing any runtime filesystem
dependency from the consuming program.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
