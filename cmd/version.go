package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rescom/rescom/version"
)

// versionCmd prints the rescom release version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rescom version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rescom version %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
