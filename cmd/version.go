package cmd

import (
	"fmt"

	"github.com/KimSchm/gh-models-cli/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the version of the gh-models CLI`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gh-models v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
