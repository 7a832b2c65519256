package cmd

import (
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:           "narou-dl",
	Short:         "Download a Narou novel and build an EPUB (personal use only)",
	Long:          "Download a Narou novel and build an EPUB (personal use only)",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
