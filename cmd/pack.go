package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"narou-downloader/epub"
)

type packArgs struct {
	DirPath string `validate:"required"`
}

var pArgs packArgs

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "pack an epub file from an unpacked directory",
	Long:  "pack an epub file from an unpacked directory",
	RunE:  runPack,
}

func init() {
	packCmd.Flags().StringVarP(&pArgs.DirPath, "dir-path", "d", "", "directory path")
	RootCmd.AddCommand(packCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	if pArgs.DirPath == "" {
		return fmt.Errorf("directory path is required")
	}
	err := epub.PackDir(pArgs.DirPath)
	if err != nil {
		return fmt.Errorf("failed to create epub: %v", err)
	}
	return nil
}
