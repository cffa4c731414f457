// Package cmd implements the command-line interface for gaiacore.
package cmd

import (
	"os"
	"runtime"

	"github.com/gaiakodi/gaiacore/constant"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		cmd.Printf("%s %s\n", constant.Name, constant.Version)
		cmd.Printf("  Addon     %s\n", constant.Addon)
		cmd.Printf("  Schema    %d\n", constant.SchemaVersion)
		cmd.Printf("  Platform  %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}
