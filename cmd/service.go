// Package cmd implements the command-line interface for gaiacore.
package cmd

import (
	"time"

	"github.com/gaiakodi/gaiacore/host"
	"github.com/gaiakodi/gaiacore/launch"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serviceCmd)
	serviceCmd.Flags().BoolP("hidden", "H", false, "Run the launch sequence without foreground effects")
}

// serviceCmd runs the cold-start launch sequence and parks on the host
// abort signal, mirroring the service process a real host session starts.
var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Run the addon launch sequence and serve until the host aborts",
	Run: func(cmd *cobra.Command, args []string) {
		mode := launch.ModeForeground
		if lo.Must(cmd.Flags().GetBool("hidden")) {
			mode = launch.ModeHidden
		}

		launch.ObserveAbort()
		handleErr(launch.Run(mode))

		// Stay resident so window properties and the observer ring keep
		// serving other invocations until the host closes.
		for !host.Current().WaitForAbort(time.Hour) {
		}
	},
}
