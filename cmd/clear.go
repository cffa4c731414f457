// Package cmd implements the command-line interface for gaiacore.
package cmd

import (
	"fmt"

	"github.com/gaiakodi/gaiacore/filesystem"
	"github.com/gaiakodi/gaiacore/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a filesystem resource eligible for cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

// clearTargets registry of all addon artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"temp directory", "temp", mo.Some("t"), where.Temp},
	{"log directory", "logs", mo.Some("l"), where.Logs},
	{"backup directory", "backups", mo.None[string](), where.Backups},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd manages the cleanup of temporary and cached addon artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear temporary and cached addon artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}
			anyCleared = true
			handleErr(filesystem.ClearDirectory(target.location()))
			fmt.Printf("cleared %s\n", target.name)
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
