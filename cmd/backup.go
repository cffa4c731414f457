// Package cmd implements the command-line interface for gaiacore.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/gaiakodi/gaiacore/settings"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)

	backupImportCmd.Flags().StringP("file", "f", "", "Backup archive to import, defaulting to the most recent snapshot")
	backupExportCmd.SetOut(os.Stdout)
	backupImportCmd.SetOut(os.Stdout)
}

// backupCmd serves as the parent command for settings backups.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and import settings backups",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		handleErr(settings.Setup())
	},
}

// backupExportCmd writes a new backup snapshot.
var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a settings backup snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(settings.Export())
		fmt.Printf("backup written: %s\n", settings.Latest())
	},
}

// backupImportCmd restores settings from a backup archive.
var backupImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Restore settings from a backup archive",
	Run: func(cmd *cobra.Command, args []string) {
		path := lo.Must(cmd.Flags().GetString("file"))
		if path == "" {
			path = settings.Latest()
		}
		if path == "" {
			handleErr(errors.New("no backup snapshot available"))
		}
		handleErr(settings.Import(path))
		fmt.Printf("backup restored: %s\n", path)
	},
}
