// Package cmd implements the command-line interface for gaiacore.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/gaiakodi/gaiacore/constant"
	"github.com/gaiakodi/gaiacore/key"
	"github.com/gaiakodi/gaiacore/log"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("log-level", "L", "", "Set the diagnostic level (disabled, essential, standard, extended)")
	_ = viper.BindPFlag(key.LogsLevel, rootCmd.PersistentFlags().Lookup("log-level"))
}

// rootCmd defines the entry point for the gaiacore application.
var rootCmd = &cobra.Command{
	Use:   constant.Name,
	Short: "Platform services for the Gaia media-browsing addon",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}
		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "✗ %s\n", strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
