// Package cmd implements the command-line interface for gaiacore.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/gaiakodi/gaiacore/settings"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func errUnknownKey(id string) error {
	matches := fuzzy.RankFindFold(id, lo.Keys(settings.Default))
	if len(matches) == 0 {
		return fmt.Errorf("unknown setting %s", id)
	}
	sort.Sort(matches)
	return fmt.Errorf("unknown setting %s, did you mean %s?", id, matches[0].Target)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(settings.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// configCmd serves as the parent command for managing addon settings.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage addon settings and defaults",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		handleErr(settings.Setup())
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.SetOut(os.Stdout)
}

// configGetCmd retrieves the current value of a setting.
var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Retrieve the current value of a setting",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		if _, ok := settings.Default[id]; !ok {
			handleErr(errUnknownKey(id))
		}
		cmd.Println(settings.Get(id))
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

// configSetCmd updates the value of a setting.
var configSetCmd = &cobra.Command{
	Use:               "set [key] [value]",
	Short:             "Update the value of a setting",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		id, value := args[0], args[1]
		if _, ok := settings.Default[id]; !ok {
			handleErr(errUnknownKey(id))
		}
		handleErr(settings.Set(id, value))
		fmt.Printf("set %s to %s\n", id, value)
	},
}

func init() {
	configCmd.AddCommand(configListCmd)
	configListCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	configListCmd.SetOut(os.Stdout)
}

// configListCmd lists every declared setting with its current value.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every declared setting with its current value",
	Run: func(cmd *cobra.Command, args []string) {
		ids := lo.Keys(settings.Default)
		sort.Strings(ids)

		if lo.Must(cmd.Flags().GetBool("json")) {
			values := make(map[string]string, len(ids))
			for _, id := range ids {
				values[id] = settings.Get(id)
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(values))
			return
		}

		for _, id := range ids {
			cmd.Printf("%s = %s\n", id, settings.Get(id))
		}
	},
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Specify the setting keys to retrieve information for")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
	configInfoCmd.SetOut(os.Stdout)
}

// configInfoCmd displays descriptions and defaults for settings.
var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display descriptions and default values for settings",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			fields = lo.Values(settings.Default)
		)

		if len(keys) > 0 {
			fields = make([]settings.Field, 0, len(keys))
			for _, id := range keys {
				field, ok := settings.Default[id]
				if !ok {
					handleErr(errUnknownKey(id))
				}
				fields = append(fields, field)
			}
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].ID < fields[j].ID
		})

		for i, field := range fields {
			cmd.Printf("%s\n  default: %v\n  %s\n", field.ID, field.Value, field.Description)
			if i < len(fields)-1 {
				cmd.Println()
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().StringP("key", "k", "", "The setting to restore to its default value")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore every setting to its factory default")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

// configResetCmd restores settings to their factory defaults.
var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore a setting to its default value",
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("key") && !cmd.Flags().Changed("all") {
			handleErr(errors.New("either --key or --all must be set"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			id  = lo.Must(cmd.Flags().GetString("key"))
			all = lo.Must(cmd.Flags().GetBool("all"))
		)

		if all {
			for _, field := range settings.Default {
				handleErr(settings.Set(field.ID, field.Value))
			}
			fmt.Println("reset all settings")
			return
		}

		field, ok := settings.Default[id]
		if !ok {
			handleErr(errUnknownKey(id))
		}
		handleErr(settings.Set(id, field.Value))
		fmt.Printf("reset %s to %v\n", id, field.Value)
	},
}
