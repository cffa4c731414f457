// Package cmd implements the command-line interface for gaiacore.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/gaiakodi/gaiacore/hardware"
	"github.com/gaiakodi/gaiacore/platform"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.AddCommand(infoPlatformCmd)
	infoCmd.AddCommand(infoHardwareCmd)

	infoHardwareCmd.Flags().BoolP("benchmark", "b", false, "Run the storage and network throughput benchmarks")
	for _, c := range []*cobra.Command{infoPlatformCmd, infoHardwareCmd} {
		c.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
		c.SetOut(os.Stdout)
	}
}

// infoCmd serves as the parent command for device introspection.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Inspect the platform and hardware the addon runs on",
}

// infoPlatformCmd displays the detected platform profile.
var infoPlatformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Display the detected operating system, architecture and host fork",
	Run: func(cmd *cobra.Command, args []string) {
		profile := platform.Detect()

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(profile))
			return
		}

		cmd.Printf("Family        %s\n", profile.Family)
		cmd.Printf("System        %s\n", profile.System)
		if profile.Distribution != "" {
			cmd.Printf("Distribution  %s\n", profile.Distribution)
		}
		cmd.Printf("Architecture  %s (%d-bit)\n", profile.Architecture, profile.Bits)
		if profile.Version != "" {
			cmd.Printf("Version       %s\n", profile.Version)
		}
		if profile.Fork != "" {
			cmd.Printf("Fork          %s\n", profile.Fork)
		}
		cmd.Printf("Fingerprint   %s\n", platform.Fingerprint())
	},
}

// infoHardwareCmd probes the hardware and displays the performance rating.
var infoHardwareCmd = &cobra.Command{
	Use:   "hardware",
	Short: "Probe the hardware and display the performance rating",
	Run: func(cmd *cobra.Command, args []string) {
		benchmark := lo.Must(cmd.Flags().GetBool("benchmark"))
		report := hardware.Probe(hardware.Options{
			BenchmarkStorage: benchmark,
			BenchmarkNetwork: benchmark,
		})
		rating := hardware.Rate(report)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(map[string]any{
				"report": report,
				"rating": rating,
			}))
			return
		}

		cmd.Printf("Processor  %s\n", report.Processor.Label)
		cmd.Printf("Memory     %s\n", report.Memory.Label)
		cmd.Printf("Storage    %s\n", report.Storage.Label)
		if report.Network.Label != "" {
			cmd.Printf("Network    %s\n", report.Network.Label)
		}
		cmd.Println()
		cmd.Printf("Rating     %.4f (%s)\n", rating.Value, rating.Band)
		cmd.Printf("           cpu %.2f  ram %.2f  disk %.2f  net %.2f\n",
			rating.Processor, rating.Memory, rating.Storage, rating.Network)
	},
}
