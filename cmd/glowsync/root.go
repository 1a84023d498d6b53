package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"glowsync/internal/logging"
)

var logger = logging.New("main")

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "glowsync",
	Short: "Drive IR/RF ambient lights from screen colors and sound spikes",
	Long: `glowsync samples a representative color from the screen (or reacts to
acoustic spikes), classifies it against each device's palette and drives
command-based lights through an HTTP packet relay.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.GetLeveler().SetAllLevels(zap.DebugLevel)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(backlightCmd)
	rootCmd.AddCommand(spikeCmd)
	rootCmd.AddCommand(devicesCmd)
}
