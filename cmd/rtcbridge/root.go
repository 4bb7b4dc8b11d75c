package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/rtc-bridge/config"
	"github.com/wippyai/rtc-bridge/rtc/simengine"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var cfgFile string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rtcbridge",
		Short: "Bridge host channels to an RTC engine",
		Long: `rtcbridge exposes an RTC engine's objects as named host channels.

Calls arrive on channels such as "engine" or "room#7"; engine callbacks are
published back as events on the channel of the object that raised them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to bridge.toml (default: built-in defaults)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(consoleCmd())
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bridge and engine versions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rtcbridge %s (engine %s)\n", version, simengine.NewFactory().SDKVersion())
		},
	}
}
