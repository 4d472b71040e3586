// Tuib is a terminal panel for per-output brightness and RGB gamma.
//
// It lists the outputs xrandr reports as connected, one tab each, and
// applies changes with `xrandr --output NAME --brightness B --gamma R:G:B`.
// Values live only for the session; nothing is read back from or saved to
// the X server.
//
// Usage:
//
//	tuib [--config path]
//
// See 'tuib --help' for flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/tuib/internal/version"
)

var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tuib",
	Short: "Per-output brightness and gamma panel",
	Long: `A terminal panel for adjusting brightness and RGB gamma of every
connected output through xrandr.

Keys are listed on the Diagnostics tab and can be rebound in the
configuration file.`,
	Version:       version.Full(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPanel,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().StringVar(&configPath, "config", "", "configuration file (default $XDG_CONFIG_HOME/tuib/config.yaml)")
}
