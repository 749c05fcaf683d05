// Package cmd implements the kinetic CLI commands.
//
// The CLI exists for tuning: profiles are listed and edited as YAML,
// trajectories are simulated and rendered (plot), and the resulting feel
// is checked interactively in the terminal (demo).
package cmd

import "github.com/spf13/cobra"

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "kinetic",
	Short: "kinetic - drag and momentum physics for scrollable UI",
	Long: `Kinetic models a 1-dimensional position that users can grab, drag
and throw, with pluggable physics deciding how it keeps moving once
released. This CLI simulates and visualizes trajectories so physics
profiles can be tuned without rebuilding the host application.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var profilesDir string

func init() {
	rootCmd.PersistentFlags().StringVar(&profilesDir, "profiles-dir", ".",
		"directory containing kinetic.yaml (built-in defaults if absent)")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
